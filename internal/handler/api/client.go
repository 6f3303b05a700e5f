package api

import (
	"fmt"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientHandler struct {
	users   commands.UserCommands
	clients queries.ClientQueries
	clock   clock.Clock
}

func NewClientHandler(users commands.UserCommands, clients queries.ClientQueries, clk clock.Clock) *ClientHandler {
	return &ClientHandler{users: users, clients: clients, clock: clk}
}

// @Summary List clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches name or email"
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.ListResponse[resdto.ClientResponse]
// @Router /admin/clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.ListClientsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	items, next, err := h.clients.List(c.Request.Context(), actor, q.SearchTerm(), q.ToCursor(), q.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	out, err := resdto.FromClientList(items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewListResponse(out, next))
}

// @Summary Create client
// @Description Creates the client account, loyalty profile and referral code
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateClientRequest true "Client"
// @Success 201 {object} resdto.UserResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	u, err := h.users.CreateClient(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUserView(u))
}

// @Summary Export clients
// @Tags clients
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Router /admin/clients/export [get]
func (h *ClientHandler) ExportCSV(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	data, err := h.clients.ExportCSV(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("clients-%s.csv", h.clock.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentTypeCSV, data)
}

// @Summary Referral status of a client
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param userId query string true "Client ID"
// @Success 200 {object} referral.Status
// @Failure 404 {object} httperr.Response
// @Router /admin/client-referral-status [get]
func (h *ClientHandler) ReferralStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.ReferralStatusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	st, err := h.clients.ReferralStatus(c.Request.Context(), actor, uuid.MustParse(q.UserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
