package api

import (
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	cmds commands.OrganizationCommands
	q    queries.OrganizationQueries
}

func NewOrganizationHandler(cmds commands.OrganizationCommands, q queries.OrganizationQueries) *OrganizationHandler {
	return &OrganizationHandler{cmds: cmds, q: q}
}

// @Summary List organizations
// @Tags super-admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrganizationResponse
// @Failure 403 {object} httperr.Response
// @Router /super-admin/organizations [get]
func (h *OrganizationHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	orgs, err := h.q.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	out, err := resdto.FromOrganizationViews(orgs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Create organization
// @Tags super-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrganizationRequest true "Organization"
// @Success 201 {object} resdto.OrganizationResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /super-admin/organizations [post]
func (h *OrganizationHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	org, err := h.cmds.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, org)
}

// @Summary Get organization settings
// @Tags super-admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organization ID"
// @Success 200 {object} resdto.OrganizationResponse
// @Failure 404 {object} httperr.Response
// @Router /super-admin/organizations/{id}/settings [get]
func (h *OrganizationHandler) GetSettings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	org, err := h.q.GetSettings(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, org)
}

// @Summary Replace organization settings
// @Tags super-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organization ID"
// @Param request body reqdto.SettingsRequest true "Settings"
// @Success 200 {object} resdto.OrganizationResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /super-admin/organizations/{id}/settings [put]
func (h *OrganizationHandler) UpdateSettings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	org, err := h.cmds.UpdateSettings(c.Request.Context(), actor, id, req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, org)
}

func (h *OrganizationHandler) respond(c *gin.Context, status int, org *queries.OrganizationView) {
	out, err := resdto.FromOrganizationView(org)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, out)
}
