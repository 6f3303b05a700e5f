package api

import (
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errGiftCardGone = errs.New("gift card is no longer usable")

type GiftCardHandler struct {
	cmds commands.GiftCardCommands
	q    queries.GiftCardQueries
}

func NewGiftCardHandler(cmds commands.GiftCardCommands, q queries.GiftCardQueries) *GiftCardHandler {
	return &GiftCardHandler{cmds: cmds, q: q}
}

// @Summary Check a gift card
// @Description Public lookup by code. Unusable cards answer 410 with the reason.
// @Tags gift-cards
// @Produce json
// @Param code query string true "Gift card code"
// @Success 200 {object} queries.GiftCardCheck
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /gift-cards/verify [get]
func (h *GiftCardHandler) Verify(c *gin.Context) {
	var q reqdto.VerifyGiftCardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	check, err := h.q.Verify(c.Request.Context(), q.Normalized())
	if err != nil {
		respondError(c, err)
		return
	}
	if !check.Usable {
		httperr.AbortWithError(c, http.StatusGone, errGiftCardGone, check.Message, check)
		return
	}
	c.JSON(http.StatusOK, check)
}

// @Summary Issue a gift card
// @Tags gift-cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGiftCardRequest true "Gift card"
// @Success 201 {object} resdto.GiftCardResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/gift-cards [post]
func (h *GiftCardHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateGiftCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	out, err := resdto.FromGiftCardView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// @Summary List gift cards
// @Tags gift-cards
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.ListResponse[resdto.GiftCardResponse]
// @Router /admin/gift-cards [get]
func (h *GiftCardHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	cards, next, err := h.q.List(c.Request.Context(), actor, q.ToCursor(), q.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	out, err := resdto.FromGiftCardViews(cards)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewListResponse(out, next))
}

// @Summary Gift card QR code
// @Tags gift-cards
// @Produce image/png
// @Security BearerAuth
// @Param id path string true "Gift card ID"
// @Success 200 {file} file
// @Failure 404 {object} httperr.Response
// @Router /admin/gift-cards/{id}/qr [get]
func (h *GiftCardHandler) QRCode(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	qr, err := h.q.QRCode(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="gift-card-`+qr.Code+`.png"`)
	c.Data(http.StatusOK, "image/png", qr.PNG)
}
