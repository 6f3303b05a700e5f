package api

import (
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AccountingHandler struct {
	q queries.AccountingQueries
}

func NewAccountingHandler(q queries.AccountingQueries) *AccountingHandler {
	return &AccountingHandler{q: q}
}

// @Summary Accounting summary
// @Description Revenue incl./excl. VAT, deposits, discounts and gift-card totals
// @Tags accounting
// @Produce json
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD or RFC 3339"
// @Param to query string false "YYYY-MM-DD or RFC 3339"
// @Success 200 {object} resdto.AccountingSummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/accounting/summary [get]
func (h *AccountingHandler) Summary(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	r, err := q.ToRange()
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.q.Summary(c.Request.Context(), actor, r)
	if err != nil {
		respondError(c, err)
		return
	}
	out, err := resdto.FromAccountingSummary(summary)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
