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
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeHTML = "text/html; charset=utf-8"
)

type ReservationHandler struct {
	cmds        commands.ReservationCommands
	validations commands.ValidationCommands
	q           queries.ReservationQueries
	vq          queries.ValidationQueries
	clock       clock.Clock
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	validations commands.ValidationCommands,
	q queries.ReservationQueries,
	vq queries.ValidationQueries,
	clk clock.Clock,
) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, validations: validations, q: q, vq: vq, clock: clk}
}

// @Summary Create reservation
// @Description Clients book for themselves; staff pass client_id.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "UUID used to deduplicate retries"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), actor, req.ToCommand(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description Keyset-paginated, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending|confirmed|completed|no_show|canceled"
// @Param client_id query string false "Client ID"
// @Param from query string false "YYYY-MM-DD or RFC 3339"
// @Param to query string false "YYYY-MM-DD or RFC 3339"
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.ListResponse[resdto.ReservationListResponse]
// @Failure 400 {object} httperr.Response
// @Router /admin/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		respondError(c, err)
		return
	}

	items, next, err := h.q.List(c.Request.Context(), actor, filter, q.ToCursor(), q.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewListResponse(resdto.FromReservationListItems(items), next))
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.cmds.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Validate attendance and payment
// @Description Applies discounts, the gift card and loyalty side effects in one transaction.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param Idempotency-Key header string true "UUID used to deduplicate retries"
// @Param request body reqdto.ValidatePaymentRequest true "Validation"
// @Success 200 {object} resdto.ValidationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/reservations/{id}/validate [post]
func (h *ReservationHandler) Validate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.ValidatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.validations.Validate(c.Request.Context(), actor, id, req.ToCommand(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ValidationResponse{
		Reservation: resdto.FromReservationView(result.Reservation),
		Breakdown:   result.Breakdown,
		Replayed:    result.Replayed,
	})
}

// @Summary Validation modal context
// @Description Eligibility, default discounts and rates for the validation form
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ValidationContext
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{id}/validation-context [get]
func (h *ReservationHandler) ValidationContext(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	vc, err := h.vq.Context(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vc)
}

// @Summary Correct a validated payment
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CorrectPaymentRequest true "Correction"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/reservations/{id}/correct [post]
func (h *ReservationHandler) CorrectPayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CorrectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.cmds.CorrectPayment(c.Request.Context(), actor, id, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Export reservations
// @Tags reservations
// @Produce text/csv
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD or RFC 3339"
// @Param to query string false "YYYY-MM-DD or RFC 3339"
// @Success 200 {file} file
// @Router /admin/reservations/export [get]
func (h *ReservationHandler) ExportCSV(c *gin.Context) {
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

	data, err := h.q.ExportCSV(c.Request.Context(), actor, r)
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("reservations-%s.csv", h.clock.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentTypeCSV, data)
}

// @Summary Printable invoice
// @Tags reservations
// @Produce text/html
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {string} string "HTML document"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/reservations/{id}/invoice [get]
func (h *ReservationHandler) Invoice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	html, err := h.q.Invoice(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, contentTypeHTML, html)
}
