package api

import (
	"errors"
	"net/http"

	reqdto "radstation/internal/handler/dto/request"
	resdto "radstation/internal/handler/dto/response"
	"radstation/internal/handler/httperr"
	"radstation/internal/pkg/config"
	"radstation/internal/pkg/errs"
	"radstation/internal/pkg/patch"
	"radstation/internal/usecase/commands"
	"radstation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
)

var errInvalidIdempotencyKey = errors.New("invalid idempotency key format")

type RentalHandler struct {
	rental   queries.RentalQueries
	bookings queries.BookingQueries
	cmds     commands.BookingCommands
	currency string
	limit    int
}

func NewRentalHandler(rental queries.RentalQueries, bookings queries.BookingQueries, cmds commands.BookingCommands, cfg config.Config) *RentalHandler {
	return &RentalHandler{
		rental:   rental,
		bookings: bookings,
		cmds:     cmds,
		currency: cfg.Pricing.Currency,
		limit:    cfg.Booking.RecentLimit,
	}
}

// @Summary Get availability
// @Description Rentable bicycle types with counts, day rates and the selectable maximum
// @Tags rental
// @Produce json
// @Param von query string true "Start date (YYYY-MM-DD)"
// @Param bis query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/rental/availability [get]
func (h *RentalHandler) Availability(c *gin.Context) {
	var q reqdto.RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.rental.Availability(c.Request.Context(), q.Von, q.Bis)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view, h.currency))
}

// @Summary Quote
// @Description Price a selection. Capacity issues are reported inline, not as an error.
// @Tags rental
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Selection"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/rental/quote [post]
func (h *RentalHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.rental.Quote(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view, h.currency))
}

// @Summary Timeline
// @Description Per-day occupancy of every rentable type
// @Tags rental
// @Produce json
// @Param von query string true "Start date (YYYY-MM-DD)"
// @Param bis query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} resdto.TimelineResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/rental/timeline [get]
func (h *RentalHandler) Timeline(c *gin.Context) {
	var q reqdto.RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.rental.Timeline(c.Request.Context(), q.Von, q.Bis)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimelineView(view))
}

// @Summary Submit booking
// @Description Forward the selection to the Warenwirtschaft backend once per idempotency key
// @Tags rental
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "UUID identifying this submission"
// @Param request body reqdto.SubmitBookingRequest true "Selection"
// @Success 201 {object} resdto.SubmissionResponse
// @Success 200 {object} resdto.SubmissionResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/rental/bookings [post]
func (h *RentalHandler) SubmitBooking(c *gin.Context) {
	key, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	var req reqdto.SubmitBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), req.ToParams(), key)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromSubmissionView(result.Submission)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
		c.Header(replayedHeader, "true")
	}
	c.JSON(status, res)
}

// @Summary Recent submissions
// @Description Latest journal entries, newest first
// @Tags rental
// @Produce json
// @Param limit query int false "Maximum entries (1-200)"
// @Success 200 {array} resdto.SubmissionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rental/bookings/recent [get]
func (h *RentalHandler) RecentBookings(c *gin.Context) {
	var q reqdto.RecentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	views, err := h.bookings.ListRecent(c.Request.Context(), patch.Coalesce(q.Limit, h.limit))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromSubmissionViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}
	key, err := uuid.Parse(raw)
	if err != nil || key == uuid.Nil {
		return uuid.Nil, errInvalidIdempotencyKey
	}
	return key, nil
}

func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
	case errs.Is(err, errs.ErrIdempotencyKeyRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrCapacityExceeded):
		var capErr *commands.CapacityError
		var detail any
		if errors.As(err, &capErr) {
			detail = resdto.FromCapacityIssues(capErr.Issues)
		}
		httperr.AbortWithError(c, http.StatusConflict, err, "Capacity exceeded", detail)
	case errs.Is(err, errs.ErrNothingSelected):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No bicycles selected", nil)
	case errs.Is(err, errs.ErrDuplicateSubmission):
		httperr.AbortWithError(c, http.StatusConflict, err, "Idempotency key reused with a different request", nil)
	case errs.Is(err, errs.ErrSubmissionInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Submission is currently being processed", nil)
	case errs.Is(err, errs.ErrUpstreamRejected):
		msg := "Booking rejected"
		var rejErr *commands.RejectedError
		if errors.As(err, &rejErr) && rejErr.Message != "" {
			msg = rejErr.Message
		}
		httperr.AbortWithError(c, http.StatusConflict, err, msg, gin.H{"upstream_rejected": true})
	case errs.Is(err, errs.ErrUpstreamUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Warenwirtschaft unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
