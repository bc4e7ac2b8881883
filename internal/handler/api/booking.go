package api

import (
	"net/http"

	reqdto "github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler/dto/request"
	resdto "github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler/dto/response"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler/httperr"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/errs"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/usecase/commands"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "Invalid request"
	msgInvalidDateRange = "fechaFin must not be before fechaInicio"
	msgInternalError    = "Internal server error"
)

type BookingHandler struct {
	q    queries.BookingQueries
	cmds commands.ReservationCommands
}

func NewBookingHandler(q queries.BookingQueries, cmds commands.ReservationCommands) *BookingHandler {
	return &BookingHandler{q: q, cmds: cmds}
}

// @Summary Check availability
// @Description Room inventory of one room type over a date range
// @Tags reservas
// @Produce json
// @Param idHotel query int true "Hotel ID"
// @Param idTipo query int true "Room type ID"
// @Param fechaInicio query string true "Start date (YYYY-MM-DD)"
// @Param fechaFin query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reservas/disponibilidad [get]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	query, err := req.ToQuery()
	if err != nil {
		abortInvalid(c, err)
		return
	}

	results, err := h.q.CheckAvailability(c.Request.Context(), query)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityResults(results))
}

// @Summary List rates
// @Description Seasonal rates of a hotel on a reference date, optionally for one room type
// @Tags reservas
// @Produce json
// @Param idHotel query int true "Hotel ID"
// @Param idTipo query int false "Room type ID"
// @Param fechaInicio query string true "Reference date (YYYY-MM-DD)"
// @Success 200 {array} resdto.RateResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reservas/tarifas [get]
func (h *BookingHandler) ListRates(c *gin.Context) {
	var req reqdto.RatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	query, err := req.ToQuery()
	if err != nil {
		abortInvalid(c, err)
		return
	}

	results, err := h.q.ListRates(c.Request.Context(), query)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRateResults(results))
}

// @Summary Calculate price
// @Description Total price of a stay. All fields are null when no rate applies.
// @Tags reservas
// @Accept json
// @Produce json
// @Param request body reqdto.StayRequest true "Stay"
// @Success 200 {object} resdto.PriceResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reservas/calcular-precio [post]
func (h *BookingHandler) ComputePrice(c *gin.Context) {
	var req reqdto.StayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	in, err := req.ToPriceRequest()
	if err != nil {
		abortInvalid(c, err)
		return
	}

	result, err := h.q.ComputePrice(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceResult(result))
}

// @Summary Create reservation
// @Description Books rooms through crear_reserva. A rejected booking is still 200 with exito=false.
// @Tags reservas
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replays the stored response for a repeated key"
// @Param request body reqdto.StayRequest true "Stay"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reservas [post]
func (h *BookingHandler) CreateReservation(c *gin.Context) {
	var req reqdto.StayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	in, err := req.ToReservationRequest()
	if err != nil {
		abortInvalid(c, err)
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationResult(result))
}

func abortInvalid(c *gin.Context, err error) {
	msg := msgInvalidRequest
	if errs.Is(err, errs.ErrInvalidDateRange) {
		msg = msgInvalidDateRange
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
