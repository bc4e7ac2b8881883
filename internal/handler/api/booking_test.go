//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/domain/booking"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler/api"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/errs"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/ptr"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/tests/common/builder"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/tests/common/httptest"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/tests/common/testutil"
	commandsmock "github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/tests/mock/commands"
	queriesmock "github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	availabilityURL = "/api/reservas/disponibilidad"
	ratesURL        = "/api/reservas/tarifas"
	priceURL        = "/api/reservas/calcular-precio"
	reservationURL  = "/api/reservas"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockBookingQueries
	mockCommands *commandsmock.MockReservationCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockQueries, s.mockCommands)

	s.router.GET(availabilityURL, s.handler.CheckAvailability)
	s.router.GET(ratesURL, s.handler.ListRates)
	s.router.POST(priceURL, s.handler.ComputePrice)
	s.router.POST(reservationURL, s.handler.CreateReservation)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseStay struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
	expectMsg  string
}

// validation cases shared by the two JSON endpoints
func stayValidationCases() [][]testCaseStay {
	bound := []testCaseStay{
		{name: "idHotel invalid (0)", mutate: testutil.Field("idHotel", 0), expectCode: http.StatusBadRequest},
		{name: "idTipo invalid (-1)", mutate: testutil.Field("idTipo", -1), expectCode: http.StatusBadRequest},
		{name: "numeroPersonas invalid (0)", mutate: testutil.Field("numeroPersonas", 0), expectCode: http.StatusBadRequest},
		{name: "cantidadHabitaciones invalid (0)", mutate: testutil.Field("cantidadHabitaciones", 0), expectCode: http.StatusBadRequest},
		{name: "equal dates OK", mutate: testutil.Field("fechaFin", "2026-12-20"), expectCode: http.StatusOK},
		{name: "end before start", mutate: testutil.Field("fechaFin", "2026-12-19"), expectCode: http.StatusBadRequest, expectMsg: "fechaFin must not be before fechaInicio"},
	}

	format := []testCaseStay{
		{name: "fechaInicio not a date", mutate: testutil.Field("fechaInicio", "20-12-2026"), expectCode: http.StatusBadRequest, expectMsg: "Invalid request"},
		{name: "fechaFin impossible date", mutate: testutil.Field("fechaFin", "2026-02-30"), expectCode: http.StatusBadRequest},
		{name: "idHotel wrong type", mutate: testutil.Field("idHotel", "uno"), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseStay{
		{name: "missing field: idHotel (required)", mutate: testutil.Field("idHotel", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: idTipo (required)", mutate: testutil.Field("idTipo", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: fechaInicio (required)", mutate: testutil.Field("fechaInicio", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: fechaFin (required)", mutate: testutil.Field("fechaFin", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: numeroPersonas (required)", mutate: testutil.Field("numeroPersonas", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: cantidadHabitaciones (required)", mutate: testutil.Field("cantidadHabitaciones", nil), expectCode: http.StatusBadRequest},
	}

	return [][]testCaseStay{bound, format, missing}
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckAvailability() {
	stay := builder.NewStayBuilder()
	params := stay.AvailabilityParams()

	s.Run("success: returns one entry per room type", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), stay.BuildAvailabilityQuery()).
			Return([]booking.AvailabilityResult{{RoomType: "Suite", TotalRooms: 10, AvailableRooms: 3, MaxOccupancy: 4}}, nil).Times(1)

		rec := httptest.PerformQuery(s.T(), s.router, availabilityURL, params)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Suite", body[0]["tipoHabitacion"])
		s.EqualValues(10, body[0]["cantidadTotal"])
		s.EqualValues(3, body[0]["cantidadDisponible"])
		s.EqualValues(4, body[0]["capacidadPersonas"])
	})

	s.Run("success: empty result is an empty array", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).Return([]booking.AvailabilityResult{}, nil).Times(1)

		rec := httptest.PerformQuery(s.T(), s.router, availabilityURL, params)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 Bad Request on invalid query", func() {
		cases := []struct {
			name   string
			params url.Values
		}{
			{name: "missing idHotel", params: testutil.WithParams(params, testutil.Param("idHotel", ""))},
			{name: "missing idTipo", params: testutil.WithParams(params, testutil.Param("idTipo", ""))},
			{name: "idHotel zero", params: testutil.WithParams(params, testutil.Param("idHotel", "0"))},
			{name: "idTipo not a number", params: testutil.WithParams(params, testutil.Param("idTipo", "x"))},
			{name: "missing fechaFin", params: testutil.WithParams(params, testutil.Param("fechaFin", ""))},
			{name: "bad fechaInicio", params: testutil.WithParams(params, testutil.Param("fechaInicio", "2026/12/20"))},
			{name: "end before start", params: testutil.WithParams(params, testutil.Param("fechaFin", "2026-12-01"))},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformQuery(s.T(), s.router, availabilityURL, tc.params)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("connection refused"), errs.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformQuery(s.T(), s.router, availabilityURL, params)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListRates
// ================================================================================

func (s *BookingHandlerTestSuite) TestListRates() {
	stay := builder.NewStayBuilder()
	ref, _ := booking.ParseDate(stay.StartDate)

	s.Run("success: without idTipo lists every room type", func() {
		s.mockQueries.EXPECT().ListRates(gomock.Any(), booking.RateQuery{
			HotelID: stay.HotelID, RoomType: booking.AnyRoomType(), ReferenceDate: ref,
		}).Return([]booking.RateResult{}, nil).Times(1)

		rec := httptest.PerformQuery(s.T(), s.router, ratesURL, stay.RatesParams(false))
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("success: with idTipo filters and keeps NULL columns", func() {
		base := decimal.RequireFromString("450")
		s.mockQueries.EXPECT().ListRates(gomock.Any(), booking.RateQuery{
			HotelID: stay.HotelID, RoomType: booking.ExactRoomType(stay.RoomTypeID), ReferenceDate: ref,
		}).Return([]booking.RateResult{{
			RateID: ptr.Of(int32(2)), Hotel: ptr.Of("Hotel Central"), RoomType: ptr.Of("Suite"),
			Season: ptr.Of("Alta"), BaseNightly: &base, ExtraPerson: nil,
		}}, nil).Times(1)

		rec := httptest.PerformQuery(s.T(), s.router, ratesURL, stay.RatesParams(true))
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[{
			"idTarifa": 2,
			"hotel": "Hotel Central",
			"tipoHabitacion": "Suite",
			"temporada": "Alta",
			"precioBaseNoche": 450.00,
			"precioPersonaAdicional": null
		}]`, rec.Body.String())
	})

	s.Run("error: 400 Bad Request on invalid query", func() {
		cases := []struct {
			name   string
			params url.Values
		}{
			{name: "missing idHotel", params: testutil.WithParams(stay.RatesParams(true), testutil.Param("idHotel", ""))},
			{name: "missing fechaInicio", params: testutil.WithParams(stay.RatesParams(true), testutil.Param("fechaInicio", ""))},
			{name: "idTipo zero", params: testutil.WithParams(stay.RatesParams(true), testutil.Param("idTipo", "0"))},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformQuery(s.T(), s.router, ratesURL, tc.params)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().ListRates(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformQuery(s.T(), s.router, ratesURL, stay.RatesParams(false))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestComputePrice
// ================================================================================

func (s *BookingHandlerTestSuite) TestComputePrice() {
	stay := builder.NewStayBuilder()
	reqBody := stay.BuildRequestDTO()

	s.Run("success: priced stay", func() {
		total := decimal.RequireFromString("900")
		perNight := decimal.RequireFromString("450")
		s.mockQueries.EXPECT().ComputePrice(gomock.Any(), stay.BuildPriceRequest()).
			Return(booking.PriceCalculationResult{
				Total: &total, PerNight: &perNight, Nights: ptr.Of(int32(2)),
				Season: ptr.Of("Alta"), Breakdown: ptr.Of(`{"habitaciones": 1}`),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, priceURL, reqBody, nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{
			"precioTotal": 900.00,
			"precioPorNoche": 450.00,
			"numeroNoches": 2,
			"temporada": "Alta",
			"desglose": "{\"habitaciones\": 1}"
		}`, rec.Body.String())
		s.Contains(rec.Body.String(), `"precioTotal":900.00`)
	})

	s.Run("success: unpriceable stay is 200 with null fields", func() {
		s.mockQueries.EXPECT().ComputePrice(gomock.Any(), gomock.Any()).Return(booking.Unpriceable(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, priceURL, reqBody, nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{
			"precioTotal": null,
			"precioPorNoche": null,
			"numeroNoches": null,
			"temporada": null,
			"desglose": null
		}`, rec.Body.String())
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range stayValidationCases() {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusOK {
						s.mockQueries.EXPECT().ComputePrice(gomock.Any(), gomock.Any()).Return(booking.Unpriceable(), nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, priceURL, requestMap, nil)
					if tc.expectCode == http.StatusOK {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
					}
				})
			}
		}
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, priceURL, []byte(`{"idHotel":`), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().ComputePrice(gomock.Any(), gomock.Any()).
			Return(booking.PriceCalculationResult{}, errors.New("timeout")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, priceURL, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateReservation() {
	stay := builder.NewStayBuilder()
	reqBody := stay.BuildRequestDTO()

	s.Run("success: created reservation", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), stay.BuildReservationRequest()).
			Return(booking.ReservationResult{
				ReservationID: ptr.Of(int32(55)), Success: ptr.Of(true), Message: ptr.Of("OK"),
				Total: ptr.Of(decimal.RequireFromString("450")),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, reservationURL, reqBody, nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"idReserva": 55, "exito": true, "mensaje": "OK", "totalCalculado": 450.00}`, rec.Body.String())
	})

	s.Run("success: rejected reservation is still 200", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(booking.FailedReservation(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, reservationURL, reqBody, nil)
		s.Equal(http.StatusOK, rec.Code)

		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Nil(body["idReserva"])
		s.Equal(false, body["exito"])
		s.Equal(booking.ReservationFailedMessage, body["mensaje"])
		s.EqualValues(0, body["totalCalculado"])
	})

	s.Run("success: NULL store columns render as JSON null", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(booking.ReservationResult{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, reservationURL, reqBody, nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"idReserva": null, "exito": null, "mensaje": null, "totalCalculado": null}`, rec.Body.String())
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range stayValidationCases() {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusOK {
						s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
							Return(booking.FailedReservation(), nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, reservationURL, requestMap, nil)
					if tc.expectCode == http.StatusOK {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
					}
				})
			}
		}
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(booking.ReservationResult{}, errs.Mark(errors.New("deadlock"), errs.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, reservationURL, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
