package main

import (
	"fmt"

	reqdto "github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler/dto/request"
	resdto "github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler/dto/response"

	"github.com/spf13/cobra"
)

func AvailabilityCmd() *cobra.Command {
	var req reqdto.AvailabilityRequest
	cmd := &cobra.Command{
		Use:   "disponibilidad",
		Short: "Room availability of a hotel and room type over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := positive("hotel", req.HotelID, "tipo", req.RoomTypeID); err != nil {
				return err
			}
			q, err := req.ToQuery()
			if err != nil {
				return err
			}

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			results, err := e.queries().CheckAvailability(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resdto.FromAvailabilityResults(results))
		},
	}

	cmd.Flags().Int32Var(&req.HotelID, "hotel", 0, "Hotel ID")
	cmd.Flags().Int32Var(&req.RoomTypeID, "tipo", 0, "Room type ID")
	cmd.Flags().StringVar(&req.StartDate, "desde", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.EndDate, "hasta", "", "End date (YYYY-MM-DD)")
	markRequired(cmd, "hotel", "tipo", "desde", "hasta")

	return cmd
}

func RatesCmd() *cobra.Command {
	var (
		req      reqdto.RatesRequest
		roomType int32
	)
	cmd := &cobra.Command{
		Use:   "tarifas",
		Short: "Rates of a hotel on a date, optionally for one room type",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := positive("hotel", req.HotelID); err != nil {
				return err
			}
			if cmd.Flags().Changed("tipo") {
				if err := positive("tipo", roomType); err != nil {
					return err
				}
				req.RoomTypeID = &roomType
			}
			q, err := req.ToQuery()
			if err != nil {
				return err
			}

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			results, err := e.queries().ListRates(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resdto.FromRateResults(results))
		},
	}

	cmd.Flags().Int32Var(&req.HotelID, "hotel", 0, "Hotel ID")
	cmd.Flags().Int32Var(&roomType, "tipo", 0, "Room type ID (all types when omitted)")
	cmd.Flags().StringVar(&req.ReferenceDate, "fecha", "", "Reference date (YYYY-MM-DD)")
	markRequired(cmd, "hotel", "fecha")

	return cmd
}

func PriceCmd() *cobra.Command {
	var req reqdto.StayRequest
	cmd := &cobra.Command{
		Use:   "precio",
		Short: "Price of a stay",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validStay(req); err != nil {
				return err
			}
			in, err := req.ToPriceRequest()
			if err != nil {
				return err
			}

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			result, err := e.queries().ComputePrice(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resdto.FromPriceResult(result))
		},
	}
	stayFlags(cmd, &req)
	return cmd
}

func ReserveCmd() *cobra.Command {
	var req reqdto.StayRequest
	cmd := &cobra.Command{
		Use:   "reservar",
		Short: "Create a reservation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validStay(req); err != nil {
				return err
			}
			in, err := req.ToReservationRequest()
			if err != nil {
				return err
			}

			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			result, err := e.commands().CreateReservation(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resdto.FromReservationResult(result))
		},
	}
	stayFlags(cmd, &req)
	return cmd
}

func stayFlags(cmd *cobra.Command, req *reqdto.StayRequest) {
	cmd.Flags().Int32Var(&req.HotelID, "hotel", 0, "Hotel ID")
	cmd.Flags().Int32Var(&req.RoomTypeID, "tipo", 0, "Room type ID")
	cmd.Flags().StringVar(&req.StartDate, "desde", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.EndDate, "hasta", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Int32Var(&req.Persons, "personas", 1, "Number of guests")
	cmd.Flags().Int32Var(&req.Rooms, "habitaciones", 1, "Number of rooms")
	markRequired(cmd, "hotel", "tipo", "desde", "hasta")
}

func validStay(req reqdto.StayRequest) error {
	return positive(
		"hotel", req.HotelID,
		"tipo", req.RoomTypeID,
		"personas", req.Persons,
		"habitaciones", req.Rooms,
	)
}

// positive takes name/value pairs and rejects values below 1.
func positive(pairs ...any) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if v, _ := pairs[i+1].(int32); v < 1 {
			return fmt.Errorf("--%s must be at least 1", pairs[i])
		}
	}
	return nil
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, n := range names {
		_ = cmd.MarkFlagRequired(n)
	}
}
