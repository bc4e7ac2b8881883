// Package gateway calls the reservation stored procedures and maps their rows
// into booking results. It holds no state besides its observers; every call
// runs on the DBTX handle the caller passes in.
package gateway

import (
	"context"
	"time"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/domain/booking"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/db"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/rowmap"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/observability"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/errs"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	outcomeOK    = "ok"
	outcomeEmpty = "empty"
	outcomeError = "error"
)

// Gateway runs the four booking procedures. It is safe for concurrent use and
// keeps no per-call state.
type Gateway struct {
	metrics *observability.Metrics
	tracer  trace.Tracer
}

// NewGateway returns a Gateway reporting to metrics; nil metrics disables
// reporting. Spans always go to the global tracer provider.
func NewGateway(metrics *observability.Metrics) *Gateway {
	return &Gateway{
		metrics: metrics,
		tracer:  observability.Tracer(),
	}
}

func (g *Gateway) CheckAvailability(ctx context.Context, dbtx db.DBTX, q booking.AvailabilityQuery) ([]booking.AvailabilityResult, error) {
	records, err := g.queryAll(ctx, dbtx, AvailabilityCall(q), availabilitySchema)
	if err != nil {
		return nil, err
	}

	results := make([]booking.AvailabilityResult, 0, len(records))
	for _, r := range records {
		results = append(results, toAvailability(r))
	}
	return results, nil
}

func (g *Gateway) ListRates(ctx context.Context, dbtx db.DBTX, q booking.RateQuery) ([]booking.RateResult, error) {
	records, err := g.queryAll(ctx, dbtx, RatesCall(q), rateSchema)
	if err != nil {
		return nil, err
	}

	results := make([]booking.RateResult, 0, len(records))
	for _, r := range records {
		results = append(results, toRate(r))
	}
	return results, nil
}

// ComputePrice returns the unpriceable result, not an error, when the store
// yields no row.
func (g *Gateway) ComputePrice(ctx context.Context, dbtx db.DBTX, req booking.PriceCalculationRequest) (booking.PriceCalculationResult, error) {
	rec, ok, err := g.queryFirst(ctx, dbtx, PriceCall(req), priceSchema)
	if err != nil {
		return booking.PriceCalculationResult{}, err
	}
	if !ok {
		return booking.Unpriceable(), nil
	}
	return toPrice(rec), nil
}

// CreateReservation returns the failed result, not an error, when the store
// yields no row.
func (g *Gateway) CreateReservation(ctx context.Context, dbtx db.DBTX, req booking.ReservationRequest) (booking.ReservationResult, error) {
	rec, ok, err := g.queryFirst(ctx, dbtx, ReservationCall(req), reservationSchema)
	if err != nil {
		return booking.ReservationResult{}, err
	}
	if !ok {
		return booking.FailedReservation(), nil
	}
	return toReservation(rec), nil
}

func (g *Gateway) queryAll(ctx context.Context, dbtx db.DBTX, call Call, schema rowmap.Schema) ([]rowmap.Record, error) {
	var records []rowmap.Record
	err := g.run(ctx, call, func(ctx context.Context) (bool, error) {
		rows, err := dbtx.Query(ctx, call.SQL, call.Args...)
		if err != nil {
			return false, err
		}
		records, err = rowmap.Collect(rows, schema)
		return len(records) == 0, err
	})
	return records, err
}

func (g *Gateway) queryFirst(ctx context.Context, dbtx db.DBTX, call Call, schema rowmap.Schema) (rowmap.Record, bool, error) {
	var (
		rec   rowmap.Record
		found bool
	)
	err := g.run(ctx, call, func(ctx context.Context) (bool, error) {
		rows, err := dbtx.Query(ctx, call.SQL, call.Args...)
		if err != nil {
			return false, err
		}
		rec, found, err = rowmap.First(rows, schema)
		return !found, err
	})
	return rec, found, err
}

// run wraps one store call with a span, metrics and repository error kinds.
func (g *Gateway) run(ctx context.Context, call Call, fn func(ctx context.Context) (empty bool, err error)) error {
	ctx, span := g.tracer.Start(ctx, "store."+call.Name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.operation", call.Name),
			attribute.Int("db.args", len(call.Args)),
		),
	)
	defer span.End()

	start := time.Now()
	empty, err := fn(ctx)
	dur := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.metrics.ObserveStoreCall(call.Name, outcomeError, dur)

		if errs.Is(err, errs.ErrRowMappingFailed) {
			return infra.WrapRepoErr("failed to map "+call.Name+" result", err, infra.KindMapping)
		}
		return infra.WrapRepoErr("failed to call "+call.Name, err)
	}

	outcome := outcomeOK
	if empty {
		outcome = outcomeEmpty
	}
	span.SetAttributes(attribute.String("db.outcome", outcome))
	g.metrics.ObserveStoreCall(call.Name, outcome, dur)
	return nil
}
