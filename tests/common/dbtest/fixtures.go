//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference catalog inserted by SeedReferenceData. IDs are stable because
// ResetDB restarts identities.
const (
	CentralHotelID int32 = 1
	StandardTypeID int32 = 1
	SuiteTypeID    int32 = 2

	StandardRooms int32 = 10
	SuiteRooms    int32 = 3

	// HighSeason covers December 2026 through January 2027, LowSeason the rest of 2026.
	HighSeasonName = "Alta"
	LowSeasonName  = "Baja"
)

func CreateTestHotel(t *testing.T, db DBLike, name string, maxGuests int32) int32 {
	t.Helper()

	var id int32
	err := db.QueryRow(context.Background(),
		"INSERT INTO hoteles (nombre, ubicacion, cupo_maximo_personas) VALUES ($1, 'Test', $2) RETURNING id_hotel",
		name, maxGuests).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestRoomType(t *testing.T, db DBLike, name string, capacity int32) int32 {
	t.Helper()

	var id int32
	err := db.QueryRow(context.Background(),
		"INSERT INTO tipos_habitacion (nombre, capacidad_personas) VALUES ($1, $2) RETURNING id_tipo",
		name, capacity).Scan(&id)
	require.NoError(t, err)
	return id
}

func SetTestInventory(t *testing.T, db DBLike, hotelID, roomTypeID, total int32) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO inventario_habitaciones (id_hotel, id_tipo, cantidad_total) VALUES ($1, $2, $3)
		ON CONFLICT (id_hotel, id_tipo) DO UPDATE SET cantidad_total = EXCLUDED.cantidad_total`,
		hotelID, roomTypeID, total)
	require.NoError(t, err)
}

// CreateTestReservation inserts a confirmed reservation directly, bypassing crear_reserva.
func CreateTestReservation(t *testing.T, db DBLike, hotelID, roomTypeID int32, start, end string, rooms int32) int32 {
	t.Helper()

	var id int32
	err := db.QueryRow(context.Background(), `
		INSERT INTO reservas (id_hotel, id_tipo, fecha_inicio, fecha_fin, numero_personas, cantidad_habitaciones, total_calculado)
		VALUES ($1, $2, $3::date, $4::date, 1, $5, 0) RETURNING id_reserva`,
		hotelID, roomTypeID, start, end, rooms).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountReservations(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reservas").Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the reference catalog needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO hoteles (nombre, ubicacion, cupo_maximo_personas) VALUES
		    ('Hotel Central', 'Cartagena', 100);

		INSERT INTO tipos_habitacion (nombre, capacidad_personas, descripcion) VALUES
		    ('Estandar', 2, 'Habitacion estandar'),
		    ('Suite', 4, 'Suite familiar');

		INSERT INTO inventario_habitaciones (id_hotel, id_tipo, cantidad_total) VALUES
		    (1, 1, 10),
		    (1, 2, 3);

		INSERT INTO temporadas (nombre, fecha_inicio, fecha_fin) VALUES
		    ('Alta', '2026-12-01', '2027-01-31'),
		    ('Baja', '2026-01-01', '2026-11-30');

		INSERT INTO tarifas (id_hotel, id_tipo, id_temporada, precio_base_noche, precio_persona_adicional) VALUES
		    (1, 1, 1, 200.00, 50.00),
		    (1, 2, 1, 450.00, 80.00),
		    (1, 1, 2, 150.00, 40.00),
		    (1, 2, 2, 300.00, 60.00);
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
