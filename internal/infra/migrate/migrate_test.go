//go:build unit

package migrate_test

import (
	"testing"
	"testing/fstest"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/migrate"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"002_procedures.sql":     {Data: []byte("CREATE FUNCTION f() ...")},
		"001_initial_schema.sql": {Data: []byte("CREATE TABLE hoteles ()")},
		"README.md":              {Data: []byte("ignored")},
	}

	got, err := migrate.Load(fsys)

	require.NoError(t, err)
	want := []migrate.Migration{
		{Version: "001_initial_schema", SQL: "CREATE TABLE hoteles ()"},
		{Version: "002_procedures", SQL: "CREATE FUNCTION f() ..."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Empty(t *testing.T) {
	got, err := migrate.Load(fstest.MapFS{})

	require.NoError(t, err)
	require.Empty(t, got)
}
