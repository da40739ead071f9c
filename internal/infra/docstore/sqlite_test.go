package docstore

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Spok95/project-assistant/internal/infra/db"
	"github.com/stretchr/testify/require"
)

func TestSQLite_Contract(t *testing.T) {
	sqlDB, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, db.MigrateSQLite(context.Background(), sqlDB, log))

	testStoreContract(t, NewSQLite(sqlDB))
}
