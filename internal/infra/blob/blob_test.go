package blob

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Spok95/project-assistant/internal/infra/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStorageContract(t *testing.T, s Storage) {
	ctx := context.Background()

	_, err := s.DownloadURL(ctx, "users/u1/photos/none.jpg")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Open(ctx, "users/u1/photos/none.jpg")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Upload(ctx, "users/u1/photos/wall 1.jpg", "image/jpeg", []byte{1, 2, 3}))

	u, err := s.DownloadURL(ctx, "users/u1/photos/wall 1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/users/u1/photos/wall%201.jpg", u)

	obj, err := s.Open(ctx, "users/u1/photos/wall 1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", obj.ContentType)
	assert.Equal(t, []byte{1, 2, 3}, obj.Data)

	require.NoError(t, s.Upload(ctx, "users/u1/photos/wall 1.jpg", "", []byte{9}))
	obj, err = s.Open(ctx, "users/u1/photos/wall 1.jpg")
	require.NoError(t, err)
	assert.Equal(t, DefaultContentType, obj.ContentType)
	assert.Equal(t, []byte{9}, obj.Data)

	assert.Error(t, s.Upload(ctx, "users/../secret", "", []byte{1}))
}

func TestMemory_Contract(t *testing.T) {
	testStorageContract(t, NewMemory("http://localhost:8080/"))
}

func TestSQLite_Contract(t *testing.T) {
	sqlDB, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.MigrateSQLite(context.Background(), sqlDB, slog.New(slog.NewTextHandler(io.Discard, nil))))

	testStorageContract(t, NewSQLite(sqlDB, "http://localhost:8080"))
}

func TestCleanPath(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "/users/u1/a.jpg", want: "users/u1/a.jpg"},
		{in: "", wantErr: true},
		{in: "users//a.jpg", wantErr: true},
		{in: "users/./a.jpg", wantErr: true},
		{in: "../a.jpg", wantErr: true},
	}
	for _, tt := range tests {
		got, err := CleanPath(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
