package dialog

import (
	"context"
	"testing"

	"github.com/Spok95/project-assistant/internal/infra/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepo_Lifecycle(t *testing.T) {
	r := NewRepo(docstore.NewMemory())
	ctx := context.Background()

	it, err := r.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, it.State)
	assert.Empty(t, it.Payload)

	require.NoError(t, r.Set(ctx, 42, StatePlasterMode, Payload{"area": "12.5"}))
	it, err = r.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, StatePlasterMode, it.State)
	area, ok := GetString(it.Payload, "area")
	assert.True(t, ok)
	assert.Equal(t, "12.5", area)

	require.NoError(t, r.Reset(ctx, 42))
	require.NoError(t, r.Reset(ctx, 42))
	it, err = r.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, it.State)
}
