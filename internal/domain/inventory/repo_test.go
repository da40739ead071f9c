package inventory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Spok95/project-assistant/internal/apperr"
	"github.com/Spok95/project-assistant/internal/domain/materials"
	"github.com/Spok95/project-assistant/internal/domain/users"
	"github.com/Spok95/project-assistant/internal/infra/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepo_GetAbsentIsEmpty(t *testing.T) {
	r := NewRepo(docstore.NewMemory())

	inv, err := r.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, inv)
	assert.Equal(t, 0, inv.Qty(materials.Cement))
}

func TestRepo_AddMaterialOnAbsentCreatesOneField(t *testing.T) {
	store := docstore.NewMemory()
	r := NewRepo(store)
	ctx := context.Background()

	require.NoError(t, r.AddMaterial(ctx, "u1", " red ", 4))

	f, ok, err := store.Get(ctx, Collection, "u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, docstore.Fields{"red": json.Number("4")}, f)

	require.NoError(t, r.AddMaterial(ctx, "u1", "cement", 12))
	inv, err := r.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, materials.Inventory{"red": 4, "cement": 12}, inv)
}

func TestRepo_AddMaterialValidation(t *testing.T) {
	r := NewRepo(docstore.NewMemory())
	ctx := context.Background()

	err := r.AddMaterial(ctx, "u1", "  ", 3)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	err = r.AddMaterial(ctx, "u1", "red", 0)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.ErrorIs(t, r.AddMaterial(ctx, "", "red", 1), users.ErrNotSignedIn)
}

func TestRepo_SaveOverwritesWholeDocument(t *testing.T) {
	store := docstore.NewMemory()
	r := NewRepo(store)
	ctx := context.Background()

	require.NoError(t, r.AddMaterial(ctx, "u1", "yellow", 9))
	require.NoError(t, r.Save(ctx, "u1", materials.Inventory{"white": 2, materials.Sand: 5}))

	inv, err := r.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, materials.Inventory{
		"white":          2,
		materials.Sand:   5,
		materials.Cement: 0,
		materials.Lime:   0,
	}, inv)
}
