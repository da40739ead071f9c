package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/Spok95/project-assistant/internal/domain/materials"
	"github.com/Spok95/project-assistant/internal/infra/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedStore задерживает Get до закрытия gate.
type gatedStore struct {
	docstore.Store
	gate chan struct{}
}

func (s *gatedStore) Get(ctx context.Context, collection, id string) (docstore.Fields, bool, error) {
	<-s.gate
	return s.Store.Get(ctx, collection, id)
}

type failingStore struct{ docstore.Store }

func (failingStore) UpdateField(context.Context, string, string, string, any) error {
	return errors.New("network unavailable")
}

func (failingStore) Set(context.Context, string, string, docstore.Fields) error {
	return errors.New("network unavailable")
}

func TestEditor_LoadFillsPlasterFields(t *testing.T) {
	store := docstore.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, Collection, "u1", docstore.Fields{"cement": 3, "red": 2}))

	e := NewEditor(NewRepo(store), "u1")
	_, err := e.Load(ctx).Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"cement": "3",
		"sand":   "0",
		"lime":   "0",
		"red":    "2",
	}, e.Texts())
}

func TestEditor_SaveAllOverwrites(t *testing.T) {
	store := docstore.NewMemory()
	ctx := context.Background()
	e := NewEditor(NewRepo(store), "u1")
	_, err := e.Load(ctx).Wait(ctx)
	require.NoError(t, err)

	e.SetText(materials.Sand, "40")
	e.SetText(materials.Cement, "abc")
	e.SetText("blue", "7")

	_, err = e.SaveAll(ctx).Wait(ctx)
	require.NoError(t, err)

	inv, err := NewRepo(store).Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, materials.Inventory{"sand": 40, "cement": 0, "lime": 0, "blue": 7}, inv)
	assert.Empty(t, e.Err())
}

func TestEditor_AddMaterial(t *testing.T) {
	store := docstore.NewMemory()
	ctx := context.Background()
	e := NewEditor(NewRepo(store), "u1")

	_, err := e.AddMaterial(ctx, "green", "5").Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "5", e.Texts()["green"])

	_, err = e.AddMaterial(ctx, "green", "-1").Wait(ctx)
	require.Error(t, err)
	assert.Equal(t, "enter a material name and a positive quantity", e.Err())

	inv, err := NewRepo(store).Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, materials.Inventory{"green": 5}, inv)
}

func TestEditor_RemoteFailureSurfacesMessage(t *testing.T) {
	ctx := context.Background()
	e := NewEditor(NewRepo(failingStore{docstore.NewMemory()}), "u1")

	_, err := e.AddMaterial(ctx, "red", "2").Wait(ctx)
	require.Error(t, err)
	assert.Equal(t, "remote operation failed: add material \"red\": network unavailable", e.Err())
	assert.Equal(t, "2", e.Texts()["red"])

	_, err = e.SaveAll(ctx).Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, e.Err(), "save inventory")
}

func TestEditor_CompletionAfterCloseIsDropped(t *testing.T) {
	mem := docstore.NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, Collection, "u1", docstore.Fields{"cement": 3}))

	gate := make(chan struct{})
	e := NewEditor(NewRepo(&gatedStore{Store: mem, gate: gate}), "u1")
	f := e.Load(ctx)

	e.Close()
	close(gate)
	inv, err := f.Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, inv.Qty("cement"))
	assert.Empty(t, e.Texts())
}
