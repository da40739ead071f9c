package estimate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Spok95/project-assistant/internal/domain/materials"
	"github.com/Spok95/project-assistant/internal/infra/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInventory map[string]materials.Inventory

func (s stubInventory) Get(_ context.Context, uid string) (materials.Inventory, error) {
	if uid == "broken" {
		return nil, errors.New("store unavailable")
	}
	return s[uid], nil
}

func newTestService(inv InventorySource) (*Service, *metrics.Metrics) {
	m := metrics.Nop()
	return NewService(inv, materials.DefaultPrices(), m, slog.New(slog.NewTextHandler(io.Discard, nil))), m
}

func TestService_PlasterEstimate(t *testing.T) {
	svc, m := newTestService(stubInventory{"u1": {"cement": 10, "sand": 5}})

	est, err := svc.PlasterEstimate(context.Background(), "u1", "10", "coarse")
	require.NoError(t, err)
	assert.Equal(t, KindPlaster, est.Kind)
	assert.Equal(t, ModeCoarse, est.Mode)
	assert.Equal(t, Requirements{"sand": 20, "cement": 10, "lime": 10}, est.Required)
	assert.Equal(t, "3", est.Total.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Estimates.WithLabelValues(KindPlaster)))
}

func TestService_GuestHasNoInventory(t *testing.T) {
	svc, _ := newTestService(stubInventory{})

	est, err := svc.PlasterEstimate(context.Background(), "", "25", "fine")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"cement": 12, "lime": 12, "sand": 37}, est.Missing())

	paint, err := svc.PaintEstimate(context.Background(), "", "45")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"blue": 4, "green": 4, "grey": 4, "red": 4, "white": 4}, paint.Missing())
}

func TestService_PaintUsesInventoryColors(t *testing.T) {
	svc, m := newTestService(stubInventory{"u1": {"yellow": 1, "cement": 3}})

	est, err := svc.PaintEstimate(context.Background(), "u1", "20")
	require.NoError(t, err)
	assert.Equal(t, Requirements{"yellow": 2}, est.Required)
	assert.Equal(t, map[string]int{"yellow": 1}, est.Missing())
	assert.Equal(t, "3.5", est.Total.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Estimates.WithLabelValues(KindPaint)))
}

func TestService_PaintWithoutPaintsIsEmpty(t *testing.T) {
	svc, _ := newTestService(stubInventory{"u1": {"cement": 3, "sand": 1}})

	est, err := svc.PaintEstimate(context.Background(), "u1", "45")
	require.NoError(t, err)
	assert.Empty(t, est.Required)
	assert.Empty(t, est.Lines)
	assert.True(t, est.Total.IsZero())

	// пользователь без документа инвентаря тоже не получает палитру гостя
	est, err = svc.PaintEstimate(context.Background(), "u2", "45")
	require.NoError(t, err)
	assert.Empty(t, est.Required)
}

func TestService_InventoryErrorSurfaces(t *testing.T) {
	svc, _ := newTestService(stubInventory{})

	_, err := svc.PlasterEstimate(context.Background(), "broken", "10", "coarse")
	assert.EqualError(t, err, "store unavailable")
}

func TestService_UnknownModeIsEmpty(t *testing.T) {
	svc, _ := newTestService(stubInventory{})

	est, err := svc.PlasterEstimate(context.Background(), "", "10", "smooth")
	require.NoError(t, err)
	assert.Empty(t, est.Lines)
	assert.True(t, est.Total.IsZero())
}
