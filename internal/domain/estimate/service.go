package estimate

import (
	"context"
	"log/slog"
	"sort"

	"github.com/Spok95/project-assistant/internal/domain/materials"
	"github.com/Spok95/project-assistant/internal/infra/metrics"
)

const (
	KindPlaster = "plaster"
	KindPaint   = "paint"
)

// InventorySource — откуда берутся остатки пользователя.
type InventorySource interface {
	Get(ctx context.Context, uid string) (materials.Inventory, error)
}

// Estimate — готовый расчёт для показа: площадь, потребность и нехватка.
type Estimate struct {
	Kind     string
	Area     float64
	Mode     PlasterMode
	Required Requirements
	Result
}

type Service struct {
	inv    InventorySource
	prices materials.PriceTable
	m      *metrics.Metrics
	log    *slog.Logger
}

func NewService(inv InventorySource, prices materials.PriceTable, m *metrics.Metrics, log *slog.Logger) *Service {
	return &Service{inv: inv, prices: prices, m: m, log: log}
}

// Prices возвращает действующую таблицу цен.
func (s *Service) Prices() materials.PriceTable { return s.prices }

// OnHand загружает остатки; гость (пустой uid) считается без остатков.
func (s *Service) OnHand(ctx context.Context, uid string) (materials.Inventory, error) {
	if uid == "" {
		return materials.Inventory{}, nil
	}
	return s.inv.Get(ctx, uid)
}

// PlasterEstimate считает штукатурку. Неизвестный режим даёт пустой расчёт.
func (s *Service) PlasterEstimate(ctx context.Context, uid, areaText, modeText string) (Estimate, error) {
	inv, err := s.OnHand(ctx, uid)
	if err != nil {
		return Estimate{}, err
	}
	area, mode := ParseArea(areaText), ParseMode(modeText)
	req := Plaster(area, mode)

	s.m.Estimates.WithLabelValues(KindPlaster).Inc()
	s.log.Debug("plaster estimate", "uid", uid, "area", area, "mode", mode)

	return Estimate{
		Kind:     KindPlaster,
		Area:     area,
		Mode:     mode,
		Required: req,
		Result:   Shortfall(req, inv, s.prices),
	}, nil
}

// PaintEstimate считает краску по цветам из инвентаря пользователя.
// Гость (пустой uid) считает по палитре по умолчанию; у пользователя без
// красок расчёт пустой.
func (s *Service) PaintEstimate(ctx context.Context, uid, areaText string) (Estimate, error) {
	inv, err := s.OnHand(ctx, uid)
	if err != nil {
		return Estimate{}, err
	}
	colors := inv.Paints().Names()
	if uid == "" {
		colors = materials.DefaultPalette()
	}
	return s.PaintFor(inv, areaText, colors), nil
}

// PaintFor считает краску для заданных цветов при известных остатках.
func (s *Service) PaintFor(inv materials.Inventory, areaText string, colors []string) Estimate {
	area := ParseArea(areaText)
	colors = append([]string(nil), colors...)
	sort.Strings(colors)
	req := Paint(area, colors)

	s.m.Estimates.WithLabelValues(KindPaint).Inc()
	s.log.Debug("paint estimate", "area", area, "colors", len(colors))

	return Estimate{
		Kind:     KindPaint,
		Area:     area,
		Required: req,
		Result:   Shortfall(req, inv, s.prices),
	}
}
