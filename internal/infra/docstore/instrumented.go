package docstore

import (
	"context"
	"log/slog"
	"time"

	"github.com/Spok95/project-assistant/internal/infra/metrics"
)

// Instrumented оборачивает Store метриками и debug-логом.
type Instrumented struct {
	next Store
	m    *metrics.Metrics
	log  *slog.Logger
}

func NewInstrumented(next Store, m *metrics.Metrics, log *slog.Logger) *Instrumented {
	return &Instrumented{next: next, m: m, log: log}
}

func (s *Instrumented) observe(op, collection string, start time.Time, err error) {
	s.m.StoreOps.WithLabelValues(op, metrics.Result(err)).Inc()
	s.m.StoreTime.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		s.log.Warn("store op failed", "op", op, "collection", collection, "err", err)
		return
	}
	s.log.Debug("store op", "op", op, "collection", collection, "took", time.Since(start))
}

func (s *Instrumented) Get(ctx context.Context, collection, id string) (f Fields, ok bool, err error) {
	defer func(start time.Time) { s.observe("get", collection, start, err) }(time.Now())
	return s.next.Get(ctx, collection, id)
}

func (s *Instrumented) Set(ctx context.Context, collection, id string, fields Fields) (err error) {
	defer func(start time.Time) { s.observe("set", collection, start, err) }(time.Now())
	return s.next.Set(ctx, collection, id, fields)
}

func (s *Instrumented) UpdateField(ctx context.Context, collection, id, field string, value any) (err error) {
	defer func(start time.Time) { s.observe("update", collection, start, err) }(time.Now())
	return s.next.UpdateField(ctx, collection, id, field, value)
}

func (s *Instrumented) Add(ctx context.Context, collection string, fields Fields) (id string, err error) {
	defer func(start time.Time) { s.observe("add", collection, start, err) }(time.Now())
	return s.next.Add(ctx, collection, fields)
}

func (s *Instrumented) Delete(ctx context.Context, collection, id string) (err error) {
	defer func(start time.Time) { s.observe("delete", collection, start, err) }(time.Now())
	return s.next.Delete(ctx, collection, id)
}

func (s *Instrumented) List(ctx context.Context, collection string) (docs []Document, err error) {
	defer func(start time.Time) { s.observe("list", collection, start, err) }(time.Now())
	return s.next.List(ctx, collection)
}
