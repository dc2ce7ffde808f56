package trace

import (
	"context"
	"log/slog"
)

// Handler decorates records with the trace_id and calc index carried by the
// context passed to slog's *Context methods.
type Handler struct {
	next slog.Handler
}

// NewHandler wraps next.
func NewHandler(next slog.Handler) *Handler {
	return &Handler{next: next}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := From(ctx); ok {
		r.AddAttrs(slog.String("trace_id", id))
	}
	if n, ok := CalculationFrom(ctx); ok {
		r.AddAttrs(slog.Int("calc", n))
	}
	return h.next.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{next: h.next.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{next: h.next.WithGroup(name)}
}
