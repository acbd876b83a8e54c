package events

import (
	"context"
	"log/slog"
	"maps"
	"slices"
)

// LogListener writes every event it receives to a structured logger
type LogListener struct {
	logger   *slog.Logger
	level    slog.Level
	priority int
}

// NewLogListener logs at level. A nil logger uses slog.Default().
func NewLogListener(logger *slog.Logger, level slog.Level) *LogListener {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogListener{logger: logger, level: level, priority: 1000}
}

// HandleEvent logs the event and never fails
func (l *LogListener) HandleEvent(event *GameEvent) error {
	attrs := []any{"spell", event.Spell, "amount", event.Amount}
	if event.Actor != nil {
		attrs = append(attrs, "actor", event.Actor.DisplayName())
	}
	if event.Target != nil {
		attrs = append(attrs, "target", event.Target.DisplayName())
	}
	for _, key := range slices.Sorted(maps.Keys(event.Context)) {
		attrs = append(attrs, key, event.Context[key])
	}

	l.logger.Log(context.Background(), l.level, event.Type.String(), attrs...)
	return nil
}

// Priority runs the logger after everything else
func (l *LogListener) Priority() int {
	return l.priority
}
