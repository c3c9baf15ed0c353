package log

import (
	"fmt"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see server activity in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Errors log at Warn, everything
// else at Debug.
func (a *SlogAdapter) Log(event Event) {
	attrs := []any{
		slog.String("instance_id", event.InstanceID),
		slog.String("source", event.Source.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Prop != 0 {
		attrs = append(attrs, slog.String("prop", fmt.Sprintf("0x%x", event.Prop)))
	}
	if event.AreaID != 0 {
		attrs = append(attrs, slog.String("area", fmt.Sprintf("0x%x", event.AreaID)))
	}
	if event.SampleRate != 0 {
		attrs = append(attrs, slog.Float64("sample_rate_hz", float64(event.SampleRate)))
	}
	if event.Err != "" {
		attrs = append(attrs, slog.String("err", event.Err))
		a.logger.Warn(event.Message, attrs...)
		return
	}
	a.logger.Debug(event.Message, attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
