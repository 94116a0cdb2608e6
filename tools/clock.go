package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/va6996/tinyagent/log"
)

// ClockName is the registry name of the clock lookup tool.
const ClockName = "clock"

// ErrUnknownZone is returned when a zone id is not in the IANA database.
var ErrUnknownZone = fmt.Errorf("unknown timezone")

// timeFormat renders as e.g. "2026-08-30 14:05:09 (JST)".
const timeFormat = "2006-01-02 15:04:05 (MST)"

// ClockTool reports the current wall-clock time in a requested IANA zone.
// It is the only tool that reads external state; Now is a field so tests can
// pin the clock.
type ClockTool struct {
	Now func() time.Time
}

// NewClockTool creates a ClockTool and registers it
func NewClockTool(registry *Registry) *ClockTool {
	t := &ClockTool{
		Now: time.Now,
	}
	if registry != nil {
		registry.Register(t)
	}
	return t
}

func (t *ClockTool) Name() string {
	return ClockName
}

func (t *ClockTool) Description() string {
	return "Returns the current local time for an IANA zone id (e.g. \"Asia/Tokyo\")."
}

// Execute treats its input as a zone id. An unrecognized zone yields an
// explanatory result string, not an error: the dispatcher embeds whatever
// comes back into the reply.
func (t *ClockTool) Execute(ctx context.Context, input string) (string, error) {
	result, err := t.NowIn(input)
	if err != nil {
		log.Debugf(ctx, "clock: lookup failed: %v", err)
		return fmt.Sprintf("Could not get time for '%s': unknown timezone.", input), nil
	}
	return result, nil
}

// NowIn returns the current time in the given zone, or ErrUnknownZone.
func (t *ClockTool) NowIn(zoneID string) (string, error) {
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownZone, zoneID)
	}
	return t.Now().In(loc).Format(timeFormat), nil
}
