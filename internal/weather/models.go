package weather

import (
	"time"

	"assistant-webhook/internal/types"
)

// Snapshot is the normalized current weather for one resolved address.
// Optional values are nil when the provider did not report them; the
// formatter skips those lines.
type Snapshot struct {
	Address    string
	ObservedAt time.Time
	Summary    string

	Temperature *float64
	FeelsLike   *float64
	Humidity    *int // percent, 0-100
	Wind        *types.Wind
	Pressure    *float64 // millibars, or kPa when Units.IsMetricPressure()

	Units types.UnitSet

	HourlySummary string
	DailySummary  string
}
