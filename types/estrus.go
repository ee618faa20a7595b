package types

// Estrus describes a recurring estrus phase in minutes since the start of
// a recording
type Estrus struct {
	Start    int64 `yaml:"start"`
	Period   int64 `yaml:"period"`
	Duration int64 `yaml:"duration"`
}

// DefaultEstrus is a one day estrus phase every four days starting on the
// third day
var DefaultEstrus = Estrus{
	Start:    2 * MinutesPerDay,
	Period:   4 * MinutesPerDay,
	Duration: MinutesPerDay,
}

// Bands returns the estrus phases within a recording of length minutes
func (e Estrus) Bands(length int64) []TimeRange {
	return Periodic(e.Start, e.Period, e.Duration, length)
}
