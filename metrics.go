package inspect

import "time"

// MetricsLogger receives one record per encode or decode.
type MetricsLogger interface {
	LogOperation(op string, duration time.Duration, timestamp *time.Time, err bool)
}

type StubMetrics struct{}

func (s *StubMetrics) LogOperation(string, time.Duration, *time.Time, bool) {
	// No-op
}
