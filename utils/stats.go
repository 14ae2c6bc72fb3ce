package utils

import "time"

// historySize is how many recent grid fingerprints are kept for repeat detection
const historySize = 2

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	// SettledAt is the first generation whose grid matched one of the
	// previous two, i.e. a still life or period-2 oscillator. Zero if never.
	SettledAt int

	history []string
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Observe records the fingerprint of the grid shown at generation and notes
// the first time the board repeats a recent state
func (s *Stats) Observe(generation int, hash string) {
	if s.SettledAt == 0 {
		for _, h := range s.history {
			if h == hash {
				s.SettledAt = generation
				break
			}
		}
	}

	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// Runtime returns the time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
