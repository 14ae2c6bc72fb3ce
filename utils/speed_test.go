package utils

import (
	"testing"
	"time"
)

func TestFasterStopsAtMinimum(t *testing.T) {
	config := DefaultConfig()

	tests := []struct{ delay, want int }{
		{100, 90},
		{20, 10},
		{19, 19},
		{10, 10},
	}
	for _, tt := range tests {
		if got := config.Faster(tt.delay); got != tt.want {
			t.Fatalf("Faster(%d) = %d, expected %d", tt.delay, got, tt.want)
		}
	}
}

func TestSlowerIsUnbounded(t *testing.T) {
	config := DefaultConfig()
	delay := config.InitialDelay
	for range 1000 {
		delay = config.Slower(delay)
	}
	if delay != config.InitialDelay+1000*config.DelayStep {
		t.Fatalf("delay = %d after 1000 slowdowns", delay)
	}
}

func TestDelayDuration(t *testing.T) {
	if got := DelayDuration(150); got != 150*time.Millisecond {
		t.Fatalf("DelayDuration(150) = %v", got)
	}
}
