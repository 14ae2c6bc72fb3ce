package utils

import "time"

// Faster shortens the delay by one step unless that would drop below the minimum
func (c Config) Faster(delay int) int {
	if delay-c.DelayStep >= c.MinDelay {
		return delay - c.DelayStep
	}
	return delay
}

// Slower lengthens the delay by one step. There is no upper bound.
func (c Config) Slower(delay int) int {
	return delay + c.DelayStep
}

// DelayDuration converts a delay in milliseconds to a time.Duration
func DelayDuration(delay int) time.Duration {
	return time.Duration(delay) * time.Millisecond
}
