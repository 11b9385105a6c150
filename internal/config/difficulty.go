package config

import (
	"errors"
	"time"
)

// SpeedCurve is the falling-block difficulty progression: the fall
// interval starts at Start and drops by Step on every level up, never
// below Min. A level lasts LinesPerLevel cleared lines.
type SpeedCurve struct {
	Start         time.Duration `yaml:"start"`
	Step          time.Duration `yaml:"step"`
	Min           time.Duration `yaml:"min"`
	LinesPerLevel int           `yaml:"lines_per_level"`
}

// Level returns the level reached after clearing lines.
func (c SpeedCurve) Level(lines int) int {
	return lines/c.LinesPerLevel + 1
}

// Next returns the interval after one level up.
func (c SpeedCurve) Next(speed time.Duration) time.Duration {
	if speed > c.Min+c.Step {
		return speed - c.Step
	}
	return c.Min
}

func (c SpeedCurve) validate() error {
	switch {
	case c.LinesPerLevel < 1:
		return errors.New("lines_per_level must be positive")
	case c.Min <= 0 || c.Step < 0:
		return errors.New("min must be positive and step not negative")
	case c.Start < c.Min:
		return errors.New("start is faster than min")
	}
	return nil
}
