// Package config provides YAML-based settings for the console backends
// and games, plus the legacy per-game option files.
package config

import "fmt"

// Backend names accepted by Settings.Backend and the --backend flag.
const (
	BackendCurses = "curses"
	BackendPC98   = "pc98"
	BackendPCAT   = "pcat"
)

// Backends lists every backend name in menu order.
var Backends = []string{BackendCurses, BackendPC98, BackendPCAT}

// Settings is the root of settings.yaml.
type Settings struct {
	Backend  string         `yaml:"backend"`
	Cols40   bool           `yaml:"cols40"`
	Mines    MinesConfig    `yaml:"mines"`
	Blocks   BlocksConfig   `yaml:"blocks"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

// MinesConfig defines the selectable minefields, smallest first.
type MinesConfig struct {
	Levels []MinesLevel `yaml:"levels"`
}

// MinesLevel is one minefield size.
type MinesLevel struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Bombs  int    `yaml:"bombs"`
}

// BlocksConfig holds the falling-block field and speed curves.
type BlocksConfig struct {
	FieldWidth  int        `yaml:"field_width"`
	FieldHeight int        `yaml:"field_height"`
	Otige       SpeedCurve `yaml:"otige"`
	Otitame     SpeedCurve `yaml:"otitame"`
}

// SnapshotConfig sets the defaults of the snapshot command.
type SnapshotConfig struct {
	Backend string `yaml:"backend"`
	Frames  int    `yaml:"frames"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

// Validate reports the first setting that cannot work.
func (s Settings) Validate() error {
	switch s.Backend {
	case BackendCurses, BackendPC98, BackendPCAT:
	default:
		return fmt.Errorf("config: unknown backend %q", s.Backend)
	}
	if len(s.Mines.Levels) != 3 {
		return fmt.Errorf("config: mines needs 3 levels, got %d", len(s.Mines.Levels))
	}
	for _, lv := range s.Mines.Levels {
		if lv.Width < 2 || lv.Width > MinesMaxWidth || lv.Height < 2 || lv.Height > MinesMaxHeight {
			return fmt.Errorf("config: mines level %q: size %dx%d out of range", lv.Name, lv.Width, lv.Height)
		}
		if lv.Bombs < 1 || lv.Bombs >= lv.Width*lv.Height {
			return fmt.Errorf("config: mines level %q: %d bombs do not fit", lv.Name, lv.Bombs)
		}
	}
	if s.Blocks.FieldWidth < 4 || s.Blocks.FieldHeight < 4 {
		return fmt.Errorf("config: blocks field %dx%d too small", s.Blocks.FieldWidth, s.Blocks.FieldHeight)
	}
	for name, c := range map[string]SpeedCurve{"otige": s.Blocks.Otige, "otitame": s.Blocks.Otitame} {
		if err := c.validate(); err != nil {
			return fmt.Errorf("config: blocks %s: %w", name, err)
		}
	}
	return nil
}

// Largest minefield the mines screen layout fits.
const (
	MinesMaxWidth  = 30
	MinesMaxHeight = 16
)
