package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Backend: BackendCurses,
		Mines: MinesConfig{
			Levels: []MinesLevel{
				{Name: "small", Width: 9, Height: 9, Bombs: 10},
				{Name: "middle", Width: 16, Height: 16, Bombs: 40},
				{Name: "large", Width: 30, Height: 16, Bombs: 99},
			},
		},
		Blocks: BlocksConfig{
			FieldWidth:  10,
			FieldHeight: 20,
			Otige: SpeedCurve{
				Start:         550 * time.Millisecond,
				Step:          50 * time.Millisecond,
				Min:           50 * time.Millisecond,
				LinesPerLevel: 10,
			},
			Otitame: SpeedCurve{
				Start:         500 * time.Millisecond,
				Step:          50 * time.Millisecond,
				Min:           50 * time.Millisecond,
				LinesPerLevel: 10,
			},
		},
		Snapshot: SnapshotConfig{
			Backend: BackendPC98,
			Frames:  120,
			Width:   80,
			Height:  25,
		},
	}
}
