package blocks

import (
	"strconv"
	"time"

	"github.com/vovakirdan/conscade/internal/config"
)

// Progress tracks lines, level, score and fall speed for one game.
type Progress struct {
	Lines     int
	Level     int
	Score     int
	HighScore int
	Speed     time.Duration

	curve config.SpeedCurve
}

// NewProgress starts a game on curve at level 1.
func NewProgress(curve config.SpeedCurve, highScore int) Progress {
	return Progress{Level: 1, Speed: curve.Start, HighScore: highScore, curve: curve}
}

// Restart resets everything except the high score.
func (p *Progress) Restart() {
	*p = NewProgress(p.curve, p.HighScore)
}

// AddScore adds points and keeps the high score current.
func (p *Progress) AddScore(points int) {
	p.Score += points
	if p.Score > p.HighScore {
		p.HighScore = p.Score
	}
}

// ClearLines books n cleared lines: 1+2+..+n points, then a level up
// check.
func (p *Progress) ClearLines(n int) {
	if n <= 0 {
		return
	}
	p.Lines += n
	p.AddScore(n * (n + 1) / 2)
	if lv := p.curve.Level(p.Lines); lv > p.Level {
		p.Level = lv
		p.Speed = p.curve.Next(p.Speed)
	}
}

// DisplayScore renders a score the way the status panels show it: two
// extra zeros once it is non-zero.
func DisplayScore(score int) string {
	if score == 0 {
		return "0"
	}
	return strconv.Itoa(score) + "00"
}
