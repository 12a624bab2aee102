package cefr

import (
	"errors"
	"fmt"
)

// MaxPosition is the highest word-frequency rank on the default scale.
const MaxPosition = 20000

// DefaultVisualWidth is the slider width each default band occupies.
const DefaultVisualWidth = 15

// ErrInvalidScale is returned by NewScale when the bands do not form a
// usable scale.
var ErrInvalidScale = errors.New("invalid level scale")

// Level is one CEFR band. Range is inclusive on both ends.
type Level struct {
	Name        string  `json:"name" yaml:"name"`
	Range       [2]int  `json:"range" yaml:"range"`
	VisualWidth float64 `json:"visualWidth" yaml:"visual_width"`
}

// Lower returns the first position in the band.
func (l Level) Lower() int { return l.Range[0] }

// Upper returns the last position in the band.
func (l Level) Upper() int { return l.Range[1] }

// Contains reports whether position falls inside the band.
func (l Level) Contains(position int) bool {
	return position >= l.Range[0] && position <= l.Range[1]
}

// span is the numeric width of the band used for interpolation.
func (l Level) span() int {
	return l.Range[1] - l.Range[0]
}

// Scale is an ordered list of contiguous bands covering the position axis.
type Scale struct {
	levels     []Level
	totalWidth float64
}

// defaultLevels are the six CEFR bands. Bands differ in numeric size but
// share the same visual width, so beginners get more slider travel per word.
var defaultLevels = []Level{
	{Name: "A1", Range: [2]int{0, 500}, VisualWidth: DefaultVisualWidth},
	{Name: "A2", Range: [2]int{501, 1000}, VisualWidth: DefaultVisualWidth},
	{Name: "B1", Range: [2]int{1001, 2000}, VisualWidth: DefaultVisualWidth},
	{Name: "B2", Range: [2]int{2001, 4000}, VisualWidth: DefaultVisualWidth},
	{Name: "C1", Range: [2]int{4001, 8000}, VisualWidth: DefaultVisualWidth},
	{Name: "C2", Range: [2]int{8001, MaxPosition}, VisualWidth: DefaultVisualWidth},
}

var defaultScale = mustScale(defaultLevels)

// DefaultScale returns the built-in A1..C2 scale.
func DefaultScale() *Scale {
	return defaultScale
}

// NewScale validates levels and builds a Scale from them. Bands must be
// listed in ascending order, each starting one past the previous band's
// upper bound, with a positive visual width and a unique non-empty name.
func NewScale(levels []Level) (*Scale, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no levels", ErrInvalidScale)
	}

	seen := make(map[string]bool, len(levels))
	total := 0.0
	for i, l := range levels {
		if l.Name == "" {
			return nil, fmt.Errorf("%w: level %d has no name", ErrInvalidScale, i)
		}
		if seen[l.Name] {
			return nil, fmt.Errorf("%w: duplicate level %q", ErrInvalidScale, l.Name)
		}
		seen[l.Name] = true

		if l.Range[0] > l.Range[1] {
			return nil, fmt.Errorf("%w: level %q has inverted range [%d, %d]",
				ErrInvalidScale, l.Name, l.Range[0], l.Range[1])
		}
		if l.VisualWidth <= 0 {
			return nil, fmt.Errorf("%w: level %q has non-positive visual width %g",
				ErrInvalidScale, l.Name, l.VisualWidth)
		}
		if i > 0 {
			prev := levels[i-1]
			if l.Range[0] != prev.Range[1]+1 {
				return nil, fmt.Errorf("%w: level %q starts at %d, want %d (after %q)",
					ErrInvalidScale, l.Name, l.Range[0], prev.Range[1]+1, prev.Name)
			}
		}
		total += l.VisualWidth
	}

	cp := make([]Level, len(levels))
	copy(cp, levels)
	return &Scale{levels: cp, totalWidth: total}, nil
}

func mustScale(levels []Level) *Scale {
	s, err := NewScale(levels)
	if err != nil {
		panic(err)
	}
	return s
}

// Levels returns a copy of the bands in ascending order.
func (s *Scale) Levels() []Level {
	cp := make([]Level, len(s.levels))
	copy(cp, s.levels)
	return cp
}

// Level looks up a band by name.
func (s *Scale) Level(name string) (Level, bool) {
	for _, l := range s.levels {
		if l.Name == name {
			return l, true
		}
	}
	return Level{}, false
}

// TotalVisualWidth is the sum of all band widths, i.e. the slider maximum.
func (s *Scale) TotalVisualWidth() float64 {
	return s.totalWidth
}

// MinPosition is the lower bound of the first band.
func (s *Scale) MinPosition() int {
	return s.levels[0].Range[0]
}

// MaxPosition is the upper bound of the last band.
func (s *Scale) MaxPosition() int {
	return s.levels[len(s.levels)-1].Range[1]
}

// last returns the highest band.
func (s *Scale) last() Level {
	return s.levels[len(s.levels)-1]
}
