package cefr

import "math"

// PositionToSliderValue maps a word-frequency position onto the slider.
//
// The first band whose upper bound is >= position is used; the position is
// interpolated linearly inside that band and offset by the widths of the
// bands before it. Positions past the last band map to TotalVisualWidth.
// Positions below the first band are not clamped and extrapolate below 0.
func (s *Scale) PositionToSliderValue(position int) float64 {
	accumulated := 0.0
	for _, l := range s.levels {
		if l.Range[1] >= position {
			progress := 1.0
			if span := l.span(); span > 0 {
				progress = (float64(position) - float64(l.Range[0])) / float64(span)
			}
			return accumulated + progress*l.VisualWidth
		}
		accumulated += l.VisualWidth
	}
	return s.totalWidth
}

// SliderValueToPosition is the approximate inverse of PositionToSliderValue.
// The result is rounded to the nearest position, so a round trip may be off
// by one. Values past the slider maximum map to the last band's upper bound.
func (s *Scale) SliderValueToPosition(value float64) int {
	accumulated := 0.0
	for _, l := range s.levels {
		if accumulated+l.VisualWidth >= value {
			progress := (value - accumulated) / l.VisualWidth
			return int(math.Round(float64(l.Range[0]) + progress*float64(l.span())))
		}
		accumulated += l.VisualWidth
	}
	return s.last().Range[1]
}

// CurrentLevel returns the band containing position. Positions outside every
// band, including negative ones, resolve to the last band.
func (s *Scale) CurrentLevel(position int) Level {
	for _, l := range s.levels {
		if l.Contains(position) {
			return l
		}
	}
	return s.last()
}

// PositionToSliderValue maps position on the default scale.
func PositionToSliderValue(position int) float64 {
	return defaultScale.PositionToSliderValue(position)
}

// SliderValueToPosition maps a slider value on the default scale.
func SliderValueToPosition(value float64) int {
	return defaultScale.SliderValueToPosition(value)
}

// CurrentLevel returns the default-scale band containing position.
func CurrentLevel(position int) Level {
	return defaultScale.CurrentLevel(position)
}

// TotalVisualWidth is the default slider maximum.
func TotalVisualWidth() float64 {
	return defaultScale.TotalVisualWidth()
}
