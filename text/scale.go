package text

import (
	"math"
	"strings"

	"github.com/gogpu/imagetext"
)

// Default bounds of the font size search.
const (
	// DefaultShrinkFloor is the smallest size Shrink tries.
	DefaultShrinkFloor = 1
	// DefaultGrowCeiling is the largest size Grow tries.
	DefaultGrowCeiling = 1024
)

// ScaleMode selects the direction of the font size search.
type ScaleMode int

const (
	// ScaleShrink reduces the font size until the text fits the height.
	ScaleShrink ScaleMode = iota
	// ScaleGrow increases the font size while the text still fits the height.
	ScaleGrow
)

// String returns the string representation of the mode.
func (m ScaleMode) String() string {
	switch m {
	case ScaleShrink:
		return "shrink"
	case ScaleGrow:
		return "grow"
	default:
		return unknownStr
	}
}

// ParseScaleMode parses "shrink" or "grow".
func ParseScaleMode(s string) (ScaleMode, error) {
	switch strings.ToLower(s) {
	case "shrink":
		return ScaleShrink, nil
	case "grow":
		return ScaleGrow, nil
	default:
		return 0, ErrScalingMode
	}
}

// Scaling configures the font size search of Text.Wrap.
//
// The search steps one pixel at a time and re-wraps the original text at
// every size. Shrink returns the first size, going down from the current
// one, at which the text fits; it fails once Limit has been tried. Grow
// returns the largest size at which the text fits; it fails when the
// current size does not fit or the text still fits at Limit.
type Scaling struct {
	Mode ScaleMode
	// Limit is the smallest (shrink) or largest (grow) size to try.
	// Zero selects DefaultShrinkFloor or DefaultGrowCeiling.
	Limit float64
}

// Shrink returns a shrink search down to DefaultShrinkFloor.
func Shrink() Scaling { return Scaling{Mode: ScaleShrink} }

// ShrinkTo returns a shrink search down to limit.
func ShrinkTo(limit float64) Scaling { return Scaling{Mode: ScaleShrink, Limit: limit} }

// Grow returns a grow search up to DefaultGrowCeiling.
func Grow() Scaling { return Scaling{Mode: ScaleGrow} }

// GrowTo returns a grow search up to limit.
func GrowTo(limit float64) Scaling { return Scaling{Mode: ScaleGrow, Limit: limit} }

// scale searches the font size for Wrap. The text font is not modified.
func (t *Text) scale(m measurer, runes []rune, width float64, cfg wrapConfig) (*OutlineFont, error) {
	base, ok := t.font.(*OutlineFont)
	if !ok {
		return nil, ErrScalingFont
	}

	fits := func(f *OutlineFont) (bool, error) {
		w := newWrapper(m.withFont(f), runes, width, cfg)
		if err := w.run(); err != nil {
			return false, err
		}
		ok := w.remaining >= len(runes)
		imagetext.Logger().Debug("text: scale step", "size", f.Size(), "fits", ok)
		return ok, nil
	}

	ok, err := fits(base)
	if err != nil {
		return nil, err
	}

	switch cfg.scaling.Mode {
	case ScaleShrink:
		if ok {
			return base, nil
		}
		floor := cfg.scaling.Limit
		if floor == 0 {
			floor = DefaultShrinkFloor
		}
		floor = max(floor, 1)
		size := math.Ceil(base.Size())
		for {
			if size <= floor {
				return nil, ErrNotScaled
			}
			size--
			f := base.Variant(size)
			if ok, err = fits(f); err != nil {
				return nil, err
			}
			if ok {
				return f, nil
			}
		}

	case ScaleGrow:
		if !ok {
			return nil, ErrNotScaled
		}
		ceiling := cfg.scaling.Limit
		if ceiling == 0 {
			ceiling = DefaultGrowCeiling
		}
		best := base
		size := math.Floor(base.Size())
		for {
			if size >= ceiling {
				return nil, ErrNotScaled
			}
			size++
			f := base.Variant(size)
			if ok, err = fits(f); err != nil {
				return nil, err
			}
			if !ok {
				return best, nil
			}
			best = f
		}

	default:
		return nil, ErrScalingMode
	}
}
