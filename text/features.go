package text

import (
	"fmt"
	"strconv"
	"strings"
)

// Feature toggles an OpenType feature, e.g. "kern" or "liga".
type Feature struct {
	// Tag is the four character feature tag.
	Tag string
	// Value is 0 to disable, 1 to enable, or an alternate index.
	Value uint32
}

// String formats the feature in the form accepted by ParseFeature.
func (f Feature) String() string {
	switch f.Value {
	case 0:
		return "-" + f.Tag
	case 1:
		return "+" + f.Tag
	default:
		return f.Tag + "=" + strconv.FormatUint(uint64(f.Value), 10)
	}
}

// ParseFeature parses a feature string.
//
//	"kern"    enable kerning
//	"+kern"   enable kerning
//	"-kern"   disable kerning
//	"aalt=2"  select alternate 2
func ParseFeature(s string) (Feature, error) {
	f := Feature{Value: 1}
	switch {
	case strings.HasPrefix(s, "-"):
		f.Value = 0
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if tag, val, ok := strings.Cut(s, "="); ok {
		if f.Value == 0 {
			return Feature{}, fmt.Errorf("%w: %q", ErrInvalidFeature, s)
		}
		n, err := strconv.ParseUint(val, 10, 32)
		if err != nil {
			return Feature{}, fmt.Errorf("%w: %q: %v", ErrInvalidFeature, s, err)
		}
		f.Value = uint32(n)
		s = tag
	}
	if !validTag(s) {
		return Feature{}, fmt.Errorf("%w: %q", ErrInvalidFeature, s)
	}
	f.Tag = s
	return f, nil
}

// ParseFeatures parses each string with ParseFeature.
func ParseFeatures(list ...string) ([]Feature, error) {
	out := make([]Feature, 0, len(list))
	for _, s := range list {
		f, err := ParseFeature(s)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// validTag reports whether s is a 4 byte printable ASCII tag.
func validTag(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// enabled reports whether tag is on after applying features in order.
// Tags not mentioned report def.
func enabled(features []Feature, tag string, def bool) bool {
	on := def
	for _, f := range features {
		if f.Tag == tag {
			on = f.Value != 0
		}
	}
	return on
}

// featureKey returns a canonical cache key for a feature list.
func featureKey(features []Feature) string {
	if len(features) == 0 {
		return ""
	}
	var b strings.Builder
	for i, f := range features {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.String())
	}
	return b.String()
}
