package text

import (
	"strings"

	"github.com/gogpu/imagetext"
)

// WrapOutcome is the result of Text.Wrap: either everything fitted, or a
// remainder Text holds the tail that did not fit the height.
type WrapOutcome struct {
	remainder *Text
}

// Fitted reports whether the whole text fitted.
func (o WrapOutcome) Fitted() bool { return o.remainder == nil }

// Remainder returns the text that did not fit, if any. It has the same
// styling as the wrapped text.
func (o WrapOutcome) Remainder() (*Text, bool) {
	return o.remainder, o.remainder != nil
}

// Wrap breaks the text into lines no wider than width pixels, replacing
// the payload with the lines joined by "\n".
//
// Lines break at whitespace. Runs of spaces inside a line are kept, and
// whitespace is trimmed at line ends and at the start of each line. A
// word wider than width is split across lines; a single character wider
// than width is placed on a line of its own.
//
// With WithHeight, wrapping stops at the first line whose bottom would be
// below height, and the unconsumed text, starting at the separator after
// the last kept line, is returned as the remainder. With WithScaling the
// font size is searched first; see Scaling.
//
// Only outline fonts and left-to-right text can be wrapped.
func (t *Text) Wrap(width float64, opts ...WrapOption) (WrapOutcome, error) {
	var cfg wrapConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.scaling != nil {
		if !t.font.Kind().Resizable() {
			return WrapOutcome{}, ErrScalingFont
		}
		if !cfg.hasHeight {
			return WrapOutcome{}, ErrScalingHeight
		}
	}
	if !t.font.Kind().Resizable() {
		return WrapOutcome{}, ErrWrapFont
	}
	if t.direction != DirectionLTR {
		return WrapOutcome{}, ErrWrapDirection
	}

	runes := []rune(t.decoded())
	m := t.measurer()
	if cfg.scaling != nil {
		f, err := t.scale(m, runes, width, cfg)
		if err != nil {
			return WrapOutcome{}, err
		}
		m = m.withFont(f)
	}

	w := newWrapper(m, runes, width, cfg)
	if err := w.run(); err != nil {
		return WrapOutcome{}, err
	}

	payload, err := t.encode(strings.Join(w.lines, "\n"))
	if err != nil {
		return WrapOutcome{}, err
	}
	var out WrapOutcome
	if w.remaining < len(runes) {
		rest, err := t.encode(string(runes[w.remaining:]))
		if err != nil {
			return WrapOutcome{}, err
		}
		out.remainder = t.sibling(rest)
		out.remainder.font = m.font
	}

	t.font = m.font
	t.payload = payload
	return out, nil
}

// wrapper is the greedy line breaking state machine.
//
// It scans the runes followed by a synthetic line break. Whitespace ends a
// word; the word is appended to the current line when the result fits,
// otherwise the line is committed and the word starts the next one.
type wrapper struct {
	m         measurer
	runes     []rune
	width     float64
	height    float64
	hasHeight bool

	pitch    float64
	hasPitch bool

	lines     []string
	pos       int // scan index
	remaining int // rune index where unconsumed text starts
}

func newWrapper(m measurer, runes []rune, width float64, cfg wrapConfig) *wrapper {
	return &wrapper{
		m:         m,
		runes:     runes,
		width:     width,
		height:    cfg.height,
		hasHeight: cfg.hasHeight,
	}
}

// run wraps all runes. It stops early without error when the height is
// exhausted.
func (w *wrapper) run() error {
	var line string
	var word []rune

	for w.pos = 0; w.pos <= len(w.runes); w.pos++ {
		c := '\n'
		if w.pos < len(w.runes) {
			c = w.runes[w.pos]
		}

		switch {
		case c == '\n':
			if len(word) > 0 && !w.m.allSpace(string(word)) {
				ok, err := w.place(&line, word)
				if err != nil || !ok {
					return err
				}
			}
			// Trailing whitespace before a break is dropped.
			word = nil
			ok, err := w.commit(line, 0)
			if err != nil || !ok {
				return err
			}
			line = ""

		case w.m.isSpace(c):
			if len(word) == 0 || w.m.allSpace(string(word)) {
				// Whitespace is held until a word follows it.
				word = append(word, c)
				continue
			}
			ok, err := w.place(&line, word)
			if err != nil || !ok {
				return err
			}
			word = append(word[:0], c)

		default:
			word = append(word, c)
		}
	}
	return nil
}

// place appends word to line, committing line first when the word does
// not fit. It reports false when the height is exhausted.
func (w *wrapper) place(line *string, word []rune) (bool, error) {
	s := string(word)
	if *line == "" {
		s = w.m.trimLeft(s)
	}
	width, err := w.m.width(*line + s)
	if err != nil {
		return false, err
	}
	if width <= w.width {
		*line += s
		return true, nil
	}

	if *line != "" {
		// The word, with its leading whitespace, is still pending.
		ok, err := w.commit(*line, len(word))
		if err != nil || !ok {
			return ok, err
		}
		s = w.m.trimLeft(s)
		width, err := w.m.width(s)
		if err != nil {
			return false, err
		}
		if width <= w.width {
			*line = s
			return true, nil
		}
	}
	return w.splitWord(line, []rune(s))
}

// splitWord commits the longest prefixes of word that fit the width until
// the rest fits, and leaves the rest in line.
func (w *wrapper) splitWord(line *string, word []rune) (bool, error) {
	for {
		j := len(word)
		for j > 1 {
			width, err := w.m.width(string(word[:j]))
			if err != nil {
				return false, err
			}
			if width <= w.width {
				break
			}
			j--
		}
		if j == 1 {
			if width, err := w.m.width(string(word[:1])); err == nil && width > w.width {
				imagetext.Logger().Warn("text: character wider than wrap width",
					"char", string(word[:1]), "width", width, "max", w.width)
			}
		}
		if j == len(word) {
			// A lone character wider than the line is kept as the line.
			*line = string(word)
			return true, nil
		}

		ok, err := w.commit(string(word[:j]), len(word)-j)
		if err != nil || !ok {
			return ok, err
		}
		word = word[j:]
		*line = string(word)

		width, err := w.m.width(*line)
		if err != nil {
			return false, err
		}
		if width <= w.width {
			return true, nil
		}
	}
}

// commit appends line to the output unless its bottom would exceed the
// height. pending is the number of scanned runes not yet in any line.
func (w *wrapper) commit(line string, pending int) (bool, error) {
	line = w.m.trimRight(line)
	if w.hasHeight {
		y, err := w.nextLineTop()
		if err != nil {
			return false, err
		}
		r, err := w.m.bbox(line, AnchorLeftAscender)
		if err != nil {
			return false, err
		}
		if y+r.MaxY > w.height {
			imagetext.Logger().Debug("text: wrap stopped at height",
				"lines", len(w.lines), "bottom", y+r.MaxY, "height", w.height)
			return false, nil
		}
	}
	w.lines = append(w.lines, line)
	w.remaining = w.pos - pending
	return true, nil
}

// nextLineTop returns the y of the line after the committed ones, as the
// splitter places lines anchored at "la" from the origin.
func (w *wrapper) nextLineTop() (float64, error) {
	if len(w.lines) == 0 {
		return 0, nil
	}
	if !w.hasPitch {
		p, err := w.m.linePitch()
		if err != nil {
			return 0, err
		}
		w.pitch, w.hasPitch = p, true
	}
	return float64(len(w.lines)) * w.pitch, nil
}
