package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/imagetext/render"
	"github.com/gogpu/imagetext/text"
)

// settings are the style settings applied to every new text.
type settings struct {
	fontPath  string
	size      float64
	bitmap    bool
	mode      text.ImageMode
	spacing   float64
	direction text.Direction
	features  []string
	language  string
	stroke    float64
	color     bool
	margin    int
}

func defaultSettings() settings {
	return settings{
		size:    10,
		mode:    text.ModeRGB,
		spacing: 4,
	}
}

// session holds the REPL state: settings, the current text and the
// remainder of the last wrap.
type session struct {
	settings  settings
	source    *text.FontSource
	payload   string
	current   *text.Text
	remainder *text.Text
	out       io.Writer
}

func newSession(out io.Writer, s settings) (*session, error) {
	sess := &session{settings: s, out: out}
	if s.fontPath != "" {
		if err := sess.loadFont(s.fontPath); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// loadFont replaces the outline font source.
func (sess *session) loadFont(path string) error {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return err
	}
	if sess.source != nil {
		_ = sess.source.Close()
	}
	sess.source = src
	sess.settings.fontPath = path
	tracer().Infof("loaded font %q from %s", src.Name(), path)
	return nil
}

// font returns the font selected by the settings.
func (sess *session) font() text.Font {
	switch {
	case sess.settings.bitmap:
		return text.BasicFont()
	case sess.source != nil:
		return sess.source.Font(sess.settings.size)
	default:
		return text.DefaultFont().Variant(sess.settings.size)
	}
}

// setText replaces the payload and drops wrap results.
func (sess *session) setText(s string) error {
	t, err := sess.build(s)
	if err != nil {
		return err
	}
	sess.payload = s
	sess.current = t
	sess.remainder = nil
	return nil
}

// build creates a Text from s with the current settings.
func (sess *session) build(s string) (*text.Text, error) {
	st := sess.settings
	t, err := text.New(s,
		text.WithFont(sess.font()),
		text.WithMode(st.mode),
		text.WithSpacing(st.spacing),
		text.WithDirection(st.direction),
		text.WithFeatures(st.features...),
		text.WithLanguage(st.language),
	)
	if err != nil {
		return nil, err
	}
	if st.color {
		if err := t.EmbedColor(); err != nil {
			return nil, err
		}
	}
	if st.stroke > 0 {
		t.Stroke(st.stroke, nil)
	}
	return t, nil
}

// text returns the current text, failing when none was set.
func (sess *session) text() (*text.Text, error) {
	if sess.current == nil {
		return nil, errors.New("no text set, use: text \"...\"")
	}
	return sess.current, nil
}

// set changes one setting and rebuilds the current text from the
// original payload.
func (sess *session) set(key, value string) (err error) {
	saved := sess.settings
	defer func() {
		if err != nil {
			sess.settings = saved
		}
	}()
	st := &sess.settings
	switch strings.ToLower(key) {
	case "font":
		switch value {
		case "basic":
			st.bitmap = true
		case "default":
			st.bitmap = false
			sess.source = nil
		default:
			st.bitmap = false
			err = sess.loadFont(value)
		}
	case "size":
		st.size, err = parsePositive(key, value)
	case "mode":
		st.mode = text.ImageMode(value)
	case "spacing":
		st.spacing, err = strconv.ParseFloat(value, 64)
	case "direction":
		st.direction, err = text.ParseDirection(value)
	case "features":
		st.features = nil
		if value != "" && value != "none" {
			st.features = strings.Split(value, ",")
		}
	case "language", "lang":
		st.language = value
	case "stroke":
		st.stroke, err = strconv.ParseFloat(value, 64)
	case "color":
		st.color, err = strconv.ParseBool(value)
	case "margin":
		st.margin, err = strconv.Atoi(value)
	case "shaper":
		err = selectShaper(value)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	if sess.current == nil {
		return nil
	}
	return sess.setText(sess.payload)
}

// wrap wraps the current text in place and keeps the remainder.
func (sess *session) wrap(width float64, opts ...text.WrapOption) (text.WrapOutcome, error) {
	t, err := sess.text()
	if err != nil {
		return text.WrapOutcome{}, err
	}
	outcome, err := t.Wrap(width, opts...)
	if err != nil {
		return text.WrapOutcome{}, err
	}
	sess.remainder, _ = outcome.Remainder()
	return outcome, nil
}

// render draws the current text to path, choosing the format from the
// extension. A path of "-" writes PNG to standard output.
func (sess *session) render(path string, opts ...text.SplitOption) error {
	t, err := sess.text()
	if err != nil {
		return err
	}
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if path == pipeName {
		format = "png"
	}
	r, err := render.ForFormat(format)
	if err != nil {
		return err
	}
	w, closeFn, err := openOutput(path)
	if err != nil {
		return err
	}
	err = r.Render(w, t, render.WithLayout(opts...), render.WithMargin(sess.settings.margin))
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	return err
}

func parsePositive(key, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", key, v)
	}
	return v, nil
}

// selectShaper installs the named global shaper.
func selectShaper(name string) error {
	switch name {
	case "builtin", "":
		text.SetShaper(nil)
	case "gotext":
		text.SetShaper(text.NewGoTextShaper())
	default:
		return fmt.Errorf("unknown shaper %q (builtin, gotext)", name)
	}
	return nil
}

// splitOptions converts layout clauses to text options.
func splitOptions(clauses []*LayoutClause) ([]text.SplitOption, error) {
	var opts []text.SplitOption
	for _, c := range clauses {
		switch {
		case c.At != nil:
			opts = append(opts, text.At(c.At.X, c.At.Y))
		case c.Anchor != "":
			opts = append(opts, text.WithAnchor(text.Anchor(c.Anchor)))
		case c.Align != "":
			a, err := text.ParseAlignment(c.Align)
			if err != nil {
				return nil, err
			}
			opts = append(opts, text.WithAlign(a))
		}
	}
	return opts, nil
}

// wrapOptions converts a wrap command to text options.
func wrapOptions(cmd *WrapCommand) ([]text.WrapOption, error) {
	var opts []text.WrapOption
	if cmd.Height != nil {
		opts = append(opts, text.WithHeight(*cmd.Height))
	}
	if cmd.Scaling != nil {
		mode, err := text.ParseScaleMode(cmd.Scaling.Mode)
		if err != nil {
			return nil, err
		}
		s := text.Scaling{Mode: mode}
		if cmd.Scaling.Limit != nil {
			s.Limit = *cmd.Scaling.Limit
		}
		opts = append(opts, text.WithScaling(s))
	}
	return opts, nil
}

// openOutput opens path for writing. "-" is standard output, refused on
// a terminal.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == pipeName {
		if isTerminal(os.Stdout) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return f, f.Close, nil
}
