package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/gogpu/imagetext/text"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (sess *session) printf(format string, args ...any) {
	fmt.Fprintf(sess.out, format, args...)
}

// printTable writes a table with a header row.
func (sess *session) printTable(data [][]string) {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		sess.printf("%v\n", data)
		return
	}
	sess.printf("%s\n", s)
}

func (sess *session) printLines(lines []text.Line) {
	data := [][]string{{"#", "X", "Y", "Anchor", "Text"}}
	for i, l := range lines {
		data = append(data, []string{
			strconv.Itoa(i), num(l.X), num(l.Y), string(l.Anchor), strconv.Quote(l.Text),
		})
	}
	sess.printTable(data)
}

func (sess *session) printBBox(r text.Rect) {
	sess.printTable([][]string{
		{"Left", "Top", "Right", "Bottom", "Width", "Height"},
		{num(r.MinX), num(r.MinY), num(r.MaxX), num(r.MaxY), num(r.Width()), num(r.Height())},
	})
}

func (sess *session) printWrap(t *text.Text, outcome text.WrapOutcome) {
	size := "-"
	if f, ok := t.Font().(*text.OutlineFont); ok {
		size = num(f.Size())
	}
	data := [][]string{
		{"Part", "Size", "Text"},
		{"wrapped", size, strconv.Quote(t.String())},
	}
	if rest, ok := outcome.Remainder(); ok {
		data = append(data, []string{"remainder", size, strconv.Quote(rest.String())})
	}
	sess.printTable(data)
}

func (sess *session) printSettings() {
	st := sess.settings
	font := "default"
	switch {
	case st.bitmap:
		font = "basic"
	case sess.source != nil:
		font = sess.source.Name()
	}
	sess.printTable([][]string{
		{"Setting", "Value"},
		{"font", font},
		{"size", num(st.size)},
		{"mode", string(st.mode)},
		{"spacing", num(st.spacing)},
		{"direction", st.direction.String()},
		{"features", fmt.Sprint(st.features)},
		{"language", st.language},
		{"stroke", num(st.stroke)},
		{"color", strconv.FormatBool(st.color)},
		{"margin", strconv.Itoa(st.margin)},
		{"text", strconv.Quote(sess.payload)},
	})
}
