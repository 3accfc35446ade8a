// Command imagetext measures, wraps and renders text from the command line
// or an interactive REPL.
//
// Usage:
//
//	imagetext [flags] [TEXT]
//
// With TEXT, or text piped to standard input, imagetext prints the line
// layout, wrapping first when -width is given, and renders to -o. Without
// either it starts the REPL.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/gogpu/imagetext"
	"github.com/gogpu/imagetext/text"
)

const pipeName = "-"

// tracer traces with key 'imagetext.cli'
func tracer() tracing.Trace {
	return tracing.Select("imagetext.cli")
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.imagetext.cli": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	var (
		tlevel    = flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
		fontPath  = flag.String("font", "", "TrueType/OpenType font file (default: Go Regular)")
		basic     = flag.Bool("basic", false, "use the 7x13 bitmap font")
		size      = flag.Float64("size", 10, "font size in pixels")
		mode      = flag.String("mode", "RGB", "image mode (1, L, P, RGB, RGBA, ...)")
		spacing   = flag.Float64("spacing", 4, "line spacing in pixels")
		direction = flag.String("dir", "ltr", "text direction [ltr|rtl|ttb]")
		features  = flag.String("features", "", "comma separated OpenType features, e.g. -kern,+liga")
		lang      = flag.String("lang", "", "BCP 47 language tag")
		stroke    = flag.Float64("stroke", 0, "stroke width in pixels")
		shaper    = flag.String("shaper", "builtin", "text shaper [builtin|gotext]")
		width     = flag.Float64("width", 0, "wrap width in pixels (0: no wrapping)")
		height    = flag.Float64("height", 0, "maximum wrapped height in pixels")
		scale     = flag.String("scale", "", "fit the height by font scaling [shrink|grow]")
		limit     = flag.Float64("limit", 0, "font size limit for -scale")
		anchor    = flag.String("anchor", "", "anchor code, e.g. la, mm")
		align     = flag.String("align", "left", "multiline alignment [left|center|right|justify]")
		margin    = flag.Int("margin", 0, "output margin in pixels")
		output    = flag.String("o", "", "render to a .png or .pdf file, - for PNG on stdout")
	)
	flag.Parse()

	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
		imagetext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		pterm.Error.Printf("Invalid trace level: %s\n", *tlevel)
		os.Exit(2)
	}

	dir, err := text.ParseDirection(*direction)
	if err != nil {
		fatal(err)
	}
	if err := selectShaper(*shaper); err != nil {
		fatal(err)
	}
	st := defaultSettings()
	st.fontPath = *fontPath
	st.bitmap = *basic
	st.size = *size
	st.mode = text.ImageMode(*mode)
	st.spacing = *spacing
	st.direction = dir
	if *features != "" {
		st.features = strings.Split(*features, ",")
	}
	st.language = *lang
	st.stroke = *stroke
	st.margin = *margin

	out := io.Writer(os.Stdout)
	if *output == pipeName {
		out = os.Stderr // keep stdout for the image
	}
	sess, err := newSession(out, st)
	if err != nil {
		fatal(err)
	}

	payload, interactive, err := input(flag.Args())
	if err != nil {
		fatal(err)
	}
	if interactive {
		repl(sess)
		return
	}

	job := oneShot{
		payload: payload,
		width:   *width,
		height:  *height,
		scale:   *scale,
		limit:   *limit,
		anchor:  *anchor,
		align:   *align,
		output:  *output,
	}
	if err := job.run(sess); err != nil {
		fatal(err)
	}
}

// input returns the text to process. Without arguments, piped standard
// input is read; a terminal selects interactive mode.
func input(args []string) (payload string, interactive bool, err error) {
	if len(args) > 0 {
		return unescape(strings.Join(args, " ")), false, nil
	}
	if isTerminal(os.Stdin) {
		return "", true, nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", false, fmt.Errorf("reading standard input: %w", err)
	}
	return strings.TrimSuffix(string(b), "\n"), false, nil
}

func repl(sess *session) {
	rl, err := readline.New("imagetext > ")
	if err != nil {
		fatal(err)
	}
	defer rl.Close()

	pterm.Info.Println("Welcome to imagetext")
	pterm.Info.Println("Type help for commands, quit with <ctrl>D")
	intp := &Intp{sess: sess, repl: rl}
	intp.REPL()
}

func fatal(err error) {
	pterm.Error.Println(err.Error())
	os.Exit(1)
}
