package main

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// REPL command grammar. Examples:
//
//	text "Hello World"
//	set size 14
//	wrap 50 height 25 shrink 9
//	bbox at 0 0 anchor mm align center
//	render "out.png" anchor la
var (
	cmdLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.\d*|\.\d+|\d+)`},
		{Name: "Ident", Pattern: `[-+]?[A-Za-z_][A-Za-z0-9_.,=+\-]*`},
	})

	cmdParser = participle.MustBuild[Command](
		participle.Lexer(cmdLexer),
		participle.Unquote("String"),
		participle.Elide("Whitespace"),
	)
)

// Command is one line of REPL input.
type Command struct {
	Text   *TextCommand   `parser:"  'text' @@"`
	Set    *SetCommand    `parser:"| 'set' @@"`
	Wrap   *WrapCommand   `parser:"| 'wrap' @@"`
	Layout *LayoutCommand `parser:"| @@"`
	Render *RenderCommand `parser:"| 'render' @@"`
	Length bool           `parser:"| @'length'"`
	Show   bool           `parser:"| @'show'"`
	Reset  bool           `parser:"| @'reset'"`
	Help   bool           `parser:"| @'help'"`
	Quit   bool           `parser:"| @( 'quit' | 'exit' )"`
}

// TextCommand replaces the payload.
type TextCommand struct {
	Value string `parser:"@String"`
}

// SetCommand changes a style setting, e.g. "set mode L".
type SetCommand struct {
	Key   string `parser:"@Ident"`
	Value string `parser:"@( String | Number | Ident )"`
}

// WrapCommand wraps the current text.
type WrapCommand struct {
	Width   float64      `parser:"@Number"`
	Height  *float64     `parser:"( 'height' @Number )?"`
	Scaling *ScaleClause `parser:"@@?"`
}

// ScaleClause selects font scaling with an optional size limit.
type ScaleClause struct {
	Mode  string   `parser:"@( 'shrink' | 'grow' )"`
	Limit *float64 `parser:"@Number?"`
}

// LayoutCommand prints the bounding box or the lines of the current
// text. Layout clauses may come in any order.
type LayoutCommand struct {
	Op      string          `parser:"@( 'bbox' | 'lines' )"`
	Clauses []*LayoutClause `parser:"@@*"`
}

// LayoutClause is one of "at X Y", "anchor CODE" or "align NAME".
type LayoutClause struct {
	At     *Point `parser:"  'at' @@"`
	Anchor string `parser:"| 'anchor' @Ident"`
	Align  string `parser:"| 'align' @Ident"`
}

// Point is an x, y pair.
type Point struct {
	X float64 `parser:"@Number"`
	Y float64 `parser:"@Number"`
}

// RenderCommand draws the current text to a file.
type RenderCommand struct {
	Path    string          `parser:"@String"`
	Clauses []*LayoutClause `parser:"@@*"`
}

// parseCommand parses one line of REPL input.
func parseCommand(line string) (*Command, error) {
	return cmdParser.ParseString("", line)
}
