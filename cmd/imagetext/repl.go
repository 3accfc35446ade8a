package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

const helpText = `Commands:
  text "..."                      set the text, \n breaks lines
  set KEY VALUE                   font, size, mode, spacing, direction,
                                  features, language, stroke, color,
                                  margin, shaper
  wrap WIDTH [height H] [shrink|grow [LIMIT]]
  bbox  [at X Y] [anchor CODE] [align left|center|right|justify]
  lines [at X Y] [anchor CODE] [align ...]
  length                          advance of single-line text
  render "out.png" [at X Y] [anchor CODE] [align ...]
  show                            print settings
  reset                           restore the text before wrapping
  help
  quit`

// Intp is our interpreter object.
type Intp struct {
	sess *session
	repl *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.sess.execute(cmd)
		if err != nil {
			pterm.Error.Println(err.Error())
			tracer().Debugf("command %q failed: %v", line, err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// execute runs one command. It reports whether the session should end.
func (sess *session) execute(cmd *Command) (quit bool, err error) {
	switch {
	case cmd.Text != nil:
		return false, sess.setText(cmd.Text.Value)
	case cmd.Set != nil:
		return false, sess.set(cmd.Set.Key, cmd.Set.Value)
	case cmd.Wrap != nil:
		opts, err := wrapOptions(cmd.Wrap)
		if err != nil {
			return false, err
		}
		outcome, err := sess.wrap(cmd.Wrap.Width, opts...)
		if err != nil {
			return false, err
		}
		sess.printWrap(sess.current, outcome)
	case cmd.Layout != nil:
		opts, err := splitOptions(cmd.Layout.Clauses)
		if err != nil {
			return false, err
		}
		t, err := sess.text()
		if err != nil {
			return false, err
		}
		if cmd.Layout.Op == "bbox" {
			r, err := t.BBox(opts...)
			if err != nil {
				return false, err
			}
			sess.printBBox(r)
			return false, nil
		}
		lines, err := t.Lines(opts...)
		if err != nil {
			return false, err
		}
		sess.printLines(lines)
	case cmd.Render != nil:
		opts, err := splitOptions(cmd.Render.Clauses)
		if err != nil {
			return false, err
		}
		if err := sess.render(cmd.Render.Path, opts...); err != nil {
			return false, err
		}
		sess.printf("wrote %s\n", cmd.Render.Path)
	case cmd.Length:
		t, err := sess.text()
		if err != nil {
			return false, err
		}
		l, err := t.Length()
		if err != nil {
			return false, err
		}
		sess.printf("%s\n", num(l))
	case cmd.Show:
		sess.printSettings()
	case cmd.Reset:
		return false, sess.setText(sess.payload)
	case cmd.Help:
		sess.printf("%s\n", helpText)
	case cmd.Quit:
		return true, nil
	}
	return false, nil
}

// unescape turns the two character sequence \n into a line break.
func unescape(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
