package main

import (
	"github.com/gogpu/imagetext/text"
)

// oneShot processes a single text from flags.
type oneShot struct {
	payload string
	width   float64
	height  float64
	scale   string
	limit   float64
	anchor  string
	align   string
	output  string
}

// commands translates the flags into REPL commands.
func (job oneShot) commands() ([]*Command, error) {
	cmds := []*Command{{Text: &TextCommand{Value: job.payload}}}
	if job.width > 0 {
		w := &WrapCommand{Width: job.width}
		if job.height > 0 {
			h := job.height
			w.Height = &h
		}
		if job.scale != "" {
			if _, err := text.ParseScaleMode(job.scale); err != nil {
				return nil, err
			}
			w.Scaling = &ScaleClause{Mode: job.scale}
			if job.limit > 0 {
				l := job.limit
				w.Scaling.Limit = &l
			}
		}
		cmds = append(cmds, &Command{Wrap: w})
	}

	var clauses []*LayoutClause
	if job.anchor != "" {
		clauses = append(clauses, &LayoutClause{Anchor: job.anchor})
	}
	if job.align != "" {
		clauses = append(clauses, &LayoutClause{Align: job.align})
	}
	cmds = append(cmds,
		&Command{Layout: &LayoutCommand{Op: "lines", Clauses: clauses}},
		&Command{Layout: &LayoutCommand{Op: "bbox", Clauses: clauses}},
	)
	if job.output != "" {
		cmds = append(cmds, &Command{Render: &RenderCommand{Path: job.output, Clauses: clauses}})
	}
	return cmds, nil
}

func (job oneShot) run(sess *session) error {
	cmds, err := job.commands()
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		if _, err := sess.execute(cmd); err != nil {
			return err
		}
	}
	return nil
}
