// Package runner manages command-line execution
package runner

import (
	"fmt"
	"io"

	"github.com/jeffrom/cmsg/commit"
	"github.com/jeffrom/cmsg/config"
	"github.com/jeffrom/cmsg/vcs"
)

type Runner struct {
	cfg config.Config
	vcs vcs.Interface
}

func New(cfg config.Config, vcs vcs.Interface) *Runner {
	return &Runner{
		cfg: cfg,
		vcs: vcs,
	}
}

// Parse parses a single commit message and writes it to w in the
// configured output format.
func (r *Runner) Parse(w io.Writer, message string) error {
	c, err := commit.Parse(message)
	if err != nil {
		return err
	}
	return r.Render(w, c)
}

// Reformat parses a single commit message and writes its canonical
// textual form back to w.
func (r *Runner) Reformat(w io.Writer, message string) error {
	c, err := commit.Parse(message)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, c.Format(r.formatOptions()))
	return err
}

func (r *Runner) formatOptions() commit.FormatOptions {
	return commit.FormatOptions{SynthesizeBreakingMark: r.cfg.MarkBreaking}
}
