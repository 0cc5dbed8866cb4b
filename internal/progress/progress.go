// Package progress reports how far the filtering stage has got.
// On a terminal it draws a progress bar; otherwise it prints a plain
// "done / total" line at every tenth of the work.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

const plainSteps = 10

// Tracker receives progress updates.
type Tracker struct {
	out         io.Writer
	description string
	terminal    bool
	quiet       bool

	bar      *progressbar.ProgressBar
	total    int
	nextMark int
}

// Options configures a Tracker.
type Options struct {
	Output      io.Writer // defaults to os.Stderr
	Description string
	Quiet       bool  // report nothing
	Terminal    *bool // overrides terminal detection
}

// New creates a tracker writing to opts.Output.
func New(opts Options) *Tracker {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	t := &Tracker{
		out:         out,
		description: opts.Description,
		quiet:       opts.Quiet,
	}
	if opts.Terminal != nil {
		t.terminal = *opts.Terminal
	} else {
		t.terminal = isTerminal(out)
	}
	return t
}

// Update records that done of total units are complete.
func (t *Tracker) Update(done, total int) {
	if t.quiet || total <= 0 {
		return
	}
	if t.terminal {
		t.updateBar(done, total)
		return
	}
	t.updatePlain(done, total)
}

// Finish completes the display.
func (t *Tracker) Finish() {
	if t.bar != nil {
		_ = t.bar.Finish()
		t.bar = nil
	}
}

func (t *Tracker) updateBar(done, total int) {
	if t.bar == nil || t.total != total {
		t.total = total
		t.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(t.out),
			progressbar.OptionSetDescription(t.description),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}
	_ = t.bar.Set(done)
}

func (t *Tracker) updatePlain(done, total int) {
	step := total / plainSteps
	if step == 0 {
		step = 1
	}
	if t.total != total {
		t.total = total
		t.nextMark = step
	}
	if done < t.nextMark && done != total {
		return
	}
	if t.nextMark > total {
		return
	}

	prefix := ""
	if t.description != "" {
		prefix = t.description + ": "
	}
	fmt.Fprintf(t.out, "%s%d / %d\n", prefix, done, total)

	t.nextMark = done + step
	if done >= total {
		t.nextMark = total + 1
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
