package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Watch redraws one of the renderers at a fixed interval, clearing the
// screen between frames. The cursor is hidden while the loop runs and
// restored when it ends, also on SIGINT and SIGTERM.
type Watch struct {
	Out      io.Writer
	Interval time.Duration
}

// Run drives the refresh loop until the context is cancelled or an
// interrupt arrives. Render errors are shown in place and the loop keeps
// going, so a dropped portal connection does not end the watch.
func (w *Watch) Run(ctx context.Context, render func(io.Writer) error) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	w.hideCursor()
	defer w.showCursor()

	for {
		w.clear()
		_, _ = fmt.Fprintf(w.Out, "Last update: %s | Press Ctrl+C to exit\n\n",
			time.Now().Format("15:04:05"))

		if err := render(w.Out); err != nil {
			_, _ = fmt.Fprintf(w.Out, "Error: %v\n", err)
		}

		select {
		case <-ticker.C:
		case <-sig:
			w.clear()
			_, _ = fmt.Fprintln(w.Out, "Watch mode ended.")
			return nil
		case <-ctx.Done():
			w.clear()
			_, _ = fmt.Fprintln(w.Out, "Watch mode ended.")
			return nil
		}
	}
}

func (w *Watch) clear()      { _, _ = fmt.Fprint(w.Out, "\033[2J\033[H") }
func (w *Watch) hideCursor() { _, _ = fmt.Fprint(w.Out, "\033[?25l") }
func (w *Watch) showCursor() { _, _ = fmt.Fprint(w.Out, "\033[?25h") }
