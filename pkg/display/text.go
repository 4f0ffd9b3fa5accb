package display

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/huynhanx03/queuesim/pkg/simulation/mm1"
	"github.com/huynhanx03/queuesim/pkg/timer"
)

const clearScreen = "\033[H\033[2J"

var _ mm1.Observer = (*Text)(nil)

// Options controls how often and how wide the display renders.
type Options struct {
	Every int  // render every N departures
	Width int  // widest histogram bar, in characters
	Clear bool // clear the terminal before each frame
}

// Text renders simulation snapshots as plain text frames.
// Write failures are logged and the frame is dropped.
type Text struct {
	w      io.Writer
	opts   Options
	pacer  *timer.Pacer
	logger *zap.Logger
}

// NewText creates a Text display writing to w. pacer may be nil.
func NewText(w io.Writer, opts Options, pacer *timer.Pacer, logger *zap.Logger) *Text {
	if opts.Every < 1 {
		opts.Every = 1
	}
	if opts.Width < 1 {
		opts.Width = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Text{w: w, opts: opts, pacer: pacer, logger: logger}
}

// OnDeparture implements mm1.Observer.
func (t *Text) OnDeparture(s mm1.Snapshot) {
	if s.Served%int64(t.opts.Every) != 0 {
		return
	}

	var sb strings.Builder
	if t.opts.Clear {
		sb.WriteString(clearScreen)
	}
	writeFrame(&sb, s, t.opts.Width)

	if _, err := io.WriteString(t.w, sb.String()); err != nil {
		t.logger.Warn("render frame", zap.Int64("served", s.Served), zap.Error(err))
	}
	if t.pacer != nil {
		t.pacer.Wait()
	}
}

// Render writes a single frame for s to w.
func Render(w io.Writer, s mm1.Snapshot, width int) error {
	bw := bufio.NewWriter(w)
	writeFrame(bw, s, width)
	return bw.Flush()
}

func writeFrame(w io.Writer, s mm1.Snapshot, width int) {
	fmt.Fprintf(w, "Avg Wait = %.2f, Customers = %d\n", s.AverageWait, s.Served)
	fmt.Fprintf(w, "Avg Delay = %.2f, In System = %d, Clock = %.2f", s.AverageDelay, s.QueueLen, s.Clock)
	if !math.IsNaN(s.RecentP50) {
		fmt.Fprintf(w, ", p50 = %.2f, p95 = %.2f", s.RecentP50, s.RecentP95)
	}
	fmt.Fprintln(w)

	h := s.Histogram
	if h == nil || h.Total() == 0 {
		return
	}
	last := h.Len() - 1
	for i := 0; i < h.Len(); i++ {
		count := h.Count(i)
		bar := int(count * int64(width) / h.Max())
		label := fmt.Sprintf("%3d", i)
		if i == last {
			label = fmt.Sprintf("%2d+", i)
		}
		fmt.Fprintf(w, "%s | %s %d\n", label, strings.Repeat("#", bar), count)
	}
}
