package script

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-drift/pullrefresh/pkg/refresh"
)

// Frame is the offset at one instant.
type Frame struct {
	Time   time.Duration
	Offset int
}

// Line is one row of a replay trace.
type Line struct {
	Time    time.Duration
	Event   string
	Offset  int
	Content int
	State   refresh.State
	Label   string
	Notes   []string
}

func (l Line) changed(next Line) bool {
	return l.Offset != next.Offset ||
		l.Content != next.Content ||
		l.State != next.State ||
		l.Label != next.Label ||
		len(next.Notes) > 0
}

func (l Line) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%8s  %-22s offset=%-4d content=%-5d state=%-10s label=%q",
		formatTime(l.Time), l.Event, l.Offset, l.Content, l.State, l.Label)
	if len(l.Notes) > 0 {
		fmt.Fprintf(&b, "  [%s]", strings.Join(l.Notes, "; "))
	}
	return b.String()
}

// Trace is the result of a replay.
type Trace struct {
	Header    int
	Threshold int
	Frame     time.Duration
	Refreshes int
	// Frames has one entry per instant, the latest record winning.
	Frames []Frame
	Lines  []Line
}

func (t *Trace) addFrame(line Line) {
	f := Frame{Time: line.Time, Offset: line.Offset}
	if n := len(t.Frames); n > 0 && t.Frames[n-1].Time == f.Time {
		t.Frames[n-1] = f
		return
	}
	t.Frames = append(t.Frames, f)
}

// Final returns the last recorded line.
func (t *Trace) Final() Line {
	if len(t.Lines) == 0 {
		return Line{}
	}
	return t.Lines[len(t.Lines)-1]
}

// MaxOffset returns the largest offset seen.
func (t *Trace) MaxOffset() int {
	peak := 0
	for _, f := range t.Frames {
		peak = max(peak, f.Offset)
	}
	return peak
}

// Duration returns the time of the last frame.
func (t *Trace) Duration() time.Duration {
	if len(t.Frames) == 0 {
		return 0
	}
	return t.Frames[len(t.Frames)-1].Time
}

// WriteText writes one line per trace row followed by a summary.
func (t *Trace) WriteText(w io.Writer) error {
	for _, line := range t.Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	final := t.Final()
	_, err := fmt.Fprintf(w, "refreshes=%d peak=%d final offset=%d state=%s after %s\n",
		t.Refreshes, t.MaxOffset(), final.Offset, final.State, formatTime(t.Duration()))
	return err
}

func formatTime(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}
