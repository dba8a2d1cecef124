package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
)

// clearLine returns the cursor to column 0 and erases the line.
const clearLine = "\r\x1b[2K"

// Progress renders a labelled bar for an operation with a known duration,
// such as an mDNS scan.
type Progress struct {
	Label string
	bar   progress.Model
}

// NewProgress sizes the bar for a terminal of width columns.
func NewProgress(label string, width int) *Progress {
	barWidth := max(20, min(50, width-20))
	return &Progress{
		Label: label,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
		),
	}
}

// ViewAs renders the bar filled to fraction, clamped to [0,1].
func (p *Progress) ViewAs(fraction float64) string {
	fraction = max(0, min(1, fraction))
	return fmt.Sprintf("%s  %s %3.0f%%",
		ProgressLabelStyle.Render(p.Label), p.bar.ViewAs(fraction), fraction*100)
}

// Track redraws the bar on w every interval as time runs towards duration.
// The returned stop clears the line and waits for the last redraw; it may
// be called more than once.
func (p *Progress) Track(w io.Writer, duration, interval time.Duration) (stop func()) {
	start := time.Now()
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			fmt.Fprint(w, "\r"+p.ViewAs(float64(time.Since(start))/float64(duration)))
			select {
			case <-done:
				fmt.Fprint(w, clearLine)
				return
			case <-ticker.C:
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			<-finished
		})
	}
}
