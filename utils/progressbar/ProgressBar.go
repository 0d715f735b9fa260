// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// ProgressBar prints an in-place progress bar. The bar is redrawn at
// most once per update interval so that tight simulation loops are not
// slowed down by terminal output.
type ProgressBar struct {
	// width is the number of characters the bar portion is wide
	width int

	// maxProgress is the number of Increment() calls at which the
	// bar reaches 100%
	maxProgress int

	currentProgress int

	updateEvery time.Duration
	lastDraw    time.Time
	started     time.Time
	out         io.Writer
}

// New returns a new progress bar that is width characters wide,
// reaches 100% after max Increment() calls, and redraws at most once
// per updateEvery
func New(width, max int, updateEvery time.Duration) *ProgressBar {
	now := time.Now()
	return &ProgressBar{
		width:       width,
		maxProgress: max,
		updateEvery: updateEvery,
		started:     now,
		out:         os.Stdout,
	}
}

// Increment advances the internal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ProgressBar) Increment() {
	if p.currentProgress >= p.maxProgress {
		return
	}
	p.currentProgress++

	if time.Since(p.lastDraw) < p.updateEvery &&
		p.currentProgress < p.maxProgress {
		return
	}
	p.draw()
}

// Close jumps to the next line after the printed bar so that later
// output does not overwrite it
func (p *ProgressBar) Close() {
	fmt.Fprintln(p.out)
}

func (p *ProgressBar) draw() {
	p.lastDraw = time.Now()

	filled := p.currentProgress * p.width / p.maxProgress

	var bar strings.Builder
	bar.WriteString("|")
	bar.WriteString(strings.Repeat("█", filled))
	bar.WriteString(strings.Repeat(" ", p.width-filled))
	bar.WriteString(fmt.Sprintf("| [%.2f%% | elapsed: %v]",
		float64(p.currentProgress)/float64(p.maxProgress)*100,
		time.Since(p.started).Round(time.Second)))

	fmt.Fprintf(p.out, "\r\033[K%v", bar.String())
}
