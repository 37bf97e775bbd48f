// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Bar implements a progress bar that must be manually managed. That
// is, Display() must be called whenever an updated progress bar should
// be printed.
//
// Bar is not safe for concurrent use.
type Bar struct {
	out     io.Writer
	width   int
	max     int
	current int
	status  string
	start   time.Time
}

// New returns a new Bar that is width characters wide, reaches 100%
// at max and prints to out
func New(out io.Writer, width, max int) *Bar {
	return &Bar{
		out:   out,
		width: width,
		max:   max,
		start: time.Now(),
	}
}

// Set sets the current progress, clipped to [0, max]
func (p *Bar) Set(progress int) {
	p.current = min(max(progress, 0), p.max)
}

// Increment increments the progress by one
func (p *Bar) Increment() {
	p.Set(p.current + 1)
}

// SetStatus sets text printed after the bar
func (p *Bar) SetStatus(status string) {
	p.status = status
}

// Fraction returns the completed fraction of the bar
func (p *Bar) Fraction() float64 {
	if p.max <= 0 {
		return 1.0
	}
	return float64(p.current) / float64(p.max)
}

// String returns the bar without terminal control codes
func (p *Bar) String() string {
	var bar strings.Builder
	filled := int(p.Fraction() * float64(p.width))

	bar.WriteString("|")
	bar.WriteString(strings.Repeat("█", filled))
	bar.WriteString(strings.Repeat(" ", p.width-filled))
	fmt.Fprintf(&bar, "| [%.2f%% | %d/%d | elapsed: %v]", p.Fraction()*100,
		p.current, p.max, time.Since(p.start).Truncate(time.Second))

	if p.status != "" {
		bar.WriteString(" ")
		bar.WriteString(p.status)
	}
	return bar.String()
}

// Display overwrites the current terminal line with the bar
func (p *Bar) Display() {
	fmt.Fprintf(p.out, "\r\033[K%v", p.String())
}

// Close displays the bar a final time and moves to the next line
func (p *Bar) Close() {
	p.Display()
	fmt.Fprintln(p.out)
}
