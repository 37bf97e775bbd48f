package progressbar

import (
	"context"
	"time"
)

// Progresser reports how much of some work has completed
type Progresser interface {
	Progress() (completed, total int)
}

// Watch polls src every period and redraws bar until ctx is done. The
// status function, if not nil, is called before every redraw to set
// the text after the bar. Watch closes the bar before returning.
func Watch(ctx context.Context, bar *Bar, src Progresser,
	period time.Duration, status func() string) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	redraw := func() {
		completed, _ := src.Progress()
		bar.Set(completed)
		if status != nil {
			bar.SetStatus(status())
		}
	}

	for {
		select {
		case <-ctx.Done():
			redraw()
			bar.Close()
			return
		case <-ticker.C:
			redraw()
			bar.Display()
		}
	}
}
