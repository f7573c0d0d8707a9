package dialog

import (
	"context"

	"golang.org/x/time/rate"
)

// DefaultFrameRate bounds the dialog loop.
const DefaultFrameRate = 100

// Pacer blocks until the next frame may start.
type Pacer interface {
	Wait()
}

type ratePacer struct {
	lim *rate.Limiter
}

// NewPacer returns a pacer allowing fps frames per second.
func NewPacer(fps int) Pacer {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	return ratePacer{lim: rate.NewLimiter(rate.Limit(fps), 1)}
}

func (p ratePacer) Wait() {
	_ = p.lim.Wait(context.Background())
}

// Unpaced never waits.
type Unpaced struct{}

func (Unpaced) Wait() {}
