package prices

import (
	"context"
	"math"
	"math/rand"
	"time"

	"samko/internal/model"
)

// Quoter produces a fresh set of quotes from the baseline table.
type Quoter interface {
	Quote(ctx context.Context, base []model.OilPrice, now time.Time) ([]model.OilPrice, error)
}

// MaxVariation bounds how far a simulated quote may drift from its base price.
const MaxVariation = 0.02

// Simulator moves every base price by the same factor: a slow sine over the
// minute of the day plus a little jitter, scaled to at most MaxVariation.
type Simulator struct {
	rand func() float64
}

func NewSimulator() *Simulator {
	return &Simulator{rand: rand.Float64}
}

func (s *Simulator) Quote(ctx context.Context, base []model.OilPrice, now time.Time) ([]model.OilPrice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	minute := float64(now.Hour()*60 + now.Minute())
	factor := math.Sin(minute/100)*0.5 + (s.rand()*0.3 - 0.15)

	out := make([]model.OilPrice, len(base))
	for i, p := range base {
		variation := factor * p.Price * MaxVariation
		change := round2(variation)

		p.Price = round2(p.Price + variation)
		p.Change = change
		p.ChangePercent = round2(change / base[i].Price * 100)
		p.LastUpdated = now
		out[i] = p
	}
	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
