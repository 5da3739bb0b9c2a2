package sheaf

import (
	"context"

	"github.com/mvolkhin/zariski/ring"
)

// ExtendOption configures Extend.
type ExtendOption func(*extendOptions)

type extendOptions struct {
	ctx context.Context
}

// WithContext sets a cancellation context for the propagation loop.
func WithContext(ctx context.Context) ExtendOption {
	return func(o *extendOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Extend completes the sheaf over the whole covering, in place. Seeded
// charts form the initial dirty queue; popping a chart transports its ideal
// through every glueing to a neighbor that has no entry yet, assigns the
// transported closure ideal there, and enqueues the neighbor. When the
// queue drains, any chart never reached is assigned the zero ideal — "no
// constraint known", a silent policy rather than an error, and deliberately
// different from the unit-ideal filler component records use for absence.
//
// Charts already assigned are never overwritten, so Extend is idempotent
// and agreement across overlaps is the seed data's responsibility (see
// Validate).
func (s *IdealSheaf) Extend(opts ...ExtendOption) error {
	o := extendOptions{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	queue := s.Seeded()
	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return o.ctx.Err()
		default:
		}

		u := queue[0]
		queue = queue[1:]

		for _, v := range s.cov.Neighbors(u) {
			if _, done := s.local[v]; done {
				continue
			}
			g, _ := s.cov.GlueingBetween(u, v)
			moved, err := g.From(u).Transport(s.local[u])
			if err != nil {
				return err
			}
			s.local[v] = moved
			queue = append(queue, v)
		}
	}

	// zero-ideal default for charts no seed could reach
	for _, ch := range s.cov.charts {
		if _, ok := s.local[ch.id]; !ok {
			zero, err := ring.NewIdeal(ch.ring)
			if err != nil {
				return err
			}
			s.local[ch.id] = zero
		}
	}

	return nil
}
