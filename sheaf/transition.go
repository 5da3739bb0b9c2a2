package sheaf

import (
	"github.com/mvolkhin/zariski/reduce"
	"github.com/mvolkhin/zariski/ring"
)

// RationalTransition is the algebraic Transition: the far chart's
// coordinates are given as rational functions of the near chart's, and
// transport is contraction along the induced coordinate-ring map.
//
// For an ideal I on the near chart it computes, in order: the restriction
// of V(I) to the overlap D(nearLocus) (saturation by the locus), the
// contraction through the coordinate map (graph ideal, denominator
// saturation, elimination), and the closure back inside the far chart
// (saturation by the far locus). The result is the saturated defining
// ideal of the Zariski closure that the propagation algorithm expects.
type RationalTransition struct {
	coords    *ring.Map // far ring → near ring, rational images
	nearLocus *ring.Polynomial
	farLocus  *ring.Polynomial
}

// NewRationalTransition builds the transition from the far chart's
// coordinate images. coords maps the far ring into the near ring; the loci
// cut out the overlap on each side (nil means the whole chart).
func NewRationalTransition(coords *ring.Map, nearLocus, farLocus *ring.Polynomial) (*RationalTransition, error) {
	if coords == nil {
		return nil, reduce.ErrNilInput
	}
	near, far := coords.Dst(), coords.Src()
	if nearLocus == nil {
		nearLocus = near.One()
	}
	if farLocus == nil {
		farLocus = far.One()
	}
	if nearLocus.Ring() != near || farLocus.Ring() != far {
		return nil, ErrRingMismatch
	}
	return &RationalTransition{coords: coords, nearLocus: nearLocus, farLocus: farLocus}, nil
}

// Transport implements Transition.
func (t *RationalTransition) Transport(ideal *ring.Ideal) (*ring.Ideal, error) {
	if ideal == nil {
		return nil, reduce.ErrNilInput
	}
	if ideal.Ring() != t.coords.Dst() {
		return nil, ErrRingMismatch
	}

	restricted, err := reduce.Saturate(ideal, t.nearLocus)
	if err != nil {
		return nil, err
	}
	pulled, err := reduce.Preimage(t.coords, restricted)
	if err != nil {
		return nil, err
	}

	return reduce.Saturate(pulled, t.farLocus)
}
