package active

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/andreasabel/active/clock"
)

// Kind classifies one endpoint of an Anchored value.
//
// An Infinite endpoint has no finite bound and never changes. An Open
// endpoint has a finite bound whose boundary sample is provisional,
// waiting to be fixed by Seal or by a sequential composition partner. A
// Closed endpoint owns its boundary instant. Open endpoints become
// Closed when sealed; no other transition exists.
type Kind int

const (
	Infinite Kind = iota
	Closed
	Open
)

func (k Kind) String() string {
	switch k {
	case Infinite:
		return "infinite"
	case Closed:
		return "closed"
	case Open:
		return "open"
	default:
		return fmt.Sprintf("unknown kind %d", int(k))
	}
}

// Side names one of the two endpoints of an Anchored value.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("unknown side %d", int(s))
	}
}

// Anchor names a reference instant carried alongside an Anchored value.
type Anchor int

const (
	Start Anchor = iota
	End
	Fixed
)

func (a Anchor) String() string {
	switch a {
	case Start:
		return "start"
	case End:
		return "end"
	case Fixed:
		return "fixed"
	default:
		return fmt.Sprintf("unknown anchor %d", int(a))
	}
}

// sideKind is the natural kind of an endpoint: Infinite for an infinite
// bound, Closed otherwise.
func sideKind(b clock.Bound) Kind {
	if b.IsFinite() {
		return Closed
	}
	return Infinite
}

// floatKind is the kind floating gives an endpoint: Open for a finite
// bound, Infinite otherwise. Open is definitionally finite.
func floatKind(b clock.Bound) Kind {
	if b.IsFinite() {
		return Open
	}
	return Infinite
}

// seamOwner decides which operand of a sequential composition owns the
// junction instant, given the kinds meeting there: the left operand's
// right endpoint and the right operand's left endpoint. Exactly one of
// the two must be Closed and the other Open; the closed side owns the
// seam.
func seamOwner(l, r Kind) (Side, error) {
	switch {
	case l == Closed && r == Open:
		return Left, nil
	case l == Open && r == Closed:
		return Right, nil
	default:
		return 0, errors.Wrapf(ErrBadJunction, "junction kinds %v and %v", l, r)
	}
}
