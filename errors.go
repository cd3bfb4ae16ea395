package active

import "github.com/pkg/errors"

// These errors report misuse of the composition API. None of them occur
// through the documented construction paths: floating a value, sealing
// its open endpoints and appending. Callers match them with errors.Is;
// the returned error carries additional context about the failing
// operand.
var (
	// ErrNotOpen is returned by Seal when the endpoint has already been
	// sealed or was never floated.
	ErrNotOpen = errors.New("endpoint is not open")

	// ErrNotFinite is returned by Seal when the endpoint has no finite
	// bound to fix a value at.
	ErrNotFinite = errors.New("endpoint is not finite")

	// ErrMissingAnchor is returned by Append when an operand lacks the
	// anchor needed to align the junction.
	ErrMissingAnchor = errors.New("missing required anchor")

	// ErrBadJunction is returned by Append when the two endpoint kinds
	// meeting at the junction are not exactly one open and one closed.
	ErrBadJunction = errors.New("junction must pair one open endpoint with one closed endpoint")

	// ErrEraNotFinite is returned by operations that need both bounds of
	// the era, such as Backwards and Simulate.
	ErrEraNotFinite = errors.New("era is not finite")

	// ErrBadStretch is returned by Stretch for factors that are not
	// positive.
	ErrBadStretch = errors.New("stretch factor must be positive")

	// ErrBadRate is returned by Simulate for sample rates that are not
	// positive.
	ErrBadRate = errors.New("sample rate must be positive")

	// ErrNoValues is returned by Discrete when no values are given.
	ErrNoValues = errors.New("no values given")
)
