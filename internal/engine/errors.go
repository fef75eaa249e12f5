package engine

import "errors"

// Sentinel errors returned by Context. They are wrapped with detail, so
// compare with errors.Is.
var (
	// ErrOversizedRectangle is returned before any placement when an input
	// rectangle is wider or taller than a page. Inputs are left untouched.
	ErrOversizedRectangle = errors.New("rectangle larger than page")

	// ErrPageAllocationExhausted is returned when packing needs more pages
	// than the configured cap allows. Placements made so far are kept.
	ErrPageAllocationExhausted = errors.New("page allocation limit reached")

	// ErrInvalidPageSize is returned by Init for non-positive page sizes.
	ErrInvalidPageSize = errors.New("page width and height must be positive")

	// ErrInvalidRectangle is returned for rectangles with negative sides.
	ErrInvalidRectangle = errors.New("rectangle width and height must not be negative")

	// ErrNotInitialized is returned by Pack on a context that was cleared
	// or never initialized.
	ErrNotInitialized = errors.New("packing context not initialized")

	// ErrInvariant is returned by Verify when the free or used sets are inconsistent.
	ErrInvariant = errors.New("packing invariant violated")
)
