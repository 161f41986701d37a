package engine

import "errors"

var (
	// ErrNoData means the series store holds no records; the resolver
	// cannot produce a result.
	ErrNoData = errors.New("engine: no data in series")

	// ErrNoPreviousClose means no earlier record exists to compute a
	// price direction from.
	ErrNoPreviousClose = errors.New("engine: no previous close available")

	// ErrCloseUnavailable means the resolved or previous record has no
	// close price.
	ErrCloseUnavailable = errors.New("engine: close price unavailable")

	// ErrUnknownCommodity means the threshold registry holds no entry
	// for the requested commodity key.
	ErrUnknownCommodity = errors.New("engine: unknown commodity")
)
