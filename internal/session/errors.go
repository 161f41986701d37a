package session

import "errors"

var (
	// ErrDateOutOfRange means the selected date falls outside the
	// series' known range; the prior selection is retained.
	ErrDateOutOfRange = errors.New("session: selected date outside known range")

	// ErrInvalidDate means the date string could not be parsed.
	ErrInvalidDate = errors.New("session: unparseable date")

	ErrUnknownAction    = errors.New("session: unknown action type")
	ErrInvalidPosture   = errors.New("session: invalid posture")
	ErrInvalidIndex     = errors.New("session: invalid index name")
	ErrInvalidCommodity = errors.New("session: unsupported commodity")
)
