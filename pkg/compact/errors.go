package compact

import "errors"

// Decode failures are distinct sentinel errors so callers can tell a
// user exactly which part of a pasted code is broken.
var (
	// ErrMalformed means the string does not have seven dot-separated
	// fields.
	ErrMalformed = errors.New("compact: malformed wire string")

	// ErrVersion means the leading version field is not 0.
	ErrVersion = errors.New("compact: unsupported version")

	// ErrVariant means the tile variant field is not f or l.
	ErrVariant = errors.New("compact: invalid tile variant")

	// ErrDimensions means the row or column count is unparsable,
	// non-positive, or beyond the supported maximum.
	ErrDimensions = errors.New("compact: invalid dimensions")

	// ErrScrewData means the screw field is not valid base64url or
	// does not decode to exactly three bytes.
	ErrScrewData = errors.New("compact: invalid screw data")

	// ErrTileData means the tile field is not valid base64url or
	// holds fewer bytes than the declared dimensions require.
	ErrTileData = errors.New("compact: insufficient tile data")

	// ErrFeatureData means the feature field is not valid base64url
	// or holds fewer bytes than the declared dimensions require.
	ErrFeatureData = errors.New("compact: insufficient feature data")

	// ErrScrewRange means a screw measurement cannot be represented
	// in the wire format's 0 to 25.5mm range.
	ErrScrewRange = errors.New("compact: screw size outside wire range")
)
