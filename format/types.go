package format

// Direction selects the sort order of an encoded key component.
type Direction uint8

const (
	Ascending  Direction = 0x1 // Ascending keeps natural value order.
	Descending Direction = 0x2 // Descending reverses natural value order.
)

const (
	// MaxMagnitudeLen is the largest number of magnitude bytes following a length prefix.
	MaxMagnitudeLen = 8

	// MaxEncodedLen is the largest encoded size of a single value, prefix included.
	MaxEncodedLen = 1 + MaxMagnitudeLen

	// MinDescendingPrefix is the smallest length prefix a descending encoding can carry (^8).
	MinDescendingPrefix = 0xFF - MaxMagnitudeLen
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "Ascending"
	case Descending:
		return "Descending"
	default:
		return "Unknown"
	}
}

// IsValid reports whether d is one of the defined directions.
func (d Direction) IsValid() bool {
	return d == Ascending || d == Descending
}
