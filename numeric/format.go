package numeric

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Format returns the textual representation of v.
// Character domains (int8, uint8, int32) are always printed as their numeric code and never as a glyph.
// Floating point values use the shortest representation which round-trips for their precision.
func Format[T Number](v T) string {
	switch f := any(v).(type) {
	case int:
		return formatSigned(f)
	case int8:
		return formatSigned(f)
	case int16:
		return formatSigned(f)
	case int32:
		return formatSigned(f)
	case int64:
		return formatSigned(f)
	case uint:
		return formatUnsigned(f)
	case uint8:
		return formatUnsigned(f)
	case uint16:
		return formatUnsigned(f)
	case uint32:
		return formatUnsigned(f)
	case uint64:
		return formatUnsigned(f)
	case float32:
		return formatFloat(f, 32)
	case float64:
		return formatFloat(f, 64)
	default:
		return ""
	}
}

func formatSigned[S constraints.Signed](v S) string {
	return strconv.FormatInt(int64(v), 10)
}

func formatUnsigned[U constraints.Unsigned](v U) string {
	return strconv.FormatUint(uint64(v), 10)
}

func formatFloat[F constraints.Float](v F, bitSize int) string {
	return strconv.FormatFloat(float64(v), 'g', -1, bitSize)
}
