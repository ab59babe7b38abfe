package tract

import "strings"

// Widths of the GeoID components.
const (
	StateWidth  = 2
	CountyWidth = 3
	TractWidth  = 6
	GeoIDWidth  = StateWidth + CountyWidth + TractWidth
)

// basicWidth is the width of the basic tract number, without the two-digit suffix.
const basicWidth = 4

// PadTract normalises a tract code to six digits.
//
// Five-digit codes lose a leading zero in some responses and get it back; four- and
// three-digit codes are basic numbers missing their suffix and are right-padded. Codes
// shorter than three digits are basic tract numbers: left-padded to four digits with a
// "00" suffix. Codes of six or more digits are returned as given; GeoID callers must
// check the resulting width.
func PadTract(code string) string {
	switch n := len(code); {
	case n == 5:
		return "0" + code
	case n == 4:
		return code + "00"
	case n == 3:
		return code + "000"
	case n < 3:
		return strings.Repeat("0", basicWidth-n) + code + "00"
	default:
		return code
	}
}

// GeoID builds the composite tract identifier from state, county and tract codes.
func GeoID(state, county, tract string) string {
	return state + county + PadTract(tract)
}
