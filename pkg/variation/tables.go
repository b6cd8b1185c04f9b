package variation

import "github.com/edwin0cheng/omega-tile/pkg/corner"

// Tuple is one (a,b,c,d) corner-code combination a tile builder must
// produce a tile for.
type Tuple struct {
	A, B, C, D corner.Code
}

// v4Tuples is the literal table for paper Figure 7(a). The order is a
// contract: tests depend on it.
var v4Tuples = []Tuple{
	{corner.R, corner.G, corner.B, corner.Y},
	{corner.G, corner.B, corner.Y, corner.R},
	{corner.B, corner.Y, corner.R, corner.G},
	{corner.Y, corner.R, corner.G, corner.B},
}

// v16Tuples is the literal table for paper Figure 8(a). The order is a
// contract: tests depend on it.
var v16Tuples = []Tuple{
	{corner.R, corner.G, corner.G, corner.B},
	{corner.R, corner.B, corner.G, corner.Y},
	{corner.R, corner.G, corner.B, corner.Y},
	{corner.R, corner.B, corner.B, corner.R},

	{corner.G, corner.B, corner.B, corner.Y},
	{corner.G, corner.Y, corner.B, corner.R},
	{corner.G, corner.B, corner.Y, corner.R},
	{corner.G, corner.Y, corner.Y, corner.G},

	{corner.B, corner.Y, corner.Y, corner.R},
	{corner.B, corner.R, corner.Y, corner.G},
	{corner.B, corner.Y, corner.R, corner.G},
	{corner.B, corner.R, corner.R, corner.B},

	{corner.Y, corner.R, corner.R, corner.G},
	{corner.Y, corner.G, corner.R, corner.B},
	{corner.Y, corner.R, corner.G, corner.B},
	{corner.Y, corner.G, corner.G, corner.Y},
}

// Tuples returns the tuple list for v in its fixed order. Full is
// generated lexicographically over (a,b,c,d) with a outermost, since
// listing all 256 combinations by hand would just reproduce that same
// loop with extra steps.
func Tuples(v Variation) []Tuple {
	switch v {
	case V4:
		return v4Tuples
	case V16:
		return v16Tuples
	case Full:
		tuples := make([]Tuple, 0, 256)
		for _, a := range corner.Codes {
			for _, b := range corner.Codes {
				for _, c := range corner.Codes {
					for _, d := range corner.Codes {
						tuples = append(tuples, Tuple{a, b, c, d})
					}
				}
			}
		}
		return tuples
	default:
		return nil
	}
}
