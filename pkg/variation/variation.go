package variation

import (
	"github.com/edwin0cheng/omega-tile/pkg/wtileerr"
)

// Variation selects which finite sub-family of tiles to build.
type Variation int

const (
	// V4 is the 4-tile family of paper Figure 7(a).
	V4 Variation = iota
	// V16 is the 16-tile family of paper Figure 8(a).
	V16
	// Full enumerates all 4^4 = 256 corner-code tuples.
	Full
)

// Count returns the number of tiles the variation enumerates.
func (v Variation) Count() int {
	switch v {
	case V4:
		return 4
	case V16:
		return 16
	case Full:
		return 256
	default:
		return 0
	}
}

// String returns the variation's canonical serialisation: "v4", "v16"
// or "full". Round-tripping through Parse is the identity.
func (v Variation) String() string {
	switch v {
	case V4:
		return "v4"
	case V16:
		return "v16"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Parse inverts String. Any input other than exactly "v4", "v16" or
// "full" is a wtileerr.Parse error.
func Parse(s string) (Variation, error) {
	switch s {
	case "v4":
		return V4, nil
	case "v16":
		return V16, nil
	case "full":
		return Full, nil
	default:
		return 0, wtileerr.New(wtileerr.Parse, "not a valid variation: "+s)
	}
}
