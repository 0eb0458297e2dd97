package params

import (
	"cosmossdk.io/math"
)

var (
	MilliCents = math.NewInt(1_000_000_000)
	Cents      = MilliCents.MulRaw(1_000)
	Dollars    = Cents.MulRaw(100)
)

// DollarsOf converts a whole number of Dollars to base units.
func DollarsOf(n int64) math.Int {
	return Dollars.MulRaw(n)
}
