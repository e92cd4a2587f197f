// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// MarchEquinox returns the date of the vernal/spring equinox (UT).
func MarchEquinox(year int) Date {
	return JDEToDate(solstice.March(year))
}

// JuneSolstice returns the date of the summer solstice (UT).
func JuneSolstice(year int) Date {
	return JDEToDate(solstice.June(year))
}

// SeptemberEquinox returns the date of the autumnal equinox (UT).
func SeptemberEquinox(year int) Date {
	return JDEToDate(solstice.September(year))
}

// DecemberSolstice returns the date of the winter solstice (UT).
func DecemberSolstice(year int) Date {
	return JDEToDate(solstice.December(year))
}
