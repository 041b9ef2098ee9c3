package config

import (
	"math"
	"regexp"
	"strconv"

	"github.com/samber/oops"
)

// CapacityUnit is a power-of-2 size unit for capacity strings such as
// "10GB" or "1.5TB".
type CapacityUnit int

const (
	Byte CapacityUnit = iota
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
	Petabyte
)

// capacityPattern matches a non-negative decimal number, optional
// whitespace, then an alphabetic unit token.
var capacityPattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*([a-zA-Z]+)\s*$`)

func (u CapacityUnit) String() string {
	switch u {
	case Byte:
		return "B"
	case Kilobyte:
		return "kB"
	case Megabyte:
		return "MB"
	case Gigabyte:
		return "GB"
	case Terabyte:
		return "TB"
	case Petabyte:
		return "PB"
	}
	return "invalid"
}

func bytesPerCapacityUnit(u CapacityUnit) float64 {
	switch u {
	case Byte:
		return 1
	case Kilobyte:
		return math.Exp2(10)
	case Megabyte:
		return math.Exp2(20)
	case Gigabyte:
		return math.Exp2(30)
	case Terabyte:
		return math.Exp2(40)
	case Petabyte:
		return math.Exp2(50)
	}
	return 0
}

// capacityUnitOf resolves a unit token. Tokens are case-sensitive: "kB" is
// a kilobyte, "KB" is not a unit.
func capacityUnitOf(token string) (CapacityUnit, error) {
	switch token {
	case "B":
		return Byte, nil
	case "kB":
		return Kilobyte, nil
	case "MB":
		return Megabyte, nil
	case "GB":
		return Gigabyte, nil
	case "TB":
		return Terabyte, nil
	case "PB":
		return Petabyte, nil
	}
	return 0, oops.Wrapf(ErrUnknownUnit, "invalid capacity unit %q", token)
}

// ParseCapacity converts a capacity string with a unit suffix into the
// equivalent count of the target unit. The conversion goes through float64
// and truncates on return, so extreme unit ratios lose precision.
func ParseCapacity(from string, to CapacityUnit) (uint64, error) {
	m := capacityPattern.FindStringSubmatch(from)
	if m == nil {
		return 0, oops.Wrapf(ErrMalformedCapacity, "invalid capacity string %q", from)
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, oops.Wrapf(ErrMalformedCapacity, "invalid capacity string %q", from)
	}
	unit, err := capacityUnitOf(m[2])
	if err != nil {
		return 0, err
	}
	return uint64(value * (bytesPerCapacityUnit(unit) / bytesPerCapacityUnit(to))), nil
}
