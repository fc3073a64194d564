package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the unit a length was written in.
type Unit int

const (
	UnitPX      Unit = iota // CSS pixels, also the unit of unsuffixed numbers
	UnitPT                  // points, 72 per inch
	UnitPercent             // relative to a reference length
)

// String returns the unit suffix.
func (u Unit) String() string {
	switch u {
	case UnitPT:
		return "pt"
	case UnitPercent:
		return "%"
	default:
		return "px"
	}
}

// Length keeps a number together with the unit it was written in.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// PX converts the length to CSS pixels at 96 dpi. Percentages resolve
// against reference.
func (l Length) PX(reference float64) float64 {
	switch l.Unit {
	case UnitPT:
		return l.Value * 96 / 72
	case UnitPercent:
		return reference * l.Value / 100
	default:
		return l.Value
	}
}

// ParseLength reads "48", "48px", "36pt" or "8%".
func ParseLength(value string) (Length, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	unit := UnitPX
	for _, suf := range []struct {
		s string
		u Unit
	}{{"px", UnitPX}, {"pt", UnitPT}, {"%", UnitPercent}} {
		if num, ok := strings.CutSuffix(v, suf.s); ok {
			v, unit = strings.TrimSpace(num), suf.u
			break
		}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return Length{}, fmt.Errorf("无法解析长度 %q", value)
	}
	return Length{Value: f, Unit: unit}, nil
}
