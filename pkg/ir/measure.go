package ir

import (
	"fmt"
	"strconv"
)

// Unit identifies the unit of a Measurement.
type Unit uint8

// Supported measurement units.
const (
	// UnitNone renders the bare number.
	UnitNone Unit = iota
	// UnitEm is the font-size of the relevant font.
	UnitEm
	// UnitEx is defined by the font's x-height.
	UnitEx
	// UnitPx is pixels, relative to the viewing device.
	UnitPx
	// UnitIn is inches; 1in equals 2.54cm.
	UnitIn
	// UnitCm is centimeters.
	UnitCm
	// UnitMm is millimeters.
	UnitMm
	// UnitPt is points, 1/72th of an inch.
	UnitPt
	// UnitPc is picas, 12 points.
	UnitPc
	// UnitPercent depends on the attribute the measurement is given for.
	UnitPercent
)

func (u Unit) String() string {
	switch u {
	case UnitEm:
		return "em"
	case UnitEx:
		return "ex"
	case UnitPx:
		return "px"
	case UnitIn:
		return "in"
	case UnitCm:
		return "cm"
	case UnitMm:
		return "mm"
	case UnitPt:
		return "pt"
	case UnitPc:
		return "pc"
	case UnitPercent:
		return "%"
	default:
		return ""
	}
}

// Measurement is a number with an optional unit.
type Measurement struct {
	Value float64
	Unit  Unit
}

func (m Measurement) String() string {
	return strconv.FormatFloat(m.Value, 'f', -1, 64) + m.Unit.String()
}

// Number creates a unitless measurement.
func Number(v float64) Measurement { return Measurement{Value: v} }

// Em creates a measurement in em units.
func Em(v float64) Measurement { return Measurement{Value: v, Unit: UnitEm} }

// Ex creates a measurement in ex units.
func Ex(v float64) Measurement { return Measurement{Value: v, Unit: UnitEx} }

// Px creates a measurement in pixels.
func Px(v float64) Measurement { return Measurement{Value: v, Unit: UnitPx} }

// In creates a measurement in inches.
func In(v float64) Measurement { return Measurement{Value: v, Unit: UnitIn} }

// Cm creates a measurement in centimeters.
func Cm(v float64) Measurement { return Measurement{Value: v, Unit: UnitCm} }

// Mm creates a measurement in millimeters.
func Mm(v float64) Measurement { return Measurement{Value: v, Unit: UnitMm} }

// Pt creates a measurement in points.
func Pt(v float64) Measurement { return Measurement{Value: v, Unit: UnitPt} }

// Pc creates a measurement in picas.
func Pc(v float64) Measurement { return Measurement{Value: v, Unit: UnitPc} }

// Percent creates a percentage measurement.
func Percent(v float64) Measurement { return Measurement{Value: v, Unit: UnitPercent} }

// ViewBox maps a region of user space onto a container element.
type ViewBox struct {
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
}

func (v ViewBox) String() string {
	return fmt.Sprintf("%s %s %s %s",
		strconv.FormatFloat(v.MinX, 'f', -1, 64),
		strconv.FormatFloat(v.MinY, 'f', -1, 64),
		strconv.FormatFloat(v.Width, 'f', -1, 64),
		strconv.FormatFloat(v.Height, 'f', -1, 64))
}
