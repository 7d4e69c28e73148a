package beam

import "math"

// UnitSystem names the unit system an Input is expressed in. Results are
// always reported in fixed display units (kN, kN*m, mm) no matter which
// system the input used, so sessions stay directly comparable.
type UnitSystem string

const (
	UnitsUS     UnitSystem = "us"     // in, ksi, in4, kip/in, kip
	UnitsMetric UnitSystem = "metric" // mm, GPa, mm4, kN/mm, kN
)

// LoadKind selects which elementary load case to solve.
type LoadKind string

const (
	LoadDistributed  LoadKind = "distributed" // uniform load over the full span
	LoadMidspanPoint LoadKind = "point"       // concentrated load at midspan
)

// Exact conversion factors. These must not be rounded or replaced with
// looser approximations; the test suite pins results against them.
const (
	inchToMeter = 0.0254
	mmToMeter   = 0.001
	ksiToGPa    = 0.006894757293168361
	kipToKN     = 4.4482216153
	gpaToKNM2   = 1e6 // 1 GPa = 1e6 kN/m2
)

// normalized carries one beam in the internal SI-derived system: span in
// meters, modulus in kN/m2, inertia in m4, and a single load value whose
// meaning follows kind (kN/m for distributed, kN for point).
type normalized struct {
	kind    LoadKind
	spanM   float64
	modKNM2 float64
	inerM4  float64
	load    float64
}

// normalize converts the physically meaningful fields of in from its
// declared unit system. Only the magnitude matching the active load kind
// is carried forward, so the inactive field can never reach the solver.
// Values are kept at full precision; no rounding happens here.
func normalize(in Input) normalized {
	n := normalized{kind: in.LoadKind}
	switch in.Units {
	case UnitsUS:
		n.spanM = in.Span * inchToMeter
		n.modKNM2 = in.EMod * ksiToGPa * gpaToKNM2
		n.inerM4 = in.Inertia * math.Pow(inchToMeter, 4)
		if in.LoadKind == LoadMidspanPoint {
			n.load = in.PointLoad * kipToKN
		} else {
			n.load = in.UDL * (kipToKN / inchToMeter)
		}
	case UnitsMetric:
		n.spanM = in.Span * mmToMeter
		n.modKNM2 = in.EMod * gpaToKNM2 // already GPa
		n.inerM4 = in.Inertia * math.Pow(mmToMeter, 4)
		if in.LoadKind == LoadMidspanPoint {
			n.load = in.PointLoad // already kN
		} else {
			n.load = in.UDL / mmToMeter
		}
	}
	return n
}

// SpanUnit and friends give the display label for an input field under
// the given unit system. Used by the report and the CLI.
func SpanUnit(u UnitSystem) string {
	if u == UnitsUS {
		return "in"
	}
	return "mm"
}

func ModulusUnit(u UnitSystem) string {
	if u == UnitsUS {
		return "ksi"
	}
	return "GPa"
}

func InertiaUnit(u UnitSystem) string {
	if u == UnitsUS {
		return "in4"
	}
	return "mm4"
}

func LoadUnit(u UnitSystem, k LoadKind) string {
	if k == LoadMidspanPoint {
		if u == UnitsUS {
			return "kip"
		}
		return "kN"
	}
	if u == UnitsUS {
		return "kip/in"
	}
	return "kN/mm"
}
