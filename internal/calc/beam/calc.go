package beam

import (
	"errors"
	"math"
)

// Input is one simply supported beam carrying a single elementary load
// case. Field units follow Units: Span in in/mm, EMod in ksi/GPa,
// Inertia in in4/mm4, UDL in kip/in / kN/mm, PointLoad in kip/kN. Only
// the magnitude matching LoadKind is read; the other is ignored.
type Input struct {
	Units     UnitSystem `json:"units"`
	Span      float64    `json:"span"`
	EMod      float64    `json:"e_mod"`
	Inertia   float64    `json:"inertia"`
	LoadKind  LoadKind   `json:"load_kind"`
	UDL       float64    `json:"udl"`
	PointLoad float64    `json:"point_load"`
}

// Result is always expressed in fixed display units regardless of the
// input unit system: force in kN, moment in kN*m, deflection in mm.
type Result struct {
	ReactionKN      float64 `json:"reaction_kn"`
	PeakShearKN     float64 `json:"peak_shear_kn"`
	PeakMomentKNM   float64 `json:"peak_moment_knm"`
	MaxDeflectionMM float64 `json:"max_deflection_mm"`
}

// ErrIncomplete is the no-result signal: a required field is zero or
// missing. This is a normal outcome, not a fault; callers should prompt
// for the missing value instead of showing stale or zero-filled numbers.
var ErrIncomplete = errors.New("incomplete input")

// Calculate evaluates the beam. It is pure and deterministic: identical
// input always yields an identical result, and nothing is cached between
// calls. An input that fails the completeness gate returns ErrIncomplete
// and never a partially computed Result.
func Calculate(in Input) (Result, error) {
	if err := check(in); err != nil {
		return Result{}, err
	}
	return solve(normalize(in)), nil
}

// check gates the solver: span, modulus, inertia and the active load
// magnitude must all be non-zero. Zero is treated the same as missing,
// which also keeps the deflection denominator away from zero.
func check(in Input) error {
	if in.Units != UnitsUS && in.Units != UnitsMetric {
		return ErrIncomplete
	}
	if in.Span == 0 || in.EMod == 0 || in.Inertia == 0 {
		return ErrIncomplete
	}
	switch in.LoadKind {
	case LoadDistributed:
		if in.UDL == 0 {
			return ErrIncomplete
		}
	case LoadMidspanPoint:
		if in.PointLoad == 0 {
			return ErrIncomplete
		}
	default:
		return ErrIncomplete
	}
	return nil
}

func solve(n normalized) Result {
	L := n.spanM
	var shear, moment, defl float64
	switch n.kind {
	case LoadMidspanPoint:
		// P at midspan: R = P/2, M = P L / 4, d = P L^3 / (48 E I)
		shear = n.load / 2
		moment = n.load * L / 4
		defl = n.load * math.Pow(L, 3) / (48.0 * n.modKNM2 * n.inerM4)
	default:
		// UDL over full span: R = w L / 2, M = w L^2 / 8, d = 5 w L^4 / (384 E I)
		shear = n.load * L / 2
		moment = n.load * L * L / 8
		defl = 5.0 * n.load * math.Pow(L, 4) / (384.0 * n.modKNM2 * n.inerM4)
	}
	return Result{
		ReactionKN:      shear, // shear peaks at the supports and equals the reaction
		PeakShearKN:     shear,
		PeakMomentKNM:   moment,
		MaxDeflectionMM: defl * 1000.0,
	}
}
