package beam

import (
	"errors"
	"math"
	"testing"
)

func approxEqual(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= relTol*scale
}

func TestCalculateScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Result
	}{
		{
			// 120 in span, E 29000 ksi, I 200 in4, w 0.001 kip/in.
			// Expected values derived from the exact conversion factors:
			// w = 0.001*4.4482216153/0.0254 kN/m, L = 3.048 m.
			name: "us distributed",
			in: Input{
				Units:    UnitsUS,
				Span:     120,
				EMod:     29000,
				Inertia:  200,
				LoadKind: LoadDistributed,
				UDL:      0.001,
			},
			want: Result{
				ReactionKN:      0.266893296918,
				PeakShearKN:     0.266893296918,
				PeakMomentKNM:   0.20337269225151602,
				MaxDeflectionMM: 0.011824137931139483,
			},
		},
		{
			// 3 m span, E 200 GPa, I 8.333e7 mm4, P 10 kN.
			name: "metric midspan point",
			in: Input{
				Units:     UnitsMetric,
				Span:      3000,
				EMod:      200,
				Inertia:   8.333e7,
				LoadKind:  LoadMidspanPoint,
				PointLoad: 10,
			},
			want: Result{
				ReactionKN:      5,
				PeakShearKN:     5,
				PeakMomentKNM:   7.5,
				MaxDeflectionMM: 0.3375135005400216,
			},
		},
		{
			name: "metric distributed",
			in: Input{
				Units:    UnitsMetric,
				Span:     4000,
				EMod:     200,
				Inertia:  2e8,
				LoadKind: LoadDistributed,
				UDL:      0.005, // 5 kN/m
			},
			want: Result{
				ReactionKN:      10,
				PeakShearKN:     10,
				PeakMomentKNM:   10,
				MaxDeflectionMM: 5 * 5.0 * math.Pow(4.0, 4) / (384.0 * 2e8 * 2e-4) * 1000,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.in)
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			checks := []struct {
				field string
				got   float64
				want  float64
			}{
				{"ReactionKN", got.ReactionKN, tt.want.ReactionKN},
				{"PeakShearKN", got.PeakShearKN, tt.want.PeakShearKN},
				{"PeakMomentKNM", got.PeakMomentKNM, tt.want.PeakMomentKNM},
				{"MaxDeflectionMM", got.MaxDeflectionMM, tt.want.MaxDeflectionMM},
			}
			for _, c := range checks {
				if !approxEqual(c.got, c.want, 1e-9) {
					t.Errorf("%s = %v, want %v", c.field, c.got, c.want)
				}
			}
		})
	}
}

func TestReactionEqualsPeakShear(t *testing.T) {
	inputs := []Input{
		{Units: UnitsUS, Span: 200, EMod: 29000, Inertia: 510, LoadKind: LoadDistributed, UDL: 0.01},
		{Units: UnitsMetric, Span: 6000, EMod: 200, Inertia: 4.5e7, LoadKind: LoadMidspanPoint, PointLoad: 25},
	}
	for _, in := range inputs {
		res, err := Calculate(in)
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}
		if res.ReactionKN != res.PeakShearKN {
			t.Errorf("ReactionKN %v != PeakShearKN %v", res.ReactionKN, res.PeakShearKN)
		}
	}
}

// The same physical beam entered in US and in metric units must give the
// same displayed result.
func TestUnitSystemInvariance(t *testing.T) {
	us := Input{
		Units:    UnitsUS,
		Span:     120,
		EMod:     29000,
		Inertia:  200,
		LoadKind: LoadDistributed,
		UDL:      0.001,
	}
	metric := Input{
		Units:    UnitsMetric,
		Span:     120 * 25.4,                       // in -> mm
		EMod:     29000 * 0.006894757293168361,     // ksi -> GPa
		Inertia:  200 * math.Pow(25.4, 4),          // in4 -> mm4
		LoadKind: LoadDistributed,
		UDL:      0.001 * 4.4482216153 / 25.4, // kip/in -> kN/mm
	}
	a, err := Calculate(us)
	if err != nil {
		t.Fatalf("Calculate(us) error = %v", err)
	}
	b, err := Calculate(metric)
	if err != nil {
		t.Fatalf("Calculate(metric) error = %v", err)
	}
	pairs := []struct {
		field string
		a, b  float64
	}{
		{"ReactionKN", a.ReactionKN, b.ReactionKN},
		{"PeakShearKN", a.PeakShearKN, b.PeakShearKN},
		{"PeakMomentKNM", a.PeakMomentKNM, b.PeakMomentKNM},
		{"MaxDeflectionMM", a.MaxDeflectionMM, b.MaxDeflectionMM},
	}
	for _, p := range pairs {
		if !approxEqual(p.a, p.b, 1e-6) {
			t.Errorf("%s: us %v, metric %v", p.field, p.a, p.b)
		}
	}
}

func TestCalculateIdempotent(t *testing.T) {
	in := Input{Units: UnitsMetric, Span: 5000, EMod: 210, Inertia: 8.356e7, LoadKind: LoadMidspanPoint, PointLoad: 12.5}
	first, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	second, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if first != second {
		t.Errorf("repeated call drifted: %+v vs %+v", first, second)
	}
}

func TestCalculateIncomplete(t *testing.T) {
	valid := Input{Units: UnitsMetric, Span: 3000, EMod: 200, Inertia: 8.333e7, LoadKind: LoadMidspanPoint, PointLoad: 10, UDL: 0.004}

	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"zero span distributed", func(in *Input) { in.LoadKind = LoadDistributed; in.Span = 0 }},
		{"zero span point", func(in *Input) { in.Span = 0 }},
		{"zero modulus", func(in *Input) { in.EMod = 0 }},
		{"zero inertia", func(in *Input) { in.Inertia = 0 }},
		{"zero active point load", func(in *Input) { in.PointLoad = 0 }},
		{"zero active udl", func(in *Input) { in.LoadKind = LoadDistributed; in.UDL = 0 }},
		{"unknown unit system", func(in *Input) { in.Units = "imperial" }},
		{"unknown load kind", func(in *Input) { in.LoadKind = "triangular" }},
		{"empty input", func(in *Input) { *in = Input{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			res, err := Calculate(in)
			if !errors.Is(err, ErrIncomplete) {
				t.Fatalf("Calculate() error = %v, want ErrIncomplete", err)
			}
			if res != (Result{}) {
				t.Errorf("got non-empty result %+v alongside the no-result signal", res)
			}
		})
	}
}

// An unused magnitude field must not change the outcome: switching the
// load kind selects exactly one field and ignores the other.
func TestInactiveMagnitudeIgnored(t *testing.T) {
	base := Input{Units: UnitsUS, Span: 180, EMod: 29000, Inertia: 350, LoadKind: LoadDistributed, UDL: 0.002}
	dirty := base
	dirty.PointLoad = 99

	a, err := Calculate(base)
	if err != nil {
		t.Fatalf("Calculate(base) error = %v", err)
	}
	b, err := Calculate(dirty)
	if err != nil {
		t.Fatalf("Calculate(dirty) error = %v", err)
	}
	if a != b {
		t.Errorf("inactive point load leaked into distributed result: %+v vs %+v", a, b)
	}

	base.LoadKind = LoadMidspanPoint
	base.PointLoad = 4
	dirty = base
	dirty.UDL = 77
	a, err = Calculate(base)
	if err != nil {
		t.Fatalf("Calculate(base) error = %v", err)
	}
	b, err = Calculate(dirty)
	if err != nil {
		t.Fatalf("Calculate(dirty) error = %v", err)
	}
	if a != b {
		t.Errorf("inactive UDL leaked into point result: %+v vs %+v", a, b)
	}
}
