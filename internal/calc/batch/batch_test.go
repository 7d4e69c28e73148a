package batch

import (
	"testing"

	beam "Camber/internal/calc/beam"
)

func TestCalculateBeamEmpty(t *testing.T) {
	if _, err := CalculateBeam(BeamBatchInput{}); err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestCalculateBeamMixed(t *testing.T) {
	in := BeamBatchInput{Items: []beam.Input{
		{Units: beam.UnitsMetric, Span: 3000, EMod: 200, Inertia: 8.333e7, LoadKind: beam.LoadMidspanPoint, PointLoad: 10},
		{Units: beam.UnitsMetric, Span: 0, EMod: 200, Inertia: 8.333e7, LoadKind: beam.LoadMidspanPoint, PointLoad: 10},
		{Units: beam.UnitsUS, Span: 120, EMod: 29000, Inertia: 200, LoadKind: beam.LoadDistributed, UDL: 0.001},
	}}
	out, err := CalculateBeam(in)
	if err != nil {
		t.Fatalf("CalculateBeam() error = %v", err)
	}
	if len(out.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(out.Results))
	}
	if !out.Results[0].OK || out.Results[0].Result == nil {
		t.Errorf("item 0 should evaluate, got %+v", out.Results[0])
	}
	if out.Results[0].Result.ReactionKN != 5 {
		t.Errorf("item 0 reaction = %v, want 5", out.Results[0].Result.ReactionKN)
	}
	if out.Results[1].OK || out.Results[1].Result != nil {
		t.Errorf("item 1 is incomplete, got %+v", out.Results[1])
	}
	if out.Results[1].Error == "" {
		t.Error("item 1 should carry the incomplete-input message")
	}
	if !out.Results[2].OK {
		t.Errorf("item 2 should evaluate, got %+v", out.Results[2])
	}
}
