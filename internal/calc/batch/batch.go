package batch

import (
	"errors"
	"fmt"

	beam "Camber/internal/calc/beam"
)

type BeamBatchInput struct {
	Items []beam.Input `json:"items"`
}

// ItemResult reports one beam from the batch. An incomplete item does
// not fail the whole batch: it comes back with OK=false and no numbers,
// mirroring the no-result signal of a single evaluation.
type ItemResult struct {
	OK     bool         `json:"ok"`
	Result *beam.Result `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

type BeamBatchResult struct {
	Results []ItemResult `json:"results"`
}

func CalculateBeam(in BeamBatchInput) (BeamBatchResult, error) {
	if len(in.Items) == 0 {
		return BeamBatchResult{}, fmt.Errorf("no items")
	}
	out := BeamBatchResult{Results: make([]ItemResult, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := beam.Calculate(item)
		if err != nil {
			if !errors.Is(err, beam.ErrIncomplete) {
				return BeamBatchResult{}, err
			}
			out.Results = append(out.Results, ItemResult{OK: false, Error: err.Error()})
			continue
		}
		out.Results = append(out.Results, ItemResult{OK: true, Result: &res})
	}
	return out, nil
}
