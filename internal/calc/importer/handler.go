package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	beam "Camber/internal/calc/beam"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type BeamImportResult struct {
	Count   int           `json:"count"`
	Skipped int           `json:"skipped"`
	Results []beam.Result `json:"results"`
}

// Beam accepts an xlsx upload with one beam per row:
// units | span | e_mod | inertia | load_kind | magnitude
// The first row is a header. Rows that do not parse or do not pass the
// completeness gate are skipped and counted, not fatal.
func (h *Handler) Beam(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	out := BeamImportResult{Results: []beam.Result{}}
	for i := 1; i < len(rows); i++ {
		input, err := parseBeamRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := beam.Calculate(input)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func parseBeamRow(row []string) (beam.Input, error) {
	if len(row) < 6 {
		return beam.Input{}, fmt.Errorf("bad row")
	}
	units, err := parseUnits(row[0])
	if err != nil {
		return beam.Input{}, err
	}
	span, err := toFloat(row[1])
	if err != nil {
		return beam.Input{}, err
	}
	emod, err := toFloat(row[2])
	if err != nil {
		return beam.Input{}, err
	}
	inertia, err := toFloat(row[3])
	if err != nil {
		return beam.Input{}, err
	}
	kind, err := parseLoadKind(row[4])
	if err != nil {
		return beam.Input{}, err
	}
	magnitude, err := toFloat(row[5])
	if err != nil {
		return beam.Input{}, err
	}

	input := beam.Input{
		Units:    units,
		Span:     span,
		EMod:     emod,
		Inertia:  inertia,
		LoadKind: kind,
	}
	if kind == beam.LoadMidspanPoint {
		input.PointLoad = magnitude
	} else {
		input.UDL = magnitude
	}
	return input, nil
}

func parseUnits(s string) (beam.UnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "us", "imperial":
		return beam.UnitsUS, nil
	case "metric", "si":
		return beam.UnitsMetric, nil
	}
	return "", fmt.Errorf("unknown unit system %q", s)
}

func parseLoadKind(s string) (beam.LoadKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distributed", "udl":
		return beam.LoadDistributed, nil
	case "point", "midspan":
		return beam.LoadMidspanPoint, nil
	}
	return "", fmt.Errorf("unknown load kind %q", s)
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(strings.TrimSpace(s), "%f", &v)
	return v, err
}
