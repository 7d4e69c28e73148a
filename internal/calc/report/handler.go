package report

import (
	"encoding/json"
	"errors"
	"net/http"

	beam "Camber/internal/calc/beam"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	pdf, err := Build(input)
	if err != nil {
		if errors.Is(err, beam.ErrIncomplete) {
			http.Error(w, "Span, modulus, inertia and the active load magnitude are required", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Report generation error", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"beam-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
