package history

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"Camber/internal/auth"
	beam "Camber/internal/calc/beam"
	"Camber/internal/repo"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo repo.Repository
}

type saveResponse struct {
	ID     int         `json:"id"`
	Result beam.Result `json:"result"`
}

// Save evaluates the posted beam and stores the run for the current
// user. The computation itself stays stateless: the stored row is a
// snapshot for later reading, never an input to a future evaluation.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input beam.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := beam.Calculate(input)
	if err != nil {
		if errors.Is(err, beam.ErrIncomplete) {
			http.Error(w, "Span, modulus, inertia and the active load magnitude are required", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	magnitude := input.UDL
	if input.LoadKind == beam.LoadMidspanPoint {
		magnitude = input.PointLoad
	}
	id, err := h.Repo.SaveCalculation(r.Context(), userID, repo.Calculation{
		Units:           string(input.Units),
		Span:            input.Span,
		EMod:            input.EMod,
		Inertia:         input.Inertia,
		LoadKind:        string(input.LoadKind),
		Magnitude:       magnitude,
		ReactionKN:      res.ReactionKN,
		PeakShearKN:     res.PeakShearKN,
		PeakMomentKNM:   res.PeakMomentKNM,
		MaxDeflectionMM: res.MaxDeflectionMM,
	})
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saveResponse{ID: id, Result: res})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := h.Repo.ListCalculations(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []repo.Calculation{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	item, err := h.Repo.GetCalculation(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Calculation not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}
