package beam

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerCalc(t *testing.T) {
	h := &Handler{}

	body := `{"units":"metric","span":3000,"e_mod":200,"inertia":8.333e7,"load_kind":"point","point_load":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/beam/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	var res Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if res.ReactionKN != 5 || res.PeakMomentKNM != 7.5 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestHandlerCalcIncomplete(t *testing.T) {
	h := &Handler{}

	body := `{"units":"metric","span":0,"e_mod":200,"inertia":8.333e7,"load_kind":"point","point_load":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/beam/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestHandlerCalcBadPayload(t *testing.T) {
	h := &Handler{}

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/beam/calc", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
