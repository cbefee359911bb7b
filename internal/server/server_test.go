package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/bs8110"
	"github.com/me-yeatz/Beamsafe-Mypro/internal/member"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(bs8110.Default()).Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestFootingEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/footing", map[string]float64{
		"axial_load_kn":     500,
		"soil_capacity_kpa": 150,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out member.FootingResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Side != 1.9 {
		t.Errorf("side = %.2f, want 1.9", out.Side)
	}
	if !out.Safe {
		t.Error("expected safe bearing verdict")
	}
}

func TestIncompleteInputAnswersIdle(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/beam", map[string]float64{})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	var out map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out["status"] != "idle" {
		t.Errorf("status = %q, want idle", out["status"])
	}
}

func TestPipelineEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/pipeline", map[string]any{
		"beam": map[string]float64{
			"span_m":            4,
			"tributary_width_m": 1.5,
			"live_load_kpa":     1.5,
		},
		"column_height_m":   3,
		"soil_capacity_kpa": 150,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out member.DesignResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Beam == nil || out.Column == nil || out.Footing == nil {
		t.Error("expected beam, column and footing stages in the response")
	}
	if out.GroundBeam != nil {
		t.Error("ground beam should be idle without a span")
	}
}

func TestBadPayload(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/beam", "application/json", bytes.NewReader([]byte("{not json")))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
