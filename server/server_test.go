package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/gulfpulse/gulfpulse/charts"
	"github.com/gulfpulse/gulfpulse/dataset"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return New(dataset.Build(), log.New(io.Discard))
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r := newTestRouter()
	w := doGet(t, r, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestDatasetEndpoint(t *testing.T) {
	r := newTestRouter()
	w := doGet(t, r, "/api/dataset")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var ds dataset.Dataset
	if err := json.Unmarshal(w.Body.Bytes(), &ds); err != nil {
		t.Fatalf("response is not a dataset: %v", err)
	}
	if len(ds.Members) != 6 {
		t.Fatalf("members = %d, want 6", len(ds.Members))
	}
}

func TestChartListEndpoint(t *testing.T) {
	r := newTestRouter()
	w := doGet(t, r, "/api/charts")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Charts []string `json:"charts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Charts) != len(charts.Names) {
		t.Fatalf("charts = %v", body.Charts)
	}
}

func TestChartEndpointBuildsSpec(t *testing.T) {
	r := newTestRouter()
	w := doGet(t, r, "/api/charts/world-ranking?method=simple")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var spec charts.ChartSpec
	if err := json.Unmarshal(w.Body.Bytes(), &spec); err != nil {
		t.Fatal(err)
	}
	if spec.ChartType != charts.TypeBar {
		t.Fatalf("chartType = %q", spec.ChartType)
	}
}

func TestChartEndpointHighlightParsing(t *testing.T) {
	r := newTestRouter()
	a := doGet(t, r, "/api/charts/trajectory")
	b := doGet(t, r, "/api/charts/trajectory?highlight=All")
	if a.Code != http.StatusOK || b.Code != http.StatusOK {
		t.Fatalf("statuses = %d, %d", a.Code, b.Code)
	}
	if a.Body.String() != b.Body.String() {
		t.Fatal("no highlight and highlight=All must serve identical charts")
	}

	w := doGet(t, r, "/api/charts/trajectory?highlight=UAE,Qatar")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestErrorMapping(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		path string
		want int
	}{
		{"/api/charts/radar?entity=France", http.StatusNotFound},
		{"/api/charts/world-ranking?method=median", http.StatusBadRequest},
		{"/api/charts/sankey", http.StatusBadRequest},
		{"/api/world-ranking?method=median", http.StatusBadRequest},
		{"/api/charts/trajectory?highlight=France", http.StatusNotFound},
	}
	for _, tc := range cases {
		w := doGet(t, r, tc.path)
		if w.Code != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.path, w.Code, tc.want)
		}
		var body struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Error == "" {
			t.Fatalf("%s: error body = %s", tc.path, w.Body.String())
		}
	}
}

func TestWorldRankingEndpoint(t *testing.T) {
	r := newTestRouter()
	w := doGet(t, r, "/api/world-ranking")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var table charts.TableData
	if err := json.Unmarshal(w.Body.Bytes(), &table); err != nil {
		t.Fatal(err)
	}
	if len(table.Rows) != 70 {
		t.Fatalf("rows = %d, want 70", len(table.Rows))
	}
}

func TestNarrativeEndpoint(t *testing.T) {
	r := newTestRouter()
	w := doGet(t, r, "/api/narrative")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var n charts.Narrative
	if err := json.Unmarshal(w.Body.Bytes(), &n); err != nil {
		t.Fatal(err)
	}
	if n.Headline == "" || len(n.Findings) == 0 {
		t.Fatalf("narrative = %+v", n)
	}
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter()
	w := doGet(t, r, "/healthz")
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatal("request id header missing")
	}
}
