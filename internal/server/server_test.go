package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cwbudde/algo-modulation/internal/config"
	"github.com/cwbudde/algo-modulation/internal/webdemo"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()

	cfg := config.Default()
	cfg.Plots.Width = 200
	cfg.Plots.Height = 100
	cfg.MaxConcurrentRenders = 1

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h, err := s.Handler()
	if err != nil {
		t.Fatalf("Handler() error = %v", err)
	}
	return s, h
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func postJSON(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return serve(h, req)
}

func TestIndexAndStaticPages(t *testing.T) {
	_, h := newTestServer(t)

	for _, path := range []string{"/", "/about", "/working"} {
		w := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "QPSK") && path != "/working" {
			t.Fatalf("GET %s: scheme list missing", path)
		}
	}
}

func TestSchemes(t *testing.T) {
	_, h := newTestServer(t)

	w := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/schemes", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got []webdemo.SchemeInfo
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if len(got) != 9 || got[8].Name != "QPSK" || got[8].Family != "digital" {
		t.Fatalf("schemes = %+v", got)
	}
}

func TestGenerateAPI(t *testing.T) {
	_, h := newTestServer(t)

	req := webdemo.DefaultRequest()
	req.MessageFrequency = 500 // clamps to 100
	w := postJSON(t, h, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}

	var resp struct {
		Scheme string   `json:"scheme"`
		Index  *float64 `json:"index"`
		Params struct {
			MessageFrequency float64 `json:"messageFrequency"`
		} `json:"params"`
		Time    []float64 `json:"time"`
		Message struct {
			Kind    string    `json:"kind"`
			Samples []float64 `json:"samples"`
		} `json:"message"`
		Modulated []float64         `json:"modulated"`
		Plots     map[string]string `json:"plots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if resp.Scheme != "AM" {
		t.Fatalf("scheme = %q, want AM", resp.Scheme)
	}
	if resp.Index == nil || *resp.Index != 0.5 {
		t.Fatalf("index = %v, want 0.5", resp.Index)
	}
	if resp.Params.MessageFrequency != 100 {
		t.Fatalf("clamped message frequency = %v, want 100", resp.Params.MessageFrequency)
	}
	if len(resp.Time) != 1000 || len(resp.Modulated) != 1000 || len(resp.Message.Samples) != 1000 {
		t.Fatalf("lengths = %d/%d/%d", len(resp.Time), len(resp.Modulated), len(resp.Message.Samples))
	}
	if resp.Message.Kind != "baseband" {
		t.Fatalf("message kind = %q", resp.Message.Kind)
	}

	for _, name := range webdemo.PlotNames {
		u, ok := resp.Plots[name]
		if !ok {
			t.Fatalf("plot %q missing", name)
		}
		pw := serve(h, httptest.NewRequest(http.MethodGet, u, nil))
		if pw.Code != http.StatusOK || pw.Header().Get("Content-Type") != "image/png" {
			t.Fatalf("GET %s = %d %q", u, pw.Code, pw.Header().Get("Content-Type"))
		}
	}
}

func TestGenerateAPIQPSK(t *testing.T) {
	_, h := newTestServer(t)

	req := webdemo.DefaultRequest()
	req.ModulationType = "qpsk"
	req.DigitalMessage = "101"
	w := postJSON(t, h, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}

	var resp struct {
		Index   *float64 `json:"index"`
		Bits    string   `json:"bits"`
		Message struct {
			Kind string    `json:"kind"`
			I    []float64 `json:"i"`
			Q    []float64 `json:"q"`
		} `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if resp.Index != nil {
		t.Fatalf("index = %v, want null", *resp.Index)
	}
	if resp.Bits != "1010" {
		t.Fatalf("bits = %q, want 1010", resp.Bits)
	}
	if resp.Message.Kind != "iq" || len(resp.Message.I) != 1000 || len(resp.Message.Q) != 1000 {
		t.Fatalf("message = kind %q, %d/%d samples", resp.Message.Kind, len(resp.Message.I), len(resp.Message.Q))
	}
}

func TestGenerateAPIErrors(t *testing.T) {
	_, h := newTestServer(t)

	req := webdemo.DefaultRequest()
	req.ModulationType = "OOK"
	if w := postJSON(t, h, req); w.Code != http.StatusBadRequest {
		t.Fatalf("unsupported scheme status = %d, want 400", w.Code)
	}

	bad := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader("{"))
	bad.Header.Set("Content-Type", "application/json")
	if w := serve(h, bad); w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body status = %d, want 400", w.Code)
	}
}

func TestGenerateForm(t *testing.T) {
	_, h := newTestServer(t)

	form := url.Values{
		"modulationType":   {"FM"},
		"messageFrequency": {"5"},
		"messageAmplitude": {"1"},
		"carrierFrequency": {"100"},
		"carrierAmplitude": {"2"},
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := serve(h, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	body := w.Body.String()
	// beta = kf*Am/fm = 5*1/5
	if !strings.Contains(body, `<td id="modIndex">1</td>`) {
		t.Fatalf("modulation index missing from page")
	}
	if strings.Count(body, `src="/plots/`) != len(webdemo.PlotNames) {
		t.Fatalf("expected %d plot images", len(webdemo.PlotNames))
	}
}

func TestGenerateFormUnsupportedScheme(t *testing.T) {
	_, h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("modulationType=XYZ"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := serve(h, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unsupported modulation type") {
		t.Fatal("error message missing from page")
	}
}

func TestPlotNotFound(t *testing.T) {
	_, h := newTestServer(t)

	w := serve(h, httptest.NewRequest(http.MethodGet, "/plots/unknown/message", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGenerateWaitsForRenderSlot(t *testing.T) {
	s, _ := newTestServer(t)

	// Occupy the only slot.
	if err := s.acquire(context.Background()); err != nil {
		t.Fatalf("acquire() error = %v", err)
	}
	defer s.release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, status, err := s.generate(ctx, webdemo.DefaultRequest())
	if status != http.StatusServiceUnavailable || !errors.Is(err, context.Canceled) {
		t.Fatalf("generate() = %d, %v; want 503, context.Canceled", status, err)
	}
}
