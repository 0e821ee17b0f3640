package sentinel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"geoguardian/internal/core/geo"
	perr "geoguardian/internal/platform/errors"
)

var testBBox = geo.BBox{-122.6, 45.4, -122.5, 45.6}

// hub fakes the token and process endpoints on one server
type hub struct {
	t          *testing.T
	tokenCalls atomic.Int32
	expiresIn  int
	payload    []byte
	status     int
	lastBody   processRequest
	lastAuth   string
}

func newHub(t *testing.T) *hub {
	return &hub{t: t, expiresIn: 3600, payload: make([]byte, 4096), status: http.StatusOK}
}

func (h *hub) serve() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		h.tokenCalls.Add(1)
		if err := r.ParseForm(); err != nil {
			h.t.Errorf("parse token form: %v", err)
		}
		if g := r.PostForm.Get("grant_type"); g != "client_credentials" {
			h.t.Errorf("grant_type = %q", g)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-123",
			"expires_in":   h.expiresIn,
		})
	})
	mux.HandleFunc("/process", func(w http.ResponseWriter, r *http.Request) {
		h.lastAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&h.lastBody); err != nil {
			h.t.Errorf("decode process body: %v", err)
		}
		w.WriteHeader(h.status)
		_, _ = w.Write(h.payload)
	})
	return httptest.NewServer(mux)
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Options{
		TokenURL:     srv.URL + "/oauth/token",
		ProcessURL:   srv.URL + "/process",
		ClientID:     "id",
		ClientSecret: "secret",
	})
}

func TestFetch_SendsProcessRequestAndReturnsPayload(t *testing.T) {
	h := newHub(t)
	srv := h.serve()
	defer srv.Close()

	c := newTestClient(srv)
	data, err := c.Fetch(context.Background(), "2025-06-15", testBBox, 512, 512)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(data) != 4096 {
		t.Fatalf("payload length = %d, want 4096", len(data))
	}
	if h.lastAuth != "Bearer tok-123" {
		t.Fatalf("authorization = %q", h.lastAuth)
	}

	body := h.lastBody
	if body.Input.Bounds.BBox != testBBox {
		t.Fatalf("bbox = %v, want %v", body.Input.Bounds.BBox, testBBox)
	}
	if len(body.Input.Data) != 1 || body.Input.Data[0].Type != "sentinel-2-l2a" {
		t.Fatalf("data section = %+v", body.Input.Data)
	}
	tr := body.Input.Data[0].DataFilter.TimeRange
	if tr.From != "2025-06-12T00:00:00Z" || tr.To != "2025-06-18T23:59:59Z" {
		t.Fatalf("time range = %+v, want the 3-day window around 2025-06-15", tr)
	}
	if body.Input.Data[0].DataFilter.MaxCloudCoverage != 30 {
		t.Fatalf("cloud coverage = %d, want 30", body.Input.Data[0].DataFilter.MaxCloudCoverage)
	}
	if body.Output.Width != 512 || body.Output.Height != 512 {
		t.Fatalf("output size = %dx%d", body.Output.Width, body.Output.Height)
	}
	if !strings.Contains(body.Evalscript, "B04") {
		t.Fatalf("evalscript missing bands: %s", body.Evalscript)
	}
}

func TestFetch_ReusesCachedToken(t *testing.T) {
	h := newHub(t)
	srv := h.serve()
	defer srv.Close()

	c := newTestClient(srv)
	for i := 0; i < 3; i++ {
		if _, err := c.Fetch(context.Background(), "2025-06-15", testBBox, 64, 64); err != nil {
			t.Fatalf("Fetch returned error: %v", err)
		}
	}
	if n := h.tokenCalls.Load(); n != 1 {
		t.Fatalf("token endpoint hit %d times, want 1", n)
	}
}

func TestFetch_RefreshesTokenNearExpiry(t *testing.T) {
	h := newHub(t)
	h.expiresIn = 3600
	srv := h.serve()
	defer srv.Close()

	c := newTestClient(srv)
	if _, err := c.Fetch(context.Background(), "2025-06-15", testBBox, 64, 64); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	// jump the clock past the early-renewal point
	c.now = func() time.Time { return time.Now().Add(time.Hour) }
	if _, err := c.Fetch(context.Background(), "2025-06-15", testBBox, 64, 64); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if n := h.tokenCalls.Load(); n != 2 {
		t.Fatalf("token endpoint hit %d times, want 2", n)
	}
}

func TestFetch_SmallPayloadIsNoData(t *testing.T) {
	h := newHub(t)
	h.payload = []byte("tiny")
	srv := h.serve()
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Fetch(context.Background(), "2025-06-15", testBBox, 64, 64)
	if !perr.IsCode(err, perr.ErrorCodeNoData) {
		t.Fatalf("expected no-data error, got %v", err)
	}
}

func TestFetch_NonOKStatusIsUnavailable(t *testing.T) {
	h := newHub(t)
	h.status = http.StatusInternalServerError
	srv := h.serve()
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Fetch(context.Background(), "2025-06-15", testBBox, 64, 64)
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

func TestFetch_ValidatesInputBeforeTouchingTheWire(t *testing.T) {
	h := newHub(t)
	srv := h.serve()
	defer srv.Close()

	c := newTestClient(srv)

	if _, err := c.Fetch(context.Background(), "June 15th", testBBox, 64, 64); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument for bad day, got %v", err)
	}
	bad := geo.BBox{-122.5, 45.4, -122.6, 45.6}
	if _, err := c.Fetch(context.Background(), "2025-06-15", bad, 64, 64); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument for bad bbox, got %v", err)
	}
	if _, err := c.Fetch(context.Background(), "2025-06-15", testBBox, 0, 64); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument for zero width, got %v", err)
	}
	if n := h.tokenCalls.Load(); n != 0 {
		t.Fatalf("token endpoint hit %d times for invalid input, want 0", n)
	}
}
