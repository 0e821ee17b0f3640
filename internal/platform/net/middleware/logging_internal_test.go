package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// exercises capture.WriteHeader directly
func TestCapture_WriteHeader_SetsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	c := &capture{ResponseWriter: rr, status: http.StatusOK}

	c.WriteHeader(http.StatusAccepted)

	if c.status != http.StatusAccepted {
		t.Fatalf("expected status 202 got %d", c.status)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected recorder code 202 got %d", rr.Code)
	}
}
