package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxgrid/pkg/errors"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newRouter(log.New(io.Discard)))
	t.Cleanup(srv.Close)
	return srv
}

func TestServeHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %v, want %v", resp.StatusCode, http.StatusOK)
	}
	body, _ := io.ReadAll(resp.Body)
	if got := string(body); got != "ok\n" {
		t.Errorf("body = %q, want %q", got, "ok\n")
	}
}

func TestServeRender(t *testing.T) {
	srv := newTestServer(t)

	doc := `{
		"type": "vcat",
		"boxes": [
			{"type": "text", "text": "ab"},
			{"type": "text", "text": "c"}
		]
	}`

	resp, err := http.Post(srv.URL+"/v1/render", "application/json", strings.NewReader(doc))
	if err != nil {
		t.Fatalf("POST /v1/render error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %v, want %v", resp.StatusCode, http.StatusOK)
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Error("response is missing the X-Request-Id header")
	}
	body, _ := io.ReadAll(resp.Body)
	if got, want := string(body), "ab\nc \n"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestServeRenderBadJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/render", "application/json", strings.NewReader(`{"type":`))
	if err != nil {
		t.Fatalf("POST /v1/render error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %v, want %v", resp.StatusCode, http.StatusBadRequest)
	}
	var apiErr apiError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if apiErr.Code != string(errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %q, want %q", apiErr.Code, errors.ErrCodeInvalidFormat)
	}
}

func TestServeRenderInvalidDocument(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/render", "application/json",
		strings.NewReader(`{"type": "circle"}`))
	if err != nil {
		t.Fatalf("POST /v1/render error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %v, want %v", resp.StatusCode, http.StatusUnprocessableEntity)
	}
	var apiErr apiError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if apiErr.Code != string(errors.ErrCodeInvalidDocument) {
		t.Errorf("error code = %q, want %q", apiErr.Code, errors.ErrCodeInvalidDocument)
	}
}
