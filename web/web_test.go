package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandler_ServesIndex(t *testing.T) {
	handler := Handler()

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "previewImg") {
		t.Error("index.html does not contain the preview image element")
	}
}

func TestHandler_ServesEmbedScript(t *testing.T) {
	handler := Handler()

	req := httptest.NewRequest("GET", "/embed.js", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, knob := range []string{"targetOrigin", "payloadField", "requireEmbedded", "requireDataUri", "selector"} {
		if !strings.Contains(body, knob) {
			t.Errorf("embed.js missing config knob %q", knob)
		}
	}
	// Strict mode forwards inline images only, not arbitrary data: URLs.
	if !strings.Contains(body, "url.indexOf('data:image/') !== 0") {
		t.Error("embed.js strict check does not require the data:image/ prefix")
	}
}

func TestHandler_ServesAppScript(t *testing.T) {
	handler := Handler()

	req := httptest.NewRequest("GET", "/app.js", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/api/generate") {
		t.Error("app.js does not call the generate endpoint")
	}
}
