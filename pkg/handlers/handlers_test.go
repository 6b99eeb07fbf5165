package handlers_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"albumvault/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	handlers.RespondJSON(rec, http.StatusCreated, map[string]int{"count": 3})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if body["count"] != 3 {
		t.Errorf("body = %v, want count 3", body)
	}
}

func TestRespondText(t *testing.T) {
	rec := httptest.NewRecorder()

	handlers.RespondText(rec, http.StatusOK, "Álbum creado con éxito")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if got := rec.Body.String(); got != "Álbum creado con éxito" {
		t.Errorf("body = %q", got)
	}
}

func TestRespondError_MasksServerErrors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError + 4}))
	rec := httptest.NewRecorder()

	internal := errors.New(`pq: duplicate key value violates unique constraint "albumes_pkey" host=10.0.0.5`)
	handlers.RespondError(rec, logger, http.StatusInternalServerError, internal)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Errorf(`body["error"] = %q, want "internal server error"`, body["error"])
	}
	for _, fragment := range []string{"albumes_pkey", "10.0.0.5", "pq:"} {
		if strings.Contains(rec.Body.String(), fragment) {
			t.Errorf("response leaks internal detail %q: %s", fragment, rec.Body.String())
		}
	}
}

func TestRespondError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError + 4}))
	rec := httptest.NewRecorder()

	handlers.RespondError(rec, logger, http.StatusNotFound, errors.New("album not found"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if body["error"] != "album not found" {
		t.Errorf(`body["error"] = %q, want "album not found"`, body["error"])
	}
}
