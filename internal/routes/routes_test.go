package routes_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"albumvault/internal/routes"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestBuild_Route(t *testing.T) {
	sys := routes.New(testLogger())

	sys.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	})

	handler := sys.Build()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("GET /healthz status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestBuild_GroupPrefix(t *testing.T) {
	sys := routes.New(testLogger())

	sys.RegisterGroup(routes.Group{
		Prefix: "/albumes",
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "",
				Handler: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				},
			},
			{
				Method:  "GET",
				Pattern: "/{id}/pdf",
				Handler: func(w http.ResponseWriter, r *http.Request) {
					w.Write([]byte(r.PathValue("id")))
				},
			},
		},
	})

	handler := sys.Build()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/albumes", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /albumes status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/albumes/42/pdf", nil))
	if rec.Body.String() != "42" {
		t.Errorf("path value = %q, want %q", rec.Body.String(), "42")
	}
}

func TestBuild_MethodMismatch(t *testing.T) {
	sys := routes.New(testLogger())

	sys.RegisterGroup(routes.Group{
		Prefix: "/albumes",
		Routes: []routes.Route{
			{
				Method:  "DELETE",
				Pattern: "/{id}",
				Handler: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				},
			},
		},
	})

	handler := sys.Build()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("PATCH", "/albumes/1", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("PATCH status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
