package albums

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"albumvault/internal/routes"
	"albumvault/internal/storage"
	"albumvault/pkg/handlers"

	"github.com/google/uuid"
)

// Handler provides HTTP endpoints for album operations.
type Handler struct {
	sys           System
	storage       storage.System
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates an album handler with the specified configuration.
func NewHandler(sys System, store storage.System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		storage:       store,
		logger:        logger.With("handler", "albums"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the album endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/albumes",
		Description: "Album records and their generated documents",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create},
			// Existing clients post to the trailing-slash form.
			{Method: "POST", Pattern: "/{$}", Handler: h.Create},
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}/pdf", Handler: h.FetchPDF},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

// Create handles the multipart creation request. The cover image, when
// present, is stored before validation runs, mirroring upload-middleware
// behavior; validation failures therefore leave no row and no PDF behind,
// but may leave the uploaded image.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		return
	}

	cmd := CreateCommand{
		Title:       r.FormValue("Titulo"),
		Artist:      r.FormValue("Artista"),
		Genre:       r.FormValue("Genero"),
		ReleaseDate: r.FormValue("FechaLanzamiento"),
		Duration:    r.FormValue("DuracionTotal"),
		Producer:    r.FormValue("Productora"),
	}

	imageName, err := h.storeImage(r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	cmd.ImageFilename = imageName

	if errs := cmd.Validate(); len(errs) > 0 {
		h.logger.Warn("album validation failed", "errors", len(errs))
		handlers.RespondJSON(w, http.StatusBadRequest, map[string][]FieldError{"errores": errs})
		return
	}

	if _, err := h.sys.Create(r.Context(), cmd); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondText(w, http.StatusOK, "Álbum creado con éxito")
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	albums, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, albums)
}

func (h *Handler) FetchPDF(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	path, err := h.sys.ResolvePDF(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="album.pdf"`)
	http.ServeFile(w, r, path)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cmd, err := decodeUpdate(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if _, err := h.sys.Update(r.Context(), id, cmd); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondText(w, http.StatusOK, "Álbum modificado con éxito")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondText(w, http.StatusOK, "Álbum eliminado con éxito")
}

// storeImage persists an uploaded cover under a server-generated unique
// filename and returns that filename, or nil when no file was attached.
func (h *Handler) storeImage(r *http.Request) (*string, error) {
	file, header, err := r.FormFile("Imagen")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, ErrInvalidFile
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, ErrInvalidFile
	}

	name := storedImageFilename(header.Filename)
	if err := h.storage.Store(r.Context(), storage.ImageKey(name), data); err != nil {
		return nil, err
	}

	h.logger.Info("cover image stored", "filename", name, "size", header.Size)
	return &name, nil
}

func storedImageFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	return "Imagen-" + uuid.New().String() + ext
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

func decodeUpdate(r *http.Request) (UpdateCommand, error) {
	var cmd UpdateCommand

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			return cmd, ErrMalformedBody
		}
		return cmd, nil
	}

	if err := r.ParseForm(); err != nil {
		return cmd, ErrMalformedBody
	}

	cmd = UpdateCommand{
		Title:       r.PostFormValue("Titulo"),
		Artist:      r.PostFormValue("Artista"),
		Genre:       r.PostFormValue("Genero"),
		ReleaseDate: r.PostFormValue("FechaLanzamiento"),
		Duration:    r.PostFormValue("DuracionTotal"),
		Producer:    r.PostFormValue("Productora"),
	}
	return cmd, nil
}
