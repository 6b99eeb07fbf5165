package albums

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"albumvault/internal/storage"
	"albumvault/pkg/repository"
)

const albumColumns = `"AlbumID", "Titulo", "Artista", "Genero", "FechaLanzamiento", "DuracionTotal", "Productora", "Imagen", "ImagenPDF"`

type repo struct {
	db      *sql.DB
	storage storage.System
	logger  *slog.Logger
}

// New creates an album system backed by the database and the asset store.
func New(db *sql.DB, store storage.System, logger *slog.Logger) System {
	return &repo{
		db:      db,
		storage: store,
		logger:  logger.With("system", "albums"),
	}
}

func (r *repo) List(ctx context.Context) ([]Album, error) {
	q := `SELECT ` + albumColumns + ` FROM albumes ORDER BY "AlbumID"`

	albums, err := repository.QueryMany(ctx, r.db, q, nil, scanAlbum)
	if err != nil {
		return nil, fmt.Errorf("query albums: %w", err)
	}

	if albums == nil {
		albums = []Album{}
	}
	return albums, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Album, error) {
	q := `SELECT ` + albumColumns + ` FROM albumes WHERE "AlbumID" = $1`

	album, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanAlbum)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &album, nil
}

// Create runs the creation pipeline: render the PDF sheet, persist it to the
// asset store, then insert the row. Generation always happens before the
// insert, so a successfully inserted row never references a document that was
// absent at insert time. A PDF left behind by a failed insert is not cleaned
// up; that inconsistency window is reconciled out of band (see the sweep
// command).
func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Album, error) {
	filename := PDFFilename(cmd.Title, time.Now())
	key := storage.PDFKey(filename)

	data, err := renderSheet(cmd)
	if err != nil {
		return nil, err
	}
	if err := r.storage.Store(ctx, key, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerate, err)
	}

	q := `INSERT INTO albumes ("Titulo", "Artista", "Genero", "FechaLanzamiento", "DuracionTotal", "Productora", "Imagen", "ImagenPDF")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + albumColumns

	album, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Album, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.Title, cmd.Artist, cmd.Genre, cmd.releaseDate, cmd.duration, cmd.Producer, cmd.ImageFilename, filename,
		}, scanAlbum)
	})

	if err != nil {
		r.logger.Error("insert failed after pdf generation", "pdf", filename, "error", err)
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("album created", "id", album.ID, "title", album.Title, "pdf", filename)
	return &album, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd UpdateCommand) (*Album, error) {
	q := `UPDATE albumes
		SET "Titulo" = $1, "Artista" = $2, "Genero" = $3, "FechaLanzamiento" = $4::date, "DuracionTotal" = $5::numeric, "Productora" = $6
		WHERE "AlbumID" = $7
		RETURNING ` + albumColumns

	album, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Album, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.Title, cmd.Artist, cmd.Genre, cmd.ReleaseDate, cmd.Duration, cmd.Producer, id,
		}, scanAlbum)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("album updated", "id", album.ID, "title", album.Title)
	return &album, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	q := `DELETE FROM albumes WHERE "AlbumID" = $1`

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	// Associated files stay on disk; the sweep command reclaims them.
	r.logger.Info("album deleted", "id", id)
	return nil
}

func (r *repo) ResolvePDF(ctx context.Context, id int64) (string, error) {
	album, err := r.Find(ctx, id)
	if err != nil {
		return "", err
	}

	key := storage.PDFKey(album.PDFFilename)

	exists, err := r.storage.Validate(ctx, key)
	if err != nil {
		return "", fmt.Errorf("validate pdf: %w", err)
	}
	if !exists {
		return "", ErrDocumentMissing
	}

	return r.storage.Path(ctx, key)
}
