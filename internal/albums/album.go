// Package albums implements the album record pipeline: multipart creation with
// cover upload, PDF sheet generation, persistence, and the single-step read,
// update, delete, and document-fetch operations.
//
// JSON field names and the albumes table columns preserve the original wire
// contract of the service this replaces.
package albums

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateFormat is the wire and validation format for release dates.
const DateFormat = "2006-01-02"

// Date is a day-granularity value stored in a DATE column and rendered as
// "YYYY-MM-DD" in JSON.
type Date struct {
	time.Time
}

// ParseDate parses a date in DateFormat.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateFormat) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date: %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Album represents a persisted album record. ImageFilename is nil when no
// cover was uploaded; PDFFilename always references a document that existed
// in the asset store at insertion time.
type Album struct {
	ID            int64   `json:"id"`
	Title         string  `json:"Titulo"`
	Artist        string  `json:"Artista"`
	Genre         string  `json:"Genero"`
	ReleaseDate   Date    `json:"FechaLanzamiento"`
	Duration      float64 `json:"DuracionTotal"`
	Producer      string  `json:"Productora"`
	ImageFilename *string `json:"Imagen"`
	PDFFilename   string  `json:"ImagenPDF"`
}

// CreateCommand carries the submitted album fields for creation. The scalar
// fields hold raw form values; Validate parses them and records the typed
// results used by the insert.
type CreateCommand struct {
	Title         string
	Artist        string
	Genre         string
	ReleaseDate   string
	Duration      string
	Producer      string
	ImageFilename *string

	releaseDate Date
	duration    float64
}

// UpdateCommand carries a full replacement set of the six scalar fields.
// Values are passed through as submitted; type enforcement is left to the
// storage layer.
type UpdateCommand struct {
	Title       string `json:"Titulo"`
	Artist      string `json:"Artista"`
	Genre       string `json:"Genero"`
	ReleaseDate string `json:"FechaLanzamiento"`
	Duration    string `json:"DuracionTotal"`
	Producer    string `json:"Productora"`
}
