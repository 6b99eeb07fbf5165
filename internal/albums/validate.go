package albums

import "strconv"

// FieldError describes a single validation failure on a submitted field.
type FieldError struct {
	Field   string `json:"campo"`
	Message string `json:"mensaje"`
}

// Validate checks the submitted fields and returns the full list of failures.
// On success it records the parsed release date and duration for persistence.
// No side effects may be performed when the returned list is non-empty.
func (c *CreateCommand) Validate() []FieldError {
	var errs []FieldError

	required := []struct {
		field string
		value string
	}{
		{"Titulo", c.Title},
		{"Artista", c.Artist},
		{"Genero", c.Genre},
		{"FechaLanzamiento", c.ReleaseDate},
		{"DuracionTotal", c.Duration},
		{"Productora", c.Producer},
	}

	for _, r := range required {
		if r.value == "" {
			errs = append(errs, FieldError{Field: r.field, Message: "required"})
		}
	}

	if c.ReleaseDate != "" {
		date, err := ParseDate(c.ReleaseDate)
		if err != nil {
			errs = append(errs, FieldError{Field: "FechaLanzamiento", Message: "must be a date in format " + DateFormat})
		} else {
			c.releaseDate = date
		}
	}

	if c.Duration != "" {
		minutes, err := strconv.ParseFloat(c.Duration, 64)
		if err != nil || minutes <= 0 {
			errs = append(errs, FieldError{Field: "DuracionTotal", Message: "must be a positive number of minutes"})
		} else {
			c.duration = minutes
		}
	}

	return errs
}
