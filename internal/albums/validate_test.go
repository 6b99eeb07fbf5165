package albums_test

import (
	"testing"

	"albumvault/internal/albums"
)

func validCommand() albums.CreateCommand {
	return albums.CreateCommand{
		Title:       "Midnight Run",
		Artist:      "The Night Owls",
		Genre:       "Jazz",
		ReleaseDate: "2023-05-10",
		Duration:    "45.5",
		Producer:    "Luna Records",
	}
}

func TestValidate_Valid(t *testing.T) {
	cmd := validCommand()

	if errs := cmd.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*albums.CreateCommand)
		field  string
	}{
		{"missing title", func(c *albums.CreateCommand) { c.Title = "" }, "Titulo"},
		{"missing artist", func(c *albums.CreateCommand) { c.Artist = "" }, "Artista"},
		{"missing genre", func(c *albums.CreateCommand) { c.Genre = "" }, "Genero"},
		{"missing release date", func(c *albums.CreateCommand) { c.ReleaseDate = "" }, "FechaLanzamiento"},
		{"missing duration", func(c *albums.CreateCommand) { c.Duration = "" }, "DuracionTotal"},
		{"missing producer", func(c *albums.CreateCommand) { c.Producer = "" }, "Productora"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCommand()
			tt.mutate(&cmd)

			errs := cmd.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.field {
				t.Errorf("Validate() field = %q, want %q", errs[0].Field, tt.field)
			}
		})
	}
}

func TestValidate_MalformedValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*albums.CreateCommand)
		field  string
	}{
		{"bad date format", func(c *albums.CreateCommand) { c.ReleaseDate = "10/05/2023" }, "FechaLanzamiento"},
		{"non-numeric duration", func(c *albums.CreateCommand) { c.Duration = "forty five" }, "DuracionTotal"},
		{"zero duration", func(c *albums.CreateCommand) { c.Duration = "0" }, "DuracionTotal"},
		{"negative duration", func(c *albums.CreateCommand) { c.Duration = "-3" }, "DuracionTotal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCommand()
			tt.mutate(&cmd)

			errs := cmd.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.field {
				t.Errorf("Validate() field = %q, want %q", errs[0].Field, tt.field)
			}
		})
	}
}

func TestValidate_AccumulatesErrors(t *testing.T) {
	cmd := albums.CreateCommand{}

	errs := cmd.Validate()
	if len(errs) != 6 {
		t.Errorf("Validate() returned %d errors, want 6: %v", len(errs), errs)
	}
}
