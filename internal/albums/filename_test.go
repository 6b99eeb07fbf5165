package albums_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"albumvault/internal/albums"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"no whitespace", "Abbey_Road", "Abbey_Road"},
		{"single spaces", "Midnight Run", "Midnight_Run"},
		{"run of spaces", "Midnight   Run", "Midnight_Run"},
		{"tabs and newlines", "Midnight\t\nRun", "Midnight_Run"},
		{"leading and trailing", " Midnight Run ", "_Midnight_Run_"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := albums.SanitizeTitle(tt.title); got != tt.want {
				t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestPDFFilename(t *testing.T) {
	createdAt := time.Unix(0, 1700000000000000000)

	got := albums.PDFFilename("Midnight Run", createdAt)
	want := fmt.Sprintf("Midnight_Run_%d.pdf", createdAt.UnixNano())

	if got != want {
		t.Errorf("PDFFilename() = %q, want %q", got, want)
	}
}

func TestPDFFilename_DoesNotUseIdentifier(t *testing.T) {
	createdAt := time.Unix(0, 42)

	got := albums.PDFFilename("Solo", createdAt)
	if !strings.HasSuffix(got, "_42.pdf") {
		t.Errorf("PDFFilename() = %q, want suffix %q", got, "_42.pdf")
	}
}

func TestPDFFilename_DistinctForIdenticalTitles(t *testing.T) {
	first := albums.PDFFilename("Midnight Run", time.Now())
	second := albums.PDFFilename("Midnight Run", time.Now())

	if first == second {
		t.Errorf("PDFFilename() produced identical names for back-to-back creations: %q", first)
	}
}
