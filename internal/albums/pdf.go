package albums

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Declarative page description consumed by the pdfcpu create API.
type pdfFont struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type pdfText struct {
	Value    string     `json:"value"`
	Position [2]float64 `json:"position"`
	Font     pdfFont    `json:"font"`
}

type pdfContent struct {
	Text []pdfText `json:"text"`
}

type pdfPage struct {
	Content pdfContent `json:"content"`
}

type pdfDocument struct {
	Paper string             `json:"paper"`
	Pages map[string]pdfPage `json:"pages"`
}

const (
	sheetMarginX    = 50.0
	sheetTopY       = 780.0
	sheetLineHeight = 30.0
)

// buildSheetJSON produces the single-page album sheet description: a heading
// followed by one labeled line per field in fixed order. Duration renders the
// submitted value with a minutes suffix.
func buildSheetJSON(cmd CreateCommand) ([]byte, error) {
	lines := []struct {
		value string
		size  int
	}{
		{"Información del Álbum:", 16},
		{fmt.Sprintf("Título: %s", cmd.Title), 12},
		{fmt.Sprintf("Artista: %s", cmd.Artist), 12},
		{fmt.Sprintf("Género: %s", cmd.Genre), 12},
		{fmt.Sprintf("Fecha de Lanzamiento: %s", cmd.ReleaseDate), 12},
		{fmt.Sprintf("Duración Total: %s minutos", cmd.Duration), 12},
		{fmt.Sprintf("Productora: %s", cmd.Producer), 12},
	}

	text := make([]pdfText, 0, len(lines))
	for i, line := range lines {
		text = append(text, pdfText{
			Value:    line.value,
			Position: [2]float64{sheetMarginX, sheetTopY - float64(i)*sheetLineHeight},
			Font:     pdfFont{Name: "Helvetica", Size: line.size},
		})
	}

	doc := pdfDocument{
		Paper: "A4",
		Pages: map[string]pdfPage{
			"1": {Content: pdfContent{Text: text}},
		},
	}

	return json.Marshal(doc)
}

// renderSheet renders the album sheet to PDF bytes. Any rendering failure is
// surfaced as ErrGenerate so callers can distinguish it from persistence
// failures.
func renderSheet(cmd CreateCommand) ([]byte, error) {
	desc, err := buildSheetJSON(cmd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerate, err)
	}

	var buf bytes.Buffer
	if err := api.Create(nil, bytes.NewReader(desc), &buf, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerate, err)
	}

	return buf.Bytes(), nil
}
