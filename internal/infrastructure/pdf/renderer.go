// Package pdf lays generated narratives out as simple single-font PDF
// documents.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	lineWidth  = 190 // usable width in mm on A4 portrait
	lineHeight = 10
)

// Renderer produces the report PDF: a centered bold title, an italic period
// line, and the narrative flowed into a multi-line cell. Markdown markers in
// the narrative are rendered as literal text.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(narrative string, periodStart, periodEnd time.Time) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.CellFormat(lineWidth, lineHeight, "Health Report", "", 1, "C", false, 0, "")

	doc.SetFont("Arial", "I", 12)
	period := fmt.Sprintf("Period: %s to %s",
		periodStart.Format(time.RFC3339), periodEnd.Format(time.RFC3339))
	doc.CellFormat(lineWidth, lineHeight, period, "", 1, "L", false, 0, "")

	doc.SetFont("Arial", "", 12)
	// Core fonts are cp1252; translate so accented characters survive.
	translate := doc.UnicodeTranslatorFromDescriptor("")
	doc.MultiCell(lineWidth, lineHeight, translate(narrative), "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
