package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/eduforge/worksheet-api/internal/domain"
)

// asciiReplacements maps characters the generator commonly emits to
// ASCII equivalents the core PDF fonts can render.
var asciiReplacements = strings.NewReplacer(
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'",
	"–", "-", "—", "-",
	"…", "...",
	"°", " degrees",
	"×", "x",
	"÷", "/",
	"≤", "<=",
	"≥", ">=",
	"≠", "!=",
	"α", "alpha",
	"β", "beta",
	"γ", "gamma",
	"δ", "delta",
	"π", "pi",
	"θ", "theta",
)

// cleanText applies the replacement table and then strips anything still
// outside ASCII, substituting '?'. The built-in PDF fonts only cover
// latin-1 and science worksheets lean on unicode math symbols heavily.
func cleanText(text string) string {
	text = asciiReplacements.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 128 {
			b.WriteRune(r)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// WritePDF renders the worksheet as a PDF document: a titled page with
// the worksheet details up top and the generated content below, wrapped
// to the page width with automatic page breaks.
func WritePDF(w io.Writer, ws *domain.Worksheet) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, "Practice Worksheet", "", 1, "C", false, 0, "")
		pdf.Ln(5)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, cleanText(fmt.Sprintf("Subject: %s", ws.Metadata.Subject)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, cleanText(fmt.Sprintf("Topic: %s", ws.Metadata.Topic)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, cleanText(fmt.Sprintf("Class: %s (%s)", ws.Metadata.Grade, ws.Metadata.Board)), "", 1, "L", false, 0, "")
	if ws.Metadata.Stream != "" {
		pdf.CellFormat(0, 10, cleanText(fmt.Sprintf("Stream: %s", ws.Metadata.Stream)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	lines := strings.Split(strings.ReplaceAll(ws.Text, "\r\n", "\n"), "\n")
	for _, line := range lines {
		clean := cleanText(line)
		if strings.TrimSpace(clean) == "" {
			pdf.Ln(3)
			continue
		}
		pdf.MultiCell(0, 6, clean, "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}
