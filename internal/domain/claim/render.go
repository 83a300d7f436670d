package claim

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"

	"github.com/dencare/dencare/internal/platform/apperror"
)

// A4 in points; the blank bulletin is a single portrait A4 page.
const (
	pageWidth  = 595.28
	pageHeight = 841.89
)

// MaxFormLines is the number of care rows the printed form can hold. Claims
// with more lines render the first ten and report the overflow.
const MaxFormLines = 10

// RenderResult carries the filled form and how many lines did not fit.
type RenderResult struct {
	PDF       []byte
	Truncated int
}

// Renderer overlays claim data onto the blank CNAM form. The template is a
// scan of the official bulletin, so every field is placed at a fixed
// coordinate; positions are expressed bottom-up like the form's own grid.
type Renderer struct {
	templatePath string
}

func NewRenderer(templatePath string) *Renderer {
	return &Renderer{templatePath: templatePath}
}

func (r *Renderer) Render(c *Claim) (*RenderResult, error) {
	if _, err := os.Stat(r.templatePath); err != nil {
		return nil, apperror.ExternalResource(
			fmt.Sprintf("claim form template %s is not available", r.templatePath), err)
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	imp := gofpdi.NewImporter()
	tpl := imp.ImportPage(pdf, r.templatePath, 1, "/MediaBox")
	pdf.AddPage()
	imp.UseImportedTemplate(pdf, tpl, 0, 0, pageWidth, pageHeight)

	// x grows right, y grows up from the bottom edge.
	text := func(x, y float64, s string) {
		pdf.Text(x, pageHeight-y, tr(s))
	}

	pdf.SetFont("Helvetica", "", 10)
	if ss := c.Patient.SocialSecurity; ss != nil {
		id := ss.IDAssurance
		if id == "" {
			id = "N/A"
		}
		text(140, 700, id)
		text(120, 678, ss.LastName+" "+ss.FirstName)
	}
	text(120, 652, c.Patient.LastName+" "+c.Patient.FirstName)
	addr := c.Patient.Address
	if addr == "" {
		addr = "N/A"
	}
	text(120, 638, addr)

	lines, truncated := capLines(c.Lines)

	y := 520.0
	for _, l := range lines {
		pdf.SetFont("Helvetica", "", 10)
		text(45, y, l.Date.Format("02/01/06"))
		pdf.SetFont("Helvetica", "", 9)
		text(100, y, l.Code)
		pdf.SetFont("Helvetica", "", 10)
		text(200, y, l.Dent)
		text(230, y, l.Cotation)
		text(280, y, money(l.Honoraire))
		text(360, y, l.CPS)
		y -= 18
	}

	pdf.SetFont("Helvetica", "", 11)
	text(280, 328, fmt.Sprintf("%.3f", c.Total()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperror.ExternalResource("render claim form", err)
	}
	return &RenderResult{PDF: buf.Bytes(), Truncated: truncated}, nil
}

// capLines limits a claim's lines to the form's row capacity and reports how
// many were dropped.
func capLines(lines []Line) ([]Line, int) {
	if len(lines) <= MaxFormLines {
		return lines, 0
	}
	return lines[:MaxFormLines], len(lines) - MaxFormLines
}

func money(v *float64) string {
	if v == nil {
		return "0.000"
	}
	return fmt.Sprintf("%.3f", *v)
}
