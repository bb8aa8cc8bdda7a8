package export

import (
	"bytes"
	"fmt"
	"unicode"

	"github.com/go-pdf/fpdf"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

const (
	pdfMargin     = 10.0
	pdfLineHeight = 7.0

	coreFamily  = "Helvetica"
	embedFamily = "report"
)

// PDF renders the report as an A4 landscape table.
//
// With an empty fontPath the core Helvetica font is used and text outside
// the Windows-1252 range is replaced by the translator. Otherwise fontPath
// names a TrueType file that is embedded and used for every cell, and cells
// in right-to-left scripts are written right to left and right aligned.
func PDF(rep *domain.Report, fontPath string) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)

	family := coreFamily
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if fontPath != "" {
		family = embedFamily
		pdf.AddUTF8Font(family, "", fontPath)
		pdf.AddUTF8Font(family, "B", fontPath)
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("pdf font %s: %w", fontPath, err)
		}
		tr = func(s string) string { return s }
	}

	// cell writes one table cell. RTL mode only takes effect with an
	// embedded font, the core font path keeps left to right.
	cell := func(w, h float64, s, border string, ln int, align string, fill bool) {
		if fontPath != "" && isRTL(s) {
			pdf.RTL()
			pdf.CellFormat(w, h, s, border, ln, "R", fill, 0, "")
			pdf.LTR()
			return
		}
		pdf.CellFormat(w, h, tr(s), border, ln, align, fill, 0, "")
	}

	pdf.AddPage()
	pdf.SetFont(family, "B", 14)
	cell(0, 10, rep.Title, "", 1, "L", false)
	pdf.Ln(2)

	width := 0.0
	if n := len(rep.Columns); n > 0 {
		pageW, _ := pdf.GetPageSize()
		width = (pageW - 2*pdfMargin) / float64(n)
	}

	header := func() {
		pdf.SetFont(family, "B", 9)
		pdf.SetFillColor(217, 225, 242)
		for _, c := range rep.Columns {
			cell(width, pdfLineHeight, c.Label, "1", 0, "C", true)
		}
		pdf.Ln(-1)
		pdf.SetFont(family, "", 9)
	}
	pdf.SetHeaderFuncMode(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	}, true)

	header()
	for _, row := range rep.Rows {
		for i, c := range rep.Columns {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			if c.IsStatus {
				pdf.SetFont(family, "B", 9)
			}
			cell(width, pdfLineHeight, value, "1", 0, "L", false)
			if c.IsStatus {
				pdf.SetFont(family, "", 9)
			}
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf write: %w", err)
	}
	return buf.Bytes(), nil
}

// isRTL reports whether the first strongly directional letter of s belongs
// to a right-to-left script.
func isRTL(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		return unicode.In(r, unicode.Arabic, unicode.Hebrew, unicode.Syriac, unicode.Thaana, unicode.Nko)
	}
	return false
}
