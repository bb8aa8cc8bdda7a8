// Package export renders reports as downloadable files.
package export

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// Format is a supported download format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, bool) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatXLSX, FormatPDF, FormatCSV:
		return f, true
	}
	return "", false
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	}
	return "application/octet-stream"
}

// Filename returns an attachment file name for a report title.
func (f Format) Filename(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '_'
	}, strings.TrimSpace(title))
	if name == "" {
		name = "report"
	}
	return name + "." + string(f)
}

// Renderer encodes reports. The zero value renders PDF with the core font.
type Renderer struct {
	// PDFFontPath is a TrueType font embedded in PDF output.
	PDFFontPath string
}

// Render encodes the report in the given format.
func (r Renderer) Render(f Format, rep *domain.Report) ([]byte, error) {
	switch f {
	case FormatXLSX:
		return XLSX(rep)
	case FormatPDF:
		return PDF(rep, r.PDFFontPath)
	case FormatCSV:
		return CSV(rep)
	}
	return nil, domain.NewValidationError("format", fmt.Sprintf("unsupported format %q", f))
}

// SampleList turns a filtered sample list into a report table for download.
func SampleList(samples []domain.Sample) *domain.Report {
	rows := make([][]string, len(samples))
	for i, s := range samples {
		rows[i] = []string{
			s.SampleNumber,
			s.SampleType,
			s.Category,
			s.PersonName,
			s.CollectedDate.Format("2006-01-02"),
			s.Location,
			s.Status.Label(),
			s.Tag.UID,
		}
	}

	return &domain.Report{
		Kind:  domain.ReportKindSamples,
		Title: "Samples",
		Columns: []domain.Column{
			{Label: "Sample Number"},
			{Label: "Sample Type"},
			{Label: "Category"},
			{Label: "Person Name"},
			{Label: "Collected Date"},
			{Label: "Location"},
			{Label: "Status", IsStatus: true},
			{Label: "RFID UID"},
		},
		Rows: rows,
	}
}

func headerLabels(rep *domain.Report) []string {
	labels := make([]string, len(rep.Columns))
	for i, c := range rep.Columns {
		labels[i] = c.Label
	}
	return labels
}
