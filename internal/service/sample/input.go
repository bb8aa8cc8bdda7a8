package sample

import (
	"strings"
	"time"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// reservedNumbers are path segments routed beside /samples/{number}.
var reservedNumbers = []string{"export"}

// CreateInput holds parameters for registering a sample with a new tag.
type CreateInput struct {
	SampleNumber  string
	SampleType    string
	Category      string
	PersonName    string
	CollectedDate time.Time
	Location      string
	RFIDUID       string
}

// Normalize trims surrounding whitespace from text fields.
func (i *CreateInput) Normalize() {
	i.SampleNumber = strings.TrimSpace(i.SampleNumber)
	i.SampleType = strings.TrimSpace(i.SampleType)
	i.Category = strings.TrimSpace(i.Category)
	i.PersonName = strings.TrimSpace(i.PersonName)
	i.Location = strings.TrimSpace(i.Location)
	i.RFIDUID = strings.TrimSpace(i.RFIDUID)
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = requireLen(errs, "sample_number", i.SampleNumber, 50)
	errs = checkNumberPath(errs, i.SampleNumber)
	errs = requireLen(errs, "sample_type", i.SampleType, 50)
	errs = requireLen(errs, "category", i.Category, 50)
	errs = requireLen(errs, "person_name", i.PersonName, 100)
	errs = requireLen(errs, "rfid_uid", i.RFIDUID, 64)

	if i.CollectedDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "collected_date", Message: "required"})
	}
	if len(i.Location) > 100 {
		errs = append(errs, domain.FieldError{Field: "location", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for editing the descriptive attributes of a
// sample. Nil fields are left unchanged.
type UpdateInput struct {
	SampleNumber  string
	SampleType    *string
	Category      *string
	PersonName    *string
	CollectedDate *time.Time
	Location      *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.SampleNumber == "" {
		errs = append(errs, domain.FieldError{Field: "sample_number", Message: "required"})
	}
	if i.SampleType != nil {
		errs = requireLen(errs, "sample_type", strings.TrimSpace(*i.SampleType), 50)
	}
	if i.Category != nil {
		errs = requireLen(errs, "category", strings.TrimSpace(*i.Category), 50)
	}
	if i.PersonName != nil {
		errs = requireLen(errs, "person_name", strings.TrimSpace(*i.PersonName), 100)
	}
	if i.CollectedDate != nil && i.CollectedDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "collected_date", Message: "invalid"})
	}
	if i.Location != nil && len(strings.TrimSpace(*i.Location)) > 100 {
		errs = append(errs, domain.FieldError{Field: "location", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply copies the set fields onto s.
func (i UpdateInput) apply(s *domain.Sample) {
	if i.SampleType != nil {
		s.SampleType = strings.TrimSpace(*i.SampleType)
	}
	if i.Category != nil {
		s.Category = strings.TrimSpace(*i.Category)
	}
	if i.PersonName != nil {
		s.PersonName = strings.TrimSpace(*i.PersonName)
	}
	if i.CollectedDate != nil {
		s.CollectedDate = *i.CollectedDate
	}
	if i.Location != nil {
		s.Location = strings.TrimSpace(*i.Location)
	}
}

// ListInput holds filter and paging parameters for sample lists.
type ListInput struct {
	Query         string
	SampleType    string
	Category      string
	CollectedDate *time.Time
	Limit         int
	Offset        int
}

func (i ListInput) filter() domain.SampleFilter {
	return domain.SampleFilter{
		Query:         strings.TrimSpace(i.Query),
		SampleType:    strings.TrimSpace(i.SampleType),
		Category:      strings.TrimSpace(i.Category),
		CollectedDate: i.CollectedDate,
		Limit:         i.Limit,
		Offset:        max(i.Offset, 0),
	}
}

func requireLen(errs []domain.FieldError, field, value string, maxLen int) []domain.FieldError {
	switch {
	case value == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case len(value) > maxLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

// checkNumberPath rejects numbers that cannot be addressed as a single
// /samples/{number} path segment.
func checkNumberPath(errs []domain.FieldError, number string) []domain.FieldError {
	if strings.ContainsAny(number, "/?#%") {
		return append(errs, domain.FieldError{Field: "sample_number", Message: "must not contain / ? # or %"})
	}
	for _, r := range reservedNumbers {
		if strings.EqualFold(number, r) {
			return append(errs, domain.FieldError{Field: "sample_number", Message: "reserved"})
		}
	}
	return errs
}
