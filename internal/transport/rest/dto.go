package rest

import (
	"time"

	"github.com/heartmarshall/labsample-backend/internal/access"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

const dateLayout = "2006-01-02"

type pageResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	Role      string    `json:"role"`
	Groups    []string  `json:"groups"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User, role domain.Role) userResponse {
	groups := u.Groups
	if groups == nil {
		groups = []string{}
	}
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
		Role:      role.String(),
		Groups:    groups,
		CreatedAt: u.CreatedAt,
	}
}

type tagResponse struct {
	ID        string    `json:"id"`
	UID       string    `json:"uid"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func toTagResponse(t *domain.RFIDTag) tagResponse {
	return tagResponse{
		ID:        t.ID.String(),
		UID:       t.UID,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
	}
}

type sampleResponse struct {
	ID            string      `json:"id"`
	SampleNumber  string      `json:"sample_number"`
	SampleType    string      `json:"sample_type"`
	Category      string      `json:"category"`
	PersonName    string      `json:"person_name"`
	CollectedDate string      `json:"collected_date"`
	Location      string      `json:"location"`
	Status        string      `json:"status"`
	StatusLabel   string      `json:"status_label"`
	RFIDChecked   bool        `json:"rfid_checked"`
	Tag           tagResponse `json:"rfid_tag"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func toSampleResponse(s *domain.Sample) sampleResponse {
	return sampleResponse{
		ID:            s.ID.String(),
		SampleNumber:  s.SampleNumber,
		SampleType:    s.SampleType,
		Category:      s.Category,
		PersonName:    s.PersonName,
		CollectedDate: s.CollectedDate.Format(dateLayout),
		Location:      s.Location,
		Status:        s.Status.String(),
		StatusLabel:   s.Status.Label(),
		RFIDChecked:   s.Status.IsRFIDChecked(),
		Tag:           toTagResponse(&s.Tag),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toSampleResponses(samples []domain.Sample) []sampleResponse {
	out := make([]sampleResponse, len(samples))
	for i := range samples {
		out[i] = toSampleResponse(&samples[i])
	}
	return out
}

type auditResponse struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	Username     string            `json:"username"`
	SampleNumber string            `json:"sample_number,omitempty"`
	Kind         string            `json:"kind"`
	Action       string            `json:"action"`
	Payload      map[string]string `json:"payload,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

func toAuditResponse(e *domain.AuditEntry) auditResponse {
	text := e.Action
	if text == "" {
		text = domain.AuditText(e.Kind, e.Payload)
	}
	return auditResponse{
		ID:           e.ID.String(),
		UserID:       e.UserID.String(),
		Username:     e.Username,
		SampleNumber: e.SampleNumber,
		Kind:         e.Kind.String(),
		Action:       text,
		Payload:      e.Payload,
		CreatedAt:    e.CreatedAt,
	}
}

func toAuditResponses(entries []domain.AuditEntry) []auditResponse {
	out := make([]auditResponse, len(entries))
	for i := range entries {
		out[i] = toAuditResponse(&entries[i])
	}
	return out
}

// roleOf is the role shown next to a user; derived, never stored.
func roleOf(u *domain.User) domain.Role {
	return access.RoleOf(u)
}
