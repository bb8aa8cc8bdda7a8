package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportRequest carries the raw report parameters. Dates are YYYY-MM-DD;
// malformed values are treated as unbounded.
type ReportRequest struct {
	Kind   ReportKind
	From   *time.Time
	To     *time.Time
	UserID *uuid.UUID
}

// Column describes one report column. Status columns are rendered with
// status styling by presentation layers.
type Column struct {
	Label    string `json:"label"`
	IsStatus bool   `json:"isStatus"`
}

// Report is a titled table of string cells in column order. Truncated is
// set when more rows matched than the row cap allowed.
type Report struct {
	Kind      ReportKind `json:"kind"`
	Title     string     `json:"title"`
	Columns   []Column   `json:"columns"`
	Rows      [][]string `json:"rows"`
	Truncated bool       `json:"truncated"`
}

// ApprovalRef links a sample to the user of its most recent approval.
type ApprovalRef struct {
	SampleID  uuid.UUID
	Username  string
	CreatedAt time.Time
}
