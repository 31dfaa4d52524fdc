package models

import (
	"time"
)

// SubmissionKind identifies one of the three pending queues. The value is
// the backing collection name, which is also what the audit log records.
type SubmissionKind string

const (
	KindNewClinic SubmissionKind = "pendingNewClinics"
	KindEdit      SubmissionKind = "pendingEdits"
	KindReview    SubmissionKind = "pendingReviews"
)

// Collection returns the store collection backing this queue.
func (k SubmissionKind) Collection() string { return string(k) }

// Valid reports whether k names a known queue.
func (k SubmissionKind) Valid() bool {
	switch k {
	case KindNewClinic, KindEdit, KindReview:
		return true
	}
	return false
}

// PendingClinic is a user-submitted clinic awaiting moderation.
// The payload mirrors Clinic; it becomes the approved record verbatim.
type PendingClinic struct {
	Clinic      `bson:",inline"`
	SubmittedBy string    `bson:"submittedBy" json:"submittedBy,omitempty"`
	SubmittedAt time.Time `bson:"submittedAt" json:"submittedAt"`
}

// EditableClinicFields enumerates the clinic fields an edit proposal may
// touch. Identity and derived fields (id, reviewsCount, approvedAt) are
// never editable through the submission pipeline.
var EditableClinicFields = map[string]bool{
	"name":            true,
	"city":            true,
	"address":         true,
	"phone":           true,
	"email":           true,
	"www":             true,
	"facebook":        true,
	"instagram":       true,
	"linkedin":        true,
	"youtube":         true,
	"cennik":          true,
	"dodatkowe":       true,
	"specializations": true,
	"openingHours":    true,
}

// PendingEdit proposes field changes against an existing clinic.
// OldData snapshots the prior values at submission time for diff display.
type PendingEdit struct {
	ID          string         `bson:"id" json:"id"`
	ClinicID    string         `bson:"clinicId" json:"clinicId"`
	Fields      map[string]any `bson:"data" json:"data"`
	OldData     map[string]any `bson:"oldData" json:"oldData,omitempty"`
	SubmittedBy string         `bson:"submittedBy" json:"submittedBy,omitempty"`
	SubmittedAt time.Time      `bson:"submittedAt" json:"submittedAt"`
}

// PendingReview is a review submission awaiting moderation. ClinicID must be
// non-empty for approval to succeed.
type PendingReview struct {
	ID          string    `bson:"id" json:"id"`
	ClinicID    string    `bson:"clinicId" json:"clinicId"`
	Author      string    `bson:"author" json:"author"`
	Rating      int       `bson:"rating" json:"rating"` // 1..5
	Title       string    `bson:"title" json:"title"`
	Text        string    `bson:"text" json:"text"`
	VisitDate   string    `bson:"visitDate" json:"visitDate,omitempty"`
	Flagged     bool      `bson:"flagged" json:"flagged,omitempty"` // profanity pre-screen hit
	SubmittedAt time.Time `bson:"submittedAt" json:"submittedAt"`
}
