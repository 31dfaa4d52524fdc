package models

import (
	"time"
)

// Moderation actions recorded in the audit log.
const (
	ActionApproved = "approved"
	ActionRejected = "rejected"
)

// AuditEntry is an append-only moderation log record. Entries are never
// mutated or deleted.
type AuditEntry struct {
	ID         string    `bson:"id" json:"id"`
	Action     string    `bson:"action" json:"action"`
	Collection string    `bson:"collection" json:"collection"`
	ItemID     string    `bson:"itemId" json:"itemId"`
	Admin      string    `bson:"admin" json:"admin"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}
