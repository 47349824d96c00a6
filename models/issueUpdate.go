package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Update types recorded in the issue history
const (
	UpdateStatusChange = "status_change"
	UpdateFeedback     = "feedback"
)

// IssueUpdate is one entry of an issue's public history
type IssueUpdate struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IssueID         primitive.ObjectID `bson:"issue_id" json:"issue_id"`
	UpdatedByUserID string             `bson:"updated_by_user_id,omitempty" json:"updated_by_user_id,omitempty"`
	PreviousStatus  IssueStatus        `bson:"previous_status,omitempty" json:"previous_status,omitempty"`
	NewStatus       IssueStatus        `bson:"new_status" json:"new_status"`
	UpdateType      string             `bson:"update_type" json:"update_type"`
	Comment         *string            `bson:"comment,omitempty" json:"comment,omitempty"`
	IsPublic        bool               `bson:"is_public" json:"is_public"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// StatusHistoryEntry is the citizen-facing view of an IssueUpdate
type StatusHistoryEntry struct {
	Status    IssueStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Note      string      `json:"note"`
	UpdatedBy string      `json:"updated_by,omitempty"`
}
