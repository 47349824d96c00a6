package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category enum
type Category string

const (
	Roads          Category = "roads"
	Electricity    Category = "electricity"
	Water          Category = "water"
	Waste          Category = "waste"
	Safety         Category = "safety"
	Health         Category = "health"
	Environment    Category = "environment"
	Infrastructure Category = "infrastructure"

	// UnknownCategory labels records whose category is missing or not in the enum.
	UnknownCategory Category = "unknown"
)

// Categories lists the enumerated categories in catalog order.
var Categories = []Category{Roads, Electricity, Water, Waste, Safety, Health, Environment, Infrastructure}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// IssueStatus enum
type IssueStatus string

const (
	Pending     IssueStatus = "pending"
	UnderReview IssueStatus = "under_review"
	Assigned    IssueStatus = "assigned"
	InProgress  IssueStatus = "in_progress"
	Resolved    IssueStatus = "resolved"
	Closed      IssueStatus = "closed"

	UnknownStatus IssueStatus = "unknown"
)

var Statuses = []IssueStatus{Pending, UnderReview, Assigned, InProgress, Resolved, Closed}

func (s IssueStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsPending covers issues nobody has picked up yet.
func (s IssueStatus) IsPending() bool {
	return s == Pending || s == UnderReview
}

// IsInProgress covers issues an authority is working on.
func (s IssueStatus) IsInProgress() bool {
	return s == Assigned || s == InProgress
}

// Severity levels
const (
	SeverityLow      = 1
	SeverityMedium   = 2
	SeverityHigh     = 3
	SeverityCritical = 4
)

// ValidSeverity reports whether level is within 1..4.
func ValidSeverity(level int) bool {
	return level >= SeverityLow && level <= SeverityCritical
}

// Issue represents a civic issue reported by a citizen
type Issue struct {
	ID                        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID                    string              `bson:"user_id" json:"user_id"`
	Category                  Category            `bson:"category" json:"category"`
	Title                     string              `bson:"title" json:"title"`
	Description               string              `bson:"description" json:"description"`
	Location                  string              `bson:"location" json:"location"`
	Latitude                  *float64            `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude                 *float64            `bson:"longitude,omitempty" json:"longitude,omitempty"`
	SeverityLevel             int                 `bson:"severity_level" json:"severity_level"`
	Status                    IssueStatus         `bson:"status" json:"status"`
	ImageURL                  *string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	BookingReference          string              `bson:"booking_reference" json:"booking_reference"`
	AssignedAuthorityID       *primitive.ObjectID `bson:"assigned_authority_id,omitempty" json:"assigned_authority_id,omitempty"`
	AIAnalysis                *AIAnalysis         `bson:"ai_analysis,omitempty" json:"ai_analysis,omitempty"`
	ResolutionNotes           *string             `bson:"resolution_notes,omitempty" json:"resolution_notes,omitempty"`
	CitizenSatisfactionRating *float64            `bson:"citizen_satisfaction_rating,omitempty" json:"citizen_satisfaction_rating,omitempty"`
	ResolvedAt                *time.Time          `bson:"resolved_at,omitempty" json:"resolved_at,omitempty"`
	CreatedAt                 time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt                 time.Time           `bson:"updated_at" json:"updated_at"`
}

// Coordinates returns the issue position; ok is false unless both latitude and
// longitude are present.
func (i *Issue) Coordinates() (lat, lon float64, ok bool) {
	if i.Latitude == nil || i.Longitude == nil {
		return 0, 0, false
	}
	return *i.Latitude, *i.Longitude, true
}

// CategoryOrUnknown returns the category code, or "unknown" when it is empty.
func (i *Issue) CategoryOrUnknown() Category {
	c := Category(strings.TrimSpace(string(i.Category)))
	if c == "" {
		return UnknownCategory
	}
	return c
}

// StatusOrUnknown returns the status, or "unknown" when it is empty.
func (i *Issue) StatusOrUnknown() IssueStatus {
	if i.Status == "" {
		return UnknownStatus
	}
	return i.Status
}

// AIAnalysis is the structured result of an image analysis attached to a report.
type AIAnalysis struct {
	DetectedIssue        string            `bson:"detected_issue" json:"detected_issue"`
	Category             Category          `bson:"category" json:"category"`
	Description          string            `bson:"description" json:"description"`
	SeverityLevel        int               `bson:"severity_level" json:"severity_level"`
	ConfidenceScore      float64           `bson:"confidence_score" json:"confidence_score"`
	RecommendedAuthority *AuthorityContact `bson:"recommended_authority,omitempty" json:"recommended_authority,omitempty"`
	Details              map[string]any    `bson:"analysis_details,omitempty" json:"analysis_details,omitempty"`
	SuggestedLocation    string            `bson:"suggested_location,omitempty" json:"suggested_location,omitempty"`
	RawAnalysis          string            `bson:"raw_analysis,omitempty" json:"raw_analysis,omitempty"`
}
