// Package store is the persistence gateway for issues, authorities, users and
// uploaded images. Controllers and services depend on the interfaces here;
// the geo and analytics packages never do.
package store

import (
	"context"
	"io"
	"time"

	"civicreport-be/geo"
	"civicreport-be/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=gateway.go -destination=mocks/mockGateway.go -package=mocks

// Order of FetchIssues results by creation time.
type Order int

const (
	NewestFirst Order = iota
	OldestFirst
)

// IssueFilter narrows an issue query. Zero values mean "any".
type IssueFilter struct {
	Category       models.Category
	Status         models.IssueStatus
	UserID         string
	AuthorityID    *primitive.ObjectID
	CreatedAfter   time.Time
	HasCoordinates bool
	// Within keeps issues whose coordinates fall inside the box.
	Within *geo.Box
}

type IssueQuery struct {
	Filter IssueFilter
	Limit  int
	Offset int
	Order  Order
}

// StatusChange is an officer's update to an issue.
type StatusChange struct {
	Status          models.IssueStatus
	Note            *string
	AuthorityID     *primitive.ObjectID
	UpdatedByUserID string
}

// Feedback is a citizen's rating of a handled issue.
type Feedback struct {
	Rating  float64
	Comment *string
	UserID  string
}

type IssueStore interface {
	FetchIssues(ctx context.Context, q IssueQuery) ([]models.Issue, error)
	CountIssues(ctx context.Context, f IssueFilter) (int64, error)
	GetIssue(ctx context.Context, id string) (*models.Issue, error)
	InsertIssue(ctx context.Context, issue *models.Issue) error
	UpdateIssueStatus(ctx context.Context, id string, change StatusChange) (*models.Issue, error)
	RateIssue(ctx context.Context, id string, feedback Feedback) (*models.Issue, error)
	FetchIssueUpdates(ctx context.Context, issueID string) ([]models.IssueUpdate, error)

	FetchAuthorities(ctx context.Context, category models.Category) ([]models.Authority, error)
	GetAuthority(ctx context.Context, id string) (*models.Authority, error)
	InsertAuthority(ctx context.Context, authority *models.Authority) error
}

type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	InsertUser(ctx context.Context, user *models.User) error
	// UpsertOfficer creates or updates the account matching officer.NIC or
	// officer.Email.
	UpsertOfficer(ctx context.Context, officer *models.User) (created bool, err error)
	// ClaimAccount sets the first password of an account created without one.
	ClaimAccount(ctx context.Context, id string, passwordHash string) error
}

type ImageStore interface {
	SaveImage(ctx context.Context, filename string, src io.Reader) (string, error)
	OpenImage(ctx context.Context, id string, dst io.Writer) error
}
