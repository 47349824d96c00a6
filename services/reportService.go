package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"civicreport-be/apperrors"
	"civicreport-be/metrics"
	"civicreport-be/models"
	"civicreport-be/store"

	"github.com/google/uuid"
)

const bookingAttempts = 3

// Submission is a citizen's report as received from the form.
type Submission struct {
	UserID        string
	Category      models.Category
	Title         string
	Description   string
	Location      string
	SeverityLevel int
	Latitude      *float64
	Longitude     *float64
	AIAnalysis    *models.AIAnalysis

	Image     io.Reader
	ImageName string
}

// AddressResolver turns a location label into coordinates.
type AddressResolver interface {
	Geocode(ctx context.Context, address string) (*Location, error)
}

// ReportService turns submissions into stored issues routed to an authority.
type ReportService struct {
	issues       store.IssueStore
	images       store.ImageStore
	resolver     AddressResolver
	imageBaseURL string
}

// NewReportService builds the service. resolver may be nil to skip geocoding.
func NewReportService(issues store.IssueStore, images store.ImageStore, resolver AddressResolver, imageBaseURL string) *ReportService {
	return &ReportService{
		issues:       issues,
		images:       images,
		resolver:     resolver,
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
	}
}

func (s *ReportService) Submit(ctx context.Context, sub Submission) (*models.Issue, error) {
	if err := validateSubmission(&sub); err != nil {
		return nil, err
	}

	issue := &models.Issue{
		UserID:        sub.UserID,
		Category:      sub.Category,
		Title:         sub.Title,
		Description:   sub.Description,
		Location:      sub.Location,
		Latitude:      sub.Latitude,
		Longitude:     sub.Longitude,
		SeverityLevel: sub.SeverityLevel,
		Status:        models.Pending,
		AIAnalysis:    sub.AIAnalysis,
	}
	if issue.Title == "" {
		issue.Title = models.TitleCase(string(issue.Category)) + " Issue"
	}

	if issue.Latitude == nil && s.resolver != nil {
		if loc, err := s.resolver.Geocode(ctx, issue.Location); err == nil && InSriLanka(loc.Latitude, loc.Longitude) {
			issue.Latitude, issue.Longitude = &loc.Latitude, &loc.Longitude
		} else if err != nil {
			log.Printf("Geocoding %q skipped: %v", issue.Location, err)
		}
	}

	if authorities, err := s.issues.FetchAuthorities(ctx, issue.Category); err != nil {
		log.Printf("Authority routing for %s skipped: %v", issue.Category, err)
	} else if len(authorities) > 0 {
		issue.AssignedAuthorityID = &authorities[0].ID
	}

	if sub.Image != nil && s.images != nil {
		id, err := s.images.SaveImage(ctx, imageFilename(sub.ImageName), sub.Image)
		if err != nil {
			return nil, err
		}
		url := s.imageBaseURL + "/" + id
		issue.ImageURL = &url
	}

	var err error
	for attempt := 0; attempt < bookingAttempts; attempt++ {
		issue.BookingReference = NewBookingReference()
		if err = s.issues.InsertIssue(ctx, issue); !errors.Is(err, apperrors.ErrConflict) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	metrics.RecordIssueReported(string(issue.Category))
	log.Printf("Issue %s reported in %s", issue.BookingReference, issue.Category)
	return issue, nil
}

// NewBookingReference returns "ISS" followed by six upper-case hex characters.
func NewBookingReference() string {
	return "ISS" + strings.ToUpper(uuid.NewString()[:6])
}

func validateSubmission(sub *Submission) error {
	sub.UserID = strings.TrimSpace(sub.UserID)
	sub.Title = strings.TrimSpace(sub.Title)
	sub.Description = strings.TrimSpace(sub.Description)
	sub.Location = strings.TrimSpace(sub.Location)
	sub.Category = models.Category(strings.ToLower(strings.TrimSpace(string(sub.Category))))

	switch {
	case sub.UserID == "":
		return fmt.Errorf("%w: user_id is required", apperrors.ErrInvalidArgument)
	case !sub.Category.Valid():
		return fmt.Errorf("%w: invalid category %q", apperrors.ErrInvalidArgument, sub.Category)
	case sub.Description == "":
		return fmt.Errorf("%w: description is required", apperrors.ErrInvalidArgument)
	case sub.Location == "":
		return fmt.Errorf("%w: location is required", apperrors.ErrInvalidArgument)
	case (sub.Latitude == nil) != (sub.Longitude == nil):
		return fmt.Errorf("%w: latitude and longitude must be given together", apperrors.ErrInvalidArgument)
	}

	if sub.SeverityLevel == 0 {
		sub.SeverityLevel = models.SeverityLow
	}
	if !models.ValidSeverity(sub.SeverityLevel) {
		return fmt.Errorf("%w: severity_level must be between 1 and 4", apperrors.ErrInvalidArgument)
	}
	return nil
}

func imageFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.NewString() + ext
}
