package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"civicreport-be/apperrors"
	"civicreport-be/models"
	"civicreport-be/store/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type stubResolver struct {
	location *Location
	err      error
	calls    int
}

func (r *stubResolver) Geocode(context.Context, string) (*Location, error) {
	r.calls++
	return r.location, r.err
}

var bookingPattern = regexp.MustCompile(`^ISS[0-9A-F]{6}$`)

func TestNewBookingReference(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Regexp(t, bookingPattern, NewBookingReference())
	}
}

func TestSubmitBuildsAndRoutesIssue(t *testing.T) {
	ctrl := gomock.NewController(t)
	issues := mocks.NewMockIssueStore(ctrl)
	images := mocks.NewMockImageStore(ctrl)
	resolver := &stubResolver{location: &Location{Latitude: 6.9271, Longitude: 79.8612}}
	svc := NewReportService(issues, images, resolver, "/api/v1/issues/images/")

	authority := models.Authority{ID: primitive.NewObjectID(), Category: models.Roads}
	issues.EXPECT().FetchAuthorities(gomock.Any(), models.Roads).Return([]models.Authority{authority}, nil)
	images.EXPECT().SaveImage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filename string, _ interface{}) (string, error) {
			assert.True(t, strings.HasSuffix(filename, ".jpg"))
			return "65a1f0c2e4b0a1b2c3d4e5f6", nil
		})
	issues.EXPECT().InsertIssue(gomock.Any(), gomock.Any()).Return(nil)

	issue, err := svc.Submit(context.Background(), Submission{
		UserID:      "citizen-1",
		Category:    " Roads ",
		Description: "Deep pothole",
		Location:    "Fort, Colombo",
		Image:       strings.NewReader("jpeg bytes"),
		ImageName:   "photo.JPG",
	})
	require.NoError(t, err)

	assert.Equal(t, models.Roads, issue.Category)
	assert.Equal(t, "Roads Issue", issue.Title)
	assert.Equal(t, models.Pending, issue.Status)
	assert.Equal(t, models.SeverityLow, issue.SeverityLevel)
	assert.Regexp(t, bookingPattern, issue.BookingReference)
	require.NotNil(t, issue.AssignedAuthorityID)
	assert.Equal(t, authority.ID, *issue.AssignedAuthorityID)
	require.NotNil(t, issue.ImageURL)
	assert.Equal(t, "/api/v1/issues/images/65a1f0c2e4b0a1b2c3d4e5f6", *issue.ImageURL)

	lat, lon, ok := issue.Coordinates()
	require.True(t, ok)
	assert.Equal(t, 6.9271, lat)
	assert.Equal(t, 79.8612, lon)
	assert.Equal(t, 1, resolver.calls)
}

func TestSubmitKeepsGivenCoordinatesAndSurvivesRoutingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	issues := mocks.NewMockIssueStore(ctrl)
	resolver := &stubResolver{}
	svc := NewReportService(issues, nil, resolver, "")

	issues.EXPECT().FetchAuthorities(gomock.Any(), models.Water).
		Return(nil, fmt.Errorf("%w: timeout", apperrors.ErrDataUnavailable))
	issues.EXPECT().InsertIssue(gomock.Any(), gomock.Any()).Return(nil)

	lat, lon := 6.9173, 79.8823
	issue, err := svc.Submit(context.Background(), Submission{
		UserID:        "citizen-2",
		Category:      models.Water,
		Title:         "Burst main",
		Description:   "Water flooding the road",
		Location:      "Duplication Road",
		SeverityLevel: 4,
		Latitude:      &lat,
		Longitude:     &lon,
	})
	require.NoError(t, err)
	assert.Equal(t, "Burst main", issue.Title)
	assert.Nil(t, issue.AssignedAuthorityID)
	assert.Equal(t, 0, resolver.calls)
}

func TestSubmitRetriesBookingReferenceConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	issues := mocks.NewMockIssueStore(ctrl)
	svc := NewReportService(issues, nil, nil, "")

	conflict := fmt.Errorf("%w: booking reference", apperrors.ErrConflict)
	var seen []string
	issues.EXPECT().FetchAuthorities(gomock.Any(), gomock.Any()).Return(nil, nil)
	issues.EXPECT().InsertIssue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, issue *models.Issue) error {
			seen = append(seen, issue.BookingReference)
			if len(seen) == 1 {
				return conflict
			}
			return nil
		}).Times(2)

	_, err := svc.Submit(context.Background(), Submission{
		UserID: "u", Category: models.Waste, Description: "d", Location: "l",
	})
	require.NoError(t, err)
	assert.Len(t, seen, 2)
}

func TestSubmitRejectsInvalidSubmissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewReportService(mocks.NewMockIssueStore(ctrl), nil, nil, "")
	lat := 6.9

	tests := []struct {
		name string
		sub  Submission
	}{
		{"missing user", Submission{Category: models.Roads, Description: "d", Location: "l"}},
		{"unknown category", Submission{UserID: "u", Category: "potholes", Description: "d", Location: "l"}},
		{"missing description", Submission{UserID: "u", Category: models.Roads, Location: "l"}},
		{"missing location", Submission{UserID: "u", Category: models.Roads, Description: "d"}},
		{"half coordinates", Submission{UserID: "u", Category: models.Roads, Description: "d", Location: "l", Latitude: &lat}},
		{"severity out of range", Submission{UserID: "u", Category: models.Roads, Description: "d", Location: "l", SeverityLevel: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tt.sub)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidArgument), err)
		})
	}
}
