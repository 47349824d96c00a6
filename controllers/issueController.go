package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"civicreport-be/apperrors"
	"civicreport-be/geo"
	"civicreport-be/models"
	"civicreport-be/services"
	"civicreport-be/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Reporter interface {
	Submit(ctx context.Context, sub services.Submission) (*models.Issue, error)
}

type NearbyFinder interface {
	FindNearby(ctx context.Context, q geo.Query) ([]geo.Result, error)
}

type ImageClassifier interface {
	Analyze(ctx context.Context, image []byte, mediaType, location string) (*models.AIAnalysis, error)
}

// AnalyticsInvalidator drops cached dashboard reports after issue writes.
type AnalyticsInvalidator interface {
	Invalidate(ctx context.Context)
}

// IssueController serves the citizen and officer issue endpoints.
type IssueController struct {
	issues    store.IssueStore
	users     store.UserStore
	images    store.ImageStore
	reports   Reporter
	nearby    NearbyFinder
	analyzer  ImageClassifier
	analytics AnalyticsInvalidator
}

// IssueControllerDeps wires the controller. Analytics may be nil when
// reports are not cached.
type IssueControllerDeps struct {
	Issues    store.IssueStore
	Users     store.UserStore
	Images    store.ImageStore
	Reports   Reporter
	Nearby    NearbyFinder
	Analyzer  ImageClassifier
	Analytics AnalyticsInvalidator
}

func NewIssueController(deps IssueControllerDeps) *IssueController {
	return &IssueController{
		issues:    deps.Issues,
		users:     deps.Users,
		images:    deps.Images,
		reports:   deps.Reports,
		nearby:    deps.Nearby,
		analyzer:  deps.Analyzer,
		analytics: deps.Analytics,
	}
}

func (ic *IssueController) invalidateAnalytics(c *gin.Context) {
	if ic.analytics != nil {
		ic.analytics.Invalidate(c.Request.Context())
	}
}

// ReportIssue accepts the multipart report form with an optional image.
func (ic *IssueController) ReportIssue(c *gin.Context) {
	var input struct {
		Category      string   `form:"category" binding:"required"`
		Title         string   `form:"title"`
		Description   string   `form:"description" binding:"required"`
		Location      string   `form:"location" binding:"required"`
		UserID        string   `form:"user_id"`
		SeverityLevel int      `form:"severity_level"`
		Latitude      *float64 `form:"latitude"`
		Longitude     *float64 `form:"longitude"`
		AIAnalysis    string   `form:"ai_analysis"`
	}
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	// An authenticated reporter always wins over the form field.
	if userID := c.GetString("user_id"); userID != "" {
		input.UserID = userID
	}

	sub := services.Submission{
		UserID:        input.UserID,
		Category:      models.Category(input.Category),
		Title:         input.Title,
		Description:   input.Description,
		Location:      input.Location,
		SeverityLevel: input.SeverityLevel,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		AIAnalysis:    parseAIAnalysis(input.AIAnalysis),
	}

	header, err := c.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		badRequest(c, "Invalid image upload")
		return
	default:
		file, err := openImage(header)
		if err != nil {
			respondError(c, err)
			return
		}
		defer file.Close()
		sub.Image = file
		sub.ImageName = header.Filename
	}

	issue, err := ic.reports.Submit(c.Request.Context(), sub)
	if err != nil {
		respondError(c, err)
		return
	}
	ic.invalidateAnalytics(c)

	respond(c, http.StatusCreated, "Issue reported successfully", gin.H{
		"issue": issue,
		"next_steps": []string{
			fmt.Sprintf("Your issue has been logged with reference %s", issue.BookingReference),
			"A government officer will review your submission within 24 hours",
			"Track your issue progress in the 'My Reports' section",
		},
	})
}

// parseAIAnalysis keeps unparseable input as raw text.
func parseAIAnalysis(raw string) *models.AIAnalysis {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var analysis models.AIAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return &models.AIAnalysis{RawAnalysis: raw}
	}
	return &analysis
}

func openImage(header *multipart.FileHeader) (multipart.File, error) {
	if header.Size > services.MaxImageBytes {
		return nil, fmt.Errorf("%w: image file too large, maximum size is 10MB", apperrors.ErrInvalidArgument)
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("%w: please upload a valid image file", apperrors.ErrInvalidArgument)
	}
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable image: %v", apperrors.ErrInvalidArgument, err)
	}
	return file, nil
}

func (ic *IssueController) GetMyReports(c *gin.Context) {
	userID := c.Param("user_id")
	skip, ok := queryInt(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryLimit(c, 10)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	filter := store.IssueFilter{UserID: userID}
	reports, err := ic.issues.FetchIssues(ctx, store.IssueQuery{Filter: filter, Limit: limit, Offset: skip})
	if err != nil {
		respondError(c, err)
		return
	}
	total, err := ic.issues.CountIssues(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Reports fetched", gin.H{
		"reports":     reports,
		"total_count": total,
		"page":        skip/limit + 1,
	})
}

func (ic *IssueController) GetCategories(c *gin.Context) {
	respond(c, http.StatusOK, "", gin.H{"categories": models.CategoryCatalog})
}

func (ic *IssueController) GetAuthorities(c *gin.Context) {
	category := models.Category(strings.ToLower(c.Query("category")))
	if category != "" && !category.Valid() {
		badRequest(c, fmt.Sprintf("Invalid category %q", category))
		return
	}

	authorities, err := ic.issues.FetchAuthorities(c.Request.Context(), category)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Authorities fetched", gin.H{"authorities": authorities})
}

func (ic *IssueController) GetNearbyIssues(c *gin.Context) {
	var input struct {
		Latitude  *float64 `json:"latitude" binding:"required"`
		Longitude *float64 `json:"longitude" binding:"required"`
		RadiusKM  float64  `json:"radius_km"`
		Limit     int      `json:"limit"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	q := geo.Query{
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		RadiusKM:  input.RadiusKM,
		Limit:     input.Limit,
	}.WithDefaults()

	results, err := ic.nearby.FindNearby(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, fmt.Sprintf("Found %d nearby issues", len(results)), gin.H{
		"issues":        results,
		"count":         len(results),
		"search_params": q,
	})
}

func (ic *IssueController) GetAllIssues(c *gin.Context) {
	skip, ok := queryInt(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryLimit(c, 100)
	if !ok {
		return
	}

	filter := store.IssueFilter{
		Category: models.Category(c.Query("category")),
		Status:   models.IssueStatus(c.Query("status")),
	}
	if filter.Category != "" && !filter.Category.Valid() {
		badRequest(c, fmt.Sprintf("Invalid category %q", filter.Category))
		return
	}
	if filter.Status != "" && !filter.Status.Valid() {
		badRequest(c, fmt.Sprintf("Invalid status %q", filter.Status))
		return
	}
	if raw := c.Query("authority_id"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			badRequest(c, "Invalid authority_id")
			return
		}
		filter.AuthorityID = &id
	}

	ctx := c.Request.Context()
	issues, err := ic.issues.FetchIssues(ctx, store.IssueQuery{Filter: filter, Limit: limit, Offset: skip})
	if err != nil {
		respondError(c, err)
		return
	}
	total, err := ic.issues.CountIssues(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, fmt.Sprintf("Fetched %d issues", len(issues)), gin.H{
		"issues":      issues,
		"total_count": total,
		"filters": gin.H{
			"category":     c.Query("category"),
			"status":       c.Query("status"),
			"authority_id": c.Query("authority_id"),
		},
	})
}

func (ic *IssueController) GetIssue(c *gin.Context) {
	issue, err := ic.issues.GetIssue(c.Request.Context(), c.Param("issue_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"issue": issue})
}

// GetIssueStatus returns the public status history of an issue.
func (ic *IssueController) GetIssueStatus(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("issue_id")

	issue, err := ic.issues.GetIssue(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	updates, err := ic.issues.FetchIssueUpdates(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "", gin.H{
		"status": gin.H{
			"issue_id":              issue.ID,
			"current_status":        issue.Status,
			"status_history":        statusHistory(issue, updates),
			"assigned_authority_id": issue.AssignedAuthorityID,
			"resolution_notes":      issue.ResolutionNotes,
		},
	})
}

func statusHistory(issue *models.Issue, updates []models.IssueUpdate) []models.StatusHistoryEntry {
	history := make([]models.StatusHistoryEntry, 0, len(updates))
	for _, u := range updates {
		if !u.IsPublic {
			continue
		}
		note := "Status changed to " + models.TitleCase(strings.ReplaceAll(string(u.NewStatus), "_", " "))
		if u.Comment != nil && *u.Comment != "" {
			note = *u.Comment
		}
		history = append(history, models.StatusHistoryEntry{
			Status:    u.NewStatus,
			Timestamp: u.CreatedAt,
			Note:      note,
			UpdatedBy: u.UpdatedByUserID,
		})
	}
	if len(history) == 0 {
		history = append(history, models.StatusHistoryEntry{
			Status:    models.Pending,
			Timestamp: issue.CreatedAt,
			Note:      "Issue reported by citizen",
		})
	}
	return history
}

// UpdateIssueStatus lets an officer move an issue to any status.
func (ic *IssueController) UpdateIssueStatus(c *gin.Context) {
	var input struct {
		Status      string  `form:"status" json:"status" binding:"required"`
		Note        *string `form:"note" json:"note"`
		AuthorityID string  `form:"authority_id" json:"authority_id"`
	}
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	change := store.StatusChange{
		Status:          models.IssueStatus(strings.ToLower(strings.TrimSpace(input.Status))),
		Note:            input.Note,
		UpdatedByUserID: c.GetString("user_id"),
	}
	if !change.Status.Valid() {
		badRequest(c, fmt.Sprintf("Invalid status %q", input.Status))
		return
	}
	if input.AuthorityID != "" {
		id, err := primitive.ObjectIDFromHex(input.AuthorityID)
		if err != nil {
			badRequest(c, "Invalid authority_id")
			return
		}
		change.AuthorityID = &id
	}

	issueID := c.Param("issue_id")
	issue, err := ic.issues.UpdateIssueStatus(c.Request.Context(), issueID, change)
	if err != nil {
		respondError(c, err)
		return
	}
	ic.invalidateAnalytics(c)

	log.Printf("Issue %s moved to %s by %s", issueID, change.Status, change.UpdatedByUserID)
	respond(c, http.StatusOK, fmt.Sprintf("Issue %s status updated to %s", issueID, change.Status), gin.H{
		"updated_at": issue.UpdatedAt,
		"note":       input.Note,
		"issue":      issue,
	})
}

func (ic *IssueController) SubmitFeedback(c *gin.Context) {
	var input struct {
		Rating  float64 `form:"rating" json:"rating" binding:"required"`
		Comment *string `form:"comment" json:"comment"`
	}
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		badRequest(c, "rating must be between 1 and 5")
		return
	}

	issue, err := ic.issues.RateIssue(c.Request.Context(), c.Param("issue_id"), store.Feedback{
		Rating:  input.Rating,
		Comment: input.Comment,
		UserID:  c.GetString("user_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	ic.invalidateAnalytics(c)
	respond(c, http.StatusOK, "Thank you for your feedback", gin.H{"issue": issue})
}

// AnalyzeImage classifies an uploaded photo before the report is submitted.
func (ic *IssueController) AnalyzeImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "image is required")
		return
	}
	file, err := openImage(header)
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, services.MaxImageBytes+1))
	if err != nil {
		badRequest(c, "Unreadable image")
		return
	}

	mediaType := header.Header.Get("Content-Type")
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = http.DetectContentType(image)
	}

	location := strings.TrimSpace(c.PostForm("address"))
	if location == "" {
		lat, latErr := strconv.ParseFloat(c.PostForm("latitude"), 64)
		lon, lonErr := strconv.ParseFloat(c.PostForm("longitude"), 64)
		if latErr == nil && lonErr == nil {
			location = fmt.Sprintf("GPS Coordinates: %.6f, %.6f", lat, lon)
		}
	}

	analysis, err := ic.analyzer.Analyze(c.Request.Context(), image, mediaType, location)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "AI analysis completed successfully", gin.H{
		"analysis": analysis,
		"processing_info": gin.H{
			"image_size":        fmt.Sprintf("%d bytes", len(image)),
			"location_provided": location != "",
		},
	})
}

func (ic *IssueController) GetImage(c *gin.Context) {
	var buf bytes.Buffer
	if err := ic.images.OpenImage(c.Request.Context(), c.Param("image_id"), &buf); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, http.DetectContentType(buf.Bytes()), buf.Bytes())
}

// CreateAuthorityOfficer promotes the account with the given NIC or email, or
// creates one. A new account needs an initial password so the officer can log in.
func (ic *IssueController) CreateAuthorityOfficer(c *gin.Context) {
	var input struct {
		FullName    string `json:"full_name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		NIC         string `json:"nic" binding:"required"`
		Phone       string `json:"phone"`
		AuthorityID string `json:"authority_id" binding:"required"`
		Password    string `json:"password" binding:"omitempty,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	authority, err := ic.issues.GetAuthority(ctx, input.AuthorityID)
	if err != nil {
		respondError(c, err)
		return
	}

	officer := &models.User{
		Name:        input.FullName,
		Email:       strings.ToLower(input.Email),
		NIC:         input.NIC,
		Phone:       input.Phone,
		Password:    input.Password,
		AuthorityID: &authority.ID,
	}
	if officer.Password != "" {
		if err := officer.HashPassword(); err != nil {
			respondError(c, err)
			return
		}
	}
	created, err := ic.users.UpsertOfficer(ctx, officer)
	if err != nil {
		respondError(c, err)
		return
	}

	if created {
		respond(c, http.StatusCreated, fmt.Sprintf("Created authority officer profile for %s", officer.Email), gin.H{"profile": officer})
		return
	}
	respond(c, http.StatusOK, fmt.Sprintf("Updated existing user %s as authority officer", officer.Email), gin.H{"profile": officer})
}
