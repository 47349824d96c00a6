package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"civicreport-be/apperrors"
	"civicreport-be/metrics"
	"civicreport-be/models"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/tidwall/gjson"
)

const MaxImageBytes = 10 << 20

var supportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var requiredAnalysisFields = []string{"detected_issue", "category", "description", "severity_level", "confidence_score"}

const analysisSystemPrompt = `You are an assistant specialized in analyzing civic infrastructure issues for government services in Sri Lanka.
Analyze the provided image and identify any civic issues that require government attention.

Respond with JSON only, using this structure:
{
  "detected_issue": "Brief description of the main issue (max 100 chars)",
  "category": "One of: roads, electricity, water, waste, safety, health, environment, infrastructure",
  "description": "Detailed description of the issue and its potential impact (max 300 chars)",
  "severity_level": 1-4 (1=low, 2=medium, 3=high, 4=critical),
  "confidence_score": 0.0-1.0,
  "analysis_details": {
    "issue_type": "Specific type of issue detected",
    "urgency_indicators": ["factors"],
    "safety_concerns": "Any safety risks identified",
    "estimated_impact": "Potential impact on community"
  }
}

Categories:
- roads: potholes, cracks, traffic signs, road damage
- electricity: power lines, street lights, electrical hazards
- water: leaks, flooding, drainage, water supply
- waste: garbage, illegal dumping, sanitation
- safety: traffic hazards, damaged barriers, security concerns
- health: public health hazards, hygiene issues
- environment: pollution, environmental damage
- infrastructure: buildings, public facilities, general infrastructure`

// ImageAnalyzer classifies report photos with the Anthropic Messages API.
type ImageAnalyzer struct {
	client  anthropic.Client
	model   string
	enabled bool
}

func NewImageAnalyzer(apiKey, model string) *ImageAnalyzer {
	if apiKey == "" {
		log.Println("ANTHROPIC_API_KEY not set, image analysis disabled")
		return &ImageAnalyzer{model: model}
	}
	return &ImageAnalyzer{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		enabled: true,
	}
}

func (a *ImageAnalyzer) Enabled() bool {
	return a.enabled
}

// Analyze sends the image to the model and returns the structured analysis.
// A reply that is not JSON is classified by keywords instead.
func (a *ImageAnalyzer) Analyze(ctx context.Context, image []byte, mediaType, location string) (*models.AIAnalysis, error) {
	if !supportedImageTypes[mediaType] {
		return nil, fmt.Errorf("%w: please upload a valid image file", apperrors.ErrInvalidArgument)
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: image is empty", apperrors.ErrInvalidArgument)
	}
	if len(image) > MaxImageBytes {
		return nil, fmt.Errorf("%w: image file too large, maximum size is 10MB", apperrors.ErrInvalidArgument)
	}
	if !a.enabled {
		return nil, fmt.Errorf("%w: image analysis is not configured", apperrors.ErrDataUnavailable)
	}

	prompt := "Analyze this image for civic issues."
	if location != "" {
		prompt += "\nLocation context: " + location
	}

	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: analysisSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(mediaType, base64.StdEncoding.EncodeToString(image)),
				anthropic.NewTextBlock(prompt),
			),
		},
	})
	if err != nil {
		log.Printf("Image analysis error: %v", err)
		metrics.RecordImageAnalysis("error")
		return nil, fmt.Errorf("%w: image analysis: %v", apperrors.ErrDataUnavailable, err)
	}

	for _, block := range message.Content {
		if block.Type != "text" {
			continue
		}
		if analysis, ok := parseAnalysis(block.Text, location); ok {
			metrics.RecordImageAnalysis("ai")
			return analysis, nil
		}
		metrics.RecordImageAnalysis("fallback")
		return fallbackAnalysis(block.Text, location), nil
	}

	metrics.RecordImageAnalysis("error")
	return nil, fmt.Errorf("%w: no text content in analysis response", apperrors.ErrDataUnavailable)
}

// parseAnalysis reads the model's JSON reply. ok is false when the reply is
// not a JSON object carrying every required field.
func parseAnalysis(text, location string) (*models.AIAnalysis, bool) {
	cleaned := stripCodeFence(text)
	if !gjson.Valid(cleaned) {
		return nil, false
	}
	reply := gjson.Parse(cleaned)
	if !reply.IsObject() {
		return nil, false
	}
	for _, field := range requiredAnalysisFields {
		if !reply.Get(field).Exists() {
			return nil, false
		}
	}

	category := models.Category(strings.ToLower(strings.TrimSpace(reply.Get("category").String())))
	if !category.Valid() {
		category = models.Infrastructure
	}
	authority := models.DefaultAuthorityFor(category)

	analysis := &models.AIAnalysis{
		DetectedIssue:        reply.Get("detected_issue").String(),
		Category:             category,
		Description:          reply.Get("description").String(),
		SeverityLevel:        clampSeverity(int(reply.Get("severity_level").Int())),
		ConfidenceScore:      clampConfidence(reply.Get("confidence_score").Float()),
		RecommendedAuthority: authority.Contact(),
		SuggestedLocation:    location,
	}
	if details, ok := reply.Get("analysis_details").Value().(map[string]interface{}); ok {
		analysis.Details = details
	}
	return analysis, true
}

var categoryKeywords = []struct {
	category models.Category
	words    []string
}{
	{models.Roads, []string{"pothole", "road", "traffic", "pavement"}},
	{models.Electricity, []string{"light", "power", "electric", "cable"}},
	{models.Water, []string{"water", "leak", "flood", "drainage"}},
	{models.Waste, []string{"garbage", "waste", "trash", "litter"}},
	{models.Safety, []string{"safety", "danger", "hazard", "barrier"}},
}

var severityKeywords = []struct {
	level int
	words []string
}{
	{models.SeverityCritical, []string{"critical", "dangerous", "emergency", "urgent"}},
	{models.SeverityHigh, []string{"serious", "significant", "major"}},
	{models.SeverityLow, []string{"minor", "small", "slight"}},
}

// fallbackAnalysis classifies a free-text reply by keywords.
func fallbackAnalysis(text, location string) *models.AIAnalysis {
	lower := strings.ToLower(text)

	category := models.Infrastructure
	for _, k := range categoryKeywords {
		if containsAny(lower, k.words) {
			category = k.category
			break
		}
	}
	severity := models.SeverityMedium
	for _, k := range severityKeywords {
		if containsAny(lower, k.words) {
			severity = k.level
			break
		}
	}

	raw := text
	if len(raw) > 200 {
		raw = raw[:200]
	}
	authority := models.DefaultAuthorityFor(category)
	return &models.AIAnalysis{
		DetectedIssue:        "Civic infrastructure issue detected",
		Category:             category,
		Description:          fmt.Sprintf("AI analysis detected a %s issue requiring attention.", category),
		SeverityLevel:        severity,
		ConfidenceScore:      0.75,
		RecommendedAuthority: authority.Contact(),
		Details:              map[string]any{"raw_response": raw},
		SuggestedLocation:    location,
	}
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func clampSeverity(level int) int {
	if level < models.SeverityLow {
		return models.SeverityLow
	}
	if level > models.SeverityCritical {
		return models.SeverityCritical
	}
	return level
}

func clampConfidence(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
