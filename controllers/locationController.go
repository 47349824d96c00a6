package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"civicreport-be/apperrors"
	"civicreport-be/services"

	"github.com/gin-gonic/gin"
)

// LocationResolver is the geocoding backend behind the location endpoints.
type LocationResolver interface {
	Geocode(ctx context.Context, address string) (*services.Location, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (*services.Address, error)
	Suggestions(ctx context.Context, query string, limit int) ([]services.Suggestion, error)
	ValidateSriLankan(ctx context.Context, address string) (*services.Validation, error)
}

type LocationController struct {
	geocoder LocationResolver
}

func NewLocationController(geocoder LocationResolver) *LocationController {
	return &LocationController{geocoder: geocoder}
}

type addressInput struct {
	Address string `form:"address" json:"address" binding:"required"`
}

// Geocode accepts a form or JSON address. A miss answers 404 with suggestions.
func (l *LocationController) Geocode(c *gin.Context) {
	var input addressInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	location, err := l.geocoder.Geocode(ctx, input.Address)
	if errors.Is(err, apperrors.ErrNotFound) {
		suggestions, sugErr := l.geocoder.Suggestions(ctx, input.Address, 3)
		if sugErr != nil {
			log.Printf("Location suggestions for %q: %v", input.Address, sugErr)
		}
		c.JSON(http.StatusNotFound, gin.H{
			"success":     false,
			"message":     "Could not find exact location",
			"suggestions": suggestions,
		})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Address geocoded successfully", gin.H{"location": location})
}

func (l *LocationController) ReverseGeocode(c *gin.Context) {
	var input struct {
		Latitude  *float64 `form:"latitude" json:"latitude" binding:"required"`
		Longitude *float64 `form:"longitude" json:"longitude" binding:"required"`
	}
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	address, err := l.geocoder.ReverseGeocode(c.Request.Context(), *input.Latitude, *input.Longitude)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Coordinates converted to address", gin.H{"address": address})
}

func (l *LocationController) Suggestions(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 5)
	if !ok {
		return
	}
	suggestions, err := l.geocoder.Suggestions(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, fmt.Sprintf("Found %d location suggestions", len(suggestions)), gin.H{
		"suggestions": suggestions,
	})
}

func (l *LocationController) Validate(c *gin.Context) {
	var input addressInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	validation, err := l.geocoder.ValidateSriLankan(c.Request.Context(), input.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Location validation completed", gin.H{"validation": validation})
}

func (l *LocationController) Districts(c *gin.Context) {
	districts := services.Districts()
	respond(c, http.StatusOK, fmt.Sprintf("Found %d districts", len(districts)), gin.H{"districts": districts})
}
