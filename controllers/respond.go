package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"civicreport-be/apperrors"

	"github.com/gin-gonic/gin"
)

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrDataUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		message = "Something went wrong"
	}
	c.JSON(status, gin.H{"success": false, "message": message})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

// respond writes the success envelope merged with body.
func respond(c *gin.Context, status int, message string, body gin.H) {
	envelope := gin.H{"success": true}
	if message != "" {
		envelope["message"] = message
	}
	for k, v := range body {
		envelope[k] = v
	}
	c.JSON(status, envelope)
}

// queryInt reads a non-negative integer query parameter.
func queryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		badRequest(c, name+" must be a non-negative integer")
		return 0, false
	}
	return n, true
}

// MaxPageSize caps the limit parameter of listing endpoints.
const MaxPageSize = 1000

// queryLimit reads a page size of at least one, clamped to MaxPageSize.
func queryLimit(c *gin.Context, fallback int) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		badRequest(c, "limit must be a positive integer")
		return 0, false
	}
	return min(n, MaxPageSize), true
}
