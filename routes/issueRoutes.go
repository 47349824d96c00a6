package routes

import (
	"civicreport-be/controllers"
	"civicreport-be/middlewares"
	"civicreport-be/models"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes
func IssueRoutes(r *gin.RouterGroup, ic *controllers.IssueController, opts Options) {
	authed := middlewares.AuthMiddleware(opts.JWTSecret)
	optional := middlewares.OptionalAuth(opts.JWTSecret)

	issue := r.Group("/issues")
	{
		issue.POST("/report", optional,
			middlewares.IssueRateLimiter(opts.Redis, opts.RateLimitPrefix, opts.ReportRateLimit),
			ic.ReportIssue)
		issue.POST("/analyze-image", optional,
			middlewares.IssueRateLimiter(opts.Redis, opts.RateLimitPrefix+":analyze", opts.ReportRateLimit),
			ic.AnalyzeImage)

		issue.GET("/my-reports/:user_id", authed, ic.GetMyReports)
		issue.GET("/categories", ic.GetCategories)
		issue.GET("/authorities", ic.GetAuthorities)
		issue.POST("/nearby", ic.GetNearbyIssues)
		issue.GET("/all", ic.GetAllIssues)
		issue.GET("/images/:image_id", ic.GetImage)
		issue.POST("/create-authority-officer", authed, middlewares.RequireRole(models.RoleAdmin), ic.CreateAuthorityOfficer)

		issue.GET("/:issue_id", ic.GetIssue)
		issue.GET("/:issue_id/status", ic.GetIssueStatus)
		issue.PUT("/:issue_id/update", authed, middlewares.RequireRole(models.RoleOfficer, models.RoleAdmin), ic.UpdateIssueStatus)
		issue.POST("/:issue_id/feedback", authed, ic.SubmitFeedback)
	}
}

func LocationRoutes(r *gin.RouterGroup, lc *controllers.LocationController) {
	location := r.Group("/issues/location")
	{
		location.POST("/geocode", lc.Geocode)
		location.POST("/reverse-geocode", lc.ReverseGeocode)
		location.GET("/suggestions", lc.Suggestions)
		location.POST("/validate", lc.Validate)
		location.GET("/districts", lc.Districts)
	}
}
