package routes

import (
	"civicreport-be/controllers"

	"github.com/gin-gonic/gin"
)

func AnalyticsRoutes(r *gin.RouterGroup, ac *controllers.AnalyticsController) {
	analytics := r.Group("/analytics")
	{
		analytics.GET("/department-performance", ac.DepartmentPerformance)
		analytics.GET("/peak-hours", ac.PeakHours)
		analytics.GET("/location-hotspots", ac.LocationHotspots)
		analytics.GET("/category-distribution", ac.CategoryDistribution)
		analytics.GET("/resolution-trends", ac.ResolutionTrends)
		analytics.GET("/overview", ac.Overview)
	}
}
