package leave

import (
	"dosrobles-hr/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	leaves.Use(middleware.RateLimitByEmployee(rate.Limit(10), 20))
	{
		leaves.GET("", handler.List)
		leaves.GET("/summary", handler.Summary)
		leaves.GET("/summary/:employee_id", handler.Summary)
		leaves.GET("/:id", handler.GetByID)
		leaves.POST("", handler.Create)
		leaves.PATCH("/:id", handler.Update)
		leaves.PUT("/:id", handler.Update)
		leaves.POST("/:id/approve", handler.Approve)
		leaves.POST("/:id/reject", handler.Reject)
		leaves.POST("/:id/cancel", handler.Cancel)
	}
}
