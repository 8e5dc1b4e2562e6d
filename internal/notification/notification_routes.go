package notification

import (
	"dosrobles-hr/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	notifications.Use(middleware.RateLimitByEmployee(rate.Limit(10), 20))
	{
		notifications.GET("", handler.List)
		notifications.GET("/unread", handler.ListUnread)
		notifications.GET("/all", handler.ListAll)
		notifications.PATCH("/:id/read", handler.MarkRead)
		notifications.POST("/read-all", handler.MarkAllRead)
		notifications.DELETE("/:id", handler.Delete)
		notifications.DELETE("/read", handler.DeleteAllRead)
	}
}
