package app

import (
	"database/sql"

	"dosrobles-hr/internal/authz"
	"dosrobles-hr/internal/employee"
	"dosrobles-hr/internal/leave"
	"dosrobles-hr/internal/messaging/kafka"
	"dosrobles-hr/internal/notification"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Authorization ---
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return err
	}
	gate := authz.NewGate(enforcer)

	// --- Services ---
	directory := employee.NewDirectory(employeeRepo, rdb)
	dispatcher := notification.NewDispatcher(notificationRepo)
	notificationService := notification.NewService(notificationRepo, gate)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, gate, directory, dispatcher, outboxRepo)

	// --- Handlers ---
	leaveHandler := leave.NewHandler(leaveService)
	notificationHandler := notification.NewHandler(notificationService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		leave.RegisterRoutes(api, leaveHandler)
		notification.RegisterRoutes(api, notificationHandler)
	}

	return nil
}
