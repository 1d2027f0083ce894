package router

import (
	"studyvibe/internal/handlers"
	"studyvibe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	homeworkHandler := handlers.NewHomeworkHandler()
	commentHandler := handlers.NewCommentHandler()
	journalHandler := handlers.NewJournalHandler()
	scheduleHandler := handlers.NewScheduleHandler()
	notificationHandler := handlers.NewNotificationHandler()
	adminHandler := handlers.NewAdminHandler()

	api := r.Group("/api")

	// 公共路由 (Public Routes)
	api.GET("/captcha", authHandler.Captcha)
	api.POST("/signup", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/schedule", scheduleHandler.List) // 课程表全班共享，无需登录

	// 受保护路由 (Protected Routes)
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/me", authHandler.Me)

		authorized.GET("/homework", homeworkHandler.List)
		authorized.GET("/stats", homeworkHandler.Stats)
		authorized.GET("/homework/meta", homeworkHandler.Meta)
		authorized.GET("/homework/:hid", homeworkHandler.Detail)
		authorized.POST("/homework/:hid/toggle", homeworkHandler.ToggleCompletion)

		authorized.POST("/homework/:hid/comments", commentHandler.Create)
		authorized.DELETE("/comments/:cid", commentHandler.Delete)

		authorized.GET("/journal", journalHandler.GetEntry)
		authorized.PUT("/journal", journalHandler.SaveEntry)
		authorized.POST("/journal/todos", journalHandler.CreateTodo)
		authorized.POST("/journal/todos/:id/toggle", journalHandler.ToggleTodo)
		authorized.DELETE("/journal/todos/:id", journalHandler.DeleteTodo)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.POST("/notifications/:id/read", notificationHandler.Read)
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll)
		authorized.DELETE("/notifications/:id", notificationHandler.Delete)
	}

	// 管理员路由 (Admin Routes)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.POST("/homework", adminHandler.CreateHomework)
		admin.PUT("/homework/:hid", adminHandler.UpdateHomework)
		admin.DELETE("/homework/:hid", adminHandler.DeleteHomework)

		admin.POST("/schedule", scheduleHandler.Upsert)
		admin.DELETE("/schedule/:id", scheduleHandler.Delete)

		admin.POST("/broadcast", adminHandler.Broadcast)
	}
}
