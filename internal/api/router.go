package api

import (
	"github.com/Sanzzyy/management-finasial/internal/api/controller"
	"github.com/Sanzzyy/management-finasial/internal/api/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Sanzzyy/management-finasial/docs"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth        *controller.AuthController
	Transaction *controller.TransactionController
	Budget      *controller.BudgetController
	Goal        *controller.GoalController
	Schedule    *controller.ScheduleController
	Report      *controller.ReportController
	Chat        *controller.ChatController
}

// RegisterRoutes mounts the public auth routes and the JWT-protected API.
func RegisterRoutes(r *gin.Engine, ctrls Controllers) {
	r.Use(middleware.Cors())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := r.Group("/api/v1/auth")
	{
		public.POST("/register", ctrls.Auth.Register)
		public.POST("/login", ctrls.Auth.Login)
	}

	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth())
	{
		protected.GET("/transactions", ctrls.Transaction.List)
		protected.POST("/transactions", ctrls.Transaction.Create)
		protected.PUT("/transactions/:id", ctrls.Transaction.Update)
		protected.DELETE("/transactions/:id", ctrls.Transaction.Delete)

		protected.GET("/budgets", ctrls.Budget.Status)
		protected.POST("/budgets", ctrls.Budget.Set)
		protected.DELETE("/budgets/:id", ctrls.Budget.Delete)

		protected.GET("/goals", ctrls.Goal.List)
		protected.POST("/goals", ctrls.Goal.Create)
		protected.PUT("/goals/:id/save", ctrls.Goal.AddSaving)
		protected.DELETE("/goals/:id", ctrls.Goal.Delete)

		protected.GET("/schedules", ctrls.Schedule.List)
		protected.POST("/schedules", ctrls.Schedule.Create)
		protected.PUT("/schedules/:id", ctrls.Schedule.Update)
		protected.DELETE("/schedules/:id", ctrls.Schedule.Delete)

		protected.GET("/reports", ctrls.Report.Monthly)

		protected.POST("/chat", ctrls.Chat.Chat)
	}
}
