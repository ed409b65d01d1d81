package routes

import (
	"burgerpos/controllers"
	"burgerpos/middleware"
	"burgerpos/models"

	"github.com/gin-gonic/gin"
)

func InitializeRoutes(router *gin.Engine) {
	router.POST("/login", controllers.Login)
	router.Static("/uploads", "./uploads")
	router.GET("/catalog", controllers.GetCatalog)

	staff := router.Group("/")
	staff.Use(middleware.AuthMiddleware(models.RoleEmployee, models.RoleManager))
	{
		staff.GET("/day/:date/status", controllers.GetDayStatus)
		staff.POST("/day/:date/end", controllers.EndDay)

		staff.POST("/orders", controllers.CreateOrder)
		staff.GET("/orders/active/:date", controllers.GetActiveOrders)
		staff.GET("/orders/stream/:date", controllers.StreamOrders)
		staff.PUT("/orders/:id/pay", controllers.MarkOrderPaid)
		staff.PUT("/orders/:id/archive", controllers.ArchiveOrder)
		staff.PUT("/orders/:id", controllers.EditOrder)

		staff.GET("/warehouse", controllers.GetWarehouse)
		staff.GET("/warehouse/levels", controllers.GetStockLevels)
		staff.POST("/warehouse/snapshots", controllers.SaveSnapshot)
		staff.GET("/warehouse/snapshots/:date", controllers.GetSnapshots)
		staff.GET("/warehouse/snapshots/:date/prior-end", controllers.GetPriorEndSnapshot)
		staff.GET("/warehouse/reconciliation/:date", controllers.GetReconciliation)
		staff.PUT("/warehouse/products/:id/adjust", controllers.AdjustStock)
		staff.POST("/warehouse/low-stock", controllers.ReportLowStock)

		staff.POST("/consumption", controllers.LogConsumption)
		staff.GET("/consumption/:date", controllers.GetConsumption)
	}

	manager := router.Group("/manager")
	manager.Use(middleware.AuthMiddleware(models.RoleManager))
	{
		manager.POST("/users", controllers.RegisterUser)
		manager.GET("/users", controllers.GetUsers)

		manager.POST("/day/:date/reset-token", controllers.CreateResetToken)
		manager.POST("/day/:date/reset", controllers.ResetDay)

		manager.GET("/orders/history", controllers.GetOrderHistory)
		manager.DELETE("/orders/history", controllers.ClearOrderHistory)

		manager.POST("/warehouse/products", controllers.AddProduct)
		manager.PUT("/warehouse/products/:id", controllers.UpdateProduct)
		manager.DELETE("/warehouse/products/:id", controllers.DeleteProduct)
		manager.POST("/warehouse/products/:id/photo", controllers.UploadProductPhoto)
		manager.POST("/warehouse/seed", controllers.SeedWarehouse)
		manager.GET("/warehouse/export", controllers.ExportWarehouseCSV)
		manager.GET("/warehouse/snapshots/:date/export", controllers.ExportSnapshotCSV)
		manager.GET("/warehouse/low-stock", controllers.GetLowStockReports)
		manager.PUT("/warehouse/low-stock/:id/resolve", controllers.ResolveLowStockReport)

		manager.DELETE("/consumption/:id", controllers.DeleteConsumption)

		manager.GET("/reports/daily/:date", controllers.GetDailySummary)
		manager.GET("/reports/daily/:date/pdf", controllers.ExportDailySummaryPDF)
	}
}
