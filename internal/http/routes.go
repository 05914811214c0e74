package http

import (
	"atlas_inventory_server/internal/http/controllers"
	"atlas_inventory_server/internal/http/middleware"
	"atlas_inventory_server/internal/services"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine) {
	// Services are assembled once here and passed to the controllers
	elementService := services.NewElementService()
	rackService := services.NewRackService()
	imageService := services.NewImageService()
	roleService := services.NewRoleService()
	topologyService := services.NewTopologyService()
	exportService := services.NewExportService(rackService)

	authController := controllers.NewAuthController()
	userController := controllers.NewUserController()
	facilityController := controllers.NewFacilityController(topologyService)
	groupController := controllers.NewGroupController(topologyService)
	roleController := controllers.NewRoleController(roleService)
	platformController := controllers.NewPlatformController()
	rackController := controllers.NewRackController(rackService, topologyService)
	elementController := controllers.NewElementController(elementService, rackService, imageService)
	imageController := controllers.NewImageController()
	snapshotController := controllers.NewSnapshotController(exportService)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// WebSocket endpoint for real-time inventory events
	router.GET("/ws", HandleWebSocket)

	// API version 1
	v1 := router.Group("/api/v1")
	{
		// Public authentication routes (no middleware)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authController.Login)
		}

		// Protected authentication routes (require auth)
		authProtected := v1.Group("/auth")
		authProtected.Use(middleware.AuthMiddleware())
		{
			authProtected.POST("/logout", authController.Logout)
			authProtected.GET("/me", authController.Me)
		}

		// Operator account management (admin only)
		users := v1.Group("/users")
		users.Use(middleware.AuthMiddleware(), middleware.AdminOnlyMiddleware())
		{
			users.GET("", userController.GetUsers)
			users.POST("", userController.CreateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}

		// Inventory routes (require auth)
		inventory := v1.Group("")
		inventory.Use(middleware.AuthMiddleware())
		{
			facilities := inventory.Group("/facilities")
			{
				facilities.GET("", facilityController.GetFacilities)
				facilities.GET("/:id", facilityController.GetFacility)
				facilities.POST("", facilityController.CreateFacility)
				facilities.PUT("/:id", facilityController.UpdateFacility)
				facilities.DELETE("/:id", facilityController.DeleteFacility)
			}

			groups := inventory.Group("/groups")
			{
				groups.GET("", groupController.GetGroups)
				groups.GET("/:id", groupController.GetGroup)
				groups.POST("", groupController.CreateGroup)
				groups.DELETE("/:id", groupController.DeleteGroup)
			}

			roles := inventory.Group("/roles")
			{
				roles.GET("", roleController.GetRoles)
				roles.GET("/:id", roleController.GetRole)
				roles.POST("", roleController.CreateRole)
				roles.DELETE("/:id", roleController.DeleteRole)
			}

			platforms := inventory.Group("/platforms")
			{
				platforms.GET("", platformController.GetPlatforms)
				platforms.GET("/:id", platformController.GetPlatform)
				platforms.POST("", platformController.CreatePlatform)
				platforms.PUT("/:id", platformController.UpdatePlatform)
			}

			racks := inventory.Group("/racks")
			{
				racks.GET("", rackController.GetRacks)
				racks.GET("/:id", rackController.GetRack)
				racks.POST("", rackController.CreateRack)
				racks.DELETE("/:id", rackController.DeleteRack)
				racks.POST("/:id/placements", rackController.PlaceElement)
				racks.DELETE("/:id/placements/:elementId", rackController.RemovePlacement)
			}

			elements := inventory.Group("/elements")
			{
				elements.GET("", elementController.GetElements)
				elements.GET("/:id", elementController.GetElement)
				elements.POST("/settings", elementController.StoreSettings)
				elements.PATCH("/:id/state", elementController.UpdateOperationalState)
				elements.POST("/:id/heartbeat", elementController.Heartbeat)
				elements.POST("/:id/images", elementController.ReportImage)
				elements.GET("/:id/placement", elementController.GetPlacement)
				elements.DELETE("/:id", elementController.DeleteElement)
			}

			images := inventory.Group("/images")
			{
				images.GET("", imageController.GetImages)
				images.GET("/:id", imageController.GetImage)
			}

			snapshots := inventory.Group("/snapshots")
			{
				snapshots.GET("/racks", snapshotController.ExportRacks)
				snapshots.GET("/racks/:id", snapshotController.ExportRack)
				snapshots.POST("/racks", snapshotController.ImportRacks)
			}
		}
	}
}
