package api

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.GET("/listings", handler.GetListings)
		api.GET("/listings/:id", handler.GetListing)
		api.POST("/listings/close", handler.CloseListing)
		api.POST("/listings/close/complete", handler.FinishCloseListing)
		api.PUT("/filters/property", handler.UpdatePropertyFilters)
		api.PUT("/filters/vehicle", handler.UpdateVehicleFilters)
		api.PUT("/search", handler.SetSearch)
		api.PUT("/kind", handler.SetKind)
		api.PUT("/page", handler.SetPage)
		api.POST("/chat", handler.Chat)
		api.GET("/chat/messages", handler.GetChatMessages)
		api.GET("/notices", handler.GetNotices)
		api.GET("/health", handler.Health)
	}
}
