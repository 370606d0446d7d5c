package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/openbarangay/registry/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes; everything carries a principal scope, so everything
	// authenticates
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(authCfg))
	{
		// Household endpoints
		v1.POST("/households", handler.CreateHousehold)
		v1.GET("/households", handler.SearchHouseholds)
		v1.GET("/households/:id", handler.GetHousehold)
		v1.PATCH("/households/:id", handler.UpdateHousehold)
		v1.DELETE("/households/:id", handler.DeactivateHousehold)

		// Membership endpoints
		v1.POST("/households/:id/members", handler.AddMember)
		v1.DELETE("/households/:id/members/:resident_id", handler.RemoveMember)

		// Resident endpoints
		v1.POST("/residents", handler.CreateResident)
		v1.GET("/residents", handler.FindResidents)
		v1.GET("/residents/:id", handler.GetResident)
		v1.PUT("/residents/:id", handler.UpdateResident)
		v1.DELETE("/residents/:id", handler.DeactivateResident)

		// Change journal endpoint
		v1.GET("/changes", handler.GetChanges)

		// Reference hierarchy endpoints
		v1.GET("/geo", handler.SearchGeo)
		v1.GET("/geo/:code", handler.ResolveGeo)
		v1.GET("/occupations", handler.SearchOccupation)
		v1.GET("/occupations/:code", handler.ResolveOccupation)

		// Key administration
		v1.POST("/admin/keys/rotate", handler.RotateKey)
	}
}
