package router

import (
	"github.com/gin-gonic/gin"

	"rei_do_lanche_backend/internal/handlers"
)

// SetupAuthRoutes registers the public account endpoints.
func SetupAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

// SetupAdminPinRoutes registers the authenticated admin PIN check.
func SetupAdminPinRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	rg.POST("/auth/verify-pin", h.VerifyAdminPin)
}

// SetupCollectionRoutes registers one CRUD route set per collection. Route
// paths are static so they never collide with the auth and migrate routes
// sharing the /api prefix.
func SetupCollectionRoutes(rg *gin.RouterGroup, h *handlers.CollectionHandler) {
	for _, col := range h.Collections() {
		group := rg.Group("/" + col.Name())
		{
			group.GET("", h.List(col))
			group.POST("", h.Upsert(col))
			group.PUT("/:id", h.Update(col))
			group.DELETE("/:id", h.Delete(col))
		}
	}
}

// SetupMigrationRoutes registers the bulk snapshot import endpoint.
func SetupMigrationRoutes(rg *gin.RouterGroup, h *handlers.MigrationHandler) {
	rg.POST("/migrate", h.Migrate)
}
