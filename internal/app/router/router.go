// Package router wires the HTTP handlers and guards into a gin engine.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	arthandler "art_backend/internal/feature/art/transport/handler"
	typehandler "art_backend/internal/feature/arttype/transport/handler"
	authhandler "art_backend/internal/feature/auth/transport/handler"
	jwtmw "art_backend/internal/platform/jwt"
)

// NewRouter builds the route tree.
//
// Guard placement per route group:
//   - /auth/login and /art/pub* are public.
//   - /user requires an authenticated Admin.
//   - /art mutations on :id require the owner or an Admin.
//   - /type requires authentication only; any signed-in user, Staff
//     included, may manage types.
func NewRouter(guard *jwtmw.Guard, authHandler *authhandler.AuthHandler,
	artHandler *arthandler.ArtHandler, typeHandler *typehandler.TypeHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", Health)

	// Public routes
	r.POST("/auth/login", authHandler.Login)
	r.GET("/art/pub", artHandler.ListPublic)
	r.GET("/art/pub/:id", artHandler.GetByID)

	auth := r.Group("/")
	auth.Use(guard.AuthRequired())
	{
		user := auth.Group("/user")
		user.Use(guard.AdminRequired())
		{
			user.POST("", authHandler.Register)
		}

		auth.GET("/art", artHandler.List)
		auth.POST("/art", artHandler.Create)

		owned := auth.Group("/art")
		owned.Use(guard.ArtOwnerOrAdmin())
		{
			owned.PUT("/:id", artHandler.Update)
			owned.PATCH("/:id", artHandler.UpdateImage)
			owned.DELETE("/:id", artHandler.Delete)
		}

		auth.GET("/type", typeHandler.List)
		auth.POST("/type", typeHandler.Create)
		auth.PUT("/type/:id", typeHandler.Update)
		auth.DELETE("/type/:id", typeHandler.Delete)
	}

	return r
}

// Health is the liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
