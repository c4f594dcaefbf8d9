package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LourceDev/3pages/internal/middleware"
)

type RouterDeps struct {
	Auth          *AuthHandler
	Entries       *EntryHandler
	Users         middleware.UserSource
	JWTSecret     []byte
	AuthRateLimit time.Duration
	UserCacheSize int
	UserCacheTTL  time.Duration
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "works"})
	})

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimit(deps.AuthRateLimit))
	authGroup.POST("/signup", deps.Auth.Signup)
	authGroup.POST("/login", deps.Auth.Login)

	entryGroup := api.Group("/entry")
	entryGroup.Use(middleware.JWTAuth(deps.JWTSecret, deps.Users, deps.UserCacheSize, deps.UserCacheTTL))
	entryGroup.GET("/dates", deps.Entries.ListDates)
	entryGroup.PUT("/:date", deps.Entries.Put)
	entryGroup.GET("/:date", deps.Entries.Get)
	entryGroup.DELETE("/:date", deps.Entries.Delete)
}
