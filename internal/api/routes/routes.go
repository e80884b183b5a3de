package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rakhaanw/mindhaven/internal/api/handlers"
	"github.com/rakhaanw/mindhaven/internal/api/middleware"
)

type Deps struct {
	JWTSecret string

	Auth    *handlers.AuthHandler
	Journal *handlers.JournalHandler
	Chat    *handlers.ChatHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public
	r.POST("/users", d.Auth.Register)
	r.POST("/users/login", d.Auth.Login)

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth(d.JWTSecret))

	auth.GET("/entries", d.Journal.List)
	auth.POST("/entries", d.Journal.Create)
	auth.DELETE("/entries/:id", d.Journal.Delete)

	auth.GET("/chat", d.Chat.GetThread)
	auth.POST("/chat", d.Chat.SendMessage)
}
