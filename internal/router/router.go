package router

import (
	"photogram/internal/handlers"
	"photogram/internal/middleware"
	"photogram/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store *services.LocalStore) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler(store)
	userHandler := handlers.NewUserHandler(store)

	// Public Routes
	r.GET("/", postHandler.Index)                      // feed (personalized or global)
	r.GET("/explore", postHandler.Explore)             // all posts
	r.GET("/post/:id", postHandler.Detail)             // post detail with comments
	r.GET("/profile/:username", userHandler.Profile)   // user profile

	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected Routes - every state-changing operation sits behind the
	// session guard.
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/create", postHandler.ShowCreate)
		authorized.POST("/create", postHandler.Create)
		authorized.POST("/like/:id", postHandler.Like)
		authorized.POST("/comment/:id", postHandler.CreateComment)
		authorized.POST("/follow/:username", userHandler.Follow)
		authorized.POST("/unfollow/:username", userHandler.Unfollow)
		authorized.GET("/edit_profile", userHandler.ShowEditProfile)
		authorized.POST("/edit_profile", userHandler.EditProfile)
	}
}
