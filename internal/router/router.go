package router

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/social-media-api/internal/config"
	"github.com/yukikurage/social-media-api/internal/handlers"
	"github.com/yukikurage/social-media-api/internal/middleware"
	"github.com/yukikurage/social-media-api/internal/repository"
	"github.com/yukikurage/social-media-api/internal/services"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers and registers all routes.
func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if cfg.CORSAllowOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	avatarService := services.NewAvatarService(cfg.AvatarBaseURL)
	userService := services.NewUserService(userRepo, avatarService)
	postService := services.NewPostService(postRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, postRepo, userRepo)

	userHandler := handlers.NewUserHandler(userService)
	postHandler := handlers.NewPostHandler(postService)
	commentHandler := handlers.NewCommentHandler(commentService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Social media API is running",
		})
	})

	users := r.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	posts := r.Group("/posts")
	{
		posts.POST("", postHandler.CreatePost)
		posts.GET("", postHandler.ListPosts)
		posts.GET("/:id", postHandler.GetPost)
		posts.PUT("/:id", postHandler.UpdatePost)
		posts.DELETE("/:id", postHandler.DeletePost)

		comments := posts.Group("/:id/comments")
		comments.Use(middleware.PostScope())
		{
			comments.POST("", commentHandler.CreateComment)
			comments.GET("", commentHandler.ListComments)
			comments.GET("/:commentId", commentHandler.GetComment)
			comments.PUT("/:commentId", commentHandler.UpdateComment)
			comments.DELETE("/:commentId", commentHandler.DeleteComment)
		}
	}

	return r
}
