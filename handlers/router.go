package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/helper"
	"inkwell/middleware"
)

// SetupRouter mounts the public blog surface, the tokened moderation link
// and the session-protected admin suite.
func SetupRouter(
	secret []byte,
	httpHelper *helper.HTTPHelper,
	auth *AuthHandler,
	blog *BlogHandler,
	posts *PostHandler,
	comments *CommentHandler,
	images *ImageHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public blog
	router.GET("/", blog.Home)
	router.GET("/post/:slug", blog.GetPost)
	router.POST("/post/:slug/comments", blog.CreateComment)
	router.POST("/search", blog.Search)
	router.GET("/posts/:monthYear", blog.PostsByMonthYear)
	router.GET("/temp-preview", blog.TempPreview)

	admin := router.Group("/admin")
	{
		admin.POST("/login", auth.Login)

		// Reached from moderation email, authorized by its token alone.
		admin.GET("/comment/toggle/link", comments.ToggleVisibilityByLink)

		protected := admin.Group("/")
		protected.Use(middleware.AuthMiddleware(secret, httpHelper))
		{
			protected.GET("/profile", auth.GetProfile)
			protected.GET("/users", auth.GetUsers)

			protected.GET("/posts", posts.GetPosts)
			protected.POST("/posts", posts.CreatePost)
			protected.PUT("/posts/:id", posts.EditPost)
			protected.POST("/posts/:id/publish", posts.PublishPost)
			protected.POST("/posts/:id/archive", posts.ArchivePost)
			protected.POST("/posts/:id/draft", posts.MarkPostAsDraft)
			protected.POST("/posts/:id/preview-link", posts.CreatePreviewLink)

			protected.GET("/comments", comments.GetComments)
			protected.POST("/comments/:id/toggle", comments.ToggleVisibility)

			protected.GET("/images", images.GetImages)
			protected.POST("/images", images.UploadImage)
			protected.DELETE("/images/:name", images.DeleteImage)
		}
	}

	return router
}
