package api

import (
	"Chronicle/internal/api/middleware"
	"Chronicle/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"Code":    200,
			"Message": "pong",
			"Data":    nil,
		})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register/", group.UserHandler.Register)
		authGroup.POST("/login/", group.UserHandler.Login)
		authGroup.POST("/logout/", middleware.AuthMiddleware(), group.UserHandler.Logout)
	}

	// Listings and the detail view are public; the optional auth resolves
	// the viewer so authors see their own hidden posts.
	readGroup := r.Group("")
	readGroup.Use(middleware.AuthOptionalMiddleware())
	{
		readGroup.GET("/", group.PostHandler.Index)
		readGroup.GET("/category/:slug/", group.PostHandler.CategoryPosts)
		readGroup.GET("/profile/:username/", group.PostHandler.Profile)
		readGroup.GET("/posts/:post_id/", group.PostHandler.Detail)
	}

	r.GET("/category/", group.CategoryHandler.ListCategories)
	r.GET("/location/", group.LocationHandler.ListLocations)

	writeGroup := r.Group("")
	writeGroup.Use(middleware.AuthMiddleware())
	{
		writeGroup.POST("/posts/create/", group.PostHandler.CreatePost)
		writeGroup.POST("/posts/:post_id/edit/", group.PostHandler.UpdatePost)
		writeGroup.POST("/posts/:post_id/delete/", group.PostHandler.DeletePost)

		writeGroup.POST("/posts/:post_id/comment/", group.CommentHandler.AddComment)
		writeGroup.POST("/posts/:post_id/edit_comment/:comment_id", group.CommentHandler.UpdateComment)
		writeGroup.POST("/posts/:post_id/delete_comment/:comment_id", group.CommentHandler.DeleteComment)

		writeGroup.POST("/category/", group.CategoryHandler.CreateCategory)

		writeGroup.GET("/edit_profile/", group.UserHandler.GetProfile)
		writeGroup.POST("/edit_profile/", group.UserHandler.UpdateProfile)

		writeGroup.POST("/media/upload", group.MediaHandler.Upload)
	}

	return r
}
