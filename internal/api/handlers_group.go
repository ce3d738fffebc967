package api

import "Chronicle/internal/api/handler"

// HandlersGroup bundles every initialized handler instance.
type HandlersGroup struct {
	PostHandler     *handler.PostHandler
	CommentHandler  *handler.CommentHandler
	CategoryHandler *handler.CategoryHandler
	LocationHandler *handler.LocationHandler
	UserHandler     *handler.UserHandler
	MediaHandler    *handler.MediaHandler
}
