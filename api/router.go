package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(service.corsMiddleware())
	router.Use(bodyLimitMiddleware(service.maxRequestBytes()))

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// stateless markup tools
	router.POST(SillycodeParseURL, service.parseSillycode)
	router.POST(SillycodeRenderURL, service.renderSillycode)

	router.POST(PostsURL, service.createPost)
	router.GET(PostsURL, service.listPosts)

	// routes where post id is checked
	postGroup := router.Group("/").Use(service.postIDMiddleware())
	postGroup.GET(PostURL, service.getPost)
	postGroup.PATCH(PostURL, service.updatePost)
	postGroup.DELETE(PostURL, service.deletePost)

	server.Handler = router
	service.router = router
}
