package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	db "github.com/Drolfothesgnir/sillypost/db/sqlc"
	"github.com/Drolfothesgnir/sillypost/tmpstore"
	"github.com/Drolfothesgnir/sillypost/util"
	"github.com/gin-gonic/gin"
)

const (
	// api routes
	SillycodeParseURL  = "/sillycode/parse"
	SillycodeRenderURL = "/sillycode/render"
	PostsURL           = "/posts"
	PostURL            = "/posts/:post_id"

	RequestIDHeader = "X-Request-ID"
)

var (
	// api errors
	ErrInvalidParams   = errors.New("invalid params")
	ErrInvalidPostID   = errors.New("invalid post id")
	ErrPostNotFound    = errors.New("post not found")
	ErrPostDeleted     = errors.New("post is deleted")
	ErrPostTooLong     = errors.New("post is too long")
	ErrPostTooLarge    = errors.New("post is too large")
	ErrPostTooComplex  = errors.New("post markup is too complex")
	ErrRequestTooLarge = errors.New("request body is too large")
)

type Service struct {
	config util.Config
	store  db.Store
	cache  tmpstore.Store
	server *http.Server
	router *gin.Engine
}

// Returns new service instance with provided config, store and render cache.
// The cache may be nil, in which case every render is computed.
func NewService(
	config util.Config,
	store db.Store,
	cache tmpstore.Store,
) (*Service, error) {

	service := &Service{
		config: config,
		store:  store,
		cache:  cache,
	}

	if service.config.MaxPostLength <= 0 {
		service.config.MaxPostLength = util.DefaultMaxPostLength
	}

	if service.config.MaxPostBytes <= 0 {
		service.config.MaxPostBytes = util.DefaultMaxPostBytes
	}

	if service.config.MaxRenderBytes <= 0 {
		service.config.MaxRenderBytes = util.DefaultMaxRenderBytes
	}

	if service.config.RenderCacheTTL <= 0 {
		service.config.RenderCacheTTL = util.DefaultRenderCacheTTL
	}

	if err := service.config.ValidateLimits(); err != nil {
		return nil, err
	}

	addr, err := config.ListenAddress()
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr: addr,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
