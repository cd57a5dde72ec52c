package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration. Registrars added with Register
// sit behind the protected middleware chain; registrars added with
// RegisterPublic do not.
type Router struct {
	engine           *gin.Engine
	apiVersion       string
	authMiddleware   []gin.HandlerFunc
	publicRegistrars []func(rg *gin.RouterGroup)
	registrars       []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// WithAuthMiddleware sets the middleware protecting non-public routes
func WithAuthMiddleware(middleware ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.authMiddleware = middleware
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a RouteRegistrar behind the auth middleware
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// RegisterPublic adds routes outside the auth middleware
func (r *Router) RegisterPublic(register func(rg *gin.RouterGroup)) *Router {
	r.publicRegistrars = append(r.publicRegistrars, register)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)

	for _, register := range r.publicRegistrars {
		register(api)
	}

	protected := api.Group("")
	protected.Use(r.authMiddleware...)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(protected)
	}
}
