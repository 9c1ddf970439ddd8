package controller

import (
	"strings"
	"time"

	"kazrockets/auth"
	"kazrockets/repository"
	"kazrockets/service"
	"kazrockets/utils"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const basePath = "/api/v1"

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RequiredRoles []repository.Role
	CacheFor      time.Duration
}

func SetRoutes(r *gin.Engine, db *gorm.DB, cacheStore persistence.CacheStore) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupAuthController(db)...)
	routes = append(routes, setupUserController(db)...)
	routes = append(routes, setupTeamController(db)...)
	routes = append(routes, setupEventController(db)...)
	routes = append(routes, setupSubmissionController(db)...)
	routes = append(routes, setupEvaluationController(db)...)

	userService := service.NewUserService(db)
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(userService, route.RequiredRoles))
		}
		handler := route.HandlerFunc
		if route.CacheFor > 0 {
			handler = cache.CachePage(cacheStore, route.CacheFor, handler)
		}
		handlerfuncs = append(handlerfuncs, handler)
		r.Handle(route.Method, basePath+route.Path, handlerfuncs...)
	}
}

// AuthMiddleware rejects requests without a valid bearer access token and
// resolves the subject to a live user. When roles are given, the user's
// current role (from the database, not the token) must match one of them.
func AuthMiddleware(userService *service.UserService, roles []repository.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}
		claims, err := auth.ParseToken(strings.TrimPrefix(authHeader, "Bearer "), auth.TokenTypeAccess)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}
		user, err := userService.GetUserById(claims.UserId)
		if err != nil {
			// Soft deleted users fail here too.
			c.JSON(401, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}
		c.Set("user", user)

		if len(roles) == 0 || utils.Contains(roles, user.Role) {
			c.Next()
			return
		}
		c.JSON(403, gin.H{"error": "Operation not permitted for your role"})
		c.Abort()
	}
}
