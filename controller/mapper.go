package controller

import (
	"log"
	"strconv"

	"kazrockets/app_error"
	"kazrockets/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getUser returns the authenticated user placed in the context by
// AuthMiddleware. Handlers behind the middleware can rely on it being set.
func getUser(c *gin.Context) *repository.User {
	user, ok := c.Get("user")
	if !ok {
		return nil
	}
	return user.(*repository.User)
}

func getUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(400, gin.H{"error": name + " must be a valid uuid"})
		return uuid.Nil, false
	}
	return id, true
}

func getUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	value := c.Query(name)
	if value == "" {
		return nil, true
	}
	id, err := uuid.Parse(value)
	if err != nil {
		c.JSON(400, gin.H{"error": name + " must be a valid uuid"})
		return nil, false
	}
	return &id, true
}

// getPagination reads skip/limit query parameters, bounded to skip >= 0 and
// 1 <= limit <= 100.
func getPagination(c *gin.Context) (int, int, bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(400, gin.H{"error": "skip must be a non-negative integer"})
		return 0, 0, false
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 || limit > 100 {
		c.JSON(400, gin.H{"error": "limit must be between 1 and 100"})
		return 0, 0, false
	}
	return skip, limit, true
}

// respondError maps classified errors to their status and anything else to
// a logged generic 500.
func respondError(c *gin.Context, err error) {
	status := app_error.HTTPStatus(err)
	if status == 500 {
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(500, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
