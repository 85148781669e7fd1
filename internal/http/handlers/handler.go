package handlers

import (
	"taskboard/internal/domain"
	"taskboard/internal/http/middleware"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Users repository.UserRepository
	Tasks repository.TaskRepository
	Auth  *service.AuthService
}

func NewHandler(users repository.UserRepository, tasks repository.TaskRepository) *Handler {
	return &Handler{
		Users: users,
		Tasks: tasks,
		Auth:  service.NewAuthService(users),
	}
}

// getIdentity pulls the verified caller identity stored by the auth gate.
func getIdentity(c *gin.Context) (domain.Identity, bool) {
	val, ok := c.Get(middleware.IdentityKey)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := val.(domain.Identity)
	return identity, ok
}
