package handler

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{Handler: NewHandler(s), users: users}
}

func (h *UserHandler) CreateUser(c echo.Context, req *model.NewUser) (*model.User, error) {
	return h.users.Create(c.Request().Context(), *req)
}

func (h *UserHandler) GetUser(c echo.Context, req *model.GetUserByIDPayload) (*model.User, error) {
	return h.users.GetByID(c.Request().Context(), req.ID)
}

func (h *UserHandler) GetUserByEmail(c echo.Context, req *model.GetUserByEmailPayload) (*model.User, error) {
	return h.users.GetByEmail(c.Request().Context(), req.Email)
}
