package handler

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/labstack/echo/v4"
)

type PropertyHandler struct {
	Handler
	properties *service.PropertyService
}

func NewPropertyHandler(s *server.Server, properties *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{Handler: NewHandler(s), properties: properties}
}

// SearchProperties answers GET /api/properties. Unset query parameters
// apply no filter.
func (h *PropertyHandler) SearchProperties(c echo.Context, req *model.SearchPropertiesPayload) ([]model.PropertyWithRating, error) {
	return h.properties.Search(c.Request().Context(), req.Filters(), req.Limit)
}

func (h *PropertyHandler) CreateProperty(c echo.Context, req *model.NewProperty) (*model.Property, error) {
	return h.properties.Create(c.Request().Context(), *req)
}
