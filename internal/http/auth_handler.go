package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"servicehub.com/servicehub/internal/constants"
	dto "servicehub.com/servicehub/internal/data_models"
	"servicehub.com/servicehub/internal/services"
)

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	user, token, err := h.auth.Register(c.Request().Context(), services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     constants.Role(req.Role),
		City:     req.City,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"user":  user,
		"token": token,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	user, token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":  user,
		"token": token,
	})
}
