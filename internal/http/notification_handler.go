package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "servicehub.com/servicehub/internal/http/middlewares"
)

func (h *Handler) ListNotifications(c echo.Context) error {
	notifications, err := h.notifications.List(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":         len(notifications),
		"notifications": notifications,
	})
}

func (h *Handler) MarkNotificationRead(c echo.Context) error {
	err := h.notifications.MarkRead(c.Request().Context(), c.Param("id"), middleware.CallerID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "notification not found")
	}

	return c.NoContent(http.StatusNoContent)
}
