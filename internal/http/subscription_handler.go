package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"servicehub.com/servicehub/internal/constants"
	dto "servicehub.com/servicehub/internal/data_models"
	middleware "servicehub.com/servicehub/internal/http/middlewares"
)

func (h *Handler) ActivateSubscription(c echo.Context) error {
	var req dto.ActivateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	sub, err := h.subscriptions.Activate(c.Request().Context(), middleware.CallerID(c), constants.SubscriptionPlan(req.Plan))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, sub)
}
