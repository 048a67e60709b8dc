package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "servicehub.com/servicehub/internal/data_models"
	middleware "servicehub.com/servicehub/internal/http/middlewares"
	"servicehub.com/servicehub/internal/http/validators"
	"servicehub.com/servicehub/internal/services"
)

func (h *Handler) SubmitResponse(c echo.Context) error {
	var req dto.SubmitResponseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateSubmitResponseRequest(&req); err != nil {
		return err
	}

	response, err := h.responses.Submit(c.Request().Context(), middleware.CallerID(c), services.SubmitResponseInput{
		TaskID:        req.TaskID,
		Message:       req.Message,
		Price:         req.Price,
		EstimatedTime: req.EstimatedTime,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, response)
}

func (h *Handler) AcceptOffer(c echo.Context) error {
	var req dto.AcceptOfferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.ProviderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "provider_id is required")
	}

	task, err := h.offers.Accept(c.Request().Context(), middleware.CallerID(c), c.Param("id"), req.ProviderID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) RejectOffer(c echo.Context) error {
	response, err := h.offers.Reject(c.Request().Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, response)
}
