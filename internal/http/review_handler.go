package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "servicehub.com/servicehub/internal/data_models"
	middleware "servicehub.com/servicehub/internal/http/middlewares"
	"servicehub.com/servicehub/internal/http/validators"
)

func (h *Handler) SubmitReview(c echo.Context) error {
	var req dto.SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateSubmitReviewRequest(&req); err != nil {
		return err
	}

	review, err := h.reviews.Submit(c.Request().Context(), middleware.CallerID(c), c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, review)
}
