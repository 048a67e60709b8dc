package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "servicehub.com/servicehub/internal/data_models"
)

func ValidateSubmitResponseRequest(r *dto.SubmitResponseRequest) error {
	if r.TaskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task_id is required")
	}
	if r.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	if r.Price <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be positive")
	}
	return nil
}
