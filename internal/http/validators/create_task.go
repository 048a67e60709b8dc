package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "servicehub.com/servicehub/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}
	if r.Category == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "category is required")
	}
	if r.BudgetType != "fixed" && r.BudgetType != "negotiable" {
		return echo.NewHTTPError(http.StatusBadRequest, "budget_type must be fixed or negotiable")
	}
	return nil
}
