package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "servicehub.com/servicehub/internal/data_models"
)

func ValidateSubmitReviewRequest(r *dto.SubmitReviewRequest) error {
	if r.Rating < 1 || r.Rating > 5 {
		return echo.NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}
	return nil
}
