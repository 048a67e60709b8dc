package http

import (
	"github.com/labstack/echo/v4"

	apperrors "servicehub.com/servicehub/internal/errors"
	"servicehub.com/servicehub/internal/services"
)

type Handler struct {
	auth          *services.AuthService
	tasks         *services.TaskService
	listings      *services.ListingService
	responses     *services.ResponseService
	offers        *services.OfferService
	reviews       *services.ReviewService
	subscriptions *services.SubscriptionService
	notifications *services.NotificationService
}

func NewHandler(
	auth *services.AuthService,
	tasks *services.TaskService,
	listings *services.ListingService,
	responses *services.ResponseService,
	offers *services.OfferService,
	reviews *services.ReviewService,
	subscriptions *services.SubscriptionService,
	notifications *services.NotificationService,
) *Handler {
	return &Handler{
		auth:          auth,
		tasks:         tasks,
		listings:      listings,
		responses:     responses,
		offers:        offers,
		reviews:       reviews,
		subscriptions: subscriptions,
		notifications: notifications,
	}
}

// httpError maps a service error to the HTTP response, keeping any details
// the error carries (quota errors include limit, used and period).
func httpError(err error) *echo.HTTPError {
	if details := apperrors.Details(err); details != nil {
		body := map[string]interface{}{"message": err.Error()}
		for k, v := range details {
			body[k] = v
		}
		return echo.NewHTTPError(apperrors.StatusCode(err), body)
	}
	return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
}
