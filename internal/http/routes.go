package http

import (
	"github.com/labstack/echo/v4"

	middleware "servicehub.com/servicehub/internal/http/middlewares"
	"servicehub.com/servicehub/internal/services"
)

func Register(e *echo.Echo, h *Handler, auth *services.AuthService) {
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)

	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/:id", h.GetTask)

	authed := e.Group("", middleware.RequireAuth(auth))
	authed.POST("/tasks", h.CreateTask)
	authed.POST("/tasks/:id/complete", h.CompleteTask)
	authed.POST("/tasks/:id/accept", h.AcceptOffer)
	authed.POST("/tasks/:id/reviews", h.SubmitReview)
	authed.POST("/responses", h.SubmitResponse)
	authed.POST("/responses/:id/reject", h.RejectOffer)
	authed.GET("/notifications", h.ListNotifications)
	authed.POST("/notifications/:id/read", h.MarkNotificationRead)
	authed.POST("/subscriptions", h.ActivateSubscription)
}
