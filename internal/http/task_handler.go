package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"servicehub.com/servicehub/internal/constants"
	dto "servicehub.com/servicehub/internal/data_models"
	middleware "servicehub.com/servicehub/internal/http/middlewares"
	"servicehub.com/servicehub/internal/http/validators"
	model "servicehub.com/servicehub/internal/models"
	"servicehub.com/servicehub/internal/services"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.tasks.Create(c.Request().Context(), middleware.CallerID(c), services.CreateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Subcategory:  req.Subcategory,
		BudgetType:   constants.BudgetType(req.BudgetType),
		BudgetAmount: req.BudgetAmount,
		City:         req.City,
		Address:      req.Address,
		Urgency:      constants.Urgency(req.Urgency),
		DueDate:      req.DueDate,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	task, responses, err := h.tasks.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"task":      task,
		"responses": responses,
	})
}

func (h *Handler) ListTasks(c echo.Context) error {
	filter, err := taskFilterFromQuery(c)
	if err != nil {
		return err
	}

	listings, err := h.listings.List(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(listings),
		"tasks": listings,
	})
}

func (h *Handler) CompleteTask(c echo.Context) error {
	task, err := h.tasks.Complete(c.Request().Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func taskFilterFromQuery(c echo.Context) (model.TaskFilter, error) {
	filter := model.TaskFilter{
		Category: c.QueryParam("category"),
		City:     c.QueryParam("city"),
		Query:    c.QueryParam("q"),
		Sort:     model.TaskSort(c.QueryParam("sort")),
	}

	if v := c.QueryParam("min_budget"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "min_budget must be a number")
		}
		filter.MinBudget = &f
	}
	if v := c.QueryParam("max_budget"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "max_budget must be a number")
		}
		filter.MaxBudget = &f
	}
	if v := c.QueryParam("urgency"); v != "" {
		for _, u := range strings.Split(v, ",") {
			filter.Urgency = append(filter.Urgency, constants.Urgency(u))
		}
	}
	if v := c.QueryParam("date_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "date_from must be RFC3339")
		}
		filter.DateFrom = &t
	}
	if v := c.QueryParam("date_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "date_to must be RFC3339")
		}
		filter.DateTo = &t
	}

	return filter, nil
}
