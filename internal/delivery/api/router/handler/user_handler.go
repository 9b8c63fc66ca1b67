package handler

import (
	"log/slog"

	"contacts/internal/delivery/api/response"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the /api/users endpoints.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// Register handles POST /api/users.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := bind(c, &input); err != nil {
		return err
	}

	user, err := h.userUC.Register(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Success(c, user)
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bind(c, &input); err != nil {
		return err
	}

	user, err := h.userUC.Login(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Success(c, user)
}

// GetCurrent handles GET /api/users/current.
func (h *UserHandler) GetCurrent(c echo.Context) error {
	current, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.Get(c.Request().Context(), current)
	if err != nil {
		return err
	}

	return response.Success(c, user)
}

// UpdateCurrent handles PATCH /api/users/current.
func (h *UserHandler) UpdateCurrent(c echo.Context) error {
	current, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateUserInput
	if err := bind(c, &input); err != nil {
		return err
	}

	user, err := h.userUC.Update(c.Request().Context(), current, &input)
	if err != nil {
		return err
	}

	return response.Success(c, user)
}

// Logout handles DELETE /api/users/current.
func (h *UserHandler) Logout(c echo.Context) error {
	current, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.userUC.Logout(c.Request().Context(), current); err != nil {
		return err
	}

	return response.Success(c, true)
}
