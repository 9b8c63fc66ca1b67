package handler

import (
	"log/slog"
	"net/http"

	"contacts/internal/delivery/api/response"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler serves the /api/contacts endpoints.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.CreateContactInput
	if err := bind(c, &input); err != nil {
		return err
	}

	contact, err := h.contactUC.Create(c.Request().Context(), user, &input)
	if err != nil {
		return err
	}

	return response.Success(c, contact)
}

// Get handles GET /api/contacts/:id.
func (h *ContactHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := contactIDParam(c)
	if err != nil {
		return err
	}

	contact, err := h.contactUC.Get(c.Request().Context(), user, id)
	if err != nil {
		return err
	}

	return response.Success(c, contact)
}

// Update handles PUT /api/contacts/:id. The path id wins over any id in the body.
func (h *ContactHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := contactIDParam(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateContactInput
	if err := bind(c, &input); err != nil {
		return err
	}
	input.ID = id

	contact, err := h.contactUC.Update(c.Request().Context(), user, &input)
	if err != nil {
		return err
	}

	return response.Success(c, contact)
}

// Delete handles DELETE /api/contacts/:id.
func (h *ContactHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := contactIDParam(c)
	if err != nil {
		return err
	}

	contact, err := h.contactUC.Delete(c.Request().Context(), user, id)
	if err != nil {
		return err
	}

	return response.Success(c, contact)
}

// Search handles GET /api/contacts.
func (h *ContactHandler) Search(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}
	size, err := queryInt(c, "size")
	if err != nil {
		return err
	}

	input := &usecase.SearchContactInput{
		Name:  c.QueryParam("name"),
		Email: c.QueryParam("email"),
		Phone: c.QueryParam("phone"),
		Page:  page,
		Size:  size,
	}

	result, err := h.contactUC.Search(c.Request().Context(), user, input)
	if err != nil {
		return err
	}

	return response.SuccessWithPaging(c, result.Data, result.Paging)
}

// QRCode handles GET /api/contacts/:id/qrcode and returns a vCard QR code PNG.
func (h *ContactHandler) QRCode(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := contactIDParam(c)
	if err != nil {
		return err
	}

	png, err := h.contactUC.QRCode(c.Request().Context(), user, id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
