package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/levitica/hr-system/internal/core/domain"
	"github.com/levitica/hr-system/internal/core/ports"
)

// AdminHandler handles superadmin-only admin account management.
type AdminHandler struct {
	adminService ports.AdminService
	audit        ports.AuditRecorder
}

func NewAdminHandler(adminService ports.AdminService, audit ports.AuditRecorder) *AdminHandler {
	return &AdminHandler{adminService: adminService, audit: audit}
}

// Create handles POST /v1/superadmin/admins.
//
// @Summary      Create an admin account
// @Tags         superadmin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAdminRequest  true  "Admin details"
// @Success      201   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/superadmin/admins [post]
func (h *AdminHandler) Create(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if req.Password != req.ConfirmPassword {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "passwords do not match"})
	}

	account, err := h.adminService.Create(c.Request().Context(), req.toInput(), caller.ID)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "email already registered"})
		}
		return err
	}

	h.record(c, caller.Email, domain.AuditActionAdminCreate, account.Email)
	return c.JSON(http.StatusCreated, account)
}

// List handles GET /v1/superadmin/admins.
//
// @Summary      List admin accounts
// @Tags         superadmin
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Offset"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {array}   domain.Account
// @Failure      403    {object}  map[string]string
// @Router       /v1/superadmin/admins [get]
func (h *AdminHandler) List(c echo.Context) error {
	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)

	admins, err := h.adminService.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admins)
}

// Get handles GET /v1/superadmin/admins/:id.
//
// @Summary      Get an admin account
// @Tags         superadmin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Admin id"
// @Success      200  {object}  domain.Account
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/superadmin/admins/{id} [get]
func (h *AdminHandler) Get(c echo.Context) error {
	id, err := adminID(c)
	if err != nil {
		return err
	}

	account, err := h.adminService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "admin not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Update handles PUT /v1/superadmin/admins/:id.
//
// @Summary      Update an admin account
// @Tags         superadmin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Admin id"
// @Param        body  body      updateAdminRequest  true  "Admin details"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/superadmin/admins/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	id, err := adminID(c)
	if err != nil {
		return err
	}

	var req updateAdminRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	account, err := h.adminService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAdminNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "admin not found"})
		case errors.Is(err, domain.ErrEmailTaken):
			return c.JSON(http.StatusConflict, map[string]string{"error": "email already registered"})
		}
		return err
	}

	h.record(c, caller.Email, domain.AuditActionAdminUpdate, account.Email)
	return c.JSON(http.StatusOK, account)
}

// Delete handles DELETE /v1/superadmin/admins/:id.
//
// @Summary      Delete an admin account
// @Tags         superadmin
// @Security     BearerAuth
// @Param        id  path  int  true  "Admin id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/superadmin/admins/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	id, err := adminID(c)
	if err != nil {
		return err
	}

	if err := h.adminService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "admin not found"})
		}
		return err
	}

	h.record(c, caller.Email, domain.AuditActionAdminDelete, strconv.FormatInt(id, 10))
	return c.NoContent(http.StatusNoContent)
}

func adminID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid admin id")
	}
	return id, nil
}

func (h *AdminHandler) record(c echo.Context, actor, action, detail string) {
	if h.audit == nil {
		return
	}
	h.audit.Record(domain.AuthEvent{
		Actor:      actor,
		Action:     action,
		Outcome:    domain.AuditOutcomeGranted,
		Detail:     detail,
		RemoteIP:   c.RealIP(),
		OccurredAt: time.Now().UTC(),
	})
}
