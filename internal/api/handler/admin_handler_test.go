package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/levitica/hr-system/internal/core/domain"
	"github.com/levitica/hr-system/internal/core/ports"
)

type stubAdminService struct {
	createFn func(ctx context.Context, in ports.CreateAdminInput, createdBy int64) (*domain.Account, error)
	listFn   func(ctx context.Context, skip, limit int64) ([]*domain.Account, error)
	getFn    func(ctx context.Context, id int64) (*domain.Account, error)
	updateFn func(ctx context.Context, id int64, in ports.UpdateAdminInput) (*domain.Account, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubAdminService) Create(ctx context.Context, in ports.CreateAdminInput, createdBy int64) (*domain.Account, error) {
	return s.createFn(ctx, in, createdBy)
}

func (s *stubAdminService) List(ctx context.Context, skip, limit int64) ([]*domain.Account, error) {
	return s.listFn(ctx, skip, limit)
}

func (s *stubAdminService) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return s.getFn(ctx, id)
}

func (s *stubAdminService) Update(ctx context.Context, id int64, in ports.UpdateAdminInput) (*domain.Account, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubAdminService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

const createAdminBody = `{
	"name": "Acme Corp",
	"email": "admin@acme.com",
	"phone_number": "555-0101",
	"password": "s3cret99",
	"confirm_password": "s3cret99",
	"plan_name": "Starter",
	"plan_type": "monthly"
}`

func newAdminContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newAuthContext(t, method, target, body)
	c.Set("principal", testAccount())
	return c, rec
}

func TestAdminHandler_Create(t *testing.T) {
	var gotCreatedBy int64
	svc := &stubAdminService{
		createFn: func(_ context.Context, in ports.CreateAdminInput, createdBy int64) (*domain.Account, error) {
			gotCreatedBy = createdBy
			return &domain.Account{
				ID:       2,
				Name:     in.Name,
				Email:    in.Email,
				Role:     domain.RoleAdmin,
				Status:   domain.StatusActive,
				Currency: in.Currency,
			}, nil
		},
	}
	audit := &stubAuditRecorder{}
	h := NewAdminHandler(svc, audit)

	c, rec := newAdminContext(t, http.MethodPost, "/v1/superadmin/admins", createAdminBody)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotCreatedBy != 1 {
		t.Fatalf("expected creator id 1, got %d", gotCreatedBy)
	}

	var resp domain.Account
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", resp.Role)
	}
	if resp.Currency != "USD" {
		t.Fatalf("expected defaulted currency, got %q", resp.Currency)
	}
	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditActionAdminCreate {
		t.Fatalf("expected admin_create audit event, got %+v", audit.events)
	}
}

func TestAdminHandler_Create_EmailConflict(t *testing.T) {
	svc := &stubAdminService{
		createFn: func(context.Context, ports.CreateAdminInput, int64) (*domain.Account, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewAdminHandler(svc, &stubAuditRecorder{})

	c, rec := newAdminContext(t, http.MethodPost, "/v1/superadmin/admins", createAdminBody)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAdminHandler_Create_PasswordMismatch(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{}, &stubAuditRecorder{})

	body := strings.Replace(createAdminBody, `"confirm_password": "s3cret99"`, `"confirm_password": "different"`, 1)
	c, rec := newAdminContext(t, http.MethodPost, "/v1/superadmin/admins", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "passwords do not match") {
		t.Fatalf("unexpected message: %q", rec.Body.String())
	}
}

func TestAdminHandler_Get_NotFound(t *testing.T) {
	svc := &stubAdminService{
		getFn: func(context.Context, int64) (*domain.Account, error) {
			return nil, domain.ErrAdminNotFound
		},
	}
	h := NewAdminHandler(svc, &stubAuditRecorder{})

	c, rec := newAdminContext(t, http.MethodGet, "/v1/superadmin/admins/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAdminHandler_Get_InvalidID(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{}, &stubAuditRecorder{})

	c, _ := newAdminContext(t, http.MethodGet, "/v1/superadmin/admins/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAdminHandler_List(t *testing.T) {
	svc := &stubAdminService{
		listFn: func(_ context.Context, skip, limit int64) ([]*domain.Account, error) {
			if skip != 5 || limit != 10 {
				t.Fatalf("pagination not forwarded: skip=%d limit=%d", skip, limit)
			}
			return []*domain.Account{
				{ID: 2, Email: "a@acme.com", Role: domain.RoleAdmin, Status: domain.StatusActive},
			}, nil
		},
	}
	h := NewAdminHandler(svc, &stubAuditRecorder{})

	c, rec := newAdminContext(t, http.MethodGet, "/v1/superadmin/admins?skip=5&limit=10", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "a@acme.com") {
		t.Fatalf("expected listing, got %q", rec.Body.String())
	}
}

const updateAdminBody = `{
	"name": "Acme Corp",
	"email": "admin@acme.com",
	"phone_number": "555-0101",
	"plan_name": "Starter",
	"plan_type": "monthly",
	"status": "active"
}`

func TestAdminHandler_Update_EmailConflict(t *testing.T) {
	svc := &stubAdminService{
		updateFn: func(context.Context, int64, ports.UpdateAdminInput) (*domain.Account, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewAdminHandler(svc, &stubAuditRecorder{})

	c, rec := newAdminContext(t, http.MethodPut, "/v1/superadmin/admins/2", updateAdminBody)
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAdminHandler_Delete(t *testing.T) {
	var deleted int64
	svc := &stubAdminService{
		deleteFn: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	audit := &stubAuditRecorder{}
	h := NewAdminHandler(svc, audit)

	c, rec := newAdminContext(t, http.MethodDelete, "/v1/superadmin/admins/2", "")
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != 2 {
		t.Fatalf("expected delete of id 2, got %d", deleted)
	}
	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditActionAdminDelete {
		t.Fatalf("expected admin_delete audit event, got %+v", audit.events)
	}
}
