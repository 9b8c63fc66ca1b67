package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contacts/config"
	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/router"
	"contacts/internal/delivery/api/router/handler"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"
	mocks "contacts/internal/mocks/usecase"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testRequestID = "req-1"

var alice = &entity.User{Username: "alice", Name: "Alice"}

type apiMocks struct {
	auth    *mocks.MockAuthUsecase
	user    *mocks.MockUserUsecase
	contact *mocks.MockContactUsecase
}

func newTestEcho(t *testing.T) (*echo.Echo, apiMocks) {
	t.Helper()

	m := apiMocks{
		auth:    mocks.NewMockAuthUsecase(t),
		user:    mocks.NewMockUserUsecase(t),
		contact: mocks.NewMockContactUsecase(t),
	}

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	e := newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: m.user, Logger: logger}),
			ContactHandler: handler.NewContactHandler(handler.ContactHandlerParams{ContactUC: m.contact, Logger: logger}),
			AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: m.auth}),
		},
	})

	return e, m
}

func serve(e *echo.Echo, method, target, body string, authorization string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, testRequestID)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func expectAlice(m apiMocks) {
	m.auth.EXPECT().Authenticate(mock.Anything, "tok").Return(alice, nil)
}

func TestHealth(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, testRequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestUserRoutes(t *testing.T) {
	token := "tok"

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		auth       string
		setup      func(m apiMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "register",
			method: http.MethodPost,
			target: "/api/users",
			body:   `{"username":"alice","password":"secret","name":"Alice"}`,
			setup: func(m apiMocks) {
				m.user.EXPECT().Register(mock.Anything, &usecase.RegisterUserInput{Username: "alice", Password: "secret", Name: "Alice"}).
					Return(&usecase.UserResponse{Username: "alice", Name: "Alice"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"username":"alice","name":"Alice"}}`,
		},
		{
			name:   "register duplicate",
			method: http.MethodPost,
			target: "/api/users",
			body:   `{"username":"alice","password":"secret","name":"Alice"}`,
			setup: func(m apiMocks) {
				m.user.EXPECT().Register(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("count users"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"code":"USER_ALREADY_EXISTS","message":"Username already exists"},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:   "register validation failure lists fields",
			method: http.MethodPost,
			target: "/api/users",
			body:   `{}`,
			setup: func(m apiMocks) {
				m.user.EXPECT().Register(mock.Anything, mock.Anything).
					Return(nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "username", Message: "is required"}))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"code":"VALIDATION_FAILED","message":"Validation failed","details":[{"field":"username","message":"is required"}]},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:       "register malformed body",
			method:     http.MethodPost,
			target:     "/api/users",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"code":"VALIDATION_FAILED","message":"Validation failed","details":[{"field":"body","message":"is malformed"}]},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:   "login",
			method: http.MethodPost,
			target: "/api/users/login",
			body:   `{"username":"alice","password":"secret"}`,
			setup: func(m apiMocks) {
				m.user.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "secret"}).
					Return(&usecase.UserResponse{Username: "alice", Name: "Alice", Token: &token}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"username":"alice","name":"Alice","token":"tok"}}`,
		},
		{
			name:   "login wrong password",
			method: http.MethodPost,
			target: "/api/users/login",
			body:   `{"username":"alice","password":"nope"}`,
			setup: func(m apiMocks) {
				m.user.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":{"code":"INVALID_CREDENTIALS","message":"Username or password is wrong"},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:   "current without token",
			method: http.MethodGet,
			target: "/api/users/current",
			setup: func(m apiMocks) {
				m.auth.EXPECT().Authenticate(mock.Anything, "").
					Return(nil, domainerrors.ErrUnauthorized.WrapMessage("empty token"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":{"code":"UNAUTHORIZED","message":"Unauthorized"},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:   "current with bearer token",
			method: http.MethodGet,
			target: "/api/users/current",
			auth:   "Bearer tok",
			setup: func(m apiMocks) {
				expectAlice(m)
				m.user.EXPECT().Get(mock.Anything, alice).Return(&usecase.UserResponse{Username: "alice", Name: "Alice"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"username":"alice","name":"Alice"}}`,
		},
		{
			name:   "current with bare token",
			method: http.MethodGet,
			target: "/api/users/current",
			auth:   "tok",
			setup: func(m apiMocks) {
				expectAlice(m)
				m.user.EXPECT().Get(mock.Anything, alice).Return(&usecase.UserResponse{Username: "alice", Name: "Alice"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"username":"alice","name":"Alice"}}`,
		},
		{
			name:   "update current",
			method: http.MethodPatch,
			target: "/api/users/current",
			body:   `{"name":"Alice B"}`,
			auth:   "Bearer tok",
			setup: func(m apiMocks) {
				expectAlice(m)
				m.user.EXPECT().Update(mock.Anything, alice, mock.MatchedBy(func(in *usecase.UpdateUserInput) bool {
					return in.Name != nil && *in.Name == "Alice B" && in.Password == nil
				})).Return(&usecase.UserResponse{Username: "alice", Name: "Alice B"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"username":"alice","name":"Alice B"}}`,
		},
		{
			name:   "logout",
			method: http.MethodDelete,
			target: "/api/users/current",
			auth:   "Bearer tok",
			setup: func(m apiMocks) {
				expectAlice(m)
				m.user.EXPECT().Logout(mock.Anything, alice).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestEcho(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			rec := serve(e, tt.method, tt.target, tt.body, tt.auth)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestContactRoutes(t *testing.T) {
	email := "a@x.com"
	contact := &usecase.ContactResponse{ID: 7, FirstName: "Al", Email: &email}
	contactJSON := `{"id":7,"first_name":"Al","last_name":null,"email":"a@x.com","phone":null}`

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setup      func(m apiMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "create",
			method: http.MethodPost,
			target: "/api/contacts",
			body:   `{"first_name":"Al","email":"a@x.com"}`,
			setup: func(m apiMocks) {
				m.contact.EXPECT().Create(mock.Anything, alice, &usecase.CreateContactInput{FirstName: "Al", Email: &email}).
					Return(contact, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":` + contactJSON + `}`,
		},
		{
			name:   "get",
			method: http.MethodGet,
			target: "/api/contacts/7",
			setup: func(m apiMocks) {
				m.contact.EXPECT().Get(mock.Anything, alice, int64(7)).Return(contact, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":` + contactJSON + `}`,
		},
		{
			name:       "get non numeric id",
			method:     http.MethodGet,
			target:     "/api/contacts/abc",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"code":"VALIDATION_FAILED","message":"Validation failed","details":[{"field":"id","message":"must be a number"}]},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:   "get someone else's contact",
			method: http.MethodGet,
			target: "/api/contacts/8",
			setup: func(m apiMocks) {
				m.contact.EXPECT().Get(mock.Anything, alice, int64(8)).
					Return(nil, errors.Wrap(domainerrors.ErrContactNotFound, "find contact"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":{"code":"CONTACT_NOT_FOUND","message":"Contact not found"},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:   "update uses path id",
			method: http.MethodPut,
			target: "/api/contacts/7",
			body:   `{"id":99,"first_name":"Al","email":"a@x.com"}`,
			setup: func(m apiMocks) {
				m.contact.EXPECT().Update(mock.Anything, alice, mock.MatchedBy(func(in *usecase.UpdateContactInput) bool {
					return in.ID == 7 && in.FirstName == "Al" && in.Email != nil && in.LastName == nil
				})).Return(contact, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":` + contactJSON + `}`,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/api/contacts/7",
			setup: func(m apiMocks) {
				m.contact.EXPECT().Delete(mock.Anything, alice, int64(7)).Return(contact, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":` + contactJSON + `}`,
		},
		{
			name:   "search",
			method: http.MethodGet,
			target: "/api/contacts?name=Al&phone=555&page=2&size=5",
			setup: func(m apiMocks) {
				m.contact.EXPECT().Search(mock.Anything, alice, &usecase.SearchContactInput{Name: "Al", Phone: "555", Page: 2, Size: 5}).
					Return(&usecase.SearchContactOutput{
						Data:   []*usecase.ContactResponse{contact},
						Paging: entity.Paging{CurrentPage: 2, Size: 5, TotalPage: 2},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":[` + contactJSON + `],"paging":{"current_page":2,"size":5,"total_page":2}}`,
		},
		{
			name:   "search without matches",
			method: http.MethodGet,
			target: "/api/contacts",
			setup: func(m apiMocks) {
				m.contact.EXPECT().Search(mock.Anything, alice, &usecase.SearchContactInput{}).
					Return(&usecase.SearchContactOutput{
						Data:   []*usecase.ContactResponse{},
						Paging: entity.Paging{CurrentPage: 1, Size: 1, TotalPage: 0},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":[],"paging":{"current_page":1,"size":1,"total_page":0}}`,
		},
		{
			name:       "search non numeric size",
			method:     http.MethodGet,
			target:     "/api/contacts?size=ten",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"code":"VALIDATION_FAILED","message":"Validation failed","details":[{"field":"size","message":"must be a number"}]},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:   "unexpected failure hides details",
			method: http.MethodGet,
			target: "/api/contacts/7",
			setup: func(m apiMocks) {
				m.contact.EXPECT().Get(mock.Anything, alice, int64(7)).
					Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "select contact"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"code":"DATABASE_EXECUTE_FAILED","message":"Database execution failed"},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:   "plain error becomes internal error",
			method: http.MethodDelete,
			target: "/api/contacts/7",
			setup: func(m apiMocks) {
				m.contact.EXPECT().Delete(mock.Anything, alice, int64(7)).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"code":"INTERNAL_ERROR","message":"Internal server error, please try again later"},"meta":{"request_id":"req-1"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestEcho(t)
			expectAlice(m)
			if tt.setup != nil {
				tt.setup(m)
			}

			rec := serve(e, tt.method, tt.target, tt.body, "Bearer tok")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestContactQRCode(t *testing.T) {
	e, m := newTestEcho(t)
	expectAlice(m)
	png := []byte("\x89PNG\r\n\x1a\n")
	m.contact.EXPECT().QRCode(mock.Anything, alice, int64(7)).Return(png, nil)

	rec := serve(e, http.MethodGet, "/api/contacts/7/qrcode", "", "Bearer tok")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestUnknownRoute(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodGet, "/api/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"HTTP_ERROR","message":"Not Found"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}
