// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/yuhu-campus/internal/logger"
	"github.com/MKhiriev/yuhu-campus/internal/mock"
	"github.com/MKhiriev/yuhu-campus/internal/service"
	"github.com/MKhiriev/yuhu-campus/internal/utils"
	"github.com/MKhiriev/yuhu-campus/models"
)

type testEnv struct {
	router  http.Handler
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{AuthService: auth, AppInfoService: appInfo}, logger.Nop())
	return &testEnv{router: h.Init(), auth: auth, appInfo: appInfo}
}

func (e *testEnv) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

var student = models.User{
	ID:       "1",
	Username: "student",
	Email:    "student@yuhu.edu",
	Name:     "Raj Kumar",
	Role:     models.RoleStudent,
	Course:   "BS Computer Science",
	Year:     2,
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		setup      func(e *testEnv)
		wantStatus int
		wantToken  bool
	}{
		{
			name: "valid credentials",
			body: models.Credentials{Username: "student", Password: "student123"},
			setup: func(e *testEnv) {
				e.auth.EXPECT().Login(gomock.Any(), models.Credentials{Username: "student", Password: "student123"}).Return(student, nil)
				e.auth.EXPECT().CreateToken(gomock.Any(), student).Return(models.Token{SignedString: "signed.jwt.value"}, nil)
			},
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name: "wrong password",
			body: models.Credentials{Username: "admin", Password: "wrongpass"},
			setup: func(e *testEnv) {
				e.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "empty fields",
			body: models.Credentials{},
			setup: func(e *testEnv) {
				e.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidDataProvided)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid json",
			body:       "{",
			setup:      func(e *testEnv) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "token failure",
			body: models.Credentials{Username: "student", Password: "student123"},
			setup: func(e *testEnv) {
				e.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(student, nil)
				e.auth.EXPECT().CreateToken(gomock.Any(), student).Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			tt.setup(e)

			rec := e.do(http.MethodPost, "/api/auth/login", tt.body, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if !tt.wantToken {
				assert.Empty(t, rec.Header().Get("Authorization"))
				assert.NotEmpty(t, decodeError(t, rec))
				return
			}

			assert.Equal(t, "Bearer signed.jwt.value", rec.Header().Get("Authorization"))
			var got models.User
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, student, got)
		})
	}
}

func TestRegister(t *testing.T) {
	e := newTestEnv(t)
	req := models.RegisterRequest{Username: "priya", Password: "pw", Email: "p@yuhu.edu", Name: "Priya"}
	created := models.User{ID: "u-1", Username: "priya", Email: "p@yuhu.edu", Name: "Priya", Role: models.RoleStudent}

	e.auth.EXPECT().RegisterUser(gomock.Any(), req).Return(created, nil)
	e.auth.EXPECT().CreateToken(gomock.Any(), created).Return(models.Token{SignedString: "tok"}, nil)

	rec := e.do(http.MethodPost, "/api/auth/register", req, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer tok", rec.Header().Get("Authorization"))
}

func TestRegister_Conflict(t *testing.T) {
	e := newTestEnv(t)
	e.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrUserAlreadyExists)

	rec := e.do(http.MethodPost, "/api/auth/register", models.RegisterRequest{Username: "student"}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, service.ErrUserAlreadyExists.Error(), decodeError(t, rec))
}

func TestMe(t *testing.T) {
	e := newTestEnv(t)

	gomock.InOrder(
		e.auth.EXPECT().ParseToken(gomock.Any(), "good").
			Return(models.Token{UserID: "1", Role: models.RoleStudent}, nil),
		e.auth.EXPECT().GetUser(gomock.Any(), "1").Return(student, nil),
	)

	rec := e.do(http.MethodGet, "/api/auth/me", nil, map[string]string{"Authorization": "Bearer good"})
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, student, got)
}

func TestMe_UserGone(t *testing.T) {
	e := newTestEnv(t)

	e.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{UserID: "9"}, nil)
	e.auth.EXPECT().GetUser(gomock.Any(), "9").Return(models.User{}, service.ErrUserNotFound)

	rec := e.do(http.MethodGet, "/api/auth/me", nil, map[string]string{"Authorization": "Bearer good"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVersion(t *testing.T) {
	e := newTestEnv(t)
	e.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

	rec := e.do(http.MethodGet, "/api/version/", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.4.0", rec.Body.String())
}

func TestRoutes_TraceIDOnEveryResponse(t *testing.T) {
	e := newTestEnv(t)
	e.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("dev")

	rec := e.do(http.MethodGet, "/api/version/", nil, map[string]string{traceIDHeader: "trace-42"})
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestRoutes_UnknownMethodIsNotFound(t *testing.T) {
	e := newTestEnv(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/login"},
		{http.MethodDelete, "/api/auth/me"},
		{http.MethodPost, "/api/version/"},
	} {
		rec := e.do(tc.method, tc.path, nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, statusFromError(service.ErrInvalidCredentials))
	assert.Equal(t, http.StatusBadRequest, statusFromError(service.ErrInvalidDataProvided))
	assert.Equal(t, http.StatusConflict, statusFromError(service.ErrUserAlreadyExists))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
}
