package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"festtix/internal/auth"
	mock_auth "festtix/internal/auth/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestController_Login(t *testing.T) {
	type mockBehavior func(s *mock_auth.MockService)

	tests := []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			body: `{"email":"gate@festtix.io","password":"s3cret-pass"}`,
			mockBehavior: func(s *mock_auth.MockService) {
				s.EXPECT().
					Login(gomock.Any(), &auth.LoginRequest{Email: "gate@festtix.io", Password: "s3cret-pass"}).
					Return(&auth.AuthResponse{
						User:        auth.StaffResponse{ID: "u-1", Email: "gate@festtix.io", Role: "SCANNER"},
						AccessToken: "tok",
						ExpiresIn:   3600,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"access_token":"tok"`,
		},
		{
			name: "wrong password",
			body: `{"email":"gate@festtix.io","password":"wrong-pass"}`,
			mockBehavior: func(s *mock_auth.MockService) {
				s.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, auth.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `"message":"Invalid email or password"`,
		},
		{
			name: "disabled",
			body: `{"email":"gate@festtix.io","password":"s3cret-pass"}`,
			mockBehavior: func(s *mock_auth.MockService) {
				s.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, auth.ErrUserDisabled)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `"message":"Account disabled"`,
		},
		{
			name: "internal",
			body: `{"email":"gate@festtix.io","password":"s3cret-pass"}`,
			mockBehavior: func(s *mock_auth.MockService) {
				s.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `"message":"Failed to login"`,
		},
		{
			name:         "validation",
			body:         `{"email":"not-an-email","password":"x"}`,
			mockBehavior: func(s *mock_auth.MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `"message":"Validation failed"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			svc := mock_auth.NewMockService(c)
			tt.mockBehavior(svc)

			gin.SetMode(gin.TestMode)
			e := gin.New()
			e.POST("/auth/login", auth.NewController(svc).Login)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestController_CreateStaff(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	svc := mock_auth.NewMockService(c)
	svc.EXPECT().
		CreateStaff(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrUserAlreadyExists)

	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.POST("/auth/staff", auth.NewController(svc).CreateStaff)

	w := httptest.NewRecorder()
	body := `{"full_name":"Gate Crew","email":"gate@festtix.io","password":"s3cret-pass","role":"SCANNER"}`
	r := httptest.NewRequest(http.MethodPost, "/auth/staff", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusConflict, w.Code)
}
