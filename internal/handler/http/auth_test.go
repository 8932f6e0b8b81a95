package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-api-starter/internal/app"
	"github.com/MKhiriev/go-api-starter/internal/service"
	"github.com/MKhiriev/go-api-starter/internal/store"
	"github.com/MKhiriev/go-api-starter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func issuedToken(userID int64) models.Token {
	return models.Token{
		SignedString: "signed.jwt.value",
		UserID:       userID,
		ExpiresAt:    time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRegister_Success(t *testing.T) {
	env := newTestEnv(t)

	registered := models.User{UserID: 7, Login: "alice", Name: "Alice"}
	env.auth.EXPECT().
		RegisterUser(gomock.Any(), models.User{Login: "alice", Name: "Alice", Password: "s3cret-pass"}).
		Return(registered, nil)
	env.auth.EXPECT().CreateToken(gomock.Any(), registered).Return(issuedToken(7), nil)

	rec := env.do(http.MethodPost, "/api/auth/register", `{"login":"alice","name":"Alice","password":"s3cret-pass"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.value", rec.Header().Get("Authorization"))

	var body models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed.jwt.value", body.AccessToken)
	assert.Equal(t, models.TokenTypeBearer, body.TokenType)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(env *testEnv)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "malformed JSON",
			body:       `{"login":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
		{
			name: "validation failure",
			body: `{"login":"a","password":"x"}`,
			setup: func(env *testEnv) {
				env.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, errors.New("login is too short")))
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid data provided: login is too short",
		},
		{
			name: "login taken",
			body: `{"login":"alice","password":"s3cret-pass"}`,
			setup: func(env *testEnv) {
				env.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, fmt.Errorf("error creating user: %w", store.ErrLoginAlreadyExists))
			},
			wantStatus: http.StatusConflict,
			wantMsg:    app.MsgLoginAlreadyExists,
		},
		{
			name: "token creation failed",
			body: `{"login":"alice","password":"s3cret-pass"}`,
			setup: func(env *testEnv) {
				env.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
				env.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgRegistrationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.setup != nil {
				tt.setup(env)
			}

			rec := env.do(http.MethodPost, "/api/auth/register", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)

	found := models.User{UserID: 3, Login: "bob"}
	env.auth.EXPECT().
		Login(gomock.Any(), models.User{Login: "bob", Password: "pa55word!"}).
		Return(found, nil)
	env.auth.EXPECT().CreateToken(gomock.Any(), found).Return(issuedToken(3), nil)

	rec := env.do(http.MethodPost, "/api/auth/login", `{"login":"bob","password":"pa55word!"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.value", rec.Header().Get("Authorization"))
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(env *testEnv)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "malformed JSON",
			body:       "not json",
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
		{
			name: "wrong credentials",
			body: `{"login":"bob","password":"nope"}`,
			setup: func(env *testEnv) {
				env.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongPassword)
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    app.MsgInvalidLoginPassword,
		},
		{
			name: "storage failure",
			body: `{"login":"bob","password":"nope"}`,
			setup: func(env *testEnv) {
				env.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
		{
			name: "token creation failed",
			body: `{"login":"bob","password":"pa55word!"}`,
			setup: func(env *testEnv) {
				env.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: 3}, nil)
				env.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgLoginFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.setup != nil {
				tt.setup(env)
			}

			rec := env.do(http.MethodPost, "/api/auth/login", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	env.expectAuthorized(5)
	env.users.EXPECT().GetUser(gomock.Any(), int64(5)).Return(models.User{UserID: 5, Login: "carol", Name: "Carol"}, nil)

	rec := env.do(http.MethodGet, "/api/auth/me", "", bearer()...)

	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, int64(5), user.UserID)
	assert.Equal(t, "carol", user.Login)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestMe_UserDeleted(t *testing.T) {
	env := newTestEnv(t)
	env.expectAuthorized(5)
	env.users.EXPECT().GetUser(gomock.Any(), int64(5)).Return(models.User{}, store.ErrNoUserWasFound)

	rec := env.do(http.MethodGet, "/api/auth/me", "", bearer()...)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgUserNotFound, decodeError(t, rec))
}
