package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-api-starter/internal/logger"
	"github.com/MKhiriev/go-api-starter/internal/mock"
	"github.com/MKhiriev/go-api-starter/internal/store"
	"github.com/MKhiriev/go-api-starter/internal/validators"
	"github.com/MKhiriev/go-api-starter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserSvc(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewUserService(repo, bcrypt.MinCost, logger.Nop()), repo
}

func strPtr(s string) *string { return &s }

// ── GetUser ───────────────────────────────────────────────────────────────────

func TestUserService_GetUser(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(5)).
		Return(models.User{UserID: 5, Login: "bob", PasswordHash: "secret"}, nil)

	got, err := svc.GetUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Login)
	assert.Empty(t, got.PasswordHash)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetUser(context.Background(), 5)
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ── ListUsers ─────────────────────────────────────────────────────────────────

func TestUserService_ListUsers(t *testing.T) {
	tests := []struct {
		name      string
		req       models.ListUsersRequest
		wantLimit uint64
	}{
		{"default limit", models.ListUsersRequest{}, models.DefaultPageLimit},
		{"capped limit", models.ListUsersRequest{Limit: 1000, Offset: 5}, models.MaxPageLimit},
		{"explicit limit", models.ListUsersRequest{Limit: 3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestUserSvc(t)

			repo.EXPECT().ListUsers(gomock.Any(), models.ListUsersRequest{Limit: tt.wantLimit, Offset: tt.req.Offset}).
				Return([]models.User{{UserID: 1, Login: "a", PasswordHash: "h"}}, nil)

			page, err := svc.ListUsers(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, page.Limit)
			assert.Equal(t, tt.req.Offset, page.Offset)
			require.Len(t, page.Users, 1)
			assert.Empty(t, page.Users[0].PasswordHash)
		})
	}
}

// ── UpdateUser ────────────────────────────────────────────────────────────────

func TestUserService_UpdateUser_Name(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	update := models.UserUpdate{Name: strPtr("Robert")}
	repo.EXPECT().UpdateUser(gomock.Any(), int64(5), update).
		Return(models.User{UserID: 5, Name: "Robert", PasswordHash: "h"}, nil)

	got, err := svc.UpdateUser(context.Background(), 5, 5, update)
	require.NoError(t, err)
	assert.Equal(t, "Robert", got.Name)
	assert.Empty(t, got.PasswordHash)
}

func TestUserService_UpdateUser_PasswordIsHashed(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().UpdateUser(gomock.Any(), int64(5), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, u models.UserUpdate) (models.User, error) {
			assert.Nil(t, u.Password)
			require.NotNil(t, u.PasswordHash)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("new-password")))
			return models.User{UserID: 5}, nil
		},
	)

	_, err := svc.UpdateUser(context.Background(), 5, 5, models.UserUpdate{Password: strPtr("new-password")})
	require.NoError(t, err)
}

func TestUserService_UpdateUser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		callerID int64
		update   models.UserUpdate
		wantErr  error
	}{
		{"another user", 6, models.UserUpdate{Name: strPtr("x")}, ErrForbidden},
		{"empty update", 5, models.UserUpdate{}, ErrNothingToUpdate},
		{"short password", 5, models.UserUpdate{Password: strPtr("short")}, validators.ErrTooShort},
		{"empty password", 5, models.UserUpdate{Password: strPtr("")}, validators.ErrRequired},
		{"long name", 5, models.UserUpdate{Name: strPtr(string(make([]byte, 129)))}, ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestUserSvc(t)

			_, err := svc.UpdateUser(context.Background(), tt.callerID, 5, tt.update)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().UpdateUser(gomock.Any(), int64(5), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.UpdateUser(context.Background(), 5, 5, models.UserUpdate{Name: strPtr("x")})
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ── DeleteUser ────────────────────────────────────────────────────────────────

func TestUserService_DeleteUser(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return(nil)
	require.NoError(t, svc.DeleteUser(context.Background(), 5, 5))

	repo.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return(store.ErrNoUserWasFound)
	require.ErrorIs(t, svc.DeleteUser(context.Background(), 5, 5), store.ErrNoUserWasFound)
}

func TestUserService_DeleteUser_Forbidden(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	err := svc.DeleteUser(context.Background(), 1, 5)
	require.ErrorIs(t, err, ErrForbidden)
}
