package service

import (
	"context"

	"github.com/MKhiriev/go-api-starter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService reads and modifies user profiles. Mutating methods take the
// authenticated caller's ID and refuse to touch other accounts.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context, req models.ListUsersRequest) (models.UsersPage, error)
	UpdateUser(ctx context.Context, callerID, userID int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, callerID, userID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}

// HealthService reports whether the backing storage is reachable.
type HealthService interface {
	Check(ctx context.Context) error
}

// Pinger is implemented by *store.Storages.
type Pinger interface {
	Ping(ctx context.Context) error
}
