package auth

import (
	"context"
	"geics-service/internal/pkg/dto/requests"
)

// AuthUsecase manages the single admin session. Login returns the signed
// cookie token on success. Resolve maps a cookie token back to the
// authenticated username; an invalid, expired, or absent session resolves to
// ("", nil) so callers can content-negotiate the rejection themselves.
type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (string, error)
	Logout(ctx context.Context, cookieToken string) error
	Resolve(ctx context.Context, cookieToken string) (string, error)
}
