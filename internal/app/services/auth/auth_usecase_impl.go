package auth

import (
	"context"
	"geics-service/internal/app/config"
	"geics-service/internal/app/models"
	"geics-service/internal/app/services/shared/session"
	"geics-service/internal/pkg/dto/requests"
	"geics-service/internal/pkg/exceptions"
	"geics-service/internal/pkg/utils"
	"time"
)

type authUsecase struct {
	SessionStore   session.SessionStore
	InternalConfig *config.InternalConfig
}

func NewAuthUsecase(sessionStore session.SessionStore, internalConfig *config.InternalConfig) AuthUsecase {
	return &authUsecase{
		SessionStore:   sessionStore,
		InternalConfig: internalConfig,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (string, error) {
	usernameMatch := utils.SecureCompare(request.Username, uc.InternalConfig.Admin.Username)
	passwordMatch := utils.SecureCompare(request.Password, uc.InternalConfig.Admin.Password)
	// Both fields are always compared so the response never reveals which
	// one was wrong.
	if !usernameMatch || !passwordMatch {
		return "", exceptions.ErrInvalidCredentials(nil)
	}

	sessionID, err := utils.GenerateSessionID()
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	lifetime := time.Duration(uc.InternalConfig.Session.ExpiredTimeInHours) * time.Hour
	err = uc.SessionStore.Save(ctx, sessionID, &models.Session{
		User:      uc.InternalConfig.Admin.Username,
		ExpiresAt: time.Now().Add(lifetime),
	}, lifetime)
	if err != nil {
		return "", err
	}

	return utils.GenerateSessionJWT(sessionID, uc.InternalConfig.Session.Secret, uc.InternalConfig.Session.ExpiredTimeInHours)
}

func (uc *authUsecase) Logout(ctx context.Context, cookieToken string) error {
	sessionID, err := utils.ParseSessionJWT(cookieToken, uc.InternalConfig.Session.Secret)
	if err != nil {
		// Destroying an unparseable session is a no-op, not a failure.
		return nil
	}
	return uc.SessionStore.Destroy(ctx, sessionID)
}

func (uc *authUsecase) Resolve(ctx context.Context, cookieToken string) (string, error) {
	if cookieToken == "" {
		return "", nil
	}
	sessionID, err := utils.ParseSessionJWT(cookieToken, uc.InternalConfig.Session.Secret)
	if err != nil {
		return "", nil
	}
	sess, err := uc.SessionStore.Find(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", nil
	}
	return sess.User, nil
}
