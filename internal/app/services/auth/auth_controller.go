package auth

import (
	"context"
	"geics-service/internal/app/config"
	"geics-service/internal/pkg/constvars"
	"geics-service/internal/pkg/dto/requests"
	"geics-service/internal/pkg/dto/responses"
	"geics-service/internal/pkg/exceptions"
	"geics-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, ctrl.sessionCookie(token, ctrl.InternalConfig.Session.ExpiredTimeInHours*3600))
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Login{
		Message: constvars.LoginSuccess,
		User:    ctrl.InternalConfig.Admin.Username,
	})
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := ctrl.AuthUsecase.Resolve(ctx, ctrl.cookieToken(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if user == "" {
		utils.BuildJSONResponse(w, constvars.StatusOK, responses.Me{Authenticated: false})
		return
	}
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Me{Authenticated: true, User: user})
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AuthUsecase.Logout(ctx, ctrl.cookieToken(r)); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, ctrl.sessionCookie("", -1))
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Message{Message: constvars.LogoutSuccess})
}

// ResolveRequest reports the authenticated user behind a request, if any.
// The login page route uses it to bounce an already-authenticated admin
// straight to the dashboard.
func (ctrl *AuthController) ResolveRequest(r *http.Request) (string, error) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	return ctrl.AuthUsecase.Resolve(ctx, ctrl.cookieToken(r))
}

func (ctrl *AuthController) cookieToken(r *http.Request) string {
	cookie, err := r.Cookie(ctrl.InternalConfig.Session.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (ctrl *AuthController) sessionCookie(value string, maxAge int) *http.Cookie {
	// The production frontend is served from another origin, so secure
	// deployments need SameSite=None for the cookie to travel at all.
	sameSite := http.SameSiteLaxMode
	if ctrl.InternalConfig.Session.CookieSecure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     ctrl.InternalConfig.Session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.Session.CookieSecure,
		SameSite: sameSite,
	}
}
