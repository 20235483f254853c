package http

import (
	"errors"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trackboard/pkg/domain/interfaces"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
)

// loginErrorMessage is shown after a wrong password
const loginErrorMessage = "비밀번호가 올바르지 않습니다."

type loginPage struct {
	Error string
}

// AuthHandler handles the access gate endpoints
type AuthHandler struct {
	authUC   interfaces.Auth
	renderer *Renderer
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC interfaces.Auth, renderer *Renderer) *AuthHandler {
	return &AuthHandler{
		authUC:   authUC,
		renderer: renderer,
	}
}

// HandleLoginPage shows the password form
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if model.IsAuthenticated(r.Context()) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.renderLogin(w, r, http.StatusOK, "")
}

// HandleLogin checks the submitted password and opens a session. Wrong
// passwords re-render the form; there is no lockout.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.From(r.Context())

	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, loginErrorMessage)
		return
	}

	session, err := h.authUC.Login(r.Context(), r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, model.ErrIncorrectPassword) {
			h.renderLogin(w, r, http.StatusUnauthorized, loginErrorMessage)
			return
		}
		logger.Error("Failed to create session", "error", err)
		writeError(r.Context(), w, goerr.Wrap(err, "failed to create session"), http.StatusInternalServerError)
		return
	}

	secure := isSecureRequest(r)

	// Set session cookies
	http.SetCookie(w, &http.Cookie{
		Name:     sessionIDCookie,
		Value:    session.ID.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     sessionSecretCookie,
		Value:    session.Secret.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout closes the session and clears the cookies
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionIDCookie); err == nil {
		if err := h.authUC.Logout(r.Context(), cookie.Value); err != nil {
			ctxlog.From(r.Context()).Debug("Failed to delete session", "error", err)
		}
	}

	for _, name := range []string{sessionIDCookie, sessionSecretCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, status int, message string) {
	if err := h.renderer.Render(w, status, "login.html", loginPage{Error: message}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render login page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
