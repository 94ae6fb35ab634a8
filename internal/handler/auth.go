package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/filedrop/filedrop/internal/service"
	"github.com/filedrop/filedrop/internal/session"
	"github.com/filedrop/filedrop/internal/ui"
)

type AuthHandler struct {
	authService *service.AuthService
	appName     string
}

func NewAuthHandler(authService *service.AuthService, appName string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		appName:     appName,
	}
}

func (h *AuthHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, "signup", pageData{AppName: h.appName})
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.authService.Signup(username, password)
	if err != nil {
		msg := "Failed to create account"
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			msg = "Username already exists"
		case errors.Is(err, service.ErrUsernameRequired):
			msg = "Username is required"
		case errors.Is(err, service.ErrPasswordRequired):
			msg = "Password is required"
		default:
			slog.Error("signup failed", "error", err)
		}
		w.WriteHeader(http.StatusBadRequest)
		ui.Render(w, "signup", pageData{AppName: h.appName, Error: msg})
		return
	}

	slog.Info("user signed up", "user_id", user.ID)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, "login", pageData{AppName: h.appName})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.authService.Login(username, password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			slog.Error("login failed", "error", err)
		}
		w.WriteHeader(http.StatusUnauthorized)
		ui.Render(w, "login", pageData{AppName: h.appName, Error: "Invalid credentials"})
		return
	}

	session.SetUserID(w, user.ID)
	http.Redirect(w, r, "/files", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
