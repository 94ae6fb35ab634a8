package routes

import (
	"net/http"

	"github.com/filedrop/filedrop/internal/app"
	"github.com/filedrop/filedrop/internal/handler"
	"github.com/filedrop/filedrop/internal/middleware"
)

func Setup(app *app.App) http.Handler {
	home := handler.NewHomeHandler(app.Cfg.AppName)
	auth := handler.NewAuthHandler(app.AuthService, app.Cfg.AppName)
	files := handler.NewFilesHandler(app.FileService, app.Cfg.AppName, app.Cfg.MaxUploadSize)

	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /{$}", home.HomePage)
	mux.HandleFunc("GET /signup", middleware.RequireGuest(auth.SignupPage))
	mux.HandleFunc("POST /signup", middleware.RequireGuest(auth.Signup))
	mux.HandleFunc("GET /login", middleware.RequireGuest(auth.LoginPage))
	mux.HandleFunc("POST /login", middleware.RequireGuest(auth.Login))
	mux.HandleFunc("POST /logout", auth.Logout)

	// Files (owner-scoped)
	mux.HandleFunc("GET /files", middleware.RequireUser(files.FilesPage))
	mux.HandleFunc("POST /upload", middleware.RequireUser(files.Upload))
	mux.HandleFunc("POST /files/{id}/rename", middleware.RequireUser(files.Rename))
	mux.HandleFunc("POST /files/{id}/delete", middleware.RequireUser(files.Delete))
	mux.HandleFunc("GET /files/{id}/download", middleware.RequireUser(files.Download))

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.RequestLogging,
		middleware.Identity,
	)
}
