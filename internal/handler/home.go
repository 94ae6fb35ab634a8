package handler

import (
	"net/http"

	"github.com/filedrop/filedrop/internal/ctxkeys"
	"github.com/filedrop/filedrop/internal/ui"
)

type HomeHandler struct {
	appName string
}

func NewHomeHandler(appName string) *HomeHandler {
	return &HomeHandler{appName: appName}
}

func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, "home", pageData{
		AppName:  h.appName,
		LoggedIn: ctxkeys.UserID(r.Context()) != 0,
	})
}

// pageData is the common payload for rendered pages.
type pageData struct {
	AppName  string
	LoggedIn bool
	Error    string
}
