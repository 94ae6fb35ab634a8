package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/filedrop/filedrop/internal/ctxkeys"
	"github.com/filedrop/filedrop/internal/model"
	"github.com/filedrop/filedrop/internal/service"
	"github.com/filedrop/filedrop/internal/ui"
)

type FilesHandler struct {
	fileService   *service.FileService
	appName       string
	maxUploadSize int64
}

func NewFilesHandler(fileService *service.FileService, appName string, maxUploadSize int64) *FilesHandler {
	return &FilesHandler{
		fileService:   fileService,
		appName:       appName,
		maxUploadSize: maxUploadSize,
	}
}

type filesPageData struct {
	pageData
	Files  []model.File
	Stats  *model.FileStats
	Search string
}

func (h *FilesHandler) FilesPage(w http.ResponseWriter, r *http.Request) {
	ownerID := ctxkeys.UserID(r.Context())
	search := r.URL.Query().Get("q")

	files, stats, err := h.fileService.List(r.Context(), ownerID, search)
	if err != nil {
		slog.Error("file listing failed", "user_id", ownerID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ui.Render(w, "files", filesPageData{
		pageData: pageData{AppName: h.appName, LoggedIn: true},
		Files:    files,
		Stats:    stats,
		Search:   search,
	})
}

func (h *FilesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ownerID := ctxkeys.UserID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	file, header, err := r.FormFile("upload")
	if err != nil {
		http.Error(w, "upload file is required", http.StatusBadRequest)
		return
	}
	defer func() { _ = file.Close() }()

	body, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read upload", http.StatusBadRequest)
		return
	}

	contentType := header.Header.Get("Content-Type")

	_, err = h.fileService.Upload(r.Context(), ownerID, header.Filename, contentType, body)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFileName) {
			http.Error(w, "invalid file name", http.StatusBadRequest)
			return
		}
		slog.Error("upload failed", "user_id", ownerID, "name", header.Filename, "error", err)
		http.Error(w, "upload failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/files", http.StatusSeeOther)
}

func (h *FilesHandler) Rename(w http.ResponseWriter, r *http.Request) {
	ownerID := ctxkeys.UserID(r.Context())
	fileID, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	err = h.fileService.Rename(r.Context(), ownerID, fileID, r.FormValue("name"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFileName):
			http.Error(w, "file name must not be empty", http.StatusBadRequest)
		case errors.Is(err, service.ErrFileNotFound):
			http.NotFound(w, r)
		default:
			slog.Error("rename failed", "user_id", ownerID, "file_id", fileID, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/files", http.StatusSeeOther)
}

func (h *FilesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := ctxkeys.UserID(r.Context())
	fileID, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	err = h.fileService.Delete(r.Context(), ownerID, fileID)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("delete failed", "user_id", ownerID, "file_id", fileID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/files", http.StatusSeeOther)
}

func (h *FilesHandler) Download(w http.ResponseWriter, r *http.Request) {
	ownerID := ctxkeys.UserID(r.Context())
	fileID, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	file, body, contentType, err := h.fileService.Download(r.Context(), ownerID, fileID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFileNotFound):
			http.NotFound(w, r)
		case errors.Is(err, service.ErrBlobMissing):
			slog.Error("download found row but blob fetch failed", "user_id", ownerID, "file_id", fileID, "error", err)
			http.Error(w, "file data unavailable", http.StatusInternalServerError)
		default:
			slog.Error("download failed", "user_id", ownerID, "file_id", fileID, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.OriginalName))
	_, _ = w.Write(body)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
