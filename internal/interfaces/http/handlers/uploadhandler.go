package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vitalis/internal/infrastructure/metrics"
	"vitalis/internal/infrastructure/storage"
	"vitalis/internal/shared/config"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/slug"
)

// Upload step names used for failure attribution in metrics and the
// diagnostic log trail.
const (
	stepContentType  = "content_type"
	stepParseForm    = "parse_form"
	stepValidateFile = "validate_file"
	stepFolder       = "validate_folder"
	stepRead         = "read"
	stepEnsureFolder = "ensure_folder"
	stepWrite        = "write"
)

// UploadHandler accepts multipart image uploads and stores them under the
// public uploads root. Unlike the rest of the API it does not use the
// standard response envelope: the body shape is fixed because the admin
// editor consumes it directly, and failures carry the per-step log trail
// so a bad upload can be diagnosed from the response alone.
type UploadHandler struct {
	store     *storage.LocalStorage
	collector *metrics.Collector
	cfg       config.UploadConfig
	logger    logger.Interface
}

func NewUploadHandler(store *storage.LocalStorage, collector *metrics.Collector, cfg config.UploadConfig) *UploadHandler {
	return &UploadHandler{
		store:     store,
		collector: collector,
		cfg:       cfg,
		logger:    logger.NewLogger().With("component", "upload.handler"),
	}
}

// uploadTrail accumulates one line per step so failure responses can show
// exactly how far the request got.
type uploadTrail struct {
	logs []string
}

func (t *uploadTrail) add(format string, args ...any) {
	line := fmt.Sprintf("[%s] %s", time.Now().UTC().Format(time.RFC3339), fmt.Sprintf(format, args...))
	t.logs = append(t.logs, line)
}

// Upload handles POST /api/admin/upload.
func (h *UploadHandler) Upload(c *gin.Context) {
	trail := &uploadTrail{}
	trail.add("upload started")

	contentType := c.GetHeader("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		trail.add("unexpected content type %q", contentType)
		h.fail(c, http.StatusBadRequest, stepContentType, trail, "expected multipart/form-data", nil)
		return
	}
	trail.add("content type ok")

	maxBytes := int64(h.cfg.MaxSizeMB) << 20
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

	form, err := c.MultipartForm()
	if err != nil {
		trail.add("multipart parse failed: %v", err)
		h.fail(c, http.StatusBadRequest, stepParseForm, trail, "failed to parse multipart form", err)
		return
	}
	trail.add("multipart form parsed")

	files := form.File["file"]
	if len(files) == 0 {
		trail.add("no file field in form")
		h.fail(c, http.StatusBadRequest, stepValidateFile, trail, "file field is required", nil)
		return
	}
	header := files[0]
	if header.Size > maxBytes {
		trail.add("file too large: %d bytes", header.Size)
		h.fail(c, http.StatusBadRequest, stepValidateFile, trail, fmt.Sprintf("file exceeds %dMB limit", h.cfg.MaxSizeMB), nil)
		return
	}
	trail.add("file %q accepted (%d bytes)", header.Filename, header.Size)

	folder := c.PostForm("folder")
	if folder == "" {
		folder = h.cfg.DefaultFolder
		trail.add("no folder given, using %q", folder)
	}
	// Folder must be a plain slug. Rejecting anything else keeps the write
	// inside the uploads root.
	if !slug.IsValid(folder) {
		trail.add("folder %q rejected", folder)
		h.fail(c, http.StatusBadRequest, stepFolder, trail, "folder must be a lowercase slug", nil)
		return
	}
	trail.add("folder %q validated", folder)

	src, err := header.Open()
	if err != nil {
		trail.add("open failed: %v", err)
		h.fail(c, http.StatusInternalServerError, stepRead, trail, "failed to read uploaded file", err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		trail.add("read failed: %v", err)
		h.fail(c, http.StatusInternalServerError, stepRead, trail, "failed to read uploaded file", err)
		return
	}
	trail.add("read %d bytes", len(data))

	if err := h.store.EnsureFolder(folder); err != nil {
		trail.add("mkdir failed: %v", err)
		h.fail(c, http.StatusInternalServerError, stepEnsureFolder, trail, "failed to prepare upload folder", err)
		return
	}
	trail.add("folder ready at %s", h.store.FolderPath(folder))

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = ".bin"
	}
	filename := uuid.New().String() + ext
	trail.add("generated filename %s", filename)

	if err := h.store.WriteFile(folder, filename, data); err != nil {
		trail.add("write failed: %v", err)
		h.fail(c, http.StatusInternalServerError, stepWrite, trail, "failed to store file", err)
		return
	}

	url := h.store.PublicURL(folder, filename)
	trail.add("stored at %s", url)

	h.collector.RecordUploadSuccess(header.Size)
	h.logger.Infow("upload stored", "folder", folder, "filename", filename, "size", header.Size)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     url,
		"metadata": gin.H{
			"name": header.Filename,
			"size": header.Size,
		},
	})
}

// uploadError is the fixed failure body. Details carries the underlying
// error text and is omitted when the request failed without one.
type uploadError struct {
	Error   string   `json:"error"`
	Details string   `json:"details,omitempty"`
	Logs    []string `json:"logs"`
}

func (h *UploadHandler) fail(c *gin.Context, status int, step string, trail *uploadTrail, message string, err error) {
	h.collector.RecordUploadFailure(step)
	h.logger.Warnw("upload failed", "step", step, "error", err)

	resp := uploadError{Error: message, Logs: trail.logs}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(status, resp)
}
