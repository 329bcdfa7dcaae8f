package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalis/internal/infrastructure/metrics"
	"vitalis/internal/infrastructure/storage"
	"vitalis/internal/shared/config"
)

type uploadSuccessBody struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Metadata struct {
		Name string `json:"name"`
		Size int64  `json:"size"`
	} `json:"metadata"`
}

type uploadFailureBody struct {
	Error   string   `json:"error"`
	Details string   `json:"details"`
	Logs    []string `json:"logs"`
}

func newUploadEngine(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	store, err := storage.NewLocalStorage(root, "/uploads")
	require.NoError(t, err)

	collector := metrics.NewCollector(prometheus.NewRegistry())
	handler := NewUploadHandler(store, collector, config.UploadConfig{
		Root:          root,
		PublicBaseURL: "/uploads",
		DefaultFolder: "general",
		MaxSizeMB:     1,
	})

	engine := gin.New()
	engine.POST("/api/admin/upload", handler.Upload)

	return engine, root
}

func multipartBody(t *testing.T, fieldName, filename string, content []byte, folder string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if fieldName != "" {
		part, err := writer.CreateFormFile(fieldName, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	if folder != "" {
		require.NoError(t, writer.WriteField("folder", folder))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func postUpload(engine *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestUpload_SuccessStoresFileAndReturnsURL(t *testing.T) {
	engine, root := newUploadEngine(t)

	content := []byte("fake image bytes")
	body, contentType := multipartBody(t, "file", "hero.png", content, "articles")

	w := postUpload(engine, body, contentType)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp uploadSuccessBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.URL, "/uploads/articles/"))
	assert.True(t, strings.HasSuffix(resp.URL, ".png"))
	assert.Equal(t, "hero.png", resp.Metadata.Name)
	assert.Equal(t, int64(len(content)), resp.Metadata.Size)

	stored := filepath.Join(root, "articles", filepath.Base(resp.URL))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestUpload_MissingFolderUsesDefault(t *testing.T) {
	engine, _ := newUploadEngine(t)

	body, contentType := multipartBody(t, "file", "photo.jpg", []byte("data"), "")

	w := postUpload(engine, body, contentType)

	require.Equal(t, http.StatusOK, w.Code)

	var resp uploadSuccessBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.URL, "/uploads/general/"))
}

func TestUpload_MissingFileReturns400WithLogs(t *testing.T) {
	engine, root := newUploadEngine(t)

	body, contentType := multipartBody(t, "", "", nil, "articles")

	w := postUpload(engine, body, contentType)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp uploadFailureBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "file field is required", resp.Error)
	assert.NotEmpty(t, resp.Logs)
	assert.NotContains(t, w.Body.String(), `"details"`)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpload_TraversalFolderRejected(t *testing.T) {
	engine, root := newUploadEngine(t)

	body, contentType := multipartBody(t, "file", "x.png", []byte("data"), "../../etc")

	w := postUpload(engine, body, contentType)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp uploadFailureBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "folder")

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpload_NonMultipartRejected(t *testing.T) {
	engine, _ := newUploadEngine(t)

	w := postUpload(engine, bytes.NewBufferString(`{"file":"nope"}`), "application/json")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp uploadFailureBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "multipart")
}

func TestUpload_ParseFailureIncludesDetails(t *testing.T) {
	engine, _ := newUploadEngine(t)

	w := postUpload(engine, bytes.NewBufferString("not a form"), "multipart/form-data; boundary=xyz")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp uploadFailureBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "multipart")
	assert.NotEmpty(t, resp.Details)
}

func TestUpload_ExtensionDefaultsToBin(t *testing.T) {
	engine, _ := newUploadEngine(t)

	body, contentType := multipartBody(t, "file", "no-extension", []byte("data"), "articles")

	w := postUpload(engine, body, contentType)

	require.Equal(t, http.StatusOK, w.Code)

	var resp uploadSuccessBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasSuffix(resp.URL, ".bin"))
}

func TestUpload_ConcurrentNamesDoNotCollide(t *testing.T) {
	engine, _ := newUploadEngine(t)

	urls := make(map[string]bool)
	for i := 0; i < 5; i++ {
		body, contentType := multipartBody(t, "file", "same-name.png", []byte("data"), "articles")
		w := postUpload(engine, body, contentType)
		require.Equal(t, http.StatusOK, w.Code)

		var resp uploadSuccessBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, urls[resp.URL], "duplicate url %s", resp.URL)
		urls[resp.URL] = true
	}
}
