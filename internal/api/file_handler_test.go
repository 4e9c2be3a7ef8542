package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genesis-backend-go/internal/core"
	"genesis-backend-go/internal/models"
)

type capturingFileService struct {
	gotUserID string
	gotUpload core.FileUpload
}

func (s *capturingFileService) ImportFile(ctx context.Context, userID string, upload core.FileUpload) (*models.ImportResponse, error) {
	s.gotUserID = userID
	s.gotUpload = upload
	return &models.ImportResponse{Status: "success", Path: "users/" + userID + "/uploads/x.txt"}, nil
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func newFileRouter(svc core.FileService, maxBytes int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewFileHandler(svc, maxBytes, nil)
	router.POST("/importFile", identityInjector(&models.Identity{UID: "user-1"}), handler.ImportFile)
	return router
}

func TestImportFileHandler(t *testing.T) {
	svc := &capturingFileService{}
	router := newFileRouter(svc, 1024)

	body, contentType := multipartBody(t, "file", "notes.txt", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/importFile", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "user-1", svc.gotUserID)
	assert.Equal(t, "notes.txt", svc.gotUpload.Filename)
	assert.Equal(t, []byte("hello"), svc.gotUpload.Data)
}

func TestImportFileHandlerWrongField(t *testing.T) {
	svc := &capturingFileService{}
	router := newFileRouter(svc, 1024)

	body, contentType := multipartBody(t, "attachment", "notes.txt", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/importFile", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportFileHandlerTooLarge(t *testing.T) {
	svc := &capturingFileService{}
	router := newFileRouter(svc, 4)

	body, contentType := multipartBody(t, "file", "big.bin", []byte("12345"))
	req := httptest.NewRequest(http.MethodPost, "/importFile", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Empty(t, svc.gotUserID, "service must not run for an oversized upload")
}
