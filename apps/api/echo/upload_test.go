package echoapi

import (
	"bytes"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuleni/kazi/core"
)

func newUploadRequest(t *testing.T, fieldName, filename string, content []byte) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return req, rec
}

func Test_uploadHandler(t *testing.T) {
	deps := setupAPI(t)

	t.Run("stores the file and returns its URL", func(t *testing.T) {
		req, rec := newUploadRequest(t, "file", "answers.pdf", []byte("%PDF-1.4 fake"))
		deps.app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp uploadResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "answers.pdf", resp.OriginalName)
		assert.True(t, strings.HasSuffix(resp.Filename, ".pdf"), resp.Filename)
		assert.NotEqual(t, "answers.pdf", resp.Filename) // stored under a generated name
		assert.Contains(t, resp.URL, "/assets/"+resp.Filename)
		assert.NotEmpty(t, resp.FileType)

		stored, err := ioutil.ReadFile(filepath.Join(core.Conf.Server.UploadDir, resp.Filename))
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4 fake"), stored)
	})

	t.Run("no file", func(t *testing.T) {
		req, rec := newUploadRequest(t, "attachment", "answers.pdf", []byte("data"))
		deps.app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "No file uploaded"}`, rec.Body.String())
	})
}
