package echoapi

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var (
	errNoFile       = echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
	errFileTooLarge = echo.NewHTTPError(http.StatusBadRequest, "File too large")
)

type uploadResponse struct {
	URL          string `json:"url"`
	FileType     string `json:"fileType"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalname"`
}

// uploadHandler stores a multipart file under a generated unique name that
// keeps the original extension, and returns its public URL with the detected
// MIME type. The caller is expected to reference the URL in a subsequent
// homework/submission create call; the two round trips are not atomic.
func uploadHandler(uploadDir string, maxSize int64) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		fileHdr, err := ctx.FormFile("file")
		if err != nil {
			return errNoFile
		}
		if fileHdr.Size > maxSize {
			return errFileTooLarge
		}

		src, err := fileHdr.Open()
		if err != nil {
			return errors.Wrap(err, "opening uploaded file")
		}
		defer src.Close()

		filename := uuid.New().String() + filepath.Ext(fileHdr.Filename)
		dst, err := os.Create(filepath.Join(uploadDir, filename))
		if err != nil {
			return errors.Wrap(err, "creating stored file")
		}
		defer dst.Close()

		if _, err := io.Copy(dst, src); err != nil {
			return errors.Wrap(err, "storing uploaded file")
		}

		fileType := fileHdr.Header.Get(echo.HeaderContentType)
		if fileType == "" {
			fileType = echo.MIMEOctetStream
		}

		return ctx.JSON(http.StatusOK, uploadResponse{
			URL:          fmt.Sprintf("%s://%s/assets/%s", ctx.Scheme(), ctx.Request().Host, filename),
			FileType:     fileType,
			Filename:     filename,
			OriginalName: fileHdr.Filename,
		})
	}
}
