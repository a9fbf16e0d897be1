package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/homework"
	"github.com/shuleni/kazi/core/submission"
	"github.com/shuleni/kazi/core/user"
	logsvc "github.com/shuleni/kazi/services/logger"
	"github.com/shuleni/kazi/storage/inmem"
)

type httpErr struct {
	Error string `json:"error"`
}

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type apiDeps struct {
	app     Server
	usrRepo user.Repository
	hwRepo  homework.Repository
	subRepo submission.Repository
}

func setupAPI(t *testing.T) *apiDeps {
	t.Helper()
	core.Conf.TestMode = true
	core.Conf.Server.UploadDir = t.TempDir()

	db := inmem.Open()
	deps := &apiDeps{
		usrRepo: inmem.NewUserRepository(db),
		hwRepo:  inmem.NewHomeworkRepository(db),
		subRepo: inmem.NewSubmissionRepository(db),
	}

	logger := logsvc.NewStdLogger(log.New(ioutil.Discard, "", 0))
	deps.app = NewServer(&Options{
		Addr:           ":0",
		DisableReqLogs: true,
		UserSvc:        user.NewService(deps.usrRepo, nil, logger),
		HomeworkSvc:    homework.NewService(deps.hwRepo),
		SubmissionSvc:  submission.NewService(deps.subRepo, deps.hwRepo),
		Logger:         logger,
	})
	return deps
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

// procQueryPath builds a GET procedure path carrying its JSON input in the
// "input" query parameter.
func procQueryPath(t *testing.T, procedure string, input interface{}) string {
	t.Helper()
	path := "/api/trpc/" + procedure
	if input == nil {
		return path
	}
	data, err := json.Marshal(input)
	if err != nil {
		t.Fatalf("procQueryPath(): %v", err)
	}
	return path + "?input=" + url.QueryEscape(string(data))
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj(): %v", err)
	}
	return data
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func createUser(t *testing.T, repo user.Repository, name, email, pwd, class, role string) user.User {
	t.Helper()
	now := time.Now().UTC()
	usr, err := repo.CreateUser(context.Background(), user.User{
		Name:      name,
		Email:     email,
		Password:  pwd,
		Class:     class,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

func createHomework(t *testing.T, repo homework.Repository, title, class, subject string, assigned time.Time, days int) homework.Homework {
	t.Helper()
	hw, err := repo.CreateHomework(context.Background(), homework.Homework{
		Title:          title,
		Description:    "Assigned exercises.",
		AssignDate:     assigned,
		Class:          class,
		Subject:        subject,
		DaysToComplete: days,
		SubmissionURL:  "https://forms.test.cd/hw",
		FileType:       "pdf",
		AssignedBy:     "MR OKONKWO",
		CreatedAt:      assigned,
		UpdatedAt:      assigned,
	})
	if err != nil {
		t.Fatalf("createHomework() failed: %v", err)
	}
	return hw
}
