package echoapi

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/submission"
)

func Test_submissionAPI_create(t *testing.T) {
	deps := setupAPI(t)
	assigned := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	hw := createHomework(t, deps.hwRepo, "Fractions", core.Class8th, core.SubjectMath, assigned, 4)
	ann := createUser(t, deps.usrRepo, "ANN", "ann@test.cd", "s3cret-pwd", core.Class8th, core.RoleStudent)

	tests := []struct {
		name        string
		submittedAt string
		wantInTime  bool
	}{
		{name: "in time", submittedAt: "2023-03-03T10:00:00Z", wantInTime: true},
		{name: "late", submittedAt: "2023-03-09T10:00:00Z", wantInTime: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := []byte(fmt.Sprintf(`{
				"studentId": %q,
				"homeworkId": %q,
				"submissionDate": %q,
				"fileURL": "https://files.test.cd/answer.pdf",
				"fileType": "pdf",
				"isCompleted": true
			}`, ann.ID, hw.ID, tt.submittedAt))
			req, rec := newRequest(http.MethodPost, "/api/trpc/submission.create", body)
			deps.app.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var resp struct {
				Message    string                 `json:"message"`
				Submission *submission.Submission `json:"submission"`
			}
			decodeBody(t, rec, &resp)
			assert.Equal(t, "Submission created successfully", resp.Message)
			require.NotNil(t, resp.Submission)
			assert.Equal(t, tt.wantInTime, resp.Submission.IsCompletedInTime)
			assert.True(t, resp.Submission.IsCompleted)
			assert.Equal(t, hw.ID, resp.Submission.HomeworkID)
		})
	}

	t.Run("missing file url", func(t *testing.T) {
		body := []byte(fmt.Sprintf(`{"studentId": %q, "homeworkId": %q, "submissionDate": "2023-03-03"}`, ann.ID, hw.ID))
		req, rec := newRequest(http.MethodPost, "/api/trpc/submission.create", body)
		deps.app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var fldErrs map[string]string
		decodeBody(t, rec, &fldErrs)
		assert.Contains(t, fldErrs, "fileURL")
	})
}

func Test_submissionAPI_findAll(t *testing.T) {
	deps := setupAPI(t)
	assigned := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	hw := createHomework(t, deps.hwRepo, "Fractions", core.Class8th, core.SubjectMath, assigned, 4)
	ann := createUser(t, deps.usrRepo, "ANN", "ann@test.cd", "s3cret-pwd", core.Class8th, core.RoleStudent)
	bob := createUser(t, deps.usrRepo, "BOB", "bob@test.cd", "s3cret-pwd", core.Class8th, core.RoleStudent)

	for _, studentID := range []string{ann.ID, bob.ID} {
		body := []byte(fmt.Sprintf(`{
			"studentId": %q,
			"homeworkId": %q,
			"submissionDate": "2023-03-03",
			"fileURL": "https://files.test.cd/answer.pdf",
			"fileType": "pdf"
		}`, studentID, hw.ID))
		req, rec := newRequest(http.MethodPost, "/api/trpc/submission.create", body)
		deps.app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	input := map[string]interface{}{"filter": map[string]interface{}{"studentId": ann.ID}}
	req, rec := newRequest(http.MethodGet, procQueryPath(t, "submission.findAll", input))
	deps.app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var subs []submission.Submission
	decodeBody(t, rec, &subs)
	require.Len(t, subs, 1)
	assert.Equal(t, ann.ID, subs[0].StudentID)
}
