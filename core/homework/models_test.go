package homework

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuleni/kazi/core"
)

func TestEffectiveDueDate(t *testing.T) {
	assigned := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	explicit := time.Date(2023, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		hw   Homework
		want time.Time
	}{
		{
			name: "derived from days to complete",
			hw:   Homework{AssignDate: assigned, DaysToComplete: 4},
			want: assigned.Add(4 * 24 * time.Hour),
		},
		{
			name: "explicit due date wins",
			hw:   Homework{AssignDate: assigned, DaysToComplete: 4, DueDate: &explicit},
			want: explicit,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hw.EffectiveDueDate())
		})
	}
}

func TestNewHomeworkValidate(t *testing.T) {
	validate, _ := core.NewValidator()

	valid := func() NewHomework {
		return NewHomework{
			Title:          "Fractions worksheet",
			Description:    "Solve exercises 1 through 10.",
			AssignDate:     core.Date{Time: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)},
			Class:          core.Class8th,
			Subject:        core.SubjectMath,
			DaysToComplete: 4,
			SubmissionURL:  "https://forms.test.cd/hw",
			FileType:       "pdf",
			AssignedBy:     "MR OKONKWO",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*NewHomework)
		wantErr bool
	}{
		{name: "valid", mutate: func(nh *NewHomework) {}},
		{name: "missing title", mutate: func(nh *NewHomework) { nh.Title = "" }, wantErr: true},
		{name: "missing assign date", mutate: func(nh *NewHomework) { nh.AssignDate = core.Date{} }, wantErr: true},
		{name: "unknown subject", mutate: func(nh *NewHomework) { nh.Subject = "History" }, wantErr: true},
		{name: "unknown class", mutate: func(nh *NewHomework) { nh.Class = "12th" }, wantErr: true},
		{name: "zero days to complete", mutate: func(nh *NewHomework) { nh.DaysToComplete = 0 }, wantErr: true},
		{name: "bad submission url", mutate: func(nh *NewHomework) { nh.SubmissionURL = "not a url" }, wantErr: true},
		{name: "missing file type", mutate: func(nh *NewHomework) { nh.FileType = "  " }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nh := valid()
			tt.mutate(&nh)
			err := nh.Validate(validate)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewHomeworkAssignDateFormats(t *testing.T) {
	for _, raw := range []string{
		`{"assignDate": "2023-03-01"}`,
		`{"assignDate": "2023-03-01T00:00:00Z"}`,
	} {
		var nh NewHomework
		require.NoError(t, json.Unmarshal([]byte(raw), &nh))
		assert.Equal(t, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), nh.AssignDate.Time)
	}
}
