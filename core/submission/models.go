package submission

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/shuleni/kazi/core"
)

// Submission records one student's response to one homework. Nothing stops
// a student from submitting again; later submissions read as resubmissions.
type Submission struct {
	ID                string    `bson:"_id,omitempty" json:"id"`
	StudentID         string    `bson:"studentId" json:"studentId"`
	HomeworkID        string    `bson:"homeworkId" json:"homeworkId"`
	SubmissionDate    time.Time `bson:"submissionDate" json:"submissionDate"`
	FileURL           string    `bson:"fileURL" json:"fileURL"`
	FileType          string    `bson:"fileType" json:"fileType"`
	IsCompleted       bool      `bson:"isCompleted" json:"isCompleted"`
	IsCompletedInTime bool      `bson:"isCompletedInTime" json:"isCompletedInTime"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"` // UTC
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"` // UTC
}

// NewSubmission contains information needed to create a new Submission.
// IsCompletedInTime is recomputed from the homework's due date whenever the
// referenced homework exists; the client value only survives a dangling
// homework reference.
type NewSubmission struct {
	StudentID         string    `json:"studentId" validate:"required"`
	HomeworkID        string    `json:"homeworkId" validate:"required"`
	SubmissionDate    core.Date `json:"submissionDate" validate:"required"`
	FileURL           string    `json:"fileURL" validate:"required,url"`
	FileType          string    `json:"fileType" validate:"required,min=1"`
	IsCompleted       *bool     `json:"isCompleted"`
	IsCompletedInTime *bool     `json:"isCompletedInTime"`
}

func (ns *NewSubmission) Validate(validate *validator.Validate) error {
	ns.StudentID = core.CleanString(ns.StudentID)
	ns.HomeworkID = core.CleanString(ns.HomeworkID)
	ns.FileType = core.CleanString(ns.FileType)
	return validate.Struct(ns)
}

// UpdateSubmission defines what information may be provided to modify an
// existing Submission. All fields but ID are optional.
type UpdateSubmission struct {
	ID                string     `json:"id" validate:"required"`
	StudentID         *string    `json:"studentId" validate:"omitempty,min=1"`
	HomeworkID        *string    `json:"homeworkId" validate:"omitempty,min=1"`
	SubmissionDate    *core.Date `json:"submissionDate"`
	FileURL           *string    `json:"fileURL" validate:"omitempty,url"`
	FileType          *string    `json:"fileType" validate:"omitempty,min=1"`
	IsCompleted       *bool      `json:"isCompleted"`
	IsCompletedInTime *bool      `json:"isCompletedInTime"`
}

func (us *UpdateSubmission) Validate(validate *validator.Validate) error {
	us.ID = core.CleanString(us.ID)
	return validate.Struct(us)
}
