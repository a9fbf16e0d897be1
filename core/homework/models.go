package homework

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/shuleni/kazi/core"
)

type Homework struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	AssignDate  time.Time `bson:"assignDate" json:"assignDate"`
	Class       string    `bson:"class" json:"class"`
	Subject     string    `bson:"subject" json:"subject"`
	// DaysToComplete defaults to 4 at the store boundary.
	DaysToComplete int    `bson:"daysToComplete" json:"daysToComplete"`
	SubmissionURL  string `bson:"submissionURL" json:"submissionURL"`
	FileType       string `bson:"FileType" json:"FileType"`
	AssignedBy     string `bson:"assignedBy" json:"assignedBy"`
	// DueDate is read by consumers but never set by create/update input;
	// records only carry it when written out-of-band.
	DueDate   *time.Time `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"` // UTC
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"` // UTC
}

// EffectiveDueDate is the deadline consumers compare against:
// DueDate when present, else AssignDate + DaysToComplete days.
func (h *Homework) EffectiveDueDate() time.Time {
	if h.DueDate != nil {
		return *h.DueDate
	}
	return h.AssignDate.Add(time.Duration(h.DaysToComplete) * 24 * time.Hour)
}

// NewHomework contains information needed to create a new Homework.
type NewHomework struct {
	Title          string    `json:"title" validate:"required,min=1,max=100"`
	Description    string    `json:"description" validate:"required,min=1,max=500"`
	AssignDate     core.Date `json:"assignDate" validate:"required"`
	Class          string    `json:"class" validate:"required,class"`
	Subject        string    `json:"subject" validate:"required,subject"`
	DaysToComplete int       `json:"daysToComplete" validate:"required,min=1"`
	SubmissionURL  string    `json:"submissionURL" validate:"required,url"`
	FileType       string    `json:"FileType" validate:"required"`
	AssignedBy     string    `json:"assignedBy" validate:"required"`
}

func (nh *NewHomework) Validate(validate *validator.Validate) error {
	nh.Title = core.CleanString(nh.Title)
	nh.Description = core.CleanString(nh.Description)
	nh.FileType = core.CleanString(nh.FileType)
	nh.AssignedBy = core.CleanString(nh.AssignedBy)
	return validate.Struct(nh)
}

// UpdateHomework defines what information may be provided to modify an
// existing Homework. All fields but ID are optional.
type UpdateHomework struct {
	ID             string     `json:"id" validate:"required"`
	Title          *string    `json:"title" validate:"omitempty,min=1,max=100"`
	Description    *string    `json:"description" validate:"omitempty,min=1,max=500"`
	AssignDate     *core.Date `json:"assignDate"`
	Class          *string    `json:"class" validate:"omitempty,class"`
	Subject        *string    `json:"subject" validate:"omitempty,subject"`
	DaysToComplete *int       `json:"daysToComplete" validate:"omitempty,min=1"`
	SubmissionURL  *string    `json:"submissionURL" validate:"omitempty,url"`
	FileType       *string    `json:"FileType" validate:"omitempty,min=1"`
	AssignedBy     *string    `json:"assignedBy" validate:"omitempty,min=1"`
}

func (uh *UpdateHomework) Validate(validate *validator.Validate) error {
	uh.ID = core.CleanString(uh.ID)
	if uh.Title != nil {
		title := core.CleanString(*uh.Title)
		uh.Title = &title
	}
	if uh.Description != nil {
		desc := core.CleanString(*uh.Description)
		uh.Description = &desc
	}
	return validate.Struct(uh)
}
