package homework

import (
	"context"
	"time"

	"github.com/shuleni/kazi/core"
)

type (
	// Repository abstracts the homeworks collection. Lookups that find
	// nothing return (nil, nil); only store faults are errors.
	Repository interface {
		CreateHomework(ctx context.Context, hw Homework) (Homework, error)
		FindHomeworks(ctx context.Context, opts core.ListOptions) ([]Homework, error)
		GetHomeworkByID(ctx context.Context, id string, project ...core.Projection) (*Homework, error)
		UpdateHomework(ctx context.Context, uh UpdateHomework) (*Homework, error)
		DeleteHomeworkByID(ctx context.Context, id string) (*Homework, error)
		CountHomeworks(ctx context.Context) (int64, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nh NewHomework) (Homework, error) {
	now := time.Now().UTC()
	hw := Homework{
		Title:          nh.Title,
		Description:    nh.Description,
		AssignDate:     nh.AssignDate.Time,
		Class:          nh.Class,
		Subject:        nh.Subject,
		DaysToComplete: nh.DaysToComplete,
		SubmissionURL:  nh.SubmissionURL,
		FileType:       nh.FileType,
		AssignedBy:     nh.AssignedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return svc.repo.CreateHomework(ctx, hw)
}

func (svc *Service) Find(ctx context.Context, opts core.ListOptions) ([]Homework, error) {
	return svc.repo.FindHomeworks(ctx, opts)
}

func (svc *Service) GetByID(ctx context.Context, id string, project ...core.Projection) (*Homework, error) {
	return svc.repo.GetHomeworkByID(ctx, id, project...)
}

func (svc *Service) Update(ctx context.Context, uh UpdateHomework) (*Homework, error) {
	return svc.repo.UpdateHomework(ctx, uh)
}

func (svc *Service) Delete(ctx context.Context, id string) (*Homework, error) {
	return svc.repo.DeleteHomeworkByID(ctx, id)
}

func (svc *Service) Count(ctx context.Context) (int64, error) {
	return svc.repo.CountHomeworks(ctx)
}
