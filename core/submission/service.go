package submission

import (
	"context"
	"time"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/homework"
)

type (
	// Repository abstracts the submissions collection. Lookups that find
	// nothing return (nil, nil); only store faults are errors.
	Repository interface {
		CreateSubmission(ctx context.Context, sub Submission) (Submission, error)
		FindSubmissions(ctx context.Context, opts core.ListOptions) ([]Submission, error)
		GetSubmissionByID(ctx context.Context, id string, project ...core.Projection) (*Submission, error)
		UpdateSubmission(ctx context.Context, us UpdateSubmission) (*Submission, error)
		DeleteSubmissionByID(ctx context.Context, id string) (*Submission, error)
		CountSubmissions(ctx context.Context) (int64, error)
	}

	Service struct {
		repo   Repository
		hwRepo homework.Repository
	}
)

func NewService(repo Repository, hwRepo homework.Repository) *Service {
	return &Service{repo: repo, hwRepo: hwRepo}
}

func (svc *Service) Create(ctx context.Context, ns NewSubmission) (Submission, error) {
	now := time.Now().UTC()
	sub := Submission{
		StudentID:      ns.StudentID,
		HomeworkID:     ns.HomeworkID,
		SubmissionDate: ns.SubmissionDate.Time,
		FileURL:        ns.FileURL,
		FileType:       ns.FileType,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if ns.IsCompleted != nil {
		sub.IsCompleted = *ns.IsCompleted
	}
	if ns.IsCompletedInTime != nil {
		sub.IsCompletedInTime = *ns.IsCompletedInTime
	}

	// The homework's due date is authoritative; clients only get to assert
	// isCompletedInTime when the homework reference dangles.
	hw, err := svc.hwRepo.GetHomeworkByID(ctx, ns.HomeworkID)
	if err != nil {
		return Submission{}, err
	}
	if hw != nil {
		sub.IsCompletedInTime = !sub.SubmissionDate.After(hw.EffectiveDueDate())
	}

	return svc.repo.CreateSubmission(ctx, sub)
}

func (svc *Service) Find(ctx context.Context, opts core.ListOptions) ([]Submission, error) {
	return svc.repo.FindSubmissions(ctx, opts)
}

func (svc *Service) GetByID(ctx context.Context, id string, project ...core.Projection) (*Submission, error) {
	return svc.repo.GetSubmissionByID(ctx, id, project...)
}

func (svc *Service) Update(ctx context.Context, us UpdateSubmission) (*Submission, error) {
	return svc.repo.UpdateSubmission(ctx, us)
}

func (svc *Service) Delete(ctx context.Context, id string) (*Submission, error) {
	return svc.repo.DeleteSubmissionByID(ctx, id)
}

func (svc *Service) Count(ctx context.Context) (int64, error) {
	return svc.repo.CountSubmissions(ctx)
}
