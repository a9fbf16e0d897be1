package inmem

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/submission"
)

type submissionRepository struct {
	db *DB
}

var _ submission.Repository = (*submissionRepository)(nil)

func NewSubmissionRepository(db *DB) submission.Repository {
	return &submissionRepository{db: db}
}

func submissionFields(sub *submission.Submission) fieldFunc {
	return func(field string) (interface{}, bool) {
		switch field {
		case "id", "_id":
			return sub.ID, true
		case "studentId":
			return sub.StudentID, true
		case "homeworkId":
			return sub.HomeworkID, true
		case "submissionDate":
			return sub.SubmissionDate, true
		case "fileURL":
			return sub.FileURL, true
		case "fileType":
			return sub.FileType, true
		case "isCompleted":
			return sub.IsCompleted, true
		case "isCompletedInTime":
			return sub.IsCompletedInTime, true
		case "createdAt":
			return sub.CreatedAt, true
		case "updatedAt":
			return sub.UpdatedAt, true
		}
		return nil, false
	}
}

func (repo *submissionRepository) CreateSubmission(_ context.Context, sub submission.Submission) (submission.Submission, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	sub.ID = uuid.New().String()
	repo.db.submissions[sub.ID] = &sub
	return sub, nil
}

func (repo *submissionRepository) FindSubmissions(_ context.Context, opts core.ListOptions) ([]submission.Submission, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	matched := make([]*submission.Submission, 0, len(repo.db.submissions))
	for _, sub := range repo.db.submissions {
		if matchFilter(opts.Filter, submissionFields(sub)) {
			matched = append(matched, sub)
		}
	}

	indices := sortRecords(len(matched), opts.Sort, func(i int) fieldFunc { return submissionFields(matched[i]) })
	submissions := make([]submission.Submission, 0, len(indices))
	for _, i := range paginate(indices, opts.Skip, opts.Limit) {
		submissions = append(submissions, *matched[i])
	}
	return submissions, nil
}

func (repo *submissionRepository) GetSubmissionByID(_ context.Context, id string, _ ...core.Projection) (*submission.Submission, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if sub, ok := repo.db.submissions[id]; ok {
		cp := *sub
		return &cp, nil
	}
	return nil, nil
}

func (repo *submissionRepository) UpdateSubmission(_ context.Context, us submission.UpdateSubmission) (*submission.Submission, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	sub, ok := repo.db.submissions[us.ID]
	if !ok {
		return nil, nil
	}
	if us.StudentID != nil {
		sub.StudentID = *us.StudentID
	}
	if us.HomeworkID != nil {
		sub.HomeworkID = *us.HomeworkID
	}
	if us.SubmissionDate != nil {
		sub.SubmissionDate = us.SubmissionDate.Time
	}
	if us.FileURL != nil {
		sub.FileURL = *us.FileURL
	}
	if us.FileType != nil {
		sub.FileType = *us.FileType
	}
	if us.IsCompleted != nil {
		sub.IsCompleted = *us.IsCompleted
	}
	if us.IsCompletedInTime != nil {
		sub.IsCompletedInTime = *us.IsCompletedInTime
	}
	sub.UpdatedAt = time.Now().UTC()

	cp := *sub
	return &cp, nil
}

func (repo *submissionRepository) DeleteSubmissionByID(_ context.Context, id string) (*submission.Submission, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	sub, ok := repo.db.submissions[id]
	if !ok {
		return nil, nil
	}
	delete(repo.db.submissions, id)
	return sub, nil
}

func (repo *submissionRepository) CountSubmissions(_ context.Context) (int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return int64(len(repo.db.submissions)), nil
}
