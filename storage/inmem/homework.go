package inmem

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/homework"
)

const defaultDaysToComplete = 4

type homeworkRepository struct {
	db *DB
}

var _ homework.Repository = (*homeworkRepository)(nil)

func NewHomeworkRepository(db *DB) homework.Repository {
	return &homeworkRepository{db: db}
}

func homeworkFields(hw *homework.Homework) fieldFunc {
	return func(field string) (interface{}, bool) {
		switch field {
		case "id", "_id":
			return hw.ID, true
		case "title":
			return hw.Title, true
		case "description":
			return hw.Description, true
		case "assignDate":
			return hw.AssignDate, true
		case "class":
			return hw.Class, true
		case "subject":
			return hw.Subject, true
		case "daysToComplete":
			return hw.DaysToComplete, true
		case "submissionURL":
			return hw.SubmissionURL, true
		case "FileType":
			return hw.FileType, true
		case "assignedBy":
			return hw.AssignedBy, true
		case "createdAt":
			return hw.CreatedAt, true
		case "updatedAt":
			return hw.UpdatedAt, true
		}
		return nil, false
	}
}

func (repo *homeworkRepository) CreateHomework(_ context.Context, hw homework.Homework) (homework.Homework, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	hw.ID = uuid.New().String()
	if hw.DaysToComplete == 0 {
		hw.DaysToComplete = defaultDaysToComplete
	}
	repo.db.homeworks[hw.ID] = &hw
	return hw, nil
}

func (repo *homeworkRepository) FindHomeworks(_ context.Context, opts core.ListOptions) ([]homework.Homework, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	matched := make([]*homework.Homework, 0, len(repo.db.homeworks))
	for _, hw := range repo.db.homeworks {
		if matchFilter(opts.Filter, homeworkFields(hw)) {
			matched = append(matched, hw)
		}
	}

	indices := sortRecords(len(matched), opts.Sort, func(i int) fieldFunc { return homeworkFields(matched[i]) })
	homeworks := make([]homework.Homework, 0, len(indices))
	for _, i := range paginate(indices, opts.Skip, opts.Limit) {
		homeworks = append(homeworks, *matched[i])
	}
	return homeworks, nil
}

func (repo *homeworkRepository) GetHomeworkByID(_ context.Context, id string, _ ...core.Projection) (*homework.Homework, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if hw, ok := repo.db.homeworks[id]; ok {
		cp := *hw
		return &cp, nil
	}
	return nil, nil
}

func (repo *homeworkRepository) UpdateHomework(_ context.Context, uh homework.UpdateHomework) (*homework.Homework, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	hw, ok := repo.db.homeworks[uh.ID]
	if !ok {
		return nil, nil
	}
	if uh.Title != nil {
		hw.Title = *uh.Title
	}
	if uh.Description != nil {
		hw.Description = *uh.Description
	}
	if uh.AssignDate != nil {
		hw.AssignDate = uh.AssignDate.Time
	}
	if uh.Class != nil {
		hw.Class = *uh.Class
	}
	if uh.Subject != nil {
		hw.Subject = *uh.Subject
	}
	if uh.DaysToComplete != nil {
		hw.DaysToComplete = *uh.DaysToComplete
	}
	if uh.SubmissionURL != nil {
		hw.SubmissionURL = *uh.SubmissionURL
	}
	if uh.FileType != nil {
		hw.FileType = *uh.FileType
	}
	if uh.AssignedBy != nil {
		hw.AssignedBy = *uh.AssignedBy
	}
	hw.UpdatedAt = time.Now().UTC()

	cp := *hw
	return &cp, nil
}

func (repo *homeworkRepository) DeleteHomeworkByID(_ context.Context, id string) (*homework.Homework, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	hw, ok := repo.db.homeworks[id]
	if !ok {
		return nil, nil
	}
	delete(repo.db.homeworks, id)
	return hw, nil
}

func (repo *homeworkRepository) CountHomeworks(_ context.Context) (int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return int64(len(repo.db.homeworks)), nil
}
