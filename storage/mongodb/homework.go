package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/homework"
)

const defaultDaysToComplete = 4

type homeworkRepository struct {
	coll *mongo.Collection
}

var _ homework.Repository = (*homeworkRepository)(nil)

func NewHomeworkRepository(db *mongo.Database) homework.Repository {
	return &homeworkRepository{coll: db.Collection(homeworksCollection)}
}

func (repo *homeworkRepository) CreateHomework(ctx context.Context, hw homework.Homework) (homework.Homework, error) {
	hw.ID = primitive.NewObjectID().Hex()
	if hw.DaysToComplete == 0 {
		hw.DaysToComplete = defaultDaysToComplete
	}
	if _, err := repo.coll.InsertOne(ctx, hw); err != nil {
		return homework.Homework{}, err
	}
	return hw, nil
}

func (repo *homeworkRepository) FindHomeworks(ctx context.Context, opts core.ListOptions) ([]homework.Homework, error) {
	cursor, err := repo.coll.Find(ctx, buildFilter(opts.Filter), findOptions(opts))
	if err != nil {
		return nil, err
	}
	homeworks := make([]homework.Homework, 0)
	if err := cursor.All(ctx, &homeworks); err != nil {
		return nil, err
	}
	return homeworks, nil
}

func (repo *homeworkRepository) GetHomeworkByID(ctx context.Context, id string, project ...core.Projection) (*homework.Homework, error) {
	var hw homework.Homework
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}, findOneOptions(project)).Decode(&hw)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hw, nil
}

func (repo *homeworkRepository) UpdateHomework(ctx context.Context, uh homework.UpdateHomework) (*homework.Homework, error) {
	patch := bson.M{"updatedAt": time.Now().UTC()}
	if uh.Title != nil {
		patch["title"] = *uh.Title
	}
	if uh.Description != nil {
		patch["description"] = *uh.Description
	}
	if uh.AssignDate != nil {
		patch["assignDate"] = uh.AssignDate.Time
	}
	if uh.Class != nil {
		patch["class"] = *uh.Class
	}
	if uh.Subject != nil {
		patch["subject"] = *uh.Subject
	}
	if uh.DaysToComplete != nil {
		patch["daysToComplete"] = *uh.DaysToComplete
	}
	if uh.SubmissionURL != nil {
		patch["submissionURL"] = *uh.SubmissionURL
	}
	if uh.FileType != nil {
		patch["FileType"] = *uh.FileType
	}
	if uh.AssignedBy != nil {
		patch["assignedBy"] = *uh.AssignedBy
	}

	var hw homework.Homework
	err := repo.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": uh.ID},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&hw)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hw, nil
}

func (repo *homeworkRepository) DeleteHomeworkByID(ctx context.Context, id string) (*homework.Homework, error) {
	var hw homework.Homework
	err := repo.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&hw)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hw, nil
}

func (repo *homeworkRepository) CountHomeworks(ctx context.Context) (int64, error) {
	return repo.coll.CountDocuments(ctx, bson.M{})
}
