package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/submission"
)

type submissionRepository struct {
	coll *mongo.Collection
}

var _ submission.Repository = (*submissionRepository)(nil)

func NewSubmissionRepository(db *mongo.Database) submission.Repository {
	return &submissionRepository{coll: db.Collection(submissionsCollection)}
}

func (repo *submissionRepository) CreateSubmission(ctx context.Context, sub submission.Submission) (submission.Submission, error) {
	sub.ID = primitive.NewObjectID().Hex()
	if _, err := repo.coll.InsertOne(ctx, sub); err != nil {
		return submission.Submission{}, err
	}
	return sub, nil
}

func (repo *submissionRepository) FindSubmissions(ctx context.Context, opts core.ListOptions) ([]submission.Submission, error) {
	cursor, err := repo.coll.Find(ctx, buildFilter(opts.Filter), findOptions(opts))
	if err != nil {
		return nil, err
	}
	submissions := make([]submission.Submission, 0)
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (repo *submissionRepository) GetSubmissionByID(ctx context.Context, id string, project ...core.Projection) (*submission.Submission, error) {
	var sub submission.Submission
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}, findOneOptions(project)).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (repo *submissionRepository) UpdateSubmission(ctx context.Context, us submission.UpdateSubmission) (*submission.Submission, error) {
	patch := bson.M{"updatedAt": time.Now().UTC()}
	if us.StudentID != nil {
		patch["studentId"] = *us.StudentID
	}
	if us.HomeworkID != nil {
		patch["homeworkId"] = *us.HomeworkID
	}
	if us.SubmissionDate != nil {
		patch["submissionDate"] = us.SubmissionDate.Time
	}
	if us.FileURL != nil {
		patch["fileURL"] = *us.FileURL
	}
	if us.FileType != nil {
		patch["fileType"] = *us.FileType
	}
	if us.IsCompleted != nil {
		patch["isCompleted"] = *us.IsCompleted
	}
	if us.IsCompletedInTime != nil {
		patch["isCompletedInTime"] = *us.IsCompletedInTime
	}

	var sub submission.Submission
	err := repo.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": us.ID},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (repo *submissionRepository) DeleteSubmissionByID(ctx context.Context, id string) (*submission.Submission, error) {
	var sub submission.Submission
	err := repo.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (repo *submissionRepository) CountSubmissions(ctx context.Context) (int64, error) {
	return repo.coll.CountDocuments(ctx, bson.M{})
}
