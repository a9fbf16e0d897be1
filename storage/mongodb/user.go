package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/user"
)

type userRepository struct {
	coll *mongo.Collection
}

var _ user.Repository = (*userRepository)(nil)

func NewUserRepository(db *mongo.Database) user.Repository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	usr.ID = primitive.NewObjectID().Hex()
	if _, err := repo.coll.InsertOne(ctx, usr); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, err
	}
	return usr, nil
}

func (repo *userRepository) FindUsers(ctx context.Context, opts core.ListOptions) ([]user.User, error) {
	cursor, err := repo.coll.Find(ctx, buildFilter(opts.Filter), findOptions(opts))
	if err != nil {
		return nil, err
	}
	users := make([]user.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *userRepository) GetUserByID(ctx context.Context, id string, project ...core.Projection) (*user.User, error) {
	var usr user.User
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}, findOneOptions(project)).Decode(&usr)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &usr, nil
}

func (repo *userRepository) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	var usr user.User
	err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&usr)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &usr, nil
}

func (repo *userRepository) UpdateUser(ctx context.Context, uu user.UpdateUser) (*user.User, error) {
	patch := bson.M{"updatedAt": time.Now().UTC()}
	if uu.Name != nil {
		patch["name"] = *uu.Name
	}
	if uu.Email != nil {
		patch["email"] = *uu.Email
	}
	if uu.Password != nil {
		patch["password"] = *uu.Password
	}
	if uu.Class != nil {
		patch["class"] = *uu.Class
	}
	if uu.Role != nil {
		patch["role"] = *uu.Role
	}

	var usr user.User
	err := repo.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": uu.ID},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&usr)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, user.ErrEmailExists
		}
		return nil, err
	}
	return &usr, nil
}

func (repo *userRepository) DeleteUserByID(ctx context.Context, id string) (*user.User, error) {
	var usr user.User
	err := repo.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&usr)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &usr, nil
}

func (repo *userRepository) CountUsers(ctx context.Context) (int64, error) {
	return repo.coll.CountDocuments(ctx, bson.M{})
}
