package inmem

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/user"
)

type userRepository struct {
	db *DB
}

var _ user.Repository = (*userRepository)(nil)

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

func userFields(usr *user.User) fieldFunc {
	return func(field string) (interface{}, bool) {
		switch field {
		case "id", "_id":
			return usr.ID, true
		case "name":
			return usr.Name, true
		case "email":
			return usr.Email, true
		case "class":
			return usr.Class, true
		case "role":
			return usr.Role, true
		case "createdAt":
			return usr.CreatedAt, true
		case "updatedAt":
			return usr.UpdatedAt, true
		}
		return nil, false
	}
}

func (repo *userRepository) CreateUser(_ context.Context, usr user.User) (user.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, existing := range repo.db.users {
		if existing.Email == usr.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	usr.ID = uuid.New().String()
	repo.db.users[usr.ID] = &usr
	return usr, nil
}

func (repo *userRepository) FindUsers(_ context.Context, opts core.ListOptions) ([]user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	matched := make([]*user.User, 0, len(repo.db.users))
	for _, usr := range repo.db.users {
		if matchFilter(opts.Filter, userFields(usr)) {
			matched = append(matched, usr)
		}
	}

	indices := sortRecords(len(matched), opts.Sort, func(i int) fieldFunc { return userFields(matched[i]) })
	users := make([]user.User, 0, len(indices))
	for _, i := range paginate(indices, opts.Skip, opts.Limit) {
		users = append(users, *matched[i])
	}
	return users, nil
}

func (repo *userRepository) GetUserByID(_ context.Context, id string, _ ...core.Projection) (*user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if usr, ok := repo.db.users[id]; ok {
		cp := *usr
		return &cp, nil
	}
	return nil, nil
}

func (repo *userRepository) GetUserByEmail(_ context.Context, email string) (*user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, usr := range repo.db.users {
		if usr.Email == email {
			cp := *usr
			return &cp, nil
		}
	}
	return nil, nil
}

func (repo *userRepository) UpdateUser(_ context.Context, uu user.UpdateUser) (*user.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	usr, ok := repo.db.users[uu.ID]
	if !ok {
		return nil, nil
	}
	if uu.Email != nil {
		for id, existing := range repo.db.users {
			if id != uu.ID && existing.Email == *uu.Email {
				return nil, user.ErrEmailExists
			}
		}
		usr.Email = *uu.Email
	}
	if uu.Name != nil {
		usr.Name = *uu.Name
	}
	if uu.Password != nil {
		usr.Password = *uu.Password
	}
	if uu.Class != nil {
		usr.Class = *uu.Class
	}
	if uu.Role != nil {
		usr.Role = *uu.Role
	}
	usr.UpdatedAt = time.Now().UTC()

	cp := *usr
	return &cp, nil
}

func (repo *userRepository) DeleteUserByID(_ context.Context, id string) (*user.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	usr, ok := repo.db.users[id]
	if !ok {
		return nil, nil
	}
	delete(repo.db.users, id)
	return usr, nil
}

func (repo *userRepository) CountUsers(_ context.Context) (int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return int64(len(repo.db.users)), nil
}
