package echoapi

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/user"
)

type userAPI struct {
	svc      *user.Service
	validate *validator.Validate
}

func registerUserProcedures(r *procedureRouter, svc *user.Service, validate *validator.Validate) {
	api := userAPI{svc: svc, validate: validate}

	r.register("users.findAll", api.findAll)
	r.register("users.findById", api.findByID)
	r.register("users.create", api.create)
	r.register("users.update", api.update)
	r.register("users.delete", api.delete)
	r.register("users.count", api.count)
}

func (api *userAPI) findAll(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var query core.ListQuery
	if err := bindInput(input, &query); err != nil {
		return nil, err
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users, err := api.svc.Find(ctx.ctx, query.Options())
	if err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	return users, nil
}

func (api *userAPI) findByID(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var query core.IDQuery
	if err := bindInput(input, &query); err != nil {
		return nil, err
	}
	if err := query.Validate(api.validate); err != nil {
		return nil, err
	}

	usr, err := api.svc.GetByID(ctx.ctx, query.ID, core.ParseSelect(query.Select)...)
	if err != nil {
		return nil, errors.Wrap(err, "finding user by ID")
	}
	return usr, nil // absent id yields null, not an error
}

func (api *userAPI) create(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var data user.NewUser
	if err := bindInput(input, &data); err != nil {
		return nil, err
	}
	if err := data.Validate(api.validate); err != nil {
		return nil, err
	}

	usr, err := api.svc.Create(ctx.ctx, data)
	if err != nil {
		return nil, errors.Wrap(err, "creating user")
	}
	return userResponse{Message: "User created successfully", User: &usr}, nil
}

func (api *userAPI) update(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var data user.UpdateUser
	if err := bindInput(input, &data); err != nil {
		return nil, err
	}
	if err := data.Validate(api.validate); err != nil {
		return nil, err
	}

	usr, err := api.svc.Update(ctx.ctx, data)
	if err != nil {
		return nil, errors.Wrap(err, "updating user")
	}
	return userResponse{Message: "User updated successfully", User: usr}, nil
}

func (api *userAPI) delete(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var query core.IDQuery
	if err := bindInput(input, &query); err != nil {
		return nil, err
	}
	if err := query.Validate(api.validate); err != nil {
		return nil, err
	}

	usr, err := api.svc.Delete(ctx.ctx, query.ID)
	if err != nil {
		return nil, errors.Wrap(err, "deleting user")
	}
	return userResponse{Message: "User deleted successfully", User: usr}, nil
}

func (api *userAPI) count(ctx *procContext, _ json.RawMessage) (interface{}, error) {
	count, err := api.svc.Count(ctx.ctx)
	if err != nil {
		return nil, errors.Wrap(err, "counting users")
	}
	return count, nil
}

// userResponse is the mutation envelope; User is null when the id matched
// nothing.
type userResponse struct {
	Message string     `json:"message"`
	User    *user.User `json:"user"`
}
