package echoapi

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/homework"
)

type homeworkAPI struct {
	svc      *homework.Service
	validate *validator.Validate
}

func registerHomeworkProcedures(r *procedureRouter, svc *homework.Service, validate *validator.Validate) {
	api := homeworkAPI{svc: svc, validate: validate}

	r.register("homework.findAll", api.findAll)
	r.register("homework.findById", api.findByID)
	r.register("homework.create", api.create)
	r.register("homework.update", api.update)
	r.register("homework.delete", api.delete)
	r.register("homework.count", api.count)
}

func (api *homeworkAPI) findAll(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var query core.ListQuery
	if err := bindInput(input, &query); err != nil {
		return nil, err
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	homeworks, err := api.svc.Find(ctx.ctx, query.Options())
	if err != nil {
		return nil, errors.Wrap(err, "querying homeworks")
	}
	return homeworks, nil
}

func (api *homeworkAPI) findByID(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var query core.IDQuery
	if err := bindInput(input, &query); err != nil {
		return nil, err
	}
	if err := query.Validate(api.validate); err != nil {
		return nil, err
	}

	hw, err := api.svc.GetByID(ctx.ctx, query.ID, core.ParseSelect(query.Select)...)
	if err != nil {
		return nil, errors.Wrap(err, "finding homework by ID")
	}
	return hw, nil
}

func (api *homeworkAPI) create(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var data homework.NewHomework
	if err := bindInput(input, &data); err != nil {
		return nil, err
	}
	if err := data.Validate(api.validate); err != nil {
		return nil, err
	}

	hw, err := api.svc.Create(ctx.ctx, data)
	if err != nil {
		return nil, errors.Wrap(err, "creating homework")
	}
	return homeworkResponse{Message: "Homework created successfully", Homework: &hw}, nil
}

func (api *homeworkAPI) update(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var data homework.UpdateHomework
	if err := bindInput(input, &data); err != nil {
		return nil, err
	}
	if err := data.Validate(api.validate); err != nil {
		return nil, err
	}

	hw, err := api.svc.Update(ctx.ctx, data)
	if err != nil {
		return nil, errors.Wrap(err, "updating homework")
	}
	return homeworkResponse{Message: "Homework updated successfully", Homework: hw}, nil
}

func (api *homeworkAPI) delete(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var query core.IDQuery
	if err := bindInput(input, &query); err != nil {
		return nil, err
	}
	if err := query.Validate(api.validate); err != nil {
		return nil, err
	}

	hw, err := api.svc.Delete(ctx.ctx, query.ID)
	if err != nil {
		return nil, errors.Wrap(err, "deleting homework")
	}
	return homeworkResponse{Message: "Homework deleted successfully", Homework: hw}, nil
}

func (api *homeworkAPI) count(ctx *procContext, _ json.RawMessage) (interface{}, error) {
	count, err := api.svc.Count(ctx.ctx)
	if err != nil {
		return nil, errors.Wrap(err, "counting homeworks")
	}
	return count, nil
}

type homeworkResponse struct {
	Message  string             `json:"message"`
	Homework *homework.Homework `json:"homework"`
}
