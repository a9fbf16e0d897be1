package echoapi

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/submission"
)

type submissionAPI struct {
	svc      *submission.Service
	validate *validator.Validate
}

func registerSubmissionProcedures(r *procedureRouter, svc *submission.Service, validate *validator.Validate) {
	api := submissionAPI{svc: svc, validate: validate}

	r.register("submission.findAll", api.findAll)
	r.register("submission.findById", api.findByID)
	r.register("submission.create", api.create)
	r.register("submission.update", api.update)
	r.register("submission.delete", api.delete)
	r.register("submission.count", api.count)
}

func (api *submissionAPI) findAll(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var query core.ListQuery
	if err := bindInput(input, &query); err != nil {
		return nil, err
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	submissions, err := api.svc.Find(ctx.ctx, query.Options())
	if err != nil {
		return nil, errors.Wrap(err, "querying submissions")
	}
	return submissions, nil
}

func (api *submissionAPI) findByID(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var query core.IDQuery
	if err := bindInput(input, &query); err != nil {
		return nil, err
	}
	if err := query.Validate(api.validate); err != nil {
		return nil, err
	}

	sub, err := api.svc.GetByID(ctx.ctx, query.ID, core.ParseSelect(query.Select)...)
	if err != nil {
		return nil, errors.Wrap(err, "finding submission by ID")
	}
	return sub, nil
}

func (api *submissionAPI) create(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var data submission.NewSubmission
	if err := bindInput(input, &data); err != nil {
		return nil, err
	}
	if err := data.Validate(api.validate); err != nil {
		return nil, err
	}

	sub, err := api.svc.Create(ctx.ctx, data)
	if err != nil {
		return nil, errors.Wrap(err, "creating submission")
	}
	return submissionResponse{Message: "Submission created successfully", Submission: &sub}, nil
}

func (api *submissionAPI) update(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var data submission.UpdateSubmission
	if err := bindInput(input, &data); err != nil {
		return nil, err
	}
	if err := data.Validate(api.validate); err != nil {
		return nil, err
	}

	sub, err := api.svc.Update(ctx.ctx, data)
	if err != nil {
		return nil, errors.Wrap(err, "updating submission")
	}
	return submissionResponse{Message: "Submission updated successfully", Submission: sub}, nil
}

func (api *submissionAPI) delete(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var query core.IDQuery
	if err := bindInput(input, &query); err != nil {
		return nil, err
	}
	if err := query.Validate(api.validate); err != nil {
		return nil, err
	}

	sub, err := api.svc.Delete(ctx.ctx, query.ID)
	if err != nil {
		return nil, errors.Wrap(err, "deleting submission")
	}
	return submissionResponse{Message: "Submission deleted successfully", Submission: sub}, nil
}

func (api *submissionAPI) count(ctx *procContext, _ json.RawMessage) (interface{}, error) {
	count, err := api.svc.Count(ctx.ctx)
	if err != nil {
		return nil, errors.Wrap(err, "counting submissions")
	}
	return count, nil
}

type submissionResponse struct {
	Message    string                 `json:"message"`
	Submission *submission.Submission `json:"submission"`
}
