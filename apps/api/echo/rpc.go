package echoapi

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/shuleni/kazi/core"
)

type (
	// procContext is built once per request by the context factory and handed
	// to the invoked procedure; it lives for exactly one request.
	procContext struct {
		ctx      context.Context
		request  *http.Request
		response *echo.Response
	}

	// procedureFunc binds one input validator to one store operation.
	procedureFunc func(ctx *procContext, input json.RawMessage) (interface{}, error)

	// procedureRouter dispatches "namespace.action" names to procedures.
	procedureRouter struct {
		procedures map[string]procedureFunc
	}
)

func newProcContext(ctx echo.Context) *procContext {
	return &procContext{
		ctx:      ctx.Request().Context(),
		request:  ctx.Request(),
		response: ctx.Response(),
	}
}

func newProcedureRouter() *procedureRouter {
	return &procedureRouter{procedures: make(map[string]procedureFunc)}
}

func (r *procedureRouter) register(name string, fn procedureFunc) {
	r.procedures[name] = fn
}

// dispatch is the single transport entry point for all procedures.
// Queries (GET) carry their input in the "input" query parameter; mutations
// (POST) carry it in the request body.
func (r *procedureRouter) dispatch(ctx echo.Context) error {
	name := ctx.Param("procedure")
	proc, ok := r.procedures[name]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown procedure: "+name)
	}

	input, err := readInput(ctx)
	if err != nil {
		return errors.Wrap(err, "reading procedure input")
	}

	out, err := proc(newProcContext(ctx), input)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, out)
}

func readInput(ctx echo.Context) (json.RawMessage, error) {
	if ctx.Request().Method == http.MethodGet {
		if in := ctx.QueryParam("input"); in != "" {
			return json.RawMessage(in), nil
		}
		return nil, nil
	}
	body, err := ioutil.ReadAll(ctx.Request().Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}
	return json.RawMessage(body), nil
}

// bindInput decodes raw procedure input; malformed input never reaches the
// validators, let alone the store.
func bindInput(input json.RawMessage, v interface{}) error {
	if len(input) == 0 {
		return nil
	}
	if err := json.Unmarshal(input, v); err != nil {
		return core.NewValidationError(errors.New("malformed procedure input"))
	}
	return nil
}
