package echoapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/user"
)

var contextClaimsKey = "userToken"

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Class string `json:"class,omitempty"`
}

// newJWTConfig is the JWT auth middleware config used at the authorization
// boundary; procedures themselves stay public.
func newJWTConfig(secret []byte) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    secret,
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    contextClaimsKey,
		Claims:        new(Claims),
	}
}

// getLoginClaims builds the full identity claims issued on login.
func getLoginClaims(usr user.User) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    core.Conf.AppName,
			Subject:   usr.ID,
			ExpiresAt: now.Add(core.Conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		ID:    usr.ID,
		Email: usr.Email,
		Name:  usr.Name,
		Role:  usr.Role,
		Class: usr.Class,
	}
}

// getRegisterClaims builds the reduced claims issued on registration.
func getRegisterClaims(usr user.User) *Claims {
	claims := getLoginClaims(usr)
	claims.Role = ""
	claims.Class = ""
	return claims
}

// GenerateToken generates a signed JWT token string representing the Claims.
func GenerateToken(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.GetSigningMethod(middleware.AlgorithmHS256), claims)
	ss, err := token.SignedString(core.Conf.SecretKey)
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(contextClaimsKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// me returns the verified identity behind the supplied bearer token.
func me(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, claims)
}

type authAPI struct {
	svc      *user.Service
	validate *validator.Validate
}

func registerAuthProcedures(r *procedureRouter, svc *user.Service, validate *validator.Validate) {
	api := authAPI{svc: svc, validate: validate}

	r.register("auth.login", api.login)
	r.register("auth.register", api.register)
}

func (api *authAPI) login(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var data loginRequest
	if err := bindInput(input, &data); err != nil {
		return nil, err
	}
	if err := data.Validate(api.validate); err != nil {
		return nil, err
	}

	usr, err := api.svc.Authenticate(ctx.ctx, data.Email, data.Password)
	if err != nil {
		return nil, err
	}
	token, err := GenerateToken(getLoginClaims(usr))
	if err != nil {
		return nil, errors.Wrap(err, "generating token")
	}

	return loginResponse{Message: "Login successful", Role: usr.Role, Token: token}, nil
}

func (api *authAPI) register(ctx *procContext, input json.RawMessage) (interface{}, error) {
	var data registerRequest
	if err := bindInput(input, &data); err != nil {
		return nil, err
	}
	if err := data.Validate(api.validate); err != nil {
		return nil, err
	}

	usr, err := api.svc.Register(ctx.ctx, data.Name, data.Email, data.Password)
	if err != nil {
		return nil, err
	}
	token, err := GenerateToken(getRegisterClaims(usr))
	if err != nil {
		return nil, errors.Wrap(err, "generating token")
	}

	return registerResponse{Message: "Registration successful", User: usr, Token: token}, nil
}

type (
	loginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	loginResponse struct {
		Message string `json:"message"`
		Role    string `json:"role"`
		Token   string `json:"token"`
	}

	registerRequest struct {
		Name     string `json:"name" validate:"required,min=2"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	registerResponse struct {
		Message string    `json:"message"`
		User    user.User `json:"user"`
		Token   string    `json:"token"`
	}
)

func (lr *loginRequest) Validate(validate *validator.Validate) error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return validate.Struct(lr)
}

func (rr *registerRequest) Validate(validate *validator.Validate) error {
	rr.Name = core.CleanString(rr.Name)
	rr.Email = core.CleanString(rr.Email, true /* lower */)
	return validate.Struct(rr)
}
