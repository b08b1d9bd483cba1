package accounts

import (
	"context"
	"fmt"

	"github.com/goliatone/go-errors"
)

// TokenBody is the success payload for login and signup.
type TokenBody struct {
	AccessToken string `json:"accessToken"`
}

// recoverTo500 converts a panicking handler into a 500 envelope so no
// failure ever escapes the controller contract.
func recoverTo500(res *Response) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", r)
		}
		*res = ServerError(err)
	}
}

// verdictResponse maps a validation outcome to an envelope: field verdicts
// become 400, a misbehaving checker stays an unexpected failure.
func verdictResponse(err error) Response {
	if IsValidationError(err) {
		return BadRequest(err)
	}
	return ServerError(err)
}

// LoginController authenticates credentials and returns a bearer token.
type LoginController struct {
	validation Validation
	auth       Authentication
}

func NewLoginController(validation Validation, auth Authentication) *LoginController {
	return &LoginController{validation: validation, auth: auth}
}

var _ Controller = (*LoginController)(nil)

func (c *LoginController) Handle(ctx context.Context, req Request) (res Response) {
	defer recoverTo500(&res)

	if err := c.validation.Validate(req.Body); err != nil {
		return verdictResponse(err)
	}

	token, err := c.auth.Authenticate(ctx, Credentials{
		Email:    req.BodyString("email"),
		Password: req.BodyString("password"),
	})
	if err != nil {
		return ServerError(err)
	}

	if token == "" {
		return Unauthorized()
	}

	return OK(TokenBody{AccessToken: token})
}

// SignUpController registers an account and immediately authenticates it,
// so a successful signup responds with a usable bearer token.
type SignUpController struct {
	validation Validation
	registrar  Registration
	auth       Authentication
}

func NewSignUpController(validation Validation, registrar Registration, auth Authentication) *SignUpController {
	return &SignUpController{
		validation: validation,
		registrar:  registrar,
		auth:       auth,
	}
}

var _ Controller = (*SignUpController)(nil)

func (c *SignUpController) Handle(ctx context.Context, req Request) (res Response) {
	defer recoverTo500(&res)

	if err := c.validation.Validate(req.Body); err != nil {
		return verdictResponse(err)
	}

	registration := RegisterRequest{
		Name:     req.BodyString("name"),
		Email:    req.BodyString("email"),
		Phone:    req.BodyString("phone_number"),
		Password: req.BodyString("password"),
	}

	if _, err := c.registrar.Register(ctx, registration); err != nil {
		if errors.Is(err, ErrEmailInUse) {
			return Forbidden(err)
		}
		return ServerError(err)
	}

	token, err := c.auth.Authenticate(ctx, Credentials{
		Email:    registration.Email,
		Password: registration.Password,
	})
	if err != nil {
		return ServerError(err)
	}

	return OK(TokenBody{AccessToken: token})
}
