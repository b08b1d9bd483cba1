package accounts

import (
	"context"
	"runtime/debug"
	"strings"
)

// Request is the pipeline's only input shape. Body carries the decoded
// payload, Headers the wire headers; the transport adapter owns both
// conversions.
type Request struct {
	Body    map[string]any
	Headers map[string]string
}

// Header performs a case-insensitive header lookup.
func (r Request) Header(key string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// BodyString returns the named body field when it holds a string.
func (r Request) BodyString(key string) string {
	if r.Body == nil {
		return ""
	}
	s, _ := r.Body[key].(string)
	return s
}

// Response is the pipeline's only output shape. Cause and Stack carry the
// original failure for decorators; neither is ever serialized to a client.
type Response struct {
	StatusCode int
	Body       any
	Cause      error  `json:"-"`
	Stack      string `json:"-"`
}

// ErrorBody is the normalized error payload shape.
type ErrorBody struct {
	Error string `json:"error"`
}

// Controller is the uniform handling contract shared by endpoint
// controllers, decorators, and the authorization middleware.
type Controller interface {
	Handle(ctx context.Context, req Request) Response
}

// HeaderAccessToken is the fixed header key carrying the bearer token.
const HeaderAccessToken = "x-access-token"

func OK(body any) Response {
	return Response{StatusCode: 200, Body: body}
}

func NoContent() Response {
	return Response{StatusCode: 204}
}

func BadRequest(err error) Response {
	return Response{StatusCode: 400, Body: ErrorBody{Error: err.Error()}}
}

func Unauthorized() Response {
	return Response{StatusCode: 401, Body: ErrorBody{Error: "unauthorized"}}
}

func Forbidden(err error) Response {
	return Response{StatusCode: 403, Body: ErrorBody{Error: err.Error()}}
}

// ServerError hides the failure behind a generic message while keeping the
// cause and the call-site stack on the envelope for the audit decorator.
func ServerError(err error) Response {
	return Response{
		StatusCode: 500,
		Body:       ErrorBody{Error: "internal server error"},
		Cause:      err,
		Stack:      string(debug.Stack()),
	}
}
