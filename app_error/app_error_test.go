package app_error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, HTTPStatus(BadRequest("bad")))
	assert.Equal(t, 401, HTTPStatus(Unauthorized("who")))
	assert.Equal(t, 403, HTTPStatus(Forbidden("no")))
	assert.Equal(t, 404, HTTPStatus(NotFound("gone")))
	assert.Equal(t, 418, HTTPStatus(New(418, "teapot")))
	assert.Equal(t, 500, HTTPStatus(errors.New("unclassified")))
}

func TestHTTPStatusWrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("inner"))
	assert.Equal(t, 404, HTTPStatus(err))
}

func TestMessageFormatting(t *testing.T) {
	err := NotFound("user %s not found", "abc")
	assert.Equal(t, "user abc not found", err.Error())
}
