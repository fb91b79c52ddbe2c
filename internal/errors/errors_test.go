package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "[INPUT_ERROR] product name is required", Input("product name is required").Error())
	assert.Equal(t, "[CATALOG_ERROR] read x.hcl: unexpected EOF", Catalog("read x.hcl", io.ErrUnexpectedEOF).Error())
	assert.Equal(t, "[NOT_FOUND] strategy not found: luxury", NotFound("strategy", "luxury").Error())
}

func TestUnwrapAndTypeChecks(t *testing.T) {
	err := Config("engine.fixed_time", io.ErrUnexpectedEOF)
	assert.True(t, stderrors.Is(err, io.ErrUnexpectedEOF))

	wrapped := fmt.Errorf("starting engine: %w", err)
	assert.True(t, IsType(wrapped, TypeConfig))
	assert.False(t, IsType(wrapped, TypeInput))
	assert.Equal(t, TypeConfig, TypeOf(wrapped))

	assert.False(t, IsType(io.EOF, TypeInternal))
	assert.Equal(t, TypeInternal, TypeOf(io.EOF))
	assert.Equal(t, TypeInternal, TypeOf(Internal("boom", nil)))
}

func TestWithContext(t *testing.T) {
	err := Newf(TypeInput, "product #%d", 3).WithContext("field", "costPrice").WithContext("value", -1)
	assert.Equal(t, "product #3", err.Message)
	assert.Equal(t, map[string]interface{}{"field": "costPrice", "value": -1}, err.Context)
}
