package order

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidProductError_NamesOffendingID(t *testing.T) {
	err := &InvalidProductError{ProductID: 42}
	assert.Equal(t, "invalid product_id 42", err.Error())
}

func TestIsBusinessError(t *testing.T) {
	assert.True(t, IsBusinessError(ErrEmptyCart))
	assert.True(t, IsBusinessError(&InvalidProductError{ProductID: 7}))
	assert.True(t, IsBusinessError(&InvalidTotalError{Total: 0}))
	assert.True(t, IsBusinessError(fmt.Errorf("placing: %w", ErrInvalidPhone)))

	assert.False(t, IsBusinessError(errors.New("connection refused")))
	assert.False(t, IsBusinessError(nil))
}
