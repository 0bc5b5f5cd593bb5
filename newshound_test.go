package newshound_test

import (
	"errors"
	"testing"

	"github.com/newshoundlabs/newshound"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := newshound.Errorf(newshound.EMISMATCH, "content locator %q matched nothing", "/html/body/div")

	assert.Equal(t, newshound.EMISMATCH, newshound.ErrorCode(err))
	assert.Equal(t, "content locator \"/html/body/div\" matched nothing", newshound.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, newshound.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, newshound.EINTERNAL, newshound.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, newshound.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", newshound.ErrorMessage(errors.New("boom")))
}
