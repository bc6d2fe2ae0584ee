package feedfinder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "feedfinder/core/errors"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"resolution", &coreerrors.URLResolutionError{Reference: "http://[::1", Cause: errors.New("bad host")}, ErrorTypeResolution},
		{"query", &coreerrors.QueryError{Selector: "a[", Cause: errors.New("unexpected EOF")}, ErrorTypeQuery},
		{"validation", &coreerrors.ValidationError{Field: "url", Message: "must be absolute"}, ErrorTypeValidation},
		{"not found", &coreerrors.FetchError{URL: "https://example.com/", StatusCode: 404}, ErrorTypeNotFound},
		{"server error", &coreerrors.FetchError{URL: "https://example.com/", StatusCode: 502}, ErrorTypeNetwork},
		{"transport", &coreerrors.FetchError{URL: "https://example.com/", Cause: errors.New("refused")}, ErrorTypeNetwork},
		{"wrapped resolution", coreerrors.WrapError(&coreerrors.URLResolutionError{Reference: "x"}, "declared-link"), ErrorTypeResolution},
		{"other", errors.New("boom"), ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapError(tt.err)

			var libErr *Error
			require.ErrorAs(t, err, &libErr)
			assert.Equal(t, tt.want, libErr.Type)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, wrapError(nil))
}

func TestWrapError_Context(t *testing.T) {
	err := wrapError(&coreerrors.FetchError{URL: "https://example.com/", StatusCode: 404})

	var libErr *Error
	require.ErrorAs(t, err, &libErr)
	assert.Equal(t, "https://example.com/", libErr.Context["url"])
	assert.Equal(t, 404, libErr.Context["status"])
}

func TestError_Message(t *testing.T) {
	err := NewError(ErrorTypeValidation, "bad input")
	assert.Equal(t, "validation: bad input", err.Error())

	err.WithCause(errors.New("empty"))
	assert.Equal(t, "validation: bad input (caused by: empty)", err.Error())
}
