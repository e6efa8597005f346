package apperr

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{
			name: "invalid argument maps to 400",
			err:  InvalidArgument("text is required"),
			want: http.StatusBadRequest,
		},
		{
			name: "model unavailable maps to 502",
			err:  ModelUnavailable("generate failed", nil),
			want: http.StatusBadGateway,
		},
		{
			name: "unparsable output maps to 500",
			err:  UnparsableOutput("no JSON found", nil),
			want: http.StatusInternalServerError,
		},
		{
			name: "unauthenticated maps to 401",
			err:  Unauthenticated("no token"),
			want: http.StatusUnauthorized,
		},
		{
			name: "collaborator status is propagated",
			err:  Collaborator(http.StatusForbidden, "insufficient scope", nil),
			want: http.StatusForbidden,
		},
		{
			name: "collaborator without status defaults to 500",
			err:  Collaborator(0, "insert failed", nil),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestFromError(t *testing.T) {
	base := ModelUnavailable("generate failed", errors.New("connection refused"))
	wrapped := errors.Wrap(base, "extracting event")

	got := FromError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, CodeModelUnavailable, got.Code)

	assert.Nil(t, FromError(errors.New("plain error")))
	assert.Nil(t, FromError(nil))
}

func TestErrorString(t *testing.T) {
	err := UnparsableOutput("no JSON object in response", errors.New("unexpected end of input"))
	assert.Contains(t, err.Error(), "UNPARSABLE_MODEL_OUTPUT")
	assert.Contains(t, err.Error(), "unexpected end of input")

	bare := InvalidArgument("missing summary")
	assert.Equal(t, "[INVALID_ARGUMENT] missing summary", bare.Error())
}
