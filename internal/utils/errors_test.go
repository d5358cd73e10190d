package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name    string
		context string
		cause   error
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wraps a cause with context",
			context: "file create failed",
			cause:   errors.New("disk full"),
			wantMsg: "file create failed: disk full",
		},
		{
			name:    "nil cause yields nil",
			context: "anything",
			cause:   nil,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapError(tt.context, tt.cause)
			if tt.wantNil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestWrapErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapError("context", cause)

	require.ErrorIs(t, err, cause)

	var h5err *H5Error
	require.ErrorAs(t, err, &h5err)
	require.Equal(t, "context", h5err.Context)
}

func TestStatusError(t *testing.T) {
	tests := []struct {
		name    string
		status  int64
		wantErr bool
	}{
		{name: "negative status is an error", status: -1, wantErr: true},
		{name: "zero status is success", status: 0, wantErr: false},
		{name: "positive status is success", status: 42, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := StatusError("library call failed", tt.status)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), "library call failed")
			require.Contains(t, err.Error(), "-1")
		})
	}
}
