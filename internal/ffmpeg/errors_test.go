package ffmpeg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvocationError(t *testing.T) {
	err := &InvocationError{ExitCode: 1, Stderr: "boom", Err: ErrEncoderFailed}
	assert.Equal(t, "ffmpeg failed (exit status 1)", err.Error())
	assert.True(t, errors.Is(err, ErrEncoderFailed))
	assert.False(t, errors.Is(err, ErrEncoderNotFound))

	killed := &InvocationError{ExitCode: -1, Err: ErrEncoderTimeout}
	assert.Equal(t, "ffmpeg timed out", killed.Error())
	assert.True(t, errors.Is(killed, ErrEncoderTimeout))
}

func TestStderrTail(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		n      int
		want   []string
	}{
		{"empty", "", 5, nil},
		{"whitespace only", "  \n\n", 5, nil},
		{"fewer lines than n", "a\nb\n", 5, []string{"a", "b"}},
		{"keeps last n", "1\n2\n3\n4\n", 2, []string{"3", "4"}},
		{"drops blank and CR", "x\r\n\r\ny\r\n", 5, []string{"x", "y"}},
		{"zero n", "a", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StderrTail(tt.stderr, tt.n))
		})
	}
}
