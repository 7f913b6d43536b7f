package kafka

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"connection refused", errors.New("dial tcp 127.0.0.1:9092: connect: connection refused"), true},
		{"io timeout", errors.New("read tcp: i/o timeout"), true},
		{"broken pipe", errors.New("write: broken pipe"), true},
		{"unknown host", errors.New("lookup kafka: no such host"), true},
		{"case insensitive", errors.New("Connection Reset by peer"), true},
		{"permanent", errors.New("invalid message size"), false},
		{"auth failure", errors.New("SASL authentication failed"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}
