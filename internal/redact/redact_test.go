package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/kitchen-api/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "Menu item not found",
			expected: "Menu item not found",
		},
		{
			name:     "database connection string",
			input:    "dial postgres://kitchen:hunter2@db:5432/kitchen failed",
			expected: "dial postgres://[REDACTED_CREDENTIAL]@db:5432/kitchen failed",
		},
		{
			name:     "bearer header",
			input:    "header Authorization: Bearer abc.def.ghi rejected",
			expected: "header Authorization: Bearer [REDACTED_TOKEN] rejected",
		},
		{
			name:     "bare jwt",
			input:    "token eyJhbGciOiJIUzI1NiJ9.eyJpZCI6IjEifQ.sig_-part",
			expected: "token [REDACTED_JWT]",
		},
		{
			name:     "bcrypt hash",
			input:    "stored hash $2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy for user",
			expected: "stored hash [REDACTED_HASH] for user",
		},
		{
			name:     "json password field",
			input:    `{"email":"a@x.com","password":"secret123"}`,
			expected: `{"email":"a@x.com","password":[REDACTED]}`,
		},
		{
			name:     "query password field",
			input:    "password=hunter2&next=1",
			expected: "password=[REDACTED]&next=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, redact.String(tt.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	assert.Equal(t, "", redact.Error(nil))

	base := errors.New("connect postgres://u:p@localhost/kitchen")
	wrapped := fmt.Errorf("open database: %w", base)
	assert.Equal(t,
		"open database: connect postgres://[REDACTED_CREDENTIAL]@localhost/kitchen",
		redact.Error(wrapped))
}
