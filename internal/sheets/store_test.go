package sheets

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestIsMissingSheet(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "missing tab",
			err:  &googleapi.Error{Code: 400, Message: "Unable to parse range: 'Bill Reminders'"},
			want: true,
		},
		{
			name: "wrapped missing tab",
			err:  fmt.Errorf("read failed: %w", &googleapi.Error{Code: 400, Message: "Unable to parse range: 'Config'"}),
			want: true,
		},
		{
			name: "other bad request",
			err:  &googleapi.Error{Code: 400, Message: "Invalid values[0][2]: list_value"},
			want: false,
		},
		{
			name: "permission denied",
			err:  &googleapi.Error{Code: 403, Message: "The caller does not have permission"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection reset"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isMissingSheet(tt.err))
		})
	}
}
