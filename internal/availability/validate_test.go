package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWindowEdit(t *testing.T) {
	window := Window{StartTime: "09:00", EndTime: "12:00"}

	tests := []struct {
		name     string
		window   Window
		field    string
		newValue string
		wantErr  error
	}{
		{
			name:     "start before end accepted",
			window:   window,
			field:    FieldStartTime,
			newValue: "10:00",
		},
		{
			name:     "start equal to end rejected",
			window:   window,
			field:    FieldStartTime,
			newValue: "12:00",
			wantErr:  ErrInvalidOrdering,
		},
		{
			name:     "start after end rejected",
			window:   window,
			field:    FieldStartTime,
			newValue: "13:00",
			wantErr:  ErrInvalidOrdering,
		},
		{
			name:     "clearing start accepted",
			window:   window,
			field:    FieldStartTime,
			newValue: "",
		},
		{
			name:     "start edit with blank end accepted",
			window:   Window{StartTime: "09:00"},
			field:    FieldStartTime,
			newValue: "23:00",
		},
		{
			// правки конца не проверяются, даже когда они ломают порядок
			name:     "end before start accepted",
			window:   window,
			field:    FieldEndTime,
			newValue: "08:00",
		},
		{
			name:     "end equal to start accepted",
			window:   window,
			field:    FieldEndTime,
			newValue: "09:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWindowEdit(tt.window, tt.field, tt.newValue)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
