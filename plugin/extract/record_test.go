package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/eventsense/internal/apperr"
)

func validRecord() *EventRecord {
	return &EventRecord{
		Summary:       "Lunch with Sara",
		StartDateTime: "2025-04-15T12:00:00-05:00",
		EndDateTime:   "2025-04-15T13:00:00-05:00",
	}
}

func TestEventRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*EventRecord)
		wantErr string
	}{
		{
			name:   "valid record",
			mutate: func(*EventRecord) {},
		},
		{
			name:    "missing summary",
			mutate:  func(r *EventRecord) { r.Summary = "" },
			wantErr: "summary",
		},
		{
			name:    "blank summary",
			mutate:  func(r *EventRecord) { r.Summary = "   " },
			wantErr: "summary",
		},
		{
			name:    "missing startDateTime",
			mutate:  func(r *EventRecord) { r.StartDateTime = "" },
			wantErr: "startDateTime",
		},
		{
			name:    "missing endDateTime",
			mutate:  func(r *EventRecord) { r.EndDateTime = "" },
			wantErr: "endDateTime",
		},
		{
			name:    "malformed startDateTime",
			mutate:  func(r *EventRecord) { r.StartDateTime = "tomorrow at noon" },
			wantErr: "startDateTime",
		},
		{
			name:    "date without time or offset",
			mutate:  func(r *EventRecord) { r.EndDateTime = "2025-04-15" },
			wantErr: "endDateTime",
		},
		{
			name: "end equals start",
			mutate: func(r *EventRecord) {
				r.EndDateTime = r.StartDateTime
			},
			wantErr: "after",
		},
		{
			name: "end before start",
			mutate: func(r *EventRecord) {
				r.StartDateTime = "2025-04-15T14:00:00-05:00"
			},
			wantErr: "after",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(r)
			err := r.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr := apperr.FromError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperr.CodeInvalidArgument, appErr.Code)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEventRecordDescriptionDefaultsToSummary(t *testing.T) {
	r := validRecord()
	require.NoError(t, r.Validate())
	assert.Equal(t, "Lunch with Sara", r.Description)

	r = validRecord()
	r.Description = "Lunch to discuss the quarterly plan"
	require.NoError(t, r.Validate())
	assert.Equal(t, "Lunch to discuss the quarterly plan", r.Description)
}
