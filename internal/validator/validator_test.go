package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEntryRequest struct {
	Title string `json:"title" validate:"required,notblank"`
	Notes string `json:"notes" validate:"max=20"`
}

func TestValidator_EntryRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       testEntryRequest
		wantError bool
		errorMsg  string
		tag       string
	}{
		{
			name:      "valid request",
			req:       testEntryRequest{Title: "Buy milk", Notes: "2%"},
			wantError: false,
		},
		{
			name:      "valid request without notes",
			req:       testEntryRequest{Title: "Buy milk"},
			wantError: false,
		},
		{
			name:      "empty title",
			req:       testEntryRequest{Title: ""},
			wantError: true,
			errorMsg:  "title is required",
			tag:       "required",
		},
		{
			name:      "whitespace title",
			req:       testEntryRequest{Title: "  \t "},
			wantError: true,
			errorMsg:  "title cannot be blank",
			tag:       "notblank",
		},
		{
			name:      "notes too long",
			req:       testEntryRequest{Title: "ok", Notes: "this note is far too long"},
			wantError: true,
			errorMsg:  "notes failed validation (max)",
			tag:       "max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.tag, verrs[0].Tag)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "title", Message: "title is required"},
		{Field: "notes", Message: "notes must be at most 20 characters"},
	}

	assert.Equal(t, "title is required; notes must be at most 20 characters", errs.Error())
}

func TestValidationErrors_HasField(t *testing.T) {
	errs := ValidationErrors{{Field: "title", Message: "title is required"}}

	assert.True(t, errs.HasField("title"))
	assert.False(t, errs.HasField("notes"))
}

func TestValidator_NonStructInput(t *testing.T) {
	v := New()

	err := v.Validate("not a struct")
	require.Error(t, err)

	var verrs ValidationErrors
	assert.False(t, errors.As(err, &verrs), "non-struct input should not produce field errors")
}
