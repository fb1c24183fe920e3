package errors

import (
	"fmt"
	"testing"

	"catalog/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode ErrorCode
		wantExit int
	}{
		{"not found", shared.NewNotFoundError("Genre", "g1"), CodeNotFound, 3},
		{"wrapped not found", fmt.Errorf("get: %w", shared.NewNotFoundError("Video", "v1")), CodeNotFound, 3},
		{"conflict", shared.NewConflictError("Category", "c1", fmt.Errorf("dup")), CodeConflict, 4},
		{"entity validation", shared.NewEntityValidationError([]shared.FieldErrors{{"name": {"name should not be empty"}}}), CodeValidation, 2},
		{"search validation", shared.NewSearchValidationError([]shared.FieldErrors{{"type": {"Invalid cast member type: 9"}}}), CodeSearchValidation, 2},
		{"invalid identifier", shared.NewInvalidIdentifierError("abc"), CodeInvalidID, 2},
		{"invalid argument", shared.ErrEmptyIDs(), CodeInvalidArgument, 2},
		{"unknown", fmt.Errorf("boom"), CodeInternal, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromDomainError(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantExit, appErr.ExitCode())
			assert.ErrorIs(t, appErr, tt.err)
		})
	}
}

func TestFromDomainError_CarriesFieldDetails(t *testing.T) {
	err := shared.NewEntityValidationError([]shared.FieldErrors{
		{"name": {"name should not be empty"}},
		{"categories_id": {"Category Not Found using ID x"}},
	})

	appErr := FromDomainError(err)
	require.Len(t, appErr.Details, 2)
	assert.Equal(t, []string{"name should not be empty"}, appErr.Details[0]["name"])
	assert.Equal(t, "Entity Validation Error", appErr.Message)
}

func TestFromDomainError_Nil(t *testing.T) {
	assert.Nil(t, FromDomainError(nil))
	assert.Equal(t, 0, ExitCode(nil))
}

func TestFromDomainError_KeepsAppError(t *testing.T) {
	original := InvalidArgument("bad flag")
	assert.Same(t, original, FromDomainError(fmt.Errorf("wrap: %w", original)))
	assert.True(t, Is(fmt.Errorf("wrap: %w", original), CodeInvalidArgument))
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "INTERNAL_ERROR: oops", Internal("oops").Error())
	assert.Equal(t, "INTERNAL_ERROR: internal error (boom)", Wrap(fmt.Errorf("boom"), CodeInternal, "internal error").Error())
}
