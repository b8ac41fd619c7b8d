package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/chinaid/pkg/validator"
)

func alwaysFails(field string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{
			Field:             field,
			Message:           "is wrong",
			TranslationKey:    "validation.wrong",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

func passes() validator.Rule {
	return validator.Rule{Check: func() bool { return true }}
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("no failures", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
		assert.NoError(t, validator.Apply(passes(), passes()))
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(alwaysFails("a"), passes(), alwaysFails("b"), alwaysFails("a"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.True(t, verrs.Has("a"))
		assert.True(t, verrs.Has("b"))
		assert.False(t, verrs.Has("c"))
		assert.Equal(t, []string{"is wrong", "is wrong"}, verrs.Get("a"))
		assert.Equal(t, "validation failed: a: is wrong; b: is wrong; a: is wrong", err.Error())
	})
}

func TestValidationErrors_Is(t *testing.T) {
	t.Parallel()

	err := validator.Apply(alwaysFails("a"))
	assert.ErrorIs(t, err, validator.ErrValidationFailed)

	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, validator.IsValidationError(wrapped))
	assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)

	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
	assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
}

func TestValidationErrors_Translate(t *testing.T) {
	t.Parallel()

	verrs := validator.ValidationErrors{
		{Field: "a", Message: "fallback a", TranslationKey: "known"},
		{Field: "b", Message: "fallback b", TranslationKey: "unknown"},
	}
	got := verrs.Translate(func(key string, _ map[string]any) string {
		if key == "known" {
			return "translated"
		}
		return ""
	})
	assert.Equal(t, []string{"translated", "fallback b"}, got)
}
