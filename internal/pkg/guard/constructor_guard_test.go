package guard_test

import (
	"errors"
	"testing"

	"brewery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	customError := errors.New("test object not constructed")
	require.NoError(t, g.Validate(customError))
	require.NoError(t, g.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_fails_with_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		customError := errors.New("command must be created via its constructor")

		err := g.Validate(customError)
		assert.Equal(t, customError, err)
	})

	t.Run("zero_value_guard_fails_with_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("should not surface")))
	})
}
