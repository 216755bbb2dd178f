package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActor(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("principal actors carry an id", func(t *testing.T) {
		for _, a := range []kernel.Actor{kernel.DriverActor(id), kernel.ClientActor(id), kernel.AdminActor(id)} {
			got, ok := a.ID()
			require.True(t, ok)
			assert.True(t, got.IsEqual(id))
			require.NoError(t, a.Validate())
		}
	})

	t.Run("system actor has no id", func(t *testing.T) {
		_, ok := kernel.SystemActor().ID()
		assert.False(t, ok)
		assert.Equal(t, "system", kernel.SystemActor().String())
	})

	t.Run("zero value and missing id are invalid", func(t *testing.T) {
		require.Error(t, kernel.Actor{}.Validate())
		require.Error(t, kernel.DriverActor(kernel.UUID{}).Validate())
	})

	t.Run("restore round trips", func(t *testing.T) {
		a := kernel.AdminActor(id)

		restored, err := kernel.RestoreActor(a.Kind().String(), id.String())

		require.NoError(t, err)
		assert.Equal(t, a, restored)
		assert.True(t, restored.Is(kernel.ActorAdmin, id))

		system, err := kernel.RestoreActor("system", "")
		require.NoError(t, err)
		assert.Equal(t, kernel.ActorSystem, system.Kind())

		_, err = kernel.RestoreActor("robot", id.String())
		require.Error(t, err)
	})
}

func TestMatchActor(t *testing.T) {
	m := kernel.ActorMatcher[string]{
		Driver: func(kernel.UUID) string { return "d" },
		Client: func(kernel.UUID) string { return "c" },
		Admin:  func(kernel.UUID) string { return "a" },
		System: func() string { return "s" },
	}
	id := kernel.NewUUID()

	assert.Equal(t, "d", kernel.MatchActor(kernel.DriverActor(id), m))
	assert.Equal(t, "c", kernel.MatchActor(kernel.ClientActor(id), m))
	assert.Equal(t, "a", kernel.MatchActor(kernel.AdminActor(id), m))
	assert.Equal(t, "s", kernel.MatchActor(kernel.SystemActor(), m))
	assert.Panics(t, func() { kernel.MatchActor(kernel.Actor{}, m) })
}
