package services_test

import (
	"testing"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/order"
	"workload/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignedOrder(t *testing.T, moduleID kernel.UUID, load string) *order.Order {
	t.Helper()
	o := newOrder(t, 60, 10)
	require.NoError(t, o.AssignModule(moduleID))
	o.ApplyLoad(kernel.MustLoadDays(load))
	return o
}

func TestModuleLoadAggregator_OnOrderLoadChanged(t *testing.T) {
	agg := services.NewModuleLoadAggregator()

	t.Run("should sum loads of orders added to a module", func(t *testing.T) {
		m := newModule(t, 2)

		assert.True(t, agg.OnOrderLoadChanged(m, kernel.ZeroLoadDays(), kernel.MustLoadDays("1.00")))
		assert.True(t, agg.OnOrderLoadChanged(m, kernel.ZeroLoadDays(), kernel.MustLoadDays("2.50")))

		assert.Equal(t, "3.50", m.AggregateLoadDays().String())
	})

	t.Run("should apply the difference of an edited order", func(t *testing.T) {
		m := newModule(t, 2)
		m.AddLoad(kernel.MustLoadDays("3.50"))

		agg.OnOrderLoadChanged(m, kernel.MustLoadDays("2.50"), kernel.MustLoadDays("1.25"))

		assert.Equal(t, "2.25", m.AggregateLoadDays().String())
	})

	t.Run("should report unchanged loads", func(t *testing.T) {
		m := newModule(t, 2)

		assert.False(t, agg.OnOrderLoadChanged(m, kernel.MustLoadDays("1.00"), kernel.MustLoadDays("1.00")))
	})

	t.Run("should ignore orders without module", func(t *testing.T) {
		assert.False(t, agg.OnOrderLoadChanged(nil, kernel.ZeroLoadDays(), kernel.MustLoadDays("1.00")))
	})
}

func TestModuleLoadAggregator_OnOrderReassigned(t *testing.T) {
	agg := services.NewModuleLoadAggregator()

	t.Run("should move load between modules", func(t *testing.T) {
		from, to := newModule(t, 2), newModule(t, 4)
		from.AddLoad(kernel.MustLoadDays("1.50"))

		agg.OnOrderReassigned(from, to, kernel.MustLoadDays("1.00"), kernel.MustLoadDays("0.50"))

		assert.Equal(t, "0.50", from.AggregateLoadDays().String())
		assert.Equal(t, "0.50", to.AggregateLoadDays().String())
	})

	t.Run("should tolerate a missing side", func(t *testing.T) {
		to := newModule(t, 2)
		agg.OnOrderReassigned(nil, to, kernel.ZeroLoadDays(), kernel.MustLoadDays("0.75"))
		assert.Equal(t, "0.75", to.AggregateLoadDays().String())

		agg.OnOrderReassigned(to, nil, kernel.MustLoadDays("0.75"), kernel.ZeroLoadDays())
		assert.True(t, to.AggregateLoadDays().IsZero())

		assert.NotPanics(t, func() {
			agg.OnOrderReassigned(nil, nil, kernel.MustLoadDays("1.00"), kernel.MustLoadDays("1.00"))
		})
	})

	t.Run("should adjust once when the module does not change", func(t *testing.T) {
		m := newModule(t, 2)
		m.AddLoad(kernel.MustLoadDays("1.00"))

		agg.OnOrderReassigned(m, m, kernel.MustLoadDays("1.00"), kernel.MustLoadDays("1.20"))

		assert.Equal(t, "1.20", m.AggregateLoadDays().String())
	})
}

func TestModuleLoadAggregator_OnOrderRemoved(t *testing.T) {
	agg := services.NewModuleLoadAggregator()
	m := newModule(t, 2)
	o1 := assignedOrder(t, m.ID(), "1.00")
	o2 := assignedOrder(t, m.ID(), "2.50")
	agg.OnOrderLoadChanged(m, kernel.ZeroLoadDays(), o1.LoadDays())
	agg.OnOrderLoadChanged(m, kernel.ZeroLoadDays(), o2.LoadDays())

	agg.OnOrderRemoved(m, o1)

	assert.Equal(t, "2.50", m.AggregateLoadDays().String())
	assert.NotPanics(t, func() { agg.OnOrderRemoved(nil, o2) })
}

func TestModuleLoadAggregator_Recompute(t *testing.T) {
	agg := services.NewModuleLoadAggregator()

	t.Run("should repair drift", func(t *testing.T) {
		m := newModule(t, 2)
		m.AddLoad(kernel.MustLoadDays("9.99"))
		orders := []*order.Order{assignedOrder(t, m.ID(), "1.00"), assignedOrder(t, m.ID(), "2.50")}

		drifted, err := agg.Recompute(m, orders)

		require.NoError(t, err)
		assert.True(t, drifted)
		assert.Equal(t, "3.50", m.AggregateLoadDays().String())
	})

	t.Run("should report a consistent aggregate", func(t *testing.T) {
		m := newModule(t, 2)
		m.AddLoad(kernel.MustLoadDays("1.00"))

		drifted, err := agg.Recompute(m, []*order.Order{assignedOrder(t, m.ID(), "1.00")})

		require.NoError(t, err)
		assert.False(t, drifted)
	})

	t.Run("should zero an empty module", func(t *testing.T) {
		m := newModule(t, 2)
		m.AddLoad(kernel.MustLoadDays("1.00"))

		drifted, err := agg.Recompute(m, nil)

		require.NoError(t, err)
		assert.True(t, drifted)
		assert.True(t, m.AggregateLoadDays().IsZero())
	})

	t.Run("should reject foreign orders", func(t *testing.T) {
		m := newModule(t, 2)
		other := newModule(t, 2)

		_, err := agg.Recompute(m, []*order.Order{assignedOrder(t, other.ID(), "1.00")})

		assert.Error(t, err)
	})
}
