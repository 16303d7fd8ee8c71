package money

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Order(t *testing.T) {
	var n Notifier
	var calls []string
	n.Subscribe(func() { calls = append(calls, "a") })
	b := n.Subscribe(func() { calls = append(calls, "b") })
	n.Subscribe(func() { calls = append(calls, "c") })

	n.Notify()
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	require.True(t, n.Unsubscribe(b))
	assert.False(t, n.Unsubscribe(b))
	assert.Equal(t, 2, n.Len())

	calls = nil
	n.Notify()
	assert.Equal(t, []string{"a", "c"}, calls)
}

func TestNotifier_UniqueHandles(t *testing.T) {
	var n Notifier
	a := n.Subscribe(func() {})
	require.True(t, n.Unsubscribe(a))
	b := n.Subscribe(func() {})
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, Subscription(0), a)
	assert.False(t, n.Unsubscribe(0))
}

func TestNotifier_Reentrant(t *testing.T) {
	var n Notifier
	count := 0
	var self Subscription
	self = n.Subscribe(func() {
		count++
		n.Unsubscribe(self)
		n.Subscribe(func() { count += 10 })
	})

	n.Notify()
	assert.Equal(t, 1, count, "callbacks added during a notification wait for the next one")

	n.Notify()
	assert.Equal(t, 11, count)
}

func TestNotifier_NilCallback(t *testing.T) {
	var n Notifier
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}()
	n.Subscribe(nil)
}
