package observer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_DispatchesByKindInOrder(t *testing.T) {
	bus := New[string, int]()

	var got []string
	bus.Subscribe("login", func(v int) { got = append(got, "login-1") })
	bus.SubscribeAll(func(v int) { got = append(got, "all") })
	bus.Subscribe("logout", func(v int) { got = append(got, "logout") })
	bus.Subscribe("login", func(v int) { got = append(got, "login-2") })

	bus.Emit("login", 1)

	assert.Equal(t, []string{"login-1", "all", "login-2"}, got)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := New[string, int]()

	calls := 0
	unsubscribe := bus.Subscribe("login", func(int) { calls++ })

	bus.Emit("login", 1)
	unsubscribe()
	unsubscribe()
	bus.Emit("login", 2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Len())
}

func TestBus_HandlerMayUnsubscribeDuringEmit(t *testing.T) {
	bus := New[string, int]()

	calls := 0
	var unsubscribe func()
	unsubscribe = bus.Subscribe("tick", func(int) {
		calls++
		unsubscribe()
	})

	bus.Emit("tick", 1)
	bus.Emit("tick", 2)

	assert.Equal(t, 1, calls)
}

func TestBus_Clear(t *testing.T) {
	bus := New[string, int]()
	bus.SubscribeAll(func(int) { t.Fatal("cleared handler called") })

	bus.Clear()
	bus.Emit("x", 1)

	assert.Equal(t, 0, bus.Len())
}
