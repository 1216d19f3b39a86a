package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/impala/internal/domain/observer"
)

func TestKeyboard_PressedState(t *testing.T) {
	k := NewKeyboard()
	var events []KeyEvent
	for _, et := range []observer.EventType{EventKeyDown, EventKeyUp} {
		_, err := k.Subscribe(et, func(e observer.Event) { events = append(events, e.(KeyEvent)) })
		require.NoError(t, err)
	}

	k.KeyDown(KeyA, 'a')
	k.KeyDown(KeyB, 'b')
	assert.Equal(t, 2, k.Pending())
	assert.False(t, k.IsPressed(KeyA))

	require.NoError(t, k.Update())
	assert.True(t, k.IsPressed(KeyA))
	assert.True(t, k.IsPressed(KeyB))

	k.KeyUp(KeyA, 'a')
	require.NoError(t, k.Update())
	assert.False(t, k.IsPressed(KeyA))
	assert.True(t, k.IsPressed(KeyB))

	require.Len(t, events, 3)
	assert.Equal(t, 'a', events[0].Char)
	assert.Equal(t, EventKeyUp, events[2].Type)
	assert.Equal(t, LocalSender, events[2].Sender)
}

func TestKeyboard_Remote(t *testing.T) {
	k := NewKeyboard()
	var connected, closed []string
	var down KeyEvent

	_, err := k.Subscribe(EventRemoteConnected, func(e observer.Event) {
		connected = append(connected, e.(RemoteEvent).Sender)
	})
	require.NoError(t, err)
	_, err = k.Subscribe(EventRemoteClosed, func(e observer.Event) {
		closed = append(closed, e.(RemoteEvent).Sender)
	})
	require.NoError(t, err)
	_, err = k.Subscribe(EventKeyDown, func(e observer.Event) { down = e.(KeyEvent) })
	require.NoError(t, err)

	k.RemoteConnected("phone-1")
	k.RemoteKeyDown("phone-1", KeyUnknown, '\n')
	require.NoError(t, k.Update())

	assert.Equal(t, []string{"phone-1"}, connected)
	assert.Equal(t, 1, k.Remotes())
	assert.Equal(t, KeyEnter, down.Key, "key is derived from the character")
	assert.Equal(t, "phone-1", down.Sender)
	assert.True(t, down.IsConfirm())
	assert.True(t, k.IsPressed(KeyEnter))

	k.RemoteKeyUp("phone-1", KeyUnknown, '\n')
	k.RemoteClosed("phone-1")
	require.NoError(t, k.Update())

	assert.Equal(t, []string{"phone-1"}, closed)
	assert.Equal(t, 0, k.Remotes())
	assert.False(t, k.IsPressed(KeyEnter))
}

func TestKeyboard_DropsMalformed(t *testing.T) {
	k := NewKeyboard()
	calls := 0
	_, err := k.Subscribe(EventKeyDown, func(observer.Event) { calls++ })
	require.NoError(t, err)

	k.Enqueue(KeyEvent{Type: "keyboard.bogus", Key: KeyA})
	k.Enqueue(observer.Signal(EventKeyDown))
	k.KeyDown(KeyC, 'c')

	require.NoError(t, k.Update())
	assert.Equal(t, 1, calls)
	assert.False(t, k.IsPressed(KeyA))
	assert.True(t, k.IsPressed(KeyC))
}

func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
	}{
		{'\n', KeyEnter},
		{'\r', KeyEnter},
		{' ', KeySpace},
		{'a', KeyA},
		{'Z', KeyZ},
		{'5', Key5},
		{'#', KeyUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFromRune(tt.r))
		})
	}
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "Enter", KeyEnter.String())
	assert.Equal(t, "Q", KeyQ.String())
	assert.Equal(t, "7", Key7.String())
	assert.Equal(t, "Unknown", Key(999).String())
}

func TestKeyboard_DriverPolledBeforeDrain(t *testing.T) {
	kb := NewKeyboard()
	polls := 0
	kb.AddDriver(DriverFunc(func() {
		polls++
		kb.KeyDown(KeySpace, ' ')
	}))

	var got []Key
	_, err := kb.Subscribe(EventKeyDown, func(e observer.Event) {
		got = append(got, e.(KeyEvent).Key)
	})
	require.NoError(t, err)

	require.NoError(t, kb.Update())
	assert.Equal(t, 1, polls)
	assert.Equal(t, []Key{KeySpace}, got, "polled events are dispatched in the same Update")
	assert.True(t, kb.IsPressed(KeySpace))
}

func TestKey_Rune(t *testing.T) {
	for k := KeyEnter; k <= Key9; k++ {
		if r := k.Rune(); r != 0 {
			assert.Equal(t, k, KeyFromRune(r), "round trip for %s", k)
		}
	}
	assert.Equal(t, rune(0), KeyUp.Rune())
	assert.Equal(t, rune(0), KeyEscape.Rune())
}
