package session

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGuestTimer_FiresExactlyOnce(t *testing.T) {
	timer := NewGuestTimer()

	var fires int32
	timer.Start(10*time.Millisecond, func() { atomic.AddInt32(&fires, 1) })

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fires))
}

func TestGuestTimer_CancelPreventsFire(t *testing.T) {
	timer := NewGuestTimer()

	var fires int32
	timer.Start(20*time.Millisecond, func() { atomic.AddInt32(&fires, 1) })
	timer.Cancel()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fires), "cancelled timer must never fire")
}

func TestGuestTimer_RestartSupersedesPreviousArming(t *testing.T) {
	timer := NewGuestTimer()

	var first, second int32
	timer.Start(15*time.Millisecond, func() { atomic.AddInt32(&first, 1) })
	timer.Start(30*time.Millisecond, func() { atomic.AddInt32(&second, 1) })

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&first), "superseded arming must not fire")
	assert.Equal(t, int32(1), atomic.LoadInt32(&second))
}

func TestGuestTimer_CancelIsIdempotent(t *testing.T) {
	timer := NewGuestTimer()
	timer.Cancel()
	timer.Cancel()

	var fires int32
	timer.Start(10*time.Millisecond, func() { atomic.AddInt32(&fires, 1) })
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fires), "timer must be usable after cancellations")
}
