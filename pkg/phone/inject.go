package phone

import (
	"errors"
	"time"

	"github.com/robotalks/phone.go/pkg/clock"
	"github.com/robotalks/phone.go/pkg/keypad/device"
)

var errNotInjectable = errors.New("matrix does not accept injected keys")

type pendingKey struct {
	key  rune
	hold time.Duration
}

// keyInjector presses queued keys one at a time, holding each for its
// duration followed by InjectGap.
type keyInjector struct {
	queue   []pendingKey
	pressed bool
	key     rune
	until   clock.Instant
}

func (k *keyInjector) enqueue(key rune, hold time.Duration) {
	k.queue = append(k.queue, pendingKey{key: key, hold: hold})
}

func (k *keyInjector) pending() int {
	n := len(k.queue)
	if k.pressed {
		n++
	}
	return n
}

func (k *keyInjector) run(inj device.Injector, now clock.Instant) error {
	if k.pressed {
		if now < k.until {
			return nil
		}
		k.pressed, k.until = false, now.Add(InjectGap)
		return inj.Release(k.key)
	}
	if len(k.queue) == 0 || now < k.until {
		return nil
	}
	next := k.queue[0]
	k.queue = k.queue[1:]
	k.pressed, k.key, k.until = true, next.key, now.Add(next.hold)
	return inj.Press(next.key)
}
