// Package memory is the in-memory record-store backend. It is seeded from
// fixtures and used when no hosted record API is configured. Observable
// behavior matches the remote backend: assigned ids continue from the
// highest seeded one, and misses on update/delete surface not-found errors.
package memory

import (
	"math/rand"
	"time"
)

type Option func(*options)

type options struct {
	simulateLatency bool
}

// WithSimulatedLatency delays every operation by 200-400ms the way a remote
// round trip would. Off by default; tests never enable it.
func WithSimulatedLatency() Option {
	return func(o *options) {
		o.simulateLatency = true
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) delay() {
	if !o.simulateLatency {
		return
	}
	time.Sleep(200*time.Millisecond + time.Duration(rand.Intn(200))*time.Millisecond)
}
