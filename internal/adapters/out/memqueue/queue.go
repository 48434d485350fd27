// Package memqueue provides an in-memory message queue with lease-based
// delivery. Messages handed to a consumer become invisible for a visibility
// timeout; if the consumer does not settle the delivery in time, the message
// reappears and is delivered again. This reproduces the at-least-once
// contract of a durable broker inside a single process, which makes it the
// default transport for local runs and tests.
package memqueue

import (
	"context"
	"sync"
	"time"

	"ordertrack/internal/core/ports"
)

// DefaultVisibilityTimeout is the lease duration used when none is given.
const DefaultVisibilityTimeout = 30 * time.Second

// wakeInterval bounds how long Receive sleeps before rechecking leases.
const wakeInterval = 25 * time.Millisecond

// DeadLettered is a message removed from the queue as unprocessable,
// together with the reason. Kept for inspection.
type DeadLettered struct {
	Message ports.Message
	Reason  string
}

type entry struct {
	msg         ports.Message
	receipt     uint64
	leasedUntil time.Time
}

// Queue is an in-memory implementation of ports.MessageQueue.
// Safe for concurrent use.
type Queue struct {
	mu                sync.Mutex
	entries           []*entry
	deadLetters       []DeadLettered
	nextReceipt       uint64
	visibilityTimeout time.Duration
	wake              chan struct{}
}

// NewQueue creates an empty queue. A non-positive visibilityTimeout falls
// back to DefaultVisibilityTimeout.
func NewQueue(visibilityTimeout time.Duration) *Queue {
	if visibilityTimeout <= 0 {
		visibilityTimeout = DefaultVisibilityTimeout
	}
	return &Queue{
		visibilityTimeout: visibilityTimeout,
		wake:              make(chan struct{}, 1),
	}
}

// Publish enqueues a message for delivery.
func (q *Queue) Publish(_ context.Context, msg ports.Message) error {
	q.mu.Lock()
	q.nextReceipt++
	q.entries = append(q.entries, &entry{
		msg:     msg,
		receipt: q.nextReceipt,
	})
	q.mu.Unlock()

	q.poke()
	return nil
}

// Receive blocks until a message is available or the context is done.
// The returned delivery is leased for the visibility timeout; an unsettled
// delivery reappears after the lease expires.
func (q *Queue) Receive(ctx context.Context) (*ports.Delivery, error) {
	for {
		if delivery := q.tryLease(); delivery != nil {
			return delivery, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-q.wake:
		case <-time.After(wakeInterval):
		}
	}
}

// Ack settles a delivery, removing the message from the queue.
// Acknowledging a delivery whose lease already expired is a no-op when the
// message was settled by someone else in the meantime.
func (q *Queue) Ack(_ context.Context, delivery *ports.Delivery) error {
	receipt, ok := delivery.Receipt.(uint64)
	if !ok {
		return errInvalidReceipt
	}

	q.mu.Lock()
	q.remove(receipt)
	q.mu.Unlock()

	q.poke()
	return nil
}

// DeadLetter removes a delivery from the queue permanently and keeps it with
// the given reason. Dead-lettered messages are never redelivered.
func (q *Queue) DeadLetter(_ context.Context, delivery *ports.Delivery, reason string) error {
	receipt, ok := delivery.Receipt.(uint64)
	if !ok {
		return errInvalidReceipt
	}

	q.mu.Lock()
	if q.remove(receipt) {
		q.deadLetters = append(q.deadLetters, DeadLettered{
			Message: delivery.Message,
			Reason:  reason,
		})
	}
	q.mu.Unlock()

	q.poke()
	return nil
}

// Depth returns the number of messages currently in the queue,
// leased deliveries included.
func (q *Queue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// DeadLetters returns a copy of all dead-lettered messages.
func (q *Queue) DeadLetters() []DeadLettered {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]DeadLettered(nil), q.deadLetters...)
}

// tryLease hands out the first message that is not currently leased.
func (q *Queue) tryLease() *ports.Delivery {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := time.Now()
	for _, e := range q.entries {
		if e.leasedUntil.After(now) {
			continue
		}
		e.leasedUntil = now.Add(q.visibilityTimeout)
		return &ports.Delivery{
			Message: e.msg,
			Receipt: e.receipt,
		}
	}

	return nil
}

// remove deletes the entry with the given receipt. Caller holds q.mu.
func (q *Queue) remove(receipt uint64) bool {
	for i, e := range q.entries {
		if e.receipt == receipt {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (q *Queue) poke() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}
