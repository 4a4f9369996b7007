// Package safe_close coordinates the shutdown of multiple background
// services: any of them can trigger the close signal, and WaitClosed blocks
// until every attached routine has finished.
package safe_close

import (
	"sync"
)

type SafeClose struct {
	mu          sync.Mutex
	closeSignal chan struct{}
	closed      bool
	err         error
	wg          sync.WaitGroup
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach starts f in its own goroutine. f must call done when it has fully
// stopped and must return promptly once closeSignal is closed.
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	go f(s.wg.Done, s.closeSignal)
}

// SendCloseSignal triggers shutdown. The first non-nil error wins; repeated
// calls are no-ops.
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.closeSignal)
}

// CloseSignal exposes the close channel for select loops.
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closeSignal
}

// WaitClosed blocks until all attached routines called done, then returns
// the error the shutdown was triggered with, if any.
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
