package session

import (
	"sync"

	"github.com/dmitrijs2005/loginkeeper/internal/client/models"
)

type subscriber struct {
	ch chan models.LoginUser
}

// offer delivers u without blocking. A value the consumer has not picked up
// yet is replaced, so a slow consumer only sees the latest user.
// Called with writeMu held, which makes this the only sender.
func (s *subscriber) offer(u models.LoginUser) {
	select {
	case s.ch <- u:
		return
	default:
	}
	select {
	case <-s.ch:
	default:
	}
	s.ch <- u
}

// Subscribe returns a channel receiving every user set after the call,
// and a function that unsubscribes and closes the channel. The current
// value is not replayed; read it with LoginUser.
func (h *Holder) Subscribe() (<-chan models.LoginUser, func()) {
	s := &subscriber{ch: make(chan models.LoginUser, 1)}

	h.writeMu.Lock()
	h.subs[s] = struct{}{}
	h.writeMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.writeMu.Lock()
			delete(h.subs, s)
			close(s.ch)
			h.writeMu.Unlock()
		})
	}
	return s.ch, cancel
}
