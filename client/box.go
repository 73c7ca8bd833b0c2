package client

import (
	"sync"
)

// Box holds one value and lets readers wait for it to change. The prompt
// loop parks on it until the reader goroutine drops in a new turn offer.
type Box struct {
	l *sync.Mutex
	c *sync.Cond
	v interface{}
}

func NewBox() *Box {
	l := &sync.Mutex{}
	c := sync.NewCond(l)
	return &Box{l, c, nil}
}

func (b *Box) Put(v interface{}) {
	b.l.Lock()
	defer b.l.Unlock()
	b.v = v
	b.c.Broadcast()
}

func (b *Box) Get() interface{} {
	b.l.Lock()
	defer b.l.Unlock()
	return b.v
}

// Wait blocks until the value is no longer seen, then returns it.
func (b *Box) Wait(seen interface{}) interface{} {
	b.l.Lock()
	defer b.l.Unlock()
	for b.v == seen {
		b.c.Wait()
	}
	return b.v
}

// Listen is Wait as a channel, for use in a select.
func (b *Box) Listen(seen interface{}) <-chan interface{} {
	ch := make(chan interface{}, 1)
	go func() {
		ch <- b.Wait(seen)
		close(ch)
	}()
	return ch
}
