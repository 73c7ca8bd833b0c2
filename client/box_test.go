package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBoxWaitSeesNewValue(t *testing.T) {
	s0 := "old"
	s1 := "new"
	box := NewBox()
	box.Put(&s0)
	go func() {
		time.Sleep(10 * time.Millisecond)
		box.Put(&s1)
	}()
	v := box.Wait(&s0)
	assert.Same(t, &s1, v)
}

func TestBoxListen(t *testing.T) {
	box := NewBox()
	ch := box.Listen(nil)
	box.Put("x")
	select {
	case v := <-ch:
		assert.Equal(t, "x", v)
	case <-time.After(time.Second):
		t.Fatal("no value")
	}
}
