package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	msg, err := NewMessage(TypeSceneChanged, map[string]string{"scene": "Flur"})
	require.NoError(t, err)
	assert.Equal(t, TypeSceneChanged, msg.Type)
	assert.JSONEq(t, `{"scene":"Flur"}`, string(msg.Data))

	_, err = NewMessage(TypeGameState, make(chan int))
	assert.Error(t, err)
}

func TestNewErrorMessage(t *testing.T) {
	msg := NewErrorMessage("nope")
	assert.Equal(t, TypeError, msg.Type)

	var body ErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &body))
	assert.Equal(t, "nope", body.Message)
}

func TestClient_SendAfterClose(t *testing.T) {
	c := &Client{ID: "c1", Send: make(chan []byte, 1)}

	c.SendMessage(NewErrorMessage("first"))
	c.SendMessage(NewErrorMessage("dropped, buffer full"))
	require.Len(t, c.Send, 1)

	c.Close()
	c.Close()
	assert.True(t, c.Closed())
	assert.NotPanics(t, func() { c.SendMessage(NewErrorMessage("late")) })
}

func TestHub_RegisterUnregister(t *testing.T) {
	h := NewHub()
	disconnected := make(chan string, 1)
	h.OnDisconnect = func(c *Client) { disconnected <- c.ID }

	received := make(chan string, 1)
	h.OnMessage = func(cm *ClientMessage) { received <- string(cm.Data) }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	c := &Client{ID: "c1", Send: make(chan []byte, 4)}
	h.Register <- c
	assert.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	h.Incoming <- &ClientMessage{Client: c, Data: []byte("hi")}
	assert.Equal(t, "hi", <-received)

	h.Unregister <- c
	assert.Equal(t, "c1", <-disconnected)
	assert.True(t, c.Closed())
	assert.Equal(t, 0, h.ClientCount())

	other := &Client{ID: "c2", Send: make(chan []byte, 4)}
	h.Register <- other
	cancel()
	<-done
	assert.True(t, other.Closed(), "shutdown closes remaining clients")
}

func TestHub_SendsAfterShutdownDoNotBlock(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h.Run(ctx)

	select {
	case <-h.Done():
	default:
		t.Fatal("hub not done after Run returned")
	}

	c := &Client{ID: "late", Hub: h, Send: make(chan []byte, 1)}
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		assert.False(t, h.AddClient(c))
		assert.False(t, h.Deliver(&ClientMessage{Client: c, Data: []byte("hi")}))
		h.RemoveClient(c)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("hub calls blocked after shutdown")
	}
	assert.True(t, c.Closed())
	assert.Equal(t, 0, h.ClientCount())
}
