package ws

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_QueuesJSON(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	hub.Publish(map[string]interface{}{"type": "stock_update", "stock": 95})

	require.Len(t, hub.Broadcast, 1)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(<-hub.Broadcast, &got))
	assert.Equal(t, "stock_update", got["type"])
	assert.Equal(t, float64(95), got["stock"])
}

func TestPublish_DropsWhenQueueIsFull(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	for i := 0; i < broadcastBuffer+10; i++ {
		hub.Publish(i)
	}

	assert.Len(t, hub.Broadcast, broadcastBuffer)
}

func TestPublish_UnencodablePayloadIsSkipped(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	hub.Publish(make(chan int))

	assert.Empty(t, hub.Broadcast)
}

func TestRun_StopsAndDrains(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	done := make(chan struct{})
	go func() {
		hub.Run()
		close(done)
	}()

	hub.Publish("hello")
	hub.Stop()
	<-done

	assert.Zero(t, hub.Count())
}
