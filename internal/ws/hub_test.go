package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishQueuesEnvelope(t *testing.T) {
	h := NewHub()

	h.Publish("sale_created", map[string]interface{}{"sale_id": 3})

	require.Len(t, h.Broadcast, 1)
	var ev struct {
		Type string                 `json:"type"`
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(<-h.Broadcast, &ev))
	assert.Equal(t, "sale_created", ev.Type)
	assert.EqualValues(t, 3, ev.Data["sale_id"])
}

func TestPublishDropsWhenQueueFull(t *testing.T) {
	h := NewHub()
	for i := 0; i < cap(h.Broadcast)+5; i++ {
		h.Publish("stock_update", i)
	}
	assert.Len(t, h.Broadcast, cap(h.Broadcast))
	assert.Equal(t, 0, h.ClientCount())
}
