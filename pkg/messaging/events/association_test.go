package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/abgdnv/gocatalog/pkg/messaging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductStoresChangedEvent_Subject(t *testing.T) {
	testCases := []struct {
		action   string
		expected string
	}{
		{ActionAdded, messaging.ProductStoresAddedSubject},
		{ActionReplaced, messaging.ProductStoresReplacedSubject},
		{ActionRemoved, messaging.ProductStoresRemovedSubject},
	}
	for _, tc := range testCases {
		t.Run(tc.action, func(t *testing.T) {
			assert.Equal(t, tc.expected, ProductStoresChangedEvent{Action: tc.action}.Subject())
		})
	}
}

func TestProductStoresChangedEvent_Payload(t *testing.T) {
	// given
	productID, storeID := uuid.New(), uuid.New()
	event := ProductStoresChangedEvent{
		Carrier:    map[string]string{"traceparent": "00-abc-def-01"},
		ProductID:  productID,
		StoreIDs:   []uuid.UUID{storeID},
		Action:     ActionAdded,
		OccurredAt: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}

	// when
	data, err := event.Payload()

	// then
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, productID.String(), raw["product_id"])
	assert.Equal(t, []any{storeID.String()}, raw["store_ids"])
	assert.Equal(t, "added", raw["action"])
	assert.Equal(t, "2025-07-01T12:00:00Z", raw["occurred_at"])
	assert.Equal(t, map[string]any{"traceparent": "00-abc-def-01"}, raw["carrier"])
}
