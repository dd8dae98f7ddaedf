// Package events contains the payloads published on catalog subjects.
package events

import (
	"encoding/json"
	"time"

	"github.com/abgdnv/gocatalog/pkg/messaging"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/propagation"
)

// Association change actions.
const (
	ActionAdded    = "added"
	ActionReplaced = "replaced"
	ActionRemoved  = "removed"
)

// ProductStoresChangedEvent reports the store collection of a product after a persisted change.
type ProductStoresChangedEvent struct {
	Carrier    propagation.MapCarrier `json:"carrier,omitempty"`
	ProductID  uuid.UUID              `json:"product_id"`
	StoreIDs   []uuid.UUID            `json:"store_ids"`
	Action     string                 `json:"action"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e ProductStoresChangedEvent) Subject() string {
	switch e.Action {
	case ActionAdded:
		return messaging.ProductStoresAddedSubject
	case ActionRemoved:
		return messaging.ProductStoresRemovedSubject
	default:
		return messaging.ProductStoresReplacedSubject
	}
}

func (e ProductStoresChangedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}
