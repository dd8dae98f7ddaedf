// Package messaging defines the events emitted by the catalog and the publishers that deliver them.
package messaging

import (
	"context"
)

const (
	ProductStoresAddedSubject    = "catalog.product.stores.added"
	ProductStoresReplacedSubject = "catalog.product.stores.replaced"
	ProductStoresRemovedSubject  = "catalog.product.stores.removed"
)

// StreamSubjects is the subject filter of the JetStream stream holding catalog events.
const StreamSubjects = "catalog.>"

type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoopPublisher discards every event. It is used when messaging is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
