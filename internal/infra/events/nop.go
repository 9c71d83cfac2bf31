package events

import (
	"context"

	"gin-auction-service/internal/usecase/shared"
)

// NopBus is used when Redis is disabled. Publishing succeeds and does nothing.
type NopBus struct{}

func NewNopBus() NopBus {
	return NopBus{}
}

func (NopBus) Publish(context.Context, shared.Event) error {
	return nil
}
