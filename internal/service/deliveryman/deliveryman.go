package deliveryman

import (
	"context"
	"fmt"

	"backoffice/internal/entities"
)

type Assignment struct {
	repository Repository
}

func New(repository Repository) *Assignment {
	return &Assignment{
		repository: repository,
	}
}

// AssignDeliveryMan upserts the assignment keyed by order id. Repeated calls
// with the same payload converge on the same stored state; a different
// assignee overwrites the previous one.
func (a *Assignment) AssignDeliveryMan(ctx context.Context, deliveryMan entities.DeliveryMan) error {
	if !isValidOrderID(deliveryMan.OrderID) {
		return ErrInvalidOrderID
	}
	if !isValidName(deliveryMan.Name) {
		return ErrInvalidName
	}
	if !isValidPhone(deliveryMan.Phone) {
		return ErrInvalidPhone
	}

	err := a.repository.Upsert(ctx, deliveryMan)
	if err != nil {
		return fmt.Errorf("assign delivery man: %w", err)
	}

	return nil
}
