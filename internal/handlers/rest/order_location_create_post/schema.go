package order_location_create_post

import "backoffice/internal/pkg/validate"

// Schema covers shape and type only; the conditional-required rules between
// deliveryOption, storeId and internalDeliveryType cannot be expressed
// declaratively and are checked by the service.
func Schema() *validate.Schema {
	return validate.NewSchema(
		validate.Field{
			Name:     "order_id",
			Kind:     validate.String,
			Required: true,
			Messages: validate.Messages{
				Required: "Order ID is required",
				Empty:    "Order ID cannot be empty",
			},
		},
		validate.Field{
			Name:     "deliveryOption",
			Kind:     validate.Number,
			Required: true,
			Messages: validate.Messages{
				Required: "Delivery option is required",
				Type:     "Delivery option must be a number",
			},
		},
		validate.Field{
			Name: "storeId",
			Kind: validate.Number,
			Messages: validate.Messages{
				Type: "Store ID must be a number",
			},
		},
		validate.Field{
			Name: "internalDeliveryType",
			Kind: validate.Number,
			Messages: validate.Messages{
				Type: "Internal delivery type must be a number",
			},
		},
	)
}
