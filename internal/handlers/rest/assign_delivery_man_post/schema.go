package assign_delivery_man_post

import (
	"regexp"

	"backoffice/internal/pkg/validate"
)

// Schema is the request-body gate for POST /assign-delivery-man. Message
// texts are part of the dashboard contract.
func Schema() *validate.Schema {
	return validate.NewSchema(
		validate.Field{
			Name:     "order_id",
			Kind:     validate.String,
			Required: true,
			Messages: validate.Messages{
				Required: "Order ID is required",
			},
		},
		validate.Field{
			Name:     "name",
			Kind:     validate.String,
			Required: true,
			MinLen:   2,
			Messages: validate.Messages{
				Required: "Delivery man name is required",
				MinLen:   "Name must be at least 2 characters long",
			},
		},
		validate.Field{
			Name:     "phone_number",
			Kind:     validate.String,
			Required: true,
			Pattern:  regexp.MustCompile(`^[+]?[\d\s\-()]+$`),
			Messages: validate.Messages{
				Required: "Phone number is required",
				Pattern:  "Please enter a valid phone number",
			},
		},
	)
}
