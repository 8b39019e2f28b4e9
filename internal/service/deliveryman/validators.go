package deliveryman

import (
	"regexp"
	"strings"
)

// phonePattern is deliberately loose: an optional leading plus, then digits,
// spaces, dashes and parentheses. It mirrors what the dashboard form accepts.
var phonePattern = regexp.MustCompile(`^[+]?[\d\s\-()]+$`)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}

func isValidPhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}
