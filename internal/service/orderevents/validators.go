package orderevents

import "strings"

func isPresent(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func isValidStatus(status string) bool {
	return strings.TrimSpace(status) != ""
}
