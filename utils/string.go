package utils

import "fmt"

// Format renders a possibly-nil pointer, empty string for nil.
func Format[T any](ptr *T) string {
	if ptr == nil {
		return ""
	}
	return fmt.Sprintf("%v", *ptr)
}
