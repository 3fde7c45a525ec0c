package core

import "fmt"

// HashContent returns a short, stable fingerprint of content. It is used for
// ETags and cache-busting query strings, not for integrity.
func HashContent(content []byte) string {
	result := 0
	for _, b := range content {
		result = (result*31 + int(b)) % 1000000007
	}
	return fmt.Sprintf("%d", result)
}
