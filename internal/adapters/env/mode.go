package env

import (
	"os"
)

// IsDev reports whether DOCS_DEV asks for the development server mode.
func IsDev() bool {
	switch os.Getenv("DOCS_DEV") {
	case "1", "true", "yes":
		return true
	}
	return false
}
