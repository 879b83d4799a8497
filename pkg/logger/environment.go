package logger

import "strings"

// Environment names the deployment a logger runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ParseEnvironment maps APP_ENV values, including the short aliases
// "dev", "stage" and "prod", onto an Environment. Unknown values fall back to
// Development.
func ParseEnvironment(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}
