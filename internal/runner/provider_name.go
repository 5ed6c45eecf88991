package runner

import "strings"

const defaultProviderName = "boinc"

type namedProvider interface {
	Name() string
}

// providerName prefers the provider's own name and falls back to "boinc".
func providerName(p any) string {
	if named, ok := p.(namedProvider); ok {
		if name := strings.ToLower(strings.TrimSpace(named.Name())); name != "" {
			return name
		}
	}
	return defaultProviderName
}
