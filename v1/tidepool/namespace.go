package tidepool

import "strings"

// resolveNamespace determines the effective namespace for a namespace-scoped
// call. An explicit namespace always wins over the configured default. When
// neither is present the call cannot proceed, and the failure is a client
// configuration problem, not a validation one.
func resolveNamespace(explicit, fallback string) (string, error) {
	if ns := strings.TrimSpace(explicit); ns != "" {
		return ns, nil
	}
	if ns := strings.TrimSpace(fallback); ns != "" {
		return ns, nil
	}
	return "", configurationError("namespace required: no explicit namespace and no default configured")
}
