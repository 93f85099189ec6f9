package shared

import "strings"

// RequireText trims whitespace from s and returns emptyErr if nothing is left.
// This centralizes the common pattern of:
//
//	name := strings.TrimSpace(in.Name)
//	if name == "" {
//	    return nil, domain.ErrEmptyName
//	}
func RequireText(s string, emptyErr error) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", emptyErr
	}
	return trimmed, nil
}
