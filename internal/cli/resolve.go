package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveProgramID accepts a full UUID, a unique UUID prefix, or an
// exact program name (case-insensitive) and returns the full ID.
func resolveProgramID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("program ID is required")
	}

	programs, err := app.Programs.List(ctx, app.Config.OrganizationID)
	if err != nil {
		return "", err
	}

	// 1. Exact UUID match
	for _, p := range programs {
		if p.ID == input {
			return p.ID, nil
		}
	}

	// 2. Exact name match (case-insensitive)
	for _, p := range programs {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, p := range programs {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("program not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("program ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
