package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/plazo/internal/repository"
)

// resolveDeliveryID accepts a full delivery ID or a unique prefix of one.
func resolveDeliveryID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("delivery ID is required")
	}

	deliveries, err := app.Deliveries.List(ctx, repository.DeliveryFilter{})
	if err != nil {
		return "", err
	}

	for _, d := range deliveries {
		if d.ID == input {
			return d.ID, nil
		}
	}

	var matches []string
	for _, d := range deliveries {
		if strings.HasPrefix(d.ID, input) {
			matches = append(matches, d.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("delivery not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("delivery ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
