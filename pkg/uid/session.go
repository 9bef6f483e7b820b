package uid

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateSessionID identifies a console session spanning several rounds.
func GenerateSessionID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate session ID: %w", err)
	}
	return "s-" + id.String(), nil
}
