package audio

import (
	"fmt"
	"strings"
)

// ValidateText validates that the input is worth sending to a TTS engine
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}
	return nil
}
