package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxPromptLength bounds free-text style prompts sent to the style generator.
const maxPromptLength = 2000

// ValidatePrompt checks a user style prompt before it is forwarded upstream.
// Empty prompts are valid and mean "surprise me".
func ValidatePrompt(prompt string) error {
	if len(prompt) > maxPromptLength {
		return New(ErrCodeInvalidInput, "prompt too long (max %d characters)", maxPromptLength)
	}
	for _, r := range prompt {
		if r == '\x00' || (unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t') {
			return New(ErrCodeInvalidInput, "prompt contains invalid control characters")
		}
	}
	return nil
}

// artifactNameRegex matches generated artifact file names.
var artifactNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*\.(png|pdf|jpg|json)$`)

// ValidateArtifactName validates a generated artifact file name for safety.
// It ensures the name is a simple basename without path components.
func ValidateArtifactName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "artifact name cannot be empty")
	}
	if len(name) > 255 {
		return New(ErrCodeInvalidPath, "artifact name too long (max 255 characters)")
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "artifact name cannot contain path separators")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidPath, "artifact name cannot contain path traversal sequences (..)")
	}
	if !artifactNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPath, "invalid artifact name: %q", name)
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
