package text

import (
	"fmt"

	"golang.org/x/text/language"
)

// canonicalLanguage validates a BCP 47 tag and returns its canonical form.
// The empty string means "unspecified" and is returned unchanged.
func canonicalLanguage(tag string) (string, error) {
	if tag == "" {
		return "", nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, tag, err)
	}
	return t.String(), nil
}
