package util

import (
	"fmt"
	"strings"
)

// ToPaddedCode converts a dotted sub-criterion code to the six digit form
// stored in criteria_master, e.g. "1.1.3" becomes "010103".
func ToPaddedCode(dotted string) (string, error) {
	parts := strings.Split(dotted, ".")
	if len(parts) != 3 {
		return "", Validationf("invalid criteria code %q", dotted)
	}

	var b strings.Builder
	for _, p := range parts {
		if p == "" || len(p) > 2 {
			return "", Validationf("invalid criteria code %q", dotted)
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return "", Validationf("invalid criteria code %q", dotted)
			}
		}
		fmt.Fprintf(&b, "%02s", p)
	}
	return b.String(), nil
}
