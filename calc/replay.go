package calc

import (
	"fmt"
	"strings"
)

// Replay presses a whitespace separated key sequence such as "12 + 3.5 =".
// Tokens that are not key labels are split into digits and decimal points.
func (e *Engine) Replay(input string) error {
	for _, token := range strings.Fields(input) {
		if e.Press(token) {
			continue
		}
		for _, r := range token {
			if r != '.' && (r < '0' || r > '9') {
				return fmt.Errorf("unknown key %q in %q", token, input)
			}
		}
		for _, r := range token {
			e.Press(string(r))
		}
	}
	return nil
}
