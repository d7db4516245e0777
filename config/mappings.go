// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"fmt"
	"strings"
)

// DefaultMappings are the gesture mappings of a fresh installation.
const DefaultMappings = "UR=newTab,DR=closeTab,L=back,R=forward,DU=upperLevel," +
	"U=scrollUp,D=scrollDown,RU=scrollToTop,RD=scrollToBottom," +
	"WheelU=previousTab,WheelD=nextTab"

// Mappings maps gesture codes to command names.
type Mappings map[string]string

// ParseMappings parses comma separated code=name pairs. Later pairs
// replace earlier ones with the same code.
func ParseMappings(s string) (Mappings, error) {
	m := make(Mappings)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, name, ok := strings.Cut(pair, "=")
		code, name = strings.TrimSpace(code), strings.TrimSpace(name)
		if !ok || code == "" || name == "" {
			return nil, fmt.Errorf("malformed gesture mapping %q", pair)
		}
		m[code] = name
	}
	return m, nil
}

// Label returns the status text for code: the code followed by the
// name of its command, if mapped.
func (m Mappings) Label(code string) string {
	if name, ok := m[code]; ok {
		return code + ": " + name
	}
	return code
}
