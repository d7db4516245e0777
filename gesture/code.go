// SPDX-License-Identifier: Unlicense OR MIT

package gesture

// Code accumulates direction symbols into a gesture code. A symbol
// equal to the last one appended is absorbed, so jitter along one
// direction never repeats it.
type Code struct {
	s    string
	last string
	n    int
}

// Append adds sym unless it repeats the last symbol or is empty. It
// reports whether the code changed.
func (c *Code) Append(sym string) bool {
	if sym == "" || sym == c.last {
		return false
	}
	c.s += sym
	c.last = sym
	c.n++
	return true
}

// Len returns the number of symbols in the code.
func (c *Code) Len() int {
	return c.n
}

// Reset empties the code.
func (c *Code) Reset() {
	*c = Code{}
}

func (c *Code) String() string {
	return c.s
}
