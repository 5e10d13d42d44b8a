package naming

import "sync"

// OutputClaims tracks which input owns each sanitized output path. Two
// inputs such as `a"b.mp4` and `ab.mp4` sanitize to the same output and
// would overwrite each other; Claim reports the earlier owner so the caller
// can refuse the later one. All methods are goroutine-safe.
type OutputClaims struct {
	mu     sync.Mutex
	owners map[string]string // sanitized output path → input path
}

// NewOutputClaims creates an empty claim registry.
func NewOutputClaims() *OutputClaims {
	return &OutputClaims{owners: make(map[string]string)}
}

// Claim records input as the owner of output (after sanitizing it). It
// returns ("", true) when the path was free or already owned by input, and
// (owner, false) when a different input claimed it first. The first owner
// keeps the claim.
func (c *OutputClaims) Claim(input, output string) (string, bool) {
	key := SanitizePath(output)

	c.mu.Lock()
	defer c.mu.Unlock()

	owner, exists := c.owners[key]
	if !exists || owner == input {
		c.owners[key] = input
		return "", true
	}
	return owner, false
}
