package refcode

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Prefix for every public loan reference code.
const Prefix = "GLN-"

var re = regexp.MustCompile(`^GLN-[A-Z0-9]{8}$`)

// New returns a fresh reference code: "GLN-" + the first 8 characters of a
// random UUID, uppercased. The code is the only public handle for a loan,
// so it must come from randomness, never from a sequence.
func New() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return Prefix + strings.ToUpper(raw[:8])
}

// Valid reports whether s looks like a reference code we could have issued.
func Valid(s string) bool { return re.MatchString(s) }
