package document

import (
	"fmt"
	"strings"

	"github.com/barracuda-cloudgen-access/marketplace-template/logger"
)

// Strictness decides what happens when an anchored edit finds no anchor.
type Strictness int

const (
	// Silent skips the edit without a word.
	Silent Strictness = iota
	// Warn skips the edit and logs a warning.
	Warn
	// Strict fails with a MissingAnchorError.
	Strict
)

var strictnessNames = map[Strictness]string{
	Silent: "silent",
	Warn:   "warn",
	Strict: "error",
}

func ParseStrictness(s string) (Strictness, error) {
	for k, v := range strictnessNames {
		if strings.EqualFold(s, v) {
			return k, nil
		}
	}
	return Warn, fmt.Errorf("unknown strictness %q: expected one of silent, warn, error", s)
}

func (s Strictness) String() string {
	if n, ok := strictnessNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Strictness(%d)", int(s))
}

// Check applies the policy to the outcome of an anchored edit.
func (s Strictness) Check(found bool, anchor, where string) error {
	if found {
		return nil
	}
	err := &MissingAnchorError{Anchor: anchor, Where: where}
	switch s {
	case Strict:
		return err
	case Warn:
		logger.Warnf("%v: edit skipped", err)
	}
	return nil
}
