package document

import (
	"fmt"
)

// PathError reports a structural path that did not resolve.
type PathError struct {
	Path    Path
	Segment int
	Reason  string
}

func (e *PathError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("invalid path: %s", e.Reason)
	}
	return fmt.Sprintf("path %s: %s at %q", e.Path, e.Reason, e.Path[:e.Segment+1].String())
}

// MissingAnchorError reports an insert or replace whose anchor was not found.
type MissingAnchorError struct {
	Anchor string
	Where  string
}

func (e *MissingAnchorError) Error() string {
	return fmt.Sprintf("anchor %q not found in %s", e.Anchor, e.Where)
}
