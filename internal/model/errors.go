package model

import (
	"errors"
	"fmt"
)

// ErrStructural matches every *StructuralError via errors.Is.
var ErrStructural = errors.New("structural error")

// StructuralErrorKind classifies fatal model errors.
type StructuralErrorKind string

const (
	KindMissingRoot      StructuralErrorKind = "missing_root"
	KindDuplicateRoot    StructuralErrorKind = "duplicate_root"
	KindCyclicComposite  StructuralErrorKind = "cyclic_composite"
	KindMaxDepthExceeded StructuralErrorKind = "max_depth_exceeded"
	KindInvalidList      StructuralErrorKind = "invalid_list"
)

// StructuralError aborts model building.
type StructuralError struct {
	Kind     StructuralErrorKind
	Resource string // offending resource IRI, if any
	Path     string // document path at which the error was detected
	Detail   string
	Err      error
}

func (e *StructuralError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	if e.Path != "" {
		msg += " at " + e.Path
	}

	if e.Resource != "" {
		msg += " (" + e.Resource + ")"
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is reports ErrStructural as a match.
func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}
