package analysis

import (
	"errors"
	"fmt"

	"github.com/yTakatsukasa/verible/internal/lexer"
)

// ErrorKind categorizes the structural and capacity failures detected while
// extracting conditional blocks. All of them are fatal to the whole
// enumeration call; no variants are emitted.
type ErrorKind int

const (
	ErrKindCapacity ErrorKind = iota + 1
	ErrKindMissingName
	ErrKindDanglingAlternative
	ErrKindBranchAfterElse
	ErrKindUnmatchedEndif
	ErrKindMissingEndif
)

var errorKindNames = map[ErrorKind]string{
	ErrKindCapacity:            "CAPACITY",
	ErrKindMissingName:         "MISSING_MACRO_NAME",
	ErrKindDanglingAlternative: "DANGLING_ALTERNATIVE",
	ErrKindBranchAfterElse:     "BRANCH_AFTER_ELSE",
	ErrKindUnmatchedEndif:      "UNMATCHED_ENDIF",
	ErrKindMissingEndif:        "MISSING_ENDIF",
}

// String returns a string representation of the error kind.
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// AnalysisError is a structural or capacity failure with source position.
type AnalysisError struct {
	Kind    ErrorKind
	Pos     lexer.Position
	Message string
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Pos, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Is matches AnalysisErrors by kind, so callers can use
// errors.Is(err, &AnalysisError{Kind: ErrKindCapacity}).
func (e *AnalysisError) Is(target error) bool {
	t, ok := target.(*AnalysisError)
	return ok && t.Kind == e.Kind
}

// IsKind reports whether err is an AnalysisError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *AnalysisError
	return errors.As(err, &e) && e.Kind == kind
}
