package emit

import (
	"errors"
	"fmt"

	"github.com/okra-platform/argsgen/internal/schema"
)

var (
	// ErrClassification matches every ClassificationError
	ErrClassification = errors.New("argument cannot be classified")

	// ErrUnmappedType matches every UnmappedTypeError
	ErrUnmappedType = errors.New("type has no mapping")
)

// ClassificationError reports an argument that fits no Shape
type ClassificationError struct {
	Component string
	Argument  string
	Reason    string
}

// Error implements the error interface
func (e *ClassificationError) Error() string {
	return fmt.Sprintf("component %s: argument %s: %s: %s", e.Component, e.Argument, ErrClassification, e.Reason)
}

// Is reports whether target is ErrClassification
func (e *ClassificationError) Is(target error) bool {
	return target == ErrClassification
}

// UnmappedTypeError reports a type or default value the dialect cannot render
type UnmappedTypeError struct {
	Component string
	Argument  string
	Type      schema.Type
	Reason    string
}

// Error implements the error interface
func (e *UnmappedTypeError) Error() string {
	msg := fmt.Sprintf("component %s: argument %s: %s: %s", e.Component, e.Argument, ErrUnmappedType, e.Type)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// Is reports whether target is ErrUnmappedType
func (e *UnmappedTypeError) Is(target error) bool {
	return target == ErrUnmappedType
}
