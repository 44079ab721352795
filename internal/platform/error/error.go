package error

import (
	"errors"
	"fmt"
	"runtime"
)

type Code uint32

const (
	EmptyContainerErrorCode Code = iota
	ItemNotFoundErrorCode
	UnsupportedOperationErrorCode
	IndexOutOfRangeErrorCode
	UnknownCommandErrorCode
	InvalidArgumentErrorCode
	ContainerNotFoundErrorCode
	ContainerExistsErrorCode
)

// Sentinels for errors.Is. Matching is done on ErrorCode only.
var (
	ErrEmptyContainer       = &StackTraceError{Msg: "container is empty", ErrorCode: EmptyContainerErrorCode}
	ErrItemNotFound         = &StackTraceError{Msg: "item not found", ErrorCode: ItemNotFoundErrorCode}
	ErrUnsupportedOperation = &StackTraceError{Msg: "unsupported operation", ErrorCode: UnsupportedOperationErrorCode}
	ErrIndexOutOfRange      = &StackTraceError{Msg: "index out of range", ErrorCode: IndexOutOfRangeErrorCode}
	ErrUnknownCommand       = &StackTraceError{Msg: "unknown command", ErrorCode: UnknownCommandErrorCode}
	ErrInvalidArgument      = &StackTraceError{Msg: "invalid argument", ErrorCode: InvalidArgumentErrorCode}
	ErrContainerNotFound    = &StackTraceError{Msg: "container not found", ErrorCode: ContainerNotFoundErrorCode}
	ErrContainerExists      = &StackTraceError{Msg: "container already exists", ErrorCode: ContainerExistsErrorCode}
)

// StackTraceError wraps any error and captures a stack trace
type StackTraceError struct {
	Msg       string
	Stack     string
	ErrorCode Code
}

func NewStackTraceError(msg string, errorCode Code) *StackTraceError {
	buf := make([]byte, 1024*8)
	n := runtime.Stack(buf, false)
	return &StackTraceError{Msg: msg, Stack: string(buf[:n]), ErrorCode: errorCode}
}

func (e *StackTraceError) Error() string {
	if e.Stack == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s\nStack trace:\n%s", e.Msg, e.Stack)
}

func (e *StackTraceError) Is(target error) bool {
	t, ok := target.(*StackTraceError)
	return ok && t.ErrorCode == e.ErrorCode
}

// HasCode reports whether err, or anything it wraps, is a StackTraceError with the given code.
func HasCode(err error, code Code) bool {
	var st *StackTraceError
	return errors.As(err, &st) && st.ErrorCode == code
}

func NewEmptyContainerError(id string) *StackTraceError {
	return NewStackTraceError(fmt.Sprintf("container %s is empty", id), EmptyContainerErrorCode)
}

func NewItemNotFoundError(id string, val any) *StackTraceError {
	return NewStackTraceError(fmt.Sprintf("item %v not found in container %s", val, id), ItemNotFoundErrorCode)
}

func NewUnsupportedOperationError(op string, topology fmt.Stringer) *StackTraceError {
	return NewStackTraceError(fmt.Sprintf("%s is not supported by %s lists", op, topology), UnsupportedOperationErrorCode)
}

func NewIndexOutOfRangeError(id string, idx, count int) *StackTraceError {
	return NewStackTraceError(fmt.Sprintf("index %d out of range [0, %d) in container %s", idx, count, id), IndexOutOfRangeErrorCode)
}
