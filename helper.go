package textlog

import (
	stderrs "errors"
	"fmt"
	"reflect"
	"strings"

	smerrors "github.com/Station-Manager/errors"
)

// messageText converts a log message to text. Strings are used as-is,
// errors and fmt.Stringers through their methods, anything else through
// fmt.Sprint. nil and nil pointers are rejected with ErrInvalidMessage.
func messageText(message any) (string, error) {
	switch m := message.(type) {
	case nil:
		return emptyString, ErrInvalidMessage
	case string:
		return m, nil
	}
	if isNilPointer(message) {
		return emptyString, fmt.Errorf("%w: nil %T", ErrInvalidMessage, message)
	}
	switch m := message.(type) {
	case error:
		return m.Error(), nil
	case fmt.Stringer:
		return m.String(), nil
	default:
		return fmt.Sprint(m), nil
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// isNilOutput reports whether o is nil or a typed nil pointer.
func isNilOutput(o Output) bool {
	return o == nil || isNilPointer(o)
}

// failureMessage is the text of the self-log written when out fails.
// cause is the formatter error, if any; otherwise the output's own last
// error is used when it keeps one. The operation that raised the root
// cause is appended when it is known.
func failureMessage(out Output, cause error) string {
	if cause == nil {
		if e, ok := out.(interface{ Err() error }); ok {
			cause = e.Err()
		}
	}
	msg := "Output " + out.String() + " failed and has been disabled"
	chain, rootOp := buildErrorChain(cause)
	if len(chain) > 0 {
		msg += ": " + joinChain(chain)
	}
	if rootOp != emptyString {
		msg += " (op " + rootOp + ")"
	}
	return msg
}

// buildErrorChain walks err's causes and returns their messages from
// outermost to innermost, plus the operation of the innermost link when
// that link is a DetailedError.
//
// DetailedError.Cause() is preferred over errors.Unwrap. Depth is bounded and
// a repeated message ends the walk.
func buildErrorChain(err error) (chain []string, rootOp string) {
	const maxDepth = 50
	seen := map[string]bool{}

	for depth := 0; err != nil && depth < maxDepth; depth++ {
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, dErr.Error())
			rootOp = string(dErr.Op())
			err = dErr.Cause()
			continue
		}

		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		rootOp = emptyString
		err = stderrs.Unwrap(err)
	}
	return chain, rootOp
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}
