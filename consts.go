package textlog

import "errors"

const (
	// DefaultTemplate is the message template used when none is configured.
	DefaultTemplate = "[{time}] [{level}] {name} - {message} ({filename}:{line})"
	// DefaultTimeLayout is the Go reference layout used for {time}.
	DefaultTimeLayout = "2006-01-02 15:04:05"
	// DefaultTerminator is appended to every rendered line.
	DefaultTerminator = '\n'
	// DefaultLevel is the base level of a new or reset Logger.
	DefaultLevel = Info

	emptyString = ""
)

// callerDepth is the number of frames between the user's call site and the
// frame that captures it: logInner and the public method that called it.
// Every public logging method must call logInner directly; adding a frame in
// between requires changing this value.
const callerDepth = 2

const (
	errMsgOpenFile      = "Unable to open log file."
	errMsgNilConfig     = "Logging config is nil."
	errMsgConfigInvalid = "Logging configuration is invalid."
	errMsgConfigDecode  = "Logging configuration could not be decoded."
	errMsgConfigRead    = "Logging configuration file could not be read."
)

var (
	// ErrUnknownLevel is returned for a level name or rank that does not exist.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrInvalidMessage is returned when a message cannot be converted to text.
	ErrInvalidMessage = errors.New("log message must not be nil")
	// ErrNilOutput is returned when a nil Output is passed to a Logger.
	ErrNilOutput = errors.New("output is nil")
)
