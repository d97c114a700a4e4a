package textlog

import (
	"path/filepath"
	"runtime"
	"time"
)

var timenow = time.Now // to facilitate testing

// Record is one accepted log call. It is built by the Logger and never
// modified afterwards.
type Record struct {
	message string
	level   Level
	name    string
	time    time.Time
	file    string
	line    int
}

// newRecord captures the call site skip frames above its caller.
func newRecord(message string, level Level, name string, skip int) Record {
	file, line := callSite(skip + 1)
	return Record{
		message: message,
		level:   level,
		name:    name,
		time:    timenow(),
		file:    file,
		line:    line,
	}
}

// callSite reports the file and line skip frames above its caller, or ""
// and 0 when the runtime cannot resolve that frame.
func callSite(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return emptyString, 0
	}
	return file, line
}

func (r Record) Message() string    { return r.message }
func (r Record) Level() Level       { return r.level }
func (r Record) LoggerName() string { return r.name }
func (r Record) Time() time.Time    { return r.time }

// Line returns the line number of the call site. It is 0 when the runtime
// could not report the call site, so {line} renders as "0".
func (r Record) Line() int { return r.line }

// Filepath returns the source path reported by the runtime for the call site,
// falling back to Filename when no path is known.
func (r Record) Filepath() string {
	if r.file == emptyString {
		return r.Filename()
	}
	return r.file
}

// Filename returns the base name of the call site's source file, or "???"
// when the runtime could not report one.
func (r Record) Filename() string {
	if r.file == emptyString {
		return "???"
	}
	return filepath.Base(r.file)
}
