package textlog

import (
	"fmt"
	"strings"
)

// Level is the severity of a log message. Aliases (Warning, Critical) are
// distinct values with their own names but share a rank with Warn and Fatal.
type Level uint8

const (
	Debug Level = iota
	Info
	Warn
	Warning
	Error
	Fatal
	Critical
)

var levelNames = [...]string{
	Debug:    "DEBUG",
	Info:     "INFO",
	Warn:     "WARN",
	Warning:  "WARNING",
	Error:    "ERROR",
	Fatal:    "FATAL",
	Critical: "CRITICAL",
}

var levelRanks = [...]int{
	Debug:    0,
	Info:     1,
	Warn:     2,
	Warning:  2,
	Error:    3,
	Fatal:    4,
	Critical: 4,
}

// canonical holds the level returned for each rank; the first declared alias wins.
var canonical = [...]Level{Debug, Info, Warn, Error, Fatal}

// IsValid reports whether l is one of the declared levels.
func (l Level) IsValid() bool {
	return int(l) < len(levelNames)
}

// Rank returns the numeric severity of l, or -1 if l is not a declared level.
func (l Level) Rank() int {
	if !l.IsValid() {
		return -1
	}
	return levelRanks[l]
}

// Name returns the declared name of l, not its canonical alias.
func (l Level) Name() (string, bool) {
	if !l.IsValid() {
		return emptyString, false
	}
	return levelNames[l], true
}

func (l Level) String() string {
	if name, ok := l.Name(); ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

// LevelFromRank returns the canonical level for rank: 2 yields Warn and 4
// yields Fatal.
func LevelFromRank(rank int) (Level, error) {
	if rank < 0 || rank >= len(canonical) {
		return 0, fmt.Errorf("%w: rank %d", ErrUnknownLevel, rank)
	}
	return canonical[rank], nil
}

// ParseLevel parses a level name, ignoring case. Every alias parses to itself,
// so "warning" yields Warning rather than Warn.
func ParseLevel(name string) (Level, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range levelNames {
		if n == upper {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}
