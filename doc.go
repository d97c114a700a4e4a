// Package textlog provides named, leveled loggers that render each message
// through a template and hand the result to one or more outputs.
//
// Key features
//   - Seven level names over five ranks: WARN/WARNING and FATAL/CRITICAL
//     compare equal but keep their own names when rendered
//   - Template formatting with {message} {level} {levelNumber} {name}
//     {filepath} {filename} {line} {time} placeholders
//   - A ColorFormatter that wraps each line in a per-level ANSI colour
//   - Stream, file and zerolog outputs, each with an optional formatter
//     override
//   - Failure containment: an output that fails is disabled and the failure
//     is logged through the remaining outputs; the caller never sees it
//   - TOML configuration files validated before a Logger is built
//
// Typical usage
//
//	log := textlog.Basic("api")
//	defer log.Close()
//
//	cf := textlog.NewColorFormatter()
//	_ = log.Configure(textlog.WithLevel(textlog.Debug), textlog.WithFormatter(cf))
//	_ = log.Info("listening")
//
// A Logger is safe for concurrent use. Formatters are shared by reference;
// changing a formatter's template affects every Logger and Output holding it.
package textlog
