package util

import "log/slog"

// Ops bundles the filesystem helpers with an injected logger.
// The zero value is usable and logs nowhere.
type Ops struct {
	log *slog.Logger
}

// NewOps returns an Ops that writes diagnostic events to logger.
// A nil logger discards all output.
func NewOps(logger *slog.Logger) *Ops {
	return &Ops{log: logger}
}

// logger returns the injected logger, falling back to a discarding one so
// methods never have to nil-check.
func (o *Ops) logger() *slog.Logger {
	if o == nil || o.log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.log
}
