package calendar

import (
	"github.com/charmbracelet/log"
)

// Reporter receives every error a Calendar operation returns.
type Reporter interface {
	Report(op string, err error)
}

type logReporter struct {
	logger *log.Logger
}

// NewLogReporter reports errors as warnings on logger.
func NewLogReporter(logger *log.Logger) Reporter {
	return &logReporter{logger: logger}
}

func (r *logReporter) Report(op string, err error) {
	r.logger.Warn("calendar operation failed", "op", op, "err", err)
}
