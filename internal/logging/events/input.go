package events

import (
	"time"

	"github.com/atomicstack/tick-counter/internal/logging"
)

type InputTracer struct{}

var Input = InputTracer{}

func (InputTracer) Start(interval time.Duration) {
	logging.Trace("source.start", map[string]interface{}{"interval": interval.String()})
}

func (InputTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("input.error", map[string]interface{}{"error": err.Error()})
}

func (InputTracer) Stop(reason string) {
	logging.Trace("source.stop", map[string]interface{}{"reason": reason})
}
