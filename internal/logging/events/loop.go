package events

import "github.com/atomicstack/tick-counter/internal/logging"

type LoopTracer struct{}

type StoreTracer struct{}

var (
	Loop  = LoopTracer{}
	Store = StoreTracer{}
)

func (LoopTracer) Transition(from, to string) {
	logging.Trace("loop.transition", map[string]interface{}{"from": from, "to": to})
}

func (LoopTracer) Dispatch(key string, amount int) {
	logging.Trace("loop.dispatch", map[string]interface{}{"key": key, "amount": amount})
}

func (LoopTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("loop.error", map[string]interface{}{"error": err.Error()})
}

func (StoreTracer) Reduce(applied, dropped, counter int) {
	logging.Trace("store.reduce", map[string]interface{}{
		"applied": applied,
		"dropped": dropped,
		"counter": counter,
	})
}
