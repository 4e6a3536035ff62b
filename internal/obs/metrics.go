package obs

import (
	"expvar"
	"strings"
	"sync"
)

// Label is a key/value pair attached to measurements.
type Label struct {
	Key   string
	Value string
}

// Meter is a very small interface for emitting counters/histograms.
// Implementations may no-op or bridge to a metrics system.
type Meter interface {
	Counter(name string, value float64, labels ...Label)
	Histogram(name string, value float64, labels ...Label)
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(name string, value float64, labels ...Label)   {}
func (NopMeter) Histogram(name string, value float64, labels ...Label) {}

// ExpvarMeter publishes measurements through the expvar registry, so
// they are visible wherever the process exposes /debug/vars.
// Histograms are reduced to a running sum and an observation count.
type ExpvarMeter struct{}

func (ExpvarMeter) Counter(name string, value float64, labels ...Label) {
	metricVar(metricKey(name, labels)).Add(value)
}

func (ExpvarMeter) Histogram(name string, value float64, labels ...Label) {
	metricVar(metricKey(name+".sum", labels)).Add(value)
	metricVar(metricKey(name+".count", labels)).Add(1)
}

func metricKey(name string, labels []Label) string {
	if len(labels) == 0 {
		return name
	}
	var sb strings.Builder
	sb.WriteString(name)
	for _, l := range labels {
		sb.WriteByte(';')
		sb.WriteString(l.Key)
		sb.WriteByte('=')
		sb.WriteString(l.Value)
	}
	return sb.String()
}

var (
	metricsMu sync.Mutex
	metrics   = map[string]*expvar.Float{}
)

// metricVar returns the registered Float for key, publishing it on
// first use. expvar panics on duplicate Publish, hence the registry.
func metricVar(key string) *expvar.Float {
	metricsMu.Lock()
	defer metricsMu.Unlock()
	if f, ok := metrics[key]; ok {
		return f
	}
	f := expvar.NewFloat(key)
	metrics[key] = f
	return f
}
