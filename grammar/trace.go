package grammar

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'grammar'
func tracer() tracing.Trace {
	return tracing.Select("grammar")
}
