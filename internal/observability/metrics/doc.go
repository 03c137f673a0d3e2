// Package metrics holds the Prometheus collectors shared by the API and the
// worker. Collectors register with the default registry through promauto and
// are served on /metrics.
//
//	start := time.Now()
//	report := unicodeblock.Analyze(text)
//	metrics.RecordAnalysis("text", "success", time.Since(start), n, report)
package metrics
