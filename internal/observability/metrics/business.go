package metrics

import (
	"strconv"
	"time"

	"stringlang/pkg/unicodeblock"
)

// RecordHTTPRequest records one served request.
//
// Parameters:
//   - method: HTTP method
//   - path: Normalized route, e.g. "/analyses/:id" from pathutil.NormalizePath,
//     so IDs do not explode label cardinality
//   - status: Response status code
//   - duration: Time from first byte in to last byte out
//   - requestSize: Request body size; zero or negative is not observed
//   - responseSize: Bytes written
func RecordHTTPRequest(method, path string, status int, duration time.Duration, requestSize, responseSize int64) {
	code := strconv.Itoa(status)
	HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
}

// RecordAnalysis records one analysis.
//
// Parameters:
//   - source: "text", "url", "feed" or "batch"
//   - status: "success", or "rejected" for input refused before counting
//   - duration: Time spent counting
//   - codePoints: Input size in code points
//   - report: Blocks counted; only used on success
//
// On success the code points and the per-block hits of report are added to
// stringlang_code_points_analyzed_total and stringlang_block_hits_total.
//
// Example:
//
//	start := time.Now()
//	report := unicodeblock.Analyze(text)
//	metrics.RecordAnalysis("text", "success", time.Since(start), utf8.RuneCountInString(text), report)
func RecordAnalysis(source, status string, duration time.Duration, codePoints int, report unicodeblock.Report) {
	AnalysesTotal.WithLabelValues(source, status).Inc()
	AnalysisDuration.WithLabelValues(source).Observe(duration.Seconds())
	if status != "success" {
		return
	}
	CodePointsAnalyzed.Add(float64(codePoints))
	for block, n := range report.All() {
		BlockHitsTotal.WithLabelValues(block).Add(float64(n))
	}
}

// RecordContentFetch records a fetch of kind "url" or "feed".
func RecordContentFetch(kind string, duration time.Duration, size int, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	ContentFetchAttemptsTotal.WithLabelValues(kind, result).Inc()
	ContentFetchDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if err == nil && size > 0 {
		ContentFetchSize.Observe(float64(size))
	}
}

// RecordDBQuery records the duration of an archive query such as "insert_analysis".
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateAnalysesStored sets the archive size gauge.
func UpdateAnalysesStored(count int64) {
	AnalysesStored.Set(float64(count))
}

// UpdateDBConnectionStats updates database connection pool statistics. It is
// fed from sql.DBStats by db.ReportPoolStats.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
