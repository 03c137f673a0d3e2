package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestsTotal counts paged archive requests by HTTP status and page bucket.
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "stringlang_pagination_requests_total",
		Help: "Paginated archive requests by status and page range",
	},
	[]string{"status", "page_range"},
)

// RecordRequest counts a paged request. Pages are bucketed to bound cardinality.
func RecordRequest(statusCode int, page int) {
	RequestsTotal.WithLabelValues(strconv.Itoa(statusCode), pageRange(page)).Inc()
}

func pageRange(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
