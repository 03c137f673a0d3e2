package pagination

// Response is the envelope of a paged listing:
//
//	{"data": [...], "pagination": {"total": 45, "page": 2, "limit": 20, "total_pages": 3}}
type Response[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// NewResponse never emits a null data array.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	if data == nil {
		data = []T{}
	}
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}
