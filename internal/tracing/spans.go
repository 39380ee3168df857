package tracing

// Span attribute keys for candidate API calls.
const (
	AttrHTTPMethod     = "http.method"
	AttrHTTPURL        = "http.url"
	AttrHTTPStatusCode = "http.status_code"
	AttrRequestID      = "request.id"
	AttrCandidateID    = "candidate.id"
	AttrSearchKeyword  = "search.keyword"
	AttrResultCount    = "result.count"
)

// SpanPrefixCandidates prefixes every API span, e.g. "candidates.list".
const SpanPrefixCandidates = "candidates."
