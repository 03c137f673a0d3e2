// Package resilience groups the fault tolerance helpers used around the
// archive database and the outbound fetchers.
//
//	cb := circuitbreaker.New(circuitbreaker.FeedFetchConfig())
//	err := retry.WithBackoff(ctx, retry.FeedFetchConfig(), func() error {
//	    _, err := cb.Execute(func() (interface{}, error) { return parser.ParseURLWithContext(url, ctx) })
//	    return err
//	})
package resilience
