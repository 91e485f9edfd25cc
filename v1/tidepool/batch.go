package tidepool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentQueries caps the parallelism of QueryBatch so a large batch
// cannot monopolize the shared transport's connection pool.
const maxConcurrentQueries = 10

// queryBatch fans the requests out over a bounded errgroup. Responses keep
// request order. The first failure cancels the remaining in-flight queries
// and is returned as the batch error.
func queryBatch(ctx context.Context, c *Client, reqs []QueryRequest) ([]*QueryResponse, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQueries)

	responses := make([]*QueryResponse, len(reqs))
	for i, req := range reqs {
		g.Go(func() error {
			resp, err := c.Query(ctx, req)
			if err != nil {
				return err
			}
			responses[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return responses, nil
}
