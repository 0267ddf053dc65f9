package answerer

import (
	"context"

	"ragcheck/pkg/cache"
	"ragcheck/pkg/core"
)

// Cached wraps an answerer with a disk cache so repeated runs over the
// same fixture set do not re-invoke the underlying service.
type Cached struct {
	Answerer core.Answerer
	Cache    *cache.Cache
}

func (c Cached) Name() string {
	if c.Answerer == nil {
		return ""
	}
	return c.Answerer.Name()
}

func (c Cached) Answer(ctx context.Context, question string) (core.Response, error) {
	if c.Answerer == nil {
		return core.Response{}, nil
	}
	if c.Cache != nil {
		if resp, ok := c.Cache.Get(c.Name(), question); ok {
			return resp, nil
		}
	}
	resp, err := c.Answerer.Answer(ctx, question)
	if err != nil {
		return core.Response{}, err
	}
	if c.Cache != nil {
		_ = c.Cache.Set(c.Name(), question, resp)
	}
	return resp, nil
}
