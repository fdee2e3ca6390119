package render

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// DocumentRenderer renders a resume into a single format. The template
// package's renderers satisfy this.
type DocumentRenderer interface {
	Render(ctx context.Context, resume *types.Resume, format types.Format) ([]byte, error)
}

// ExportAll renders one resume to several formats concurrently. The first
// failing format cancels the rest; on success the result maps each requested
// format to its bytes.
func ExportAll(ctx context.Context, renderer DocumentRenderer, resume *types.Resume, formats []types.Format) (map[types.Format][]byte, error) {
	g, gctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	results := make(map[types.Format][]byte, len(formats))

	for _, format := range formats {
		g.Go(func() error {
			out, err := renderer.Render(gctx, resume, format)
			if err != nil {
				return err
			}
			mu.Lock()
			results[format] = out
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
