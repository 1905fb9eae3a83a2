package remix

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// KeyStatus reports per-provider credential liveness.
type KeyStatus struct {
	Generation bool `json:"generation"`
	Vision     bool `json:"vision"`
}

// Valid reports whether both providers accepted their credentials. The
// pipeline needs both: analysis and generation are separate upstreams.
func (k KeyStatus) Valid() bool {
	return k.Generation && k.Vision
}

// ValidateKeys cross-checks both provider credentials with cheap read-only
// calls. The checks are independent, so they run concurrently; neither one
// raises, matching the liveness probes on the underlying clients.
func (s *Service) ValidateKeys(ctx context.Context) KeyStatus {
	var status KeyStatus
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		status.Generation = s.generator.ValidateKey(gctx)
		return nil
	})
	g.Go(func() error {
		status.Vision = s.analyzer.ValidateKey(gctx)
		return nil
	})
	_ = g.Wait()
	return status
}
