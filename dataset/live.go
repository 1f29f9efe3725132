package dataset

import (
	"context"
	"fmt"
)

// ============================================================================
// LIVE LOADER — documented placeholder for a future data source
// ============================================================================
// The boundary exists so Build() can later be swapped for an API-backed
// loader without touching any chart builder. Until the upstream dataflow
// is wired, the loader fails deterministically — it never fabricates or
// partially fills a dataset.
// ============================================================================

// LoadLive fetches a dataset from a statistics API dataflow. Not yet
// implemented: always returns ErrDataUnavailable.
func LoadLive(ctx context.Context, baseURL, dataflowID string) (*Dataset, error) {
	_ = ctx
	return nil, fmt.Errorf("%w: live dataflow %q at %s not implemented", ErrDataUnavailable, dataflowID, baseURL)
}
