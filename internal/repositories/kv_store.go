package repositories

import "context"

const (
	HistoryStorageKey  = "vietnamPlannerHistory_global"
	FeedbackStorageKey = "vietnamPlannerFeedback_global"
)

// KeyValueStore holds opaque blobs by key. Get reports found=false for a
// missing key without an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
