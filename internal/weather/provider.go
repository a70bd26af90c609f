package weather

import (
	"context"
)

// Source abstracts a producer of current readings (the random simulator, or
// a fake in tests).
type Source interface {
	Name() string
	Collect(ctx context.Context, location string) (Reading, error)
}

// Store is the contract the history store must satisfy.
//
// Append is not safe for concurrent writers across processes; implementations
// serialize writers within one process.
type Store interface {
	Append(location string, reading Reading) error
	HistoryFor(location string) map[string]Reading
}

// Translator resolves localized label text. Only the alert evaluator needs it.
type Translator interface {
	Label(key string) string
}
