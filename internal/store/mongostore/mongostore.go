// Package mongostore implements the store interfaces on MongoDB. Timestamps
// are persisted as RFC3339 strings and parsed back to time.Time on read, and
// denormalized counters are maintained with the server-side $inc operator so
// concurrent updates never read-modify-write.
package mongostore

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anyrite/pixelblog-be/internal/store"
)

func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored timestamp %q: %w", s, err)
	}
	return t, nil
}

// wrapErr maps driver errors onto the store sentinels.
func wrapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case err == mongo.ErrNoDocuments:
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return store.ErrDuplicate
	default:
		return err
	}
}
