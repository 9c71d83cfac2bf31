package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"gin-auction-service/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.New("invalid cursor")

type Cursor struct {
	After string `json:"after,omitempty"`
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	payload := CursorVersionV1 + ":" + strconv.FormatInt(t.UnixMicro(), 10) + "-" + id.String()
	return base64.URLEncoding.EncodeToString([]byte(payload))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "cursor is not base64url"), ErrInvalidCursor)
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return time.Time{}, uuid.Nil, errs.Wrap(ErrInvalidCursor, "unknown cursor version")
	}

	micros, rawID, ok := strings.Cut(payload, "-")
	if !ok {
		return time.Time{}, uuid.Nil, errs.Wrap(ErrInvalidCursor, "expected '<micros>-<uuid>'")
	}
	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "invalid timestamp"), ErrInvalidCursor)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "invalid id"), ErrInvalidCursor)
	}

	return time.UnixMicro(ts), id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// page trims the limit+1 probe row and builds the cursor for the next page.
func page[T any](rows []T, limit int, key func(T) (time.Time, uuid.UUID)) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	createdAt, id := key(rows[limit-1])
	return rows[:limit], &Cursor{After: EncodeAfterCursor(createdAt, id)}
}
