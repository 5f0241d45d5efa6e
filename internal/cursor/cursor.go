// Package cursor encodes and decodes the opaque keyset-pagination cursor.
//
// Wire format: base64url without padding of "<epochMillis>:<id>", e.g.
// "1730706625965:12345" -> "MTczMDcwNjYyNTk2NToxMjM0NQ". The cursor carries
// only the sort key, no row data, so it survives schema changes. It is not a
// security boundary: a forged but well-formed cursor is just an arbitrary
// anchor point.
package cursor

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/carson-networks/expense-server/internal/apperror"
)

const delimiter = ":"

// Anchor is the decoded keyset position: the (created_at, id) pair of the
// last row of the previous page.
type Anchor struct {
	CreatedAt time.Time
	ID        int64
}

// Encode serializes an anchor. A zero time or non-positive id yields ""
// meaning "no further page".
func Encode(createdAt time.Time, id int64) string {
	if createdAt.IsZero() || id <= 0 {
		return ""
	}
	raw := strconv.FormatInt(createdAt.UnixMilli(), 10) + delimiter + strconv.FormatInt(id, 10)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// Decode parses a cursor string. A blank cursor decodes to (nil, nil),
// meaning "first page". Any malformed input is a validation error so the
// caller can surface it as a client error rather than an empty first page.
func Decode(s string) (*Anchor, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindValidation, "invalid cursor format", err)
	}

	millisPart, idPart, found := strings.Cut(string(raw), delimiter)
	if !found {
		return nil, apperror.Validation("invalid cursor format")
	}

	epochMillis, err := strconv.ParseInt(millisPart, 10, 64)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindValidation, "invalid cursor format", err)
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindValidation, "invalid cursor format", err)
	}

	return &Anchor{CreatedAt: time.UnixMilli(epochMillis).UTC(), ID: id}, nil
}
