package cursor

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/expense-server/internal/apperror"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 11, 4, 8, 30, 25, 965_000_000, time.UTC)

	encoded := Encode(createdAt, 12345)
	assert.NotEmpty(t, encoded)

	anchor, err := Decode(encoded)
	assert.NoError(t, err)
	assert.NotNil(t, anchor)
	assert.Equal(t, createdAt, anchor.CreatedAt)
	assert.Equal(t, int64(12345), anchor.ID)
}

func TestEncode_KnownValue(t *testing.T) {
	// base64url("1730706625965:12345") without padding
	createdAt := time.UnixMilli(1730706625965).UTC()
	assert.Equal(t, "MTczMDcwNjYyNTk2NToxMjM0NQ", Encode(createdAt, 12345))
}

func TestEncode_AbsentInputs(t *testing.T) {
	assert.Empty(t, Encode(time.Time{}, 1))
	assert.Empty(t, Encode(time.Now(), 0))
	assert.Empty(t, Encode(time.Now(), -3))
}

func TestDecode_BlankIsFirstPage(t *testing.T) {
	for _, s := range []string{"", "   ", "\t"} {
		anchor, err := Decode(s)
		assert.NoError(t, err)
		assert.Nil(t, anchor)
	}
}

func TestDecode_MalformedBase64(t *testing.T) {
	anchor, err := Decode("!!not-base64!!")
	assert.Nil(t, anchor)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestDecode_MissingDelimiter(t *testing.T) {
	encoded := base64.RawURLEncoding.EncodeToString([]byte("1730706625965"))
	anchor, err := Decode(encoded)
	assert.Nil(t, anchor)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestDecode_NonNumericParts(t *testing.T) {
	cases := []string{"abc:123", "1730706625965:abc", ":", "a:b"}
	for _, raw := range cases {
		encoded := base64.RawURLEncoding.EncodeToString([]byte(raw))
		anchor, err := Decode(encoded)
		assert.Nil(t, anchor, "input %q", raw)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation), "input %q", raw)
	}
}

func TestDecode_SplitsOnFirstDelimiterOnly(t *testing.T) {
	// "123:45:6" splits into "123" and "45:6"; the second part is non-numeric.
	encoded := base64.RawURLEncoding.EncodeToString([]byte("123:45:6"))
	_, err := Decode(encoded)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestDecode_MillisecondPrecision(t *testing.T) {
	createdAt := time.Date(2025, 3, 9, 23, 59, 59, 999_000_000, time.UTC)
	anchor, err := Decode(Encode(createdAt, 7))
	assert.NoError(t, err)
	assert.Equal(t, createdAt, anchor.CreatedAt)
}
