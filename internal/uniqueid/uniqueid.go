// Package uniqueid generates the public certificate identifiers embedded in
// share URLs. Identifiers must be URL-safe, non-sequential and effectively
// collision-free: they are the only handle on an issued certificate and must
// not be guessable from another certificate's id.
package uniqueid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator mints public certificate identifiers.
type Generator interface {
	NewID() string
}

// RandomStrategy is the default generator: a 128-bit random UUID.
type RandomStrategy struct{}

// NewRandomStrategy returns the default 128-bit random generator.
func NewRandomStrategy() *RandomStrategy {
	return &RandomStrategy{}
}

// NewID returns a random UUID string.
func (s *RandomStrategy) NewID() string {
	return uuid.NewString()
}

// TimestampStrategy is the degraded fallback: current time plus a short
// random suffix. Its collision resistance is materially weaker than the
// random strategy's; it exists for environments without a usable entropy
// source and should not be chosen otherwise.
type TimestampStrategy struct {
	now func() time.Time
}

// NewTimestampStrategy returns the degraded timestamp-based generator.
func NewTimestampStrategy() *TimestampStrategy {
	return &TimestampStrategy{now: time.Now}
}

// NewID returns a base36 timestamp joined to an 8-hex-char random suffix.
func (s *TimestampStrategy) NewID() string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		// last-resort suffix; even weaker, but never blocks issuance
		return fmt.Sprintf("%s-%d", strconv.FormatInt(s.now().UnixMilli(), 36), s.now().UnixNano()%100000)
	}
	return fmt.Sprintf("%s-%s", strconv.FormatInt(s.now().UnixMilli(), 36), hex.EncodeToString(suffix))
}

// Short returns the uppercase short form of an identifier, as printed on the
// certificate face: the first 8 characters of its first segment.
func Short(id string) string {
	segment := id
	if i := strings.IndexByte(id, '-'); i > 0 {
		segment = id[:i]
	}
	if len(segment) > 8 {
		segment = segment[:8]
	}
	return strings.ToUpper(segment)
}
