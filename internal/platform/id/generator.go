package id

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues random v4 UUIDs; used for browser session ids.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return v.String(), nil
}

// TimestampGenerator issues "<prefix><unix millis>" ids, e.g. sub_1723291200000.
type TimestampGenerator struct {
	prefix string
	now    func() time.Time
}

func NewTimestampGenerator(prefix string, now func() time.Time) *TimestampGenerator {
	if now == nil {
		now = time.Now
	}
	return &TimestampGenerator{prefix: prefix, now: now}
}

func (g *TimestampGenerator) NewID() (string, error) {
	return fmt.Sprintf("%s%d", g.prefix, g.now().UnixMilli()), nil
}

// ValidUUID reports whether v is a canonical UUID string.
func ValidUUID(v string) bool {
	if len(v) != 36 {
		return false
	}
	_, err := uuid.Parse(v)
	return err == nil
}
