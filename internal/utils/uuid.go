package utils

import "github.com/google/uuid"

// originatorNamespace seeds GUIDs inferred from legacy originator metadata.
var originatorNamespace = uuid.MustParse("5f3c1b9e-2d74-4c8a-9e61-0b7a2f4d8c13")

// UUIDGenerator hands out identifiers for new bookmark entities.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, used for placeholder server ids.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewGUID returns a fresh random bookmark GUID.
func (g *UUIDGenerator) NewGUID() string {
	return uuid.NewString()
}

// InferGUID derives the GUID a legacy client would have committed for an
// entity identified only by its originator cache GUID and client item id.
func InferGUID(originatorCacheGUID, originatorClientItemID string) string {
	return uuid.NewSHA1(originatorNamespace, []byte(originatorCacheGUID+originatorClientItemID)).String()
}

// IsValidGUID reports whether s is a UUID in canonical lowercase form.
func IsValidGUID(s string) bool {
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.String() == s
}
