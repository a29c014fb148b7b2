package identity

import (
	"fmt"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// SectionUUID derives a stable identifier for a section from its position and
// content, so reparsing unchanged input yields identical IDs.
func SectionUUID(orderIdx int, kind string, content string) uuid.UUID {
	return UUID(fmt.Sprintf("go-mddoc:section:%d:%s:%s", orderIdx, kind, content))
}

// DocumentUUID derives a stable identifier for a document source path.
func DocumentUUID(path string) uuid.UUID {
	return UUID("go-mddoc:document:" + strings.TrimSpace(path))
}
