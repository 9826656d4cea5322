package utils

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewTokenKey menghasilkan key token opaque (hex 32 karakter).
func NewTokenKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ParseBearerToken mengambil key dari header Authorization.
// Format "Bearer <key>" dan "Token <key>" dua-duanya diterima.
func ParseBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("Authorization header missing")
	}

	for _, scheme := range []string{"Bearer ", "Token "} {
		if strings.HasPrefix(authHeader, scheme) {
			key := strings.TrimSpace(strings.TrimPrefix(authHeader, scheme))
			if key == "" {
				return "", errors.New("token kosong")
			}
			return key, nil
		}
	}

	return "", errors.New("format Authorization header tidak valid")
}

// IsDuplicateKey mengecek pelanggaran unique constraint dari store.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
