package models

import (
	"strings"

	"github.com/google/uuid"
)

// NewID 生成带前缀的实体ID，例如 sfee_3f2a...
func NewID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func ensureID(id *string, prefix string) {
	if strings.TrimSpace(*id) == "" {
		*id = NewID(prefix)
	}
}
