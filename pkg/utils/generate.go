package utils

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateUUIDString() string {
	return uuid.New().String()
}

// ==================== REFERENCES ====================

// GenerateReference formats PREFIX-YYYYMMDD-HHMMSS-<id hex>. The suffix is the
// record id, so references are as unique as the ids they are built from.
func GenerateReference(prefix string, id uuid.UUID, now time.Time) string {
	idPart := strings.ToUpper(hex.EncodeToString(id[:]))

	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102-150405"), idPart)
}

func GeneratePaymentReference(id uuid.UUID, now time.Time) string {
	return GenerateReference("PAY", id, now)
}

func GenerateReservationReference(id uuid.UUID, now time.Time) string {
	return GenerateReference("SEAT", id, now)
}
