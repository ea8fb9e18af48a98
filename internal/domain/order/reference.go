package order

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	referencePrefix       = "HPT-"
	CreditReferencePrefix = "CREDIT-"
	referenceRandomLen    = 6
	base36Alphabet        = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewReference builds the provider checkout reference: HPT-<base36 millis>-<6 random base36>, upper-cased.
func NewReference(now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	return strings.ToUpper(referencePrefix + ts + "-" + randomBase36(referenceRandomLen))
}

func NewCreditReference(now time.Time) string {
	return CreditReferencePrefix + NewReference(now)
}

func IsCreditReference(ref string) bool {
	return strings.HasPrefix(ref, CreditReferencePrefix)
}

func randomBase36(n int) string {
	var sb strings.Builder
	limit := big.NewInt(int64(len(base36Alphabet)))
	for range n {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			sb.WriteByte('0')
			continue
		}
		sb.WriteByte(base36Alphabet[idx.Int64()])
	}
	return sb.String()
}
