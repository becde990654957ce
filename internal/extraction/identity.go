package extraction

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
)

// TransactionID derives the stable content identity for a candidate.
// Two candidates with the same user, canonical date, amount and first 50
// characters of description collapse to the same id; this is the sole
// deduplication key, there is no fuzzy matching. The amount is rendered with
// FormatFloat(-1) so the same float always serialises identically across runs.
func TransactionID(userID, date string, amount float64, description string) string {
	prefix := description
	if r := []rune(prefix); len(r) > 50 {
		prefix = string(r[:50])
	}
	key := fmt.Sprintf("%s_%s_%s_%s", userID, date, strconv.FormatFloat(amount, 'f', -1, 64), prefix)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:16])
}
