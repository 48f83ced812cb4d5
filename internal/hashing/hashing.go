// Package hashing derives the canonical digest committed on-chain for each
// sale. Both the off-chain store and the contract oracle must derive the
// identical digest from identical logical content, so serialization is
// canonicalized (RFC 8785) before hashing.
package hashing

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/equipledger/salesledger-backend/internal/errs"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gowebpki/jcs"
)

// SaleHash returns the 0x-prefixed keccak-256 digest of the canonical JSON
// form of payload. Deterministic: key order of the input never affects the
// digest. Pure; no side effects.
func SaleHash(payload any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrSerialization, err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrSerialization, err)
	}

	return crypto.Keccak256Hash(canonical).Hex(), nil
}

// Compare reports whether two hex digests denote the same hash. Comparison is
// case-insensitive since on-chain and off-chain sides may differ in casing.
func Compare(a, b string) bool {
	return a != "" && strings.EqualFold(a, b)
}
