// Package fingerprint computes short content digests used to identify payload
// versions in logs and in the emission ledger.
package fingerprint

import (
	"fmt"

	"github.com/minio/highwayhash"
)

var key = []byte("SocialSchedulerLandingPageKey#01")

// Sum returns the HighwayHash-64 of data as 16 lowercase hex characters.
func Sum(data []byte) (string, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return "", fmt.Errorf("create hash: %w", err)
	}
	if _, err := hash.Write(data); err != nil {
		return "", fmt.Errorf("hash content: %w", err)
	}
	return fmt.Sprintf("%016x", hash.Sum64()), nil
}

// String is Sum for string content.
func String(s string) (string, error) {
	return Sum([]byte(s))
}
