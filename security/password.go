// Package security manages hashed and salted password digests.
package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// scheme tags the digest so verification keeps working if the
	// default cost changes later.
	scheme = "pbkdf2_sha256"

	DefaultRounds = 30000
	MinRounds     = 1000

	saltLen = 16
	keyLen  = 32
)

var (
	ErrInvalidDigest = errors.New("invalid password digest")
	ErrInvalidRounds = errors.New("invalid pbkdf2 rounds")
)

// Hasher derives and verifies password digests. The zero value is not
// usable; construct with NewHasher.
type Hasher struct {
	rounds int
}

// NewHasher returns a Hasher with the given work factor. The cost is
// deliberately high because the database is a local file that could be
// copied and attacked offline.
func NewHasher(rounds int) (*Hasher, error) {
	if rounds < MinRounds {
		return nil, fmt.Errorf("%w: must be >= %d, got %d", ErrInvalidRounds, MinRounds, rounds)
	}
	return &Hasher{rounds: rounds}, nil
}

// DefaultHasher returns a Hasher with the default work factor.
func DefaultHasher() *Hasher {
	return &Hasher{rounds: DefaultRounds}
}

// Hash returns the password salted, stretched and encoded as
// "pbkdf2_sha256$<rounds>$<salt>$<key>". A fresh salt is drawn per call,
// so two digests of the same password never match textually.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, h.rounds, keyLen, sha256.New)

	enc := base64.RawStdEncoding
	return fmt.Sprintf("%s$%d$%s$%s",
		scheme, h.rounds, enc.EncodeToString(salt), enc.EncodeToString(key)), nil
}

// Verify reports whether password matches the digest. The rounds and salt
// embedded in the digest are used for the recomputation, and the compare
// is constant-time.
func Verify(password, digest string) (bool, error) {
	rounds, salt, key, err := parseDigest(digest)
	if err != nil {
		return false, err
	}

	derived := pbkdf2.Key([]byte(password), salt, rounds, len(key), sha256.New)
	return subtle.ConstantTimeCompare(derived, key) == 1, nil
}

func parseDigest(digest string) (rounds int, salt, key []byte, err error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 4 || parts[0] != scheme {
		return 0, nil, nil, fmt.Errorf("%w: unknown format", ErrInvalidDigest)
	}

	rounds, err = strconv.Atoi(parts[1])
	if err != nil || rounds <= 0 {
		return 0, nil, nil, fmt.Errorf("%w: bad rounds %q", ErrInvalidDigest, parts[1])
	}

	enc := base64.RawStdEncoding
	salt, err = enc.DecodeString(parts[2])
	if err != nil {
		return 0, nil, nil, fmt.Errorf("%w: bad salt encoding", ErrInvalidDigest)
	}
	key, err = enc.DecodeString(parts[3])
	if err != nil || len(key) == 0 {
		return 0, nil, nil, fmt.Errorf("%w: bad key encoding", ErrInvalidDigest)
	}

	return rounds, salt, key, nil
}
