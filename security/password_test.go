package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Low rounds keep the test suite fast; the format is identical.
func testHasher(t *testing.T) *Hasher {
	t.Helper()
	h, err := NewHasher(MinRounds)
	require.NoError(t, err)
	return h
}

func TestHashVerifyRoundTrip(t *testing.T) {
	h := testHasher(t)

	digest, err := h.Hash("password1")
	require.NoError(t, err)

	ok, err := Verify("password1", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify("password2", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	h := testHasher(t)

	first, err := h.Hash("password1")
	require.NoError(t, err)
	second, err := h.Hash("password1")
	require.NoError(t, err)

	// Same password, different salt, different digest - but both verify.
	assert.NotEqual(t, first, second)

	for _, digest := range []string{first, second} {
		ok, err := Verify("password1", digest)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestDigestSelfDescribes(t *testing.T) {
	h := testHasher(t)

	digest, err := h.Hash("password1")
	require.NoError(t, err)

	parts := strings.Split(digest, "$")
	require.Len(t, parts, 4)
	assert.Equal(t, "pbkdf2_sha256", parts[0])
	assert.Equal(t, "1000", parts[1])

	// A digest produced under a different cost still verifies, since the
	// rounds are read back out of the digest itself.
	slower, err := NewHasher(2000)
	require.NoError(t, err)
	old, err := slower.Hash("password1")
	require.NoError(t, err)

	ok, err := Verify("password1", old)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyRejectsMalformedDigests(t *testing.T) {
	for _, digest := range []string{
		"",
		"plaintext",
		"md5$10$abc$def",
		"pbkdf2_sha256$notanumber$c2FsdA$a2V5",
		"pbkdf2_sha256$-1$c2FsdA$a2V5",
		"pbkdf2_sha256$1000$!!!$a2V5",
		"pbkdf2_sha256$1000$c2FsdA$!!!",
		"pbkdf2_sha256$1000$c2FsdA",
	} {
		_, err := Verify("password1", digest)
		assert.ErrorIs(t, err, ErrInvalidDigest, "digest %q", digest)
	}
}

func TestNewHasherEnforcesFloor(t *testing.T) {
	_, err := NewHasher(999)
	assert.ErrorIs(t, err, ErrInvalidRounds)

	assert.Equal(t, DefaultRounds, DefaultHasher().rounds)
}
