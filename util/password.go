package util

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrCryptoFailure is returned when a password hash cannot be computed.
	ErrCryptoFailure = errors.New("password hashing failed")
	// ErrInvalidHash is returned when a stored password is not in a known format.
	ErrInvalidHash = errors.New("invalid password hash format")
)

const argon2Prefix = "argon2id$"

// Argon2Params are the work factors embedded in every stored password.
type Argon2Params struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultArgon2Params follows the OWASP minimum for Argon2id.
var DefaultArgon2Params = Argon2Params{
	Memory:  19 * 1024,
	Time:    2,
	Threads: 1,
	SaltLen: 16,
	KeyLen:  32,
}

// GenerateSalt returns n random bytes.
func GenerateSalt(n uint32) ([]byte, error) {
	salt := make([]byte, n)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoFailure, err)
	}
	return salt, nil
}

// HashPassword hashes a password with Argon2id and a fresh random salt.
// The result has the form argon2id$v=19$m=<mem>,t=<time>,p=<threads>$<salt>$<key>.
func HashPassword(password string) (string, error) {
	return hashPasswordWith(password, DefaultArgon2Params)
}

func hashPasswordWith(password string, p Argon2Params) (string, error) {
	salt, err := GenerateSalt(p.SaltLen)
	if err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Prefix, argon2.Version, p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword reports whether password matches the stored hash. A mismatch
// is (false, nil); an unreadable stored hash is ErrInvalidHash. Hashes created
// by the previous bcrypt-based service are still accepted.
func VerifyPassword(password, stored string) (bool, error) {
	switch {
	case strings.HasPrefix(stored, argon2Prefix):
		return verifyArgon2(password, stored)
	case isBcryptHash(stored):
		return verifyBcrypt(password, stored)
	default:
		return false, ErrInvalidHash
	}
}

// NeedsRehash reports whether stored should be replaced with a fresh Argon2id
// hash, either because it is a legacy format or uses weaker parameters.
func NeedsRehash(stored string) bool {
	if !strings.HasPrefix(stored, argon2Prefix) {
		return true
	}
	p, _, _, err := decodeArgon2(stored)
	if err != nil {
		return true
	}
	return p.Memory < DefaultArgon2Params.Memory || p.Time < DefaultArgon2Params.Time
}

func verifyArgon2(password, stored string) (bool, error) {
	p, salt, key, err := decodeArgon2(stored)
	if err != nil {
		return false, err
	}
	other := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

func decodeArgon2(stored string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	parts := strings.Split(strings.TrimPrefix(stored, argon2Prefix), "$")
	if len(parts) != 4 {
		return p, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[0], "v=%d", &version); err != nil || version != argon2.Version {
		return p, nil, nil, ErrInvalidHash
	}
	if _, err := fmt.Sscanf(parts[1], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, ErrInvalidHash
	}
	if p.Memory == 0 || p.Time == 0 || p.Threads == 0 {
		return p, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil || len(salt) == 0 {
		return p, nil, nil, ErrInvalidHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil || len(key) == 0 {
		return p, nil, nil, ErrInvalidHash
	}
	p.SaltLen = uint32(len(salt))
	p.KeyLen = uint32(len(key))

	return p, salt, key, nil
}

func isBcryptHash(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$")
}

func verifyBcrypt(password, stored string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrPasswordTooLong):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
}
