// Package cryptox derives the user's master key from their password and
// uses it to authenticate against the server and to seal the offline cache.
//
// The password never leaves the client. The server stores only the salt and
// the verifier, a SHA-256 of the master key.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/json"
	"errors"

	"golang.org/x/crypto/argon2"

	"github.com/seungyeonleeee/triply/internal/common"
)

const (
	// SaltSize is the number of random bytes in a new user's salt.
	SaltSize = 16
	keySize  = 32
)

// ErrShortCiphertext is returned when sealed data is shorter than a nonce.
var ErrShortCiphertext = errors.New("ciphertext too short")

// DeriveMasterKey stretches password with argon2id.
func DeriveMasterKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, keySize)
}

// MakeVerifier is what the server compares at login.
func MakeVerifier(masterKey []byte) []byte {
	sum := sha256.Sum256(masterKey)
	return sum[:]
}

// NewSalt returns a fresh random salt.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// SealJSON encodes v as JSON and encrypts it with AES-GCM under key.
// The random nonce is prepended to the returned ciphertext.
func SealJSON(v any, key []byte) ([]byte, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(aead.NonceSize())
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// OpenJSON reverses SealJSON, decoding the plaintext into v.
func OpenJSON(sealed, key []byte, v any) error {
	aead, err := newGCM(key)
	if err != nil {
		return err
	}

	n := aead.NonceSize()
	if len(sealed) < n {
		return ErrShortCiphertext
	}

	plaintext, err := aead.Open(nil, sealed[:n], sealed[n:], nil)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(plaintext)

	return json.Unmarshal(plaintext, v)
}
