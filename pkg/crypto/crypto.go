package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Cipher seals and opens small secrets (stored API keys) with AES-256-GCM.
// The wire format is "iv:tag:data", each part base64, which keeps sealed
// values distinguishable from legacy plaintext rows.
type Cipher struct {
	key []byte
}

// New derives the AES key as sha256 of the configured passphrase.
func New(passphrase string) *Cipher {
	sum := sha256.Sum256([]byte(passphrase))
	return &Cipher{key: sum[:]}
}

// Seal encrypts plaintext. Empty input seals to empty output.
func (c *Cipher) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", errors.Wrap(err, "creating cipher")
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", errors.Wrap(err, "creating gcm")
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", errors.Wrap(err, "generating iv")
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	tagStart := len(sealed) - gcm.Overhead()
	data, tag := sealed[:tagStart], sealed[tagStart:]

	return fmt.Sprintf(
		"%s:%s:%s",
		base64.StdEncoding.EncodeToString(iv),
		base64.StdEncoding.EncodeToString(tag),
		base64.StdEncoding.EncodeToString(data),
	), nil
}

// Open decrypts a sealed payload. Input that is not in the sealed format is
// returned unchanged: rows written before encryption was introduced store
// the secret in the clear.
func (c *Cipher) Open(payload string) (string, error) {
	if payload == "" {
		return "", nil
	}

	parts := strings.Split(payload, ":")
	if len(parts) != 3 {
		return payload, nil
	}

	iv, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return payload, nil
	}
	tag, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return payload, nil
	}
	data, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return payload, nil
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", errors.Wrap(err, "creating cipher")
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", errors.Wrap(err, "creating gcm")
	}
	if len(iv) != gcm.NonceSize() {
		return payload, nil
	}

	plaintext, err := gcm.Open(nil, iv, append(data, tag...), nil)
	if err != nil {
		return "", errors.Wrap(err, "opening sealed payload")
	}
	return string(plaintext), nil
}
