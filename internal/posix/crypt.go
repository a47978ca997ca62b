package posix

import (
	"fmt"
	"io"
	"strings"

	"github.com/GehirnInc/crypt"
	_ "github.com/GehirnInc/crypt/md5_crypt"    // registers crypt.MD5
	_ "github.com/GehirnInc/crypt/sha256_crypt" // registers crypt.SHA256
	_ "github.com/GehirnInc/crypt/sha512_crypt" // registers crypt.SHA512
	"golang.org/x/sys/unix"
)

// Crypter is a crypt(3) compatible password hashing primitive.
type Crypter interface {
	Crypt(password, salt string) (string, error)
}

// LibcCrypter hashes like glibc crypt(3), selecting the method from the
// "$id$" prefix of the salt. The traditional DES method is not available.
type LibcCrypter struct{}

// Crypt hashes password with salt. The salt may be a complete earlier hash.
func (LibcCrypter) Crypt(password, salt string) (string, error) {
	if salt == "" {
		return "", unix.EINVAL
	}

	if !strings.HasPrefix(salt, "$") {
		return "", unix.ENOSYS
	}

	var method crypt.Crypt
	switch {
	case strings.HasPrefix(salt, CryptMD5.SaltPrefix()):
		method = crypt.MD5
	case strings.HasPrefix(salt, CryptSHA256.SaltPrefix()):
		method = crypt.SHA256
	case strings.HasPrefix(salt, CryptSHA512.SaltPrefix()):
		method = crypt.SHA512
	default:
		return "", unix.EINVAL
	}

	hash, err := method.New().Generate([]byte(password), []byte(salt))
	if err != nil {
		return "", fmt.Errorf("(posix-crypt) %w: %w", err, unix.EINVAL)
	}

	return hash, nil
}

// CryptAlgorithm is a crypt(3) hashing method.
type CryptAlgorithm int

const (
	// CryptDES is the traditional, weakest method.
	CryptDES CryptAlgorithm = iota
	CryptMD5
	CryptSHA256
	CryptSHA512
)

const saltChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz./"

// ParseCryptAlgorithm resolves a case-insensitive algorithm name.
func ParseCryptAlgorithm(name string) (CryptAlgorithm, error) {
	switch strings.ToLower(name) {
	case "des":
		return CryptDES, nil
	case "md5":
		return CryptMD5, nil
	case "sha256", "sha-256":
		return CryptSHA256, nil
	case "sha512", "sha-512":
		return CryptSHA512, nil
	}

	return 0, fmt.Errorf("(posix-crypt) %w: %q", ErrUnknownAlgorithm, name)
}

func (a CryptAlgorithm) String() string {
	switch a {
	case CryptDES:
		return "des"
	case CryptMD5:
		return "md5"
	case CryptSHA256:
		return "sha256"
	case CryptSHA512:
		return "sha512"
	}

	return fmt.Sprintf("CryptAlgorithm(%d)", int(a))
}

// SaltPrefix returns the "$id$" prefix of the method, empty for DES.
func (a CryptAlgorithm) SaltPrefix() string {
	switch a {
	case CryptMD5:
		return "$1$"
	case CryptSHA256:
		return "$5$"
	case CryptSHA512:
		return "$6$"
	case CryptDES:
	}

	return ""
}

// SaltLength returns the number of salt characters, not counting the prefix.
func (a CryptAlgorithm) SaltLength() int {
	switch a {
	case CryptDES:
		return 2
	case CryptMD5:
		return 8
	case CryptSHA256, CryptSHA512:
		return 16
	}

	return 0
}

// GenerateSalt returns a new random salt for the method, including its prefix.
func (a CryptAlgorithm) GenerateSalt(r io.Reader) (string, error) {
	salt := make([]byte, a.SaltLength())
	if err := readAlphabet(r, salt, saltChars); err != nil {
		return "", fmt.Errorf("(posix-crypt) failed to read random source: %w", err)
	}

	return a.SaltPrefix() + string(salt), nil
}

// Crypt hashes password with salt using the configured [Crypter].
func (h *Handler) Crypt(password, salt string) (string, error) {
	hash, err := h.crypter.Crypt(password, salt)
	if err != nil {
		return "", h.fail("crypt", "", err)
	}

	return hash, nil
}

// CryptWith hashes password with a freshly generated salt for algorithm.
func (h *Handler) CryptWith(password string, algorithm CryptAlgorithm) (string, error) {
	salt, err := algorithm.GenerateSalt(h.random)
	if err != nil {
		return "", h.fail("crypt", "", err)
	}

	return h.Crypt(password, salt)
}
