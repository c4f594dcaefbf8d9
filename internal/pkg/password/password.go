// Package password hashes passwords with Argon2id and encodes the cost
// parameters alongside the digest, so old hashes keep verifying after the
// defaults change.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/crypto/argon2"
)

// OWASP-recommended Argon2id costs.
const (
	defaultMemory      = 47104
	defaultTime        = 2
	defaultParallelism = 1
	saltLen            = 16
	keyLen             = 32
)

// Argon2 is memory- and CPU-hungry. Cap how many hashes run at once so a
// burst of signups cannot starve request handling.
var hashGate = make(chan struct{}, runtime.GOMAXPROCS(0))

type params struct {
	memory  uint32
	time    uint32
	threads uint8
}

func Hash(plain string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	p := params{memory: defaultMemory, time: defaultTime, threads: defaultParallelism}
	key := idKey([]byte(plain), salt, p, keyLen)
	return encode(p, salt, key), nil
}

// Verify reports whether plain matches the encoded hash. It recomputes with
// the parameters embedded in the hash and fails closed on any parse error,
// so a malformed hash is indistinguishable from a wrong password.
func Verify(plain, encoded string) bool {
	p, salt, key, err := decode(encoded)
	if err != nil {
		return false
	}
	computed := idKey([]byte(plain), salt, p, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, computed) == 1
}

func idKey(plain, salt []byte, p params, keyLen uint32) []byte {
	hashGate <- struct{}{}
	defer func() { <-hashGate }()
	return argon2.IDKey(plain, salt, p.time, p.memory, p.threads, keyLen)
}

func encode(p params, salt, key []byte) string {
	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.memory, p.time, p.threads,
		b64.EncodeToString(salt), b64.EncodeToString(key))
}

func decode(encoded string) (params, []byte, []byte, error) {
	var p params
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("malformed hash")
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("malformed version: %w", err)
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return p, nil, nil, fmt.Errorf("malformed params: %w", err)
	}
	if p.memory == 0 || p.time == 0 || p.threads == 0 {
		return p, nil, nil, fmt.Errorf("zero cost param")
	}
	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("malformed salt: %w", err)
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("malformed digest: %w", err)
	}
	if len(key) == 0 {
		return p, nil, nil, fmt.Errorf("empty digest")
	}
	return p, salt, key, nil
}
