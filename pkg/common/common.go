package common

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/gommon/random"
	"golang.org/x/crypto/pbkdf2"
)

const (
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

const pbkdf2Rounds = 4096

var idNode *snowflake.Node

func init() {
	var err error
	idNode, err = snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
}

// UUIDint64 returns a new snowflake id
func UUIDint64() int64 {
	return idNode.Generate().Int64()
}

// GetSecretSalt reads the per-install secret salt, falling back to a
// development default so a fresh checkout still boots.
func GetSecretSalt() string {
	if s := os.Getenv("APP_SECRET_SALT"); s != "" {
		return s
	}
	return "9b6d1a0a7c"
}

// Sha256HashWithSalt derives a hex-encoded pbkdf2 hash of src
func Sha256HashWithSalt(src, salt string) string {
	key := pbkdf2.Key([]byte(src), []byte(salt), pbkdf2Rounds, 32, sha256.New)
	return hex.EncodeToString(key)
}

// VerifyPassword checks a plaintext password against a stored hash in
// constant time.
func VerifyPassword(plain, salt, hashed string) bool {
	computed := Sha256HashWithSalt(plain, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashed)) == 1
}

// RandomString returns an alphanumeric token of length n
func RandomString(n uint8) string {
	return random.String(n)
}
