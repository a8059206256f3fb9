package output

import (
	"fmt"

	"github.com/digitalocean/godo"
	"golang.org/x/crypto/ssh"
)

// FormatKey renders an SSH key as "name (id)". In long form the key type
// and SHA256 fingerprint parsed from the public key are appended; keys that
// cannot be parsed fall back to the fingerprint reported by the API.
func FormatKey(key godo.Key, long bool) string {
	short := fmt.Sprintf("%s (%d)", key.Name, key.ID)
	if !long {
		return short
	}

	pub, _, _, _, err := ssh.ParseAuthorizedKey([]byte(key.PublicKey))
	if err != nil {
		return fmt.Sprintf("%s unknown %s", short, key.Fingerprint)
	}

	return fmt.Sprintf("%s %s %s", short, pub.Type(), ssh.FingerprintSHA256(pub))
}
