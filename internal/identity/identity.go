package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// Provider derives stable pseudonymous identities. The same (userKey, scope)
// pair always yields the same identity for the lifetime of the secret, and
// the identity cannot be mapped back to the user key without it.
type Provider struct {
	secret []byte
}

func NewProvider(secret string) *Provider {
	return &Provider{secret: []byte(secret)}
}

const identityLen = 16

// IdentityFor returns the pseudonym for userKey within scope. An empty
// userKey (unauthenticated caller) gets a freshly generated identifier with
// no stability guarantee.
func (p *Provider) IdentityFor(userKey, scope string) string {
	if userKey == "" {
		return uuid.NewString()[:identityLen]
	}
	mac := hmac.New(sha256.New, p.secret)
	mac.Write([]byte(scope))
	mac.Write([]byte{':'})
	mac.Write([]byte(userKey))
	return hex.EncodeToString(mac.Sum(nil))[:identityLen]
}
