package versia

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// generateID - IDの生成
func generateID() string {
	id := uuid.New()
	idStr := strings.ReplaceAll(id.String(), "-", "")
	return idStr
}

func GenerateSortableID() string {
	t := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(t.UnixNano())), 0)
	id := ulid.MustNew(ulid.Timestamp(t), entropy)
	return id.String()
}

// Account is a local user. PrivateKey is the account's Ed25519 signing
// key in PKCS#8 PEM form; the matching public key is served on the
// actor document.
type Account struct {
	ID                        string
	Username                  string
	Email                     string
	Password                  string
	PrivateKey                string
	ManuallyApprovesFollowers bool
}

// Actor is a resolved identity, local or remote, reduced to what the
// federation core needs: its URI and its verification key.
type Actor struct {
	URI       string
	Username  string
	Host      string
	Inbox     string
	PublicKey string
}
