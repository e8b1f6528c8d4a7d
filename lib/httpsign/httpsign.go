// Package httpsign signs and verifies federation HTTP requests.
//
// The signing string covers "(request-target) host date digest" and is
// signed with the actor's Ed25519 key. The Signature header carries
// keyId (the actor URI), algorithm, the signed header list and the
// base64 signature. Digest recomputation and date-skew policy live
// here because the signature library verifies only the signing string,
// not the body.
package httpsign

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-fed/httpsig"
)

var signedHeaders = []string{httpsig.RequestTarget, "host", "date", "digest"}

// SignRequest adds Date, Host, Digest and Signature headers to req.
// keyID is the signing actor's URI. body may be empty but not nil-vs-empty
// significant: an absent body signs as the empty string.
func SignRequest(privateKey ed25519.PrivateKey, keyID string, req *http.Request, body []byte) error {
	now := time.Now()
	// HTTP の Date ヘッダーは現在時間ではなくGMT
	req.Header.Set("Date", now.UTC().Format(http.TimeFormat))
	req.Header.Set("Host", req.URL.Host)

	if body == nil {
		body = []byte{}
	}

	signer, _, err := httpsig.NewSigner(
		[]httpsig.Algorithm{httpsig.ED25519},
		httpsig.DigestSha256,
		signedHeaders,
		httpsig.Signature,
		0,
	)
	if err != nil {
		return fmt.Errorf("failed to create signer: %w", err)
	}

	if err := signer.SignRequest(privateKey, keyID, req, body); err != nil {
		return fmt.Errorf("failed to sign request: %w", err)
	}

	return nil
}

// Sign produces the Date and Signature header values for a request
// described by method and rawurl, without issuing it.
func Sign(privateKey ed25519.PrivateKey, keyID string, method string, rawurl string, body []byte) (date string, signature string, err error) {
	req, err := http.NewRequest(method, rawurl, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to build request: %w", err)
	}

	if err := SignRequest(privateKey, keyID, req, body); err != nil {
		return "", "", err
	}

	return req.Header.Get("Date"), req.Header.Get("Signature"), nil
}

// KeyID extracts the keyId field from the request's Signature header.
// It fails closed: any malformed or incomplete header is an error.
func KeyID(req *http.Request) (string, error) {
	if req.Header.Get("Signature") == "" {
		return "", fmt.Errorf("missing signature header")
	}

	verifier, err := httpsig.NewVerifier(req)
	if err != nil {
		return "", fmt.Errorf("failed to parse signature header: %w", err)
	}

	return verifier.KeyId(), nil
}

// Verify checks the request's Signature header against publicKey,
// recomputing the body digest and enforcing the date-skew window.
// Any failure is reported without distinguishing which check failed
// beyond what the wrapped error carries; callers should surface a
// generic "invalid signature" to the remote.
func Verify(publicKey ed25519.PublicKey, req *http.Request, body []byte, maxSkew time.Duration) error {
	header := req.Header.Get("Signature")
	if header == "" {
		return fmt.Errorf("missing signature header")
	}
	if !strings.Contains(header, "signature=") {
		return fmt.Errorf("signature header has no signature field")
	}

	// The verifier honors whatever header list the sender declared, so a
	// signature that omits digest would leave the body unbound. Pin the
	// canonical list before trusting the signature.
	if err := checkCoveredHeaders(header); err != nil {
		return err
	}

	if err := checkDate(req.Header.Get("Date"), maxSkew); err != nil {
		return err
	}

	if err := checkDigest(req.Header.Get("Digest"), body); err != nil {
		return err
	}

	// Go strips the Host header into req.Host on the server side; the
	// verifier reads it back out of the header set.
	if req.Header.Get("Host") == "" && req.Host != "" {
		req.Header.Set("Host", req.Host)
	}

	verifier, err := httpsig.NewVerifier(req)
	if err != nil {
		return fmt.Errorf("failed to parse signature header: %w", err)
	}

	if err := verifier.Verify(publicKey, httpsig.ED25519); err != nil {
		return fmt.Errorf("failed to verify signature: %w", err)
	}

	return nil
}

// Digest returns the Digest header value for body.
func Digest(body []byte) string {
	sum := sha256.Sum256(body)
	return "SHA-256=" + base64.StdEncoding.EncodeToString(sum[:])
}

// checkCoveredHeaders rejects a Signature header whose declared header
// list does not cover the full canonical string.
func checkCoveredHeaders(header string) error {
	covered := map[string]bool{}
	for _, name := range parseCoveredHeaders(header) {
		covered[strings.ToLower(name)] = true
	}
	for _, name := range signedHeaders {
		if !covered[strings.ToLower(name)] {
			return fmt.Errorf("signature does not cover %s", name)
		}
	}
	return nil
}

func parseCoveredHeaders(header string) []string {
	const key = `headers="`
	i := strings.Index(header, key)
	if i == -1 {
		return nil
	}
	rest := header[i+len(key):]
	j := strings.Index(rest, `"`)
	if j == -1 {
		return nil
	}
	return strings.Fields(rest[:j])
}

func checkDate(date string, maxSkew time.Duration) error {
	if date == "" {
		return fmt.Errorf("missing date header")
	}

	t, err := http.ParseTime(date)
	if err != nil {
		return fmt.Errorf("failed to parse date header: %w", err)
	}

	skew := time.Since(t)
	if skew < 0 {
		skew = -skew
	}
	if skew > maxSkew {
		return fmt.Errorf("date header outside of allowed window")
	}

	return nil
}

func checkDigest(digest string, body []byte) error {
	if digest == "" {
		return fmt.Errorf("missing digest header")
	}
	if digest != Digest(body) {
		return fmt.Errorf("digest mismatch")
	}
	return nil
}
