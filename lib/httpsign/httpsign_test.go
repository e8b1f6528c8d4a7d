package httpsign

import (
	"crypto/ed25519"
	"crypto/rand"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-fed/httpsig"
)

const testKeyID = "https://social.example/users/alice"

func newKeyPair(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	return pub, priv
}

func newSignedRequest(t *testing.T, priv ed25519.PrivateKey, body []byte) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "https://remote.example/users/bob/inbox", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := SignRequest(priv, testKeyID, req, body); err != nil {
		t.Fatal(err)
	}
	return req
}

func TestSignAndVerify(t *testing.T) {
	pub, priv := newKeyPair(t)
	body := []byte(`{"type":"Like"}`)

	req := newSignedRequest(t, priv, body)

	for _, header := range []string{"Date", "Host", "Digest", "Signature"} {
		if req.Header.Get(header) == "" {
			t.Errorf("%s header not set", header)
		}
	}
	signature := req.Header.Get("Signature")
	for _, field := range []string{`keyId="` + testKeyID + `"`, `algorithm="ed25519"`, "(request-target) host date digest"} {
		if !strings.Contains(signature, field) {
			t.Errorf("signature header %q lacks %q", signature, field)
		}
	}

	if err := Verify(pub, req, body, 30*time.Second); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerifyEmptyBody(t *testing.T) {
	pub, priv := newKeyPair(t)

	req := newSignedRequest(t, priv, nil)
	if err := Verify(pub, req, nil, 30*time.Second); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerifyTamperedBody(t *testing.T) {
	pub, priv := newKeyPair(t)
	body := []byte(`{"type":"Like"}`)

	req := newSignedRequest(t, priv, body)
	if err := Verify(pub, req, []byte(`{"type":"Undo"}`), 30*time.Second); err == nil {
		t.Fatal("verify accepted a tampered body")
	}
}

func TestVerifyTamperedTarget(t *testing.T) {
	pub, priv := newKeyPair(t)
	body := []byte(`{"type":"Like"}`)

	req := newSignedRequest(t, priv, body)
	req.URL.Path = "/users/carol/inbox"
	if err := Verify(pub, req, body, 30*time.Second); err == nil {
		t.Fatal("verify accepted a redirected request target")
	}
}

func TestVerifyWrongKey(t *testing.T) {
	_, priv := newKeyPair(t)
	otherPub, _ := newKeyPair(t)
	body := []byte(`{"type":"Like"}`)

	req := newSignedRequest(t, priv, body)
	if err := Verify(otherPub, req, body, 30*time.Second); err == nil {
		t.Fatal("verify accepted a signature from another key")
	}
}

func TestVerifyRejectsUncoveredDigest(t *testing.T) {
	pub, priv := newKeyPair(t)

	// A signature over (request-target) host date only. Without header
	// pinning the digest is unbound: any body with a self-chosen Digest
	// header would verify.
	req, err := http.NewRequest(http.MethodPost, "https://remote.example/users/bob/inbox", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	req.Header.Set("Host", req.URL.Host)

	signer, _, err := httpsig.NewSigner(
		[]httpsig.Algorithm{httpsig.ED25519},
		httpsig.DigestSha256,
		[]string{httpsig.RequestTarget, "host", "date"},
		httpsig.Signature,
		0,
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := signer.SignRequest(priv, testKeyID, req, []byte(`{"type":"Like"}`)); err != nil {
		t.Fatal(err)
	}

	forged := []byte(`{"type":"Undo"}`)
	req.Header.Set("Digest", Digest(forged))
	if err := Verify(pub, req, forged, 30*time.Second); err == nil {
		t.Fatal("verify accepted a signature that does not cover the digest")
	}
}

func TestVerifyMissingSignature(t *testing.T) {
	pub, priv := newKeyPair(t)
	body := []byte(`{"type":"Like"}`)

	req := newSignedRequest(t, priv, body)
	req.Header.Del("Signature")
	if err := Verify(pub, req, body, 30*time.Second); err == nil {
		t.Fatal("verify accepted a request without a signature")
	}
}

func TestVerifyStaleDate(t *testing.T) {
	pub, priv := newKeyPair(t)
	body := []byte(`{"type":"Like"}`)

	req := newSignedRequest(t, priv, body)
	req.Header.Set("Date", time.Now().Add(-time.Hour).UTC().Format(http.TimeFormat))
	if err := Verify(pub, req, body, 30*time.Second); err == nil {
		t.Fatal("verify accepted a stale date")
	}
}

func TestVerifyFutureDate(t *testing.T) {
	pub, priv := newKeyPair(t)
	body := []byte(`{"type":"Like"}`)

	req := newSignedRequest(t, priv, body)
	req.Header.Set("Date", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
	if err := Verify(pub, req, body, 30*time.Second); err == nil {
		t.Fatal("verify accepted a future date")
	}
}

func TestVerifyMissingDigest(t *testing.T) {
	pub, priv := newKeyPair(t)
	body := []byte(`{"type":"Like"}`)

	req := newSignedRequest(t, priv, body)
	req.Header.Del("Digest")
	if err := Verify(pub, req, body, 30*time.Second); err == nil {
		t.Fatal("verify accepted a request without a digest")
	}
}

func TestVerifyRestoresHostHeader(t *testing.T) {
	pub, priv := newKeyPair(t)
	body := []byte(`{"type":"Like"}`)

	// Go's server strips Host into req.Host; Verify must read it back.
	req := newSignedRequest(t, priv, body)
	req.Host = req.Header.Get("Host")
	req.Header.Del("Host")
	if err := Verify(pub, req, body, 30*time.Second); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestKeyID(t *testing.T) {
	_, priv := newKeyPair(t)
	body := []byte(`{"type":"Like"}`)

	req := newSignedRequest(t, priv, body)
	keyID, err := KeyID(req)
	if err != nil {
		t.Fatal(err)
	}
	if keyID != testKeyID {
		t.Errorf("keyId = %q, want %q", keyID, testKeyID)
	}
}

func TestKeyIDMissingHeader(t *testing.T) {
	req, err := http.NewRequest(http.MethodPost, "https://remote.example/inbox", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := KeyID(req); err == nil {
		t.Fatal("KeyID accepted a request without a signature")
	}
}

func TestDigest(t *testing.T) {
	got := Digest([]byte(""))
	want := "SHA-256=47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU="
	if got != want {
		t.Errorf("Digest(\"\") = %q, want %q", got, want)
	}
}
