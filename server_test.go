package versia

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

type memSession struct {
	mu     sync.Mutex
	values map[string]any
}

func newMemSession() *memSession {
	return &memSession{values: map[string]any{}}
}

func (s *memSession) Close() error { return nil }

func (s *memSession) Set(c context.Context, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *memSession) Get(c context.Context, key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

func (s *memSession) Delete(c context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

func (s *memSession) Clear(c context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = map[string]any{}
}

func (s *memSession) Middleware(next http.Handler) http.Handler { return next }

func newTestHandler(t *testing.T, e *testEnv) (*Handler, *memSession) {
	t.Helper()
	log := zerolog.Nop()
	sess := newMemSession()
	return NewHandler(&log, e.urlResolver, sess, e.processor), sess
}

func TestHandlerInboxRejectsUnsigned(t *testing.T) {
	e := newTestEnv(t)
	handler, _ := newTestHandler(t, e)

	like := &Like{
		EntityBase: e.peer.newBase(TypeLike, "/likes/1"),
		Object:     e.urlResolver.resolveNoteURL("st1"),
	}
	req := newInboxRequest(e, mustMarshal(t, like))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestHandlerInboxAcceptsSignedLike(t *testing.T) {
	e := newTestEnv(t)
	handler, _ := newTestHandler(t, e)
	status := e.seedLocalStatus(t, "st1")

	like := &Like{
		EntityBase: e.peer.newBase(TypeLike, "/likes/1"),
		Object:     status.URI,
	}
	raw := mustMarshal(t, like)
	req := newInboxRequest(e, raw)
	if err := signInboxRequest(e, req, raw); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %q)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if rec.Body.String() != "{}" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "{}")
	}
	if got := e.favourites.count(); got != 1 {
		t.Errorf("got %d favourites, want 1", got)
	}
}

func TestHandlerInboxUnknownAccount(t *testing.T) {
	e := newTestEnv(t)
	handler, _ := newTestHandler(t, e)

	like := &Like{
		EntityBase: e.peer.newBase(TypeLike, "/likes/1"),
		Object:     e.urlResolver.resolveNoteURL("st1"),
	}
	raw := mustMarshal(t, like)
	req := httptest.NewRequest(http.MethodPost, e.urlResolver.myURLPrefix()+"/users/nobody/inbox", bytes.NewReader(raw))
	if err := signInboxRequest(e, req, raw); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandlerWebfinger(t *testing.T) {
	e := newTestEnv(t)
	handler, _ := newTestHandler(t, e)

	req := httptest.NewRequest(http.MethodGet, e.urlResolver.myURLPrefix()+"/.well-known/webfinger?resource=acct:alice", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), e.aliceURI) {
		t.Errorf("webfinger response %q lacks the actor url %q", rec.Body.String(), e.aliceURI)
	}
}

func TestHandlerWebfingerUnknownUser(t *testing.T) {
	e := newTestEnv(t)
	handler, _ := newTestHandler(t, e)

	req := httptest.NewRequest(http.MethodGet, e.urlResolver.myURLPrefix()+"/.well-known/webfinger?resource=acct:nobody", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandlerUserDocument(t *testing.T) {
	e := newTestEnv(t)
	handler, _ := newTestHandler(t, e)

	req := httptest.NewRequest(http.MethodGet, e.aliceURI, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	// The served document must itself pass validation.
	entity, err := ValidateEntity(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("served user document invalid: %v", err)
	}
	user, ok := entity.(*User)
	if !ok {
		t.Fatalf("got %T, want *User", entity)
	}
	if user.Username != "alice" {
		t.Errorf("username = %q, want %q", user.Username, "alice")
	}
	if user.PublicKey.PublicKey == "" {
		t.Error("served user document lacks a public key")
	}
	if user.Inbox != e.urlResolver.resolveInboxURL(e.alice.ID) {
		t.Errorf("inbox = %q, want %q", user.Inbox, e.urlResolver.resolveInboxURL(e.alice.ID))
	}
}

func TestHandlerNodeInfo(t *testing.T) {
	e := newTestEnv(t)
	handler, _ := newTestHandler(t, e)

	req := httptest.NewRequest(http.MethodGet, e.urlResolver.myURLPrefix()+"/.well-known/nodeinfo", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var doc struct {
		Links []struct {
			Href string `json:"href"`
		} `json:"links"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Links) != 1 || !strings.HasSuffix(doc.Links[0].Href, "/nodeinfo/2.1") {
		t.Errorf("unexpected nodeinfo links: %+v", doc.Links)
	}
}

func TestParseUserAddr(t *testing.T) {
	tests := []struct {
		in       string
		username string
		host     string
	}{
		{"alice", "alice", ""},
		{"alice@social.example", "alice", "social.example"},
		{"alice@social.example@", "alice", "social.example"},
	}
	for _, tt := range tests {
		addr, err := parseUserAddr(tt.in)
		if err != nil {
			t.Errorf("parseUserAddr(%q): %v", tt.in, err)
			continue
		}
		if addr.preferredUsername != tt.username || addr.host != tt.host {
			t.Errorf("parseUserAddr(%q) = %q@%q, want %q@%q",
				tt.in, addr.preferredUsername, addr.host, tt.username, tt.host)
		}
	}
}

func TestParseAcctScheme(t *testing.T) {
	addr, err := parseAcctScheme("acct:alice@social.example")
	if err != nil {
		t.Fatal(err)
	}
	if addr.preferredUsername != "alice" || addr.host != "social.example" {
		t.Errorf("got %q@%q", addr.preferredUsername, addr.host)
	}

	if _, err := parseAcctScheme("alice@social.example"); err == nil {
		t.Error("parseAcctScheme accepted a resource without the acct scheme")
	}
}

func TestURLResolver(t *testing.T) {
	r := NewURLResolver(&Config{Host: "social.example", Https: true})

	if got := r.resolveActorURL("a1"); got != "https://social.example/users/a1" {
		t.Errorf("actor url = %q", got)
	}
	if got := r.resolveInboxURL("a1"); got != "https://social.example/users/a1/inbox" {
		t.Errorf("inbox url = %q", got)
	}
	if got := r.resolveNoteURL("n1"); got != "https://social.example/notes/n1" {
		t.Errorf("note url = %q", got)
	}
}
