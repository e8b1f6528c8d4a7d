package versia

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestSignedFetchHeaders(t *testing.T) {
	e := newTestEnv(t)

	res, err := e.remote.SignedFetch(context.Background(), e.alice, http.MethodGet, e.peer.actorURI, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()

	headers := e.peer.lastRequestHeaders()
	if got := headers.Get("User-Agent"); got != "versia" {
		t.Errorf("user agent = %q, want %q", got, "versia")
	}
	if got := headers.Get("Origin"); got != e.urlResolver.myURLPrefix() {
		t.Errorf("origin = %q, want %q", got, e.urlResolver.myURLPrefix())
	}
	if got := headers.Get("Accept"); got != "application/json" {
		t.Errorf("accept = %q, want %q", got, "application/json")
	}
	if got := headers.Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Errorf("content type = %q", got)
	}
	for _, header := range []string{"Date", "Digest", "Signature"} {
		if headers.Get(header) == "" {
			t.Errorf("%s header not sent", header)
		}
	}
	if keyID := e.urlResolver.resolveActorURL(e.alice.ID); !strings.Contains(headers.Get("Signature"), keyID) {
		t.Errorf("signature %q does not claim key %q", headers.Get("Signature"), keyID)
	}
}

func TestSignedFetchCallerHeadersWin(t *testing.T) {
	e := newTestEnv(t)

	override := http.Header{}
	override.Set("Accept", "application/xrd+xml")
	res, err := e.remote.SignedFetch(context.Background(), e.alice, http.MethodGet, e.peer.actorURI, nil, override)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()

	if got := e.peer.lastRequestHeaders().Get("Accept"); got != "application/xrd+xml" {
		t.Errorf("accept = %q, want the caller's override", got)
	}
}

func TestGetEntityRejectsNon200(t *testing.T) {
	e := newTestEnv(t)

	if _, _, err := e.remote.GetEntity(context.Background(), e.alice, e.peer.ts.URL+"/notes/gone"); err == nil {
		t.Fatal("fetch of a missing entity succeeded")
	}
}

func TestGetEntityRejectsInvalidPayload(t *testing.T) {
	e := newTestEnv(t)
	e.peer.mu.Lock()
	e.peer.entities["/garbage"] = []byte(`{"type":"Note"}`)
	e.peer.mu.Unlock()

	if _, _, err := e.remote.GetEntity(context.Background(), e.alice, e.peer.ts.URL+"/garbage"); err == nil {
		t.Fatal("fetch of an invalid entity succeeded")
	}
}

func TestPostInboxDelivers(t *testing.T) {
	e := newTestEnv(t)

	follow := Follow{
		EntityBase: EntityBase{
			ID:        generateID4122(),
			Type:      TypeFollow,
			URI:       e.urlResolver.resolveActivityURL(GenerateSortableID()),
			Author:    e.aliceURI,
			CreatedAt: time.Now().UTC(),
		},
		Followee: e.peer.actorURI,
	}
	if err := e.remote.PostInbox(context.Background(), e.alice, e.peer.inboxURI, follow); err != nil {
		t.Fatal(err)
	}

	deliveries := e.peer.inboxDeliveries()
	if len(deliveries) != 1 {
		t.Fatalf("got %d deliveries, want 1", len(deliveries))
	}
	entity, err := ValidateEntity(deliveries[0])
	if err != nil {
		t.Fatalf("delivered body invalid: %v", err)
	}
	if _, ok := entity.(*Follow); !ok {
		t.Fatalf("delivered a %T, want *Follow", entity)
	}
}

func TestPostInboxRejectsNon2xx(t *testing.T) {
	e := newTestEnv(t)

	err := e.remote.PostInbox(context.Background(), e.alice, e.peer.ts.URL+"/closed", map[string]string{})
	if err == nil {
		t.Fatal("post to a refusing inbox succeeded")
	}
}
