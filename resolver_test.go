package versia

import (
	"context"
	"fmt"
	"testing"
)

func TestResolveCachesMirror(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	note := &Note{
		EntityBase: e.peer.newBase(TypeNote, "/notes/1"),
		Content:    map[string]ContentEntry{"text/plain": {Content: "hi"}},
	}
	e.peer.serve(t, "/notes/1", note)

	first, err := e.resolver.Resolve(ctx, e.alice, note.URI)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := e.resolver.Resolve(ctx, e.alice, note.URI)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("resolves returned different rows: %q vs %q", first.ID, second.ID)
	}
	if got := e.peer.fetchCount("/notes/1"); got != 1 {
		t.Errorf("note fetched %d times, want 1", got)
	}
}

func TestResolveMaterializesNote(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	note := &Note{
		EntityBase: e.peer.newBase(TypeNote, "/notes/1"),
		Content: map[string]ContentEntry{
			"text/plain":    {Content: "hi"},
			"text/markdown": {Content: "*hi*"},
		},
		Visibility: "unlisted",
	}
	e.peer.serve(t, "/notes/1", note)

	if _, err := e.resolver.Resolve(ctx, e.alice, note.URI); err != nil {
		t.Fatal(err)
	}

	status, err := e.statuses.FindByURI(ctx, note.URI)
	if err != nil {
		t.Fatalf("status not materialized: %v", err)
	}
	if status.Content != "*hi*" || status.ContentType != "text/markdown" {
		t.Errorf("got %q (%s), want the markdown rendering", status.Content, status.ContentType)
	}
	if status.Visibility != VisibilityUnlisted {
		t.Errorf("visibility = %q, want %q", status.Visibility, VisibilityUnlisted)
	}

	// The author's profile is pulled in on the same chain.
	if _, err := e.objects.FindByURI(ctx, e.peer.actorURI); err != nil {
		t.Errorf("author not cached: %v", err)
	}
}

func TestResolveReferenceEmpty(t *testing.T) {
	e := newTestEnv(t)

	if got := e.resolver.ResolveReference(context.Background(), e.alice, nil); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestResolveReferenceUnreachable(t *testing.T) {
	e := newTestEnv(t)

	got := e.resolver.ResolveReference(context.Background(), e.alice, []string{e.peer.ts.URL + "/notes/gone"})
	if got != "" {
		t.Errorf("got %q, want empty for an unreachable target", got)
	}
}

func TestResolveMutualReferenceTerminates(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	a := &Note{
		EntityBase: e.peer.newBase(TypeNote, "/notes/a"),
		Content:    map[string]ContentEntry{"text/plain": {Content: "a"}},
		RepliesTo:  []string{e.peer.ts.URL + "/notes/b"},
	}
	b := &Note{
		EntityBase: e.peer.newBase(TypeNote, "/notes/b"),
		Content:    map[string]ContentEntry{"text/plain": {Content: "b"}},
		RepliesTo:  []string{e.peer.ts.URL + "/notes/a"},
	}
	e.peer.serve(t, "/notes/a", a)
	e.peer.serve(t, "/notes/b", b)

	if _, err := e.resolver.Resolve(ctx, e.alice, a.URI); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if _, err := e.statuses.FindByURI(ctx, a.URI); err != nil {
		t.Errorf("note a not materialized: %v", err)
	}
	if _, err := e.statuses.FindByURI(ctx, b.URI); err != nil {
		t.Errorf("note b not materialized: %v", err)
	}
	if got := e.peer.fetchCount("/notes/a"); got != 1 {
		t.Errorf("note a fetched %d times, want 1", got)
	}
	if got := e.peer.fetchCount("/notes/b"); got != 1 {
		t.Errorf("note b fetched %d times, want 1", got)
	}
}

func TestResolveDepthBounded(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	// A reply chain longer than the resolver walks.
	const chain = 7
	notes := make([]*Note, chain)
	for i := chain - 1; i >= 0; i-- {
		note := &Note{
			EntityBase: e.peer.newBase(TypeNote, fmt.Sprintf("/notes/c%d", i)),
			Content:    map[string]ContentEntry{"text/plain": {Content: fmt.Sprintf("c%d", i)}},
		}
		if i < chain-1 {
			note.RepliesTo = []string{notes[i+1].URI}
		}
		notes[i] = note
		e.peer.serve(t, fmt.Sprintf("/notes/c%d", i), note)
	}

	if _, err := e.resolver.Resolve(ctx, e.alice, notes[0].URI); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if got := e.peer.fetchCount("/notes/c6"); got != 0 {
		t.Errorf("tail of the chain fetched %d times, want 0", got)
	}
	if _, err := e.statuses.FindByURI(ctx, notes[0].URI); err != nil {
		t.Errorf("head of the chain not materialized: %v", err)
	}
}

func TestResolveActor(t *testing.T) {
	e := newTestEnv(t)

	user, err := e.resolver.ResolveActor(context.Background(), e.alice, e.peer.actorURI)
	if err != nil {
		t.Fatal(err)
	}
	if user.Username != "bob" {
		t.Errorf("username = %q, want %q", user.Username, "bob")
	}
	if user.Inbox != e.peer.inboxURI {
		t.Errorf("inbox = %q, want %q", user.Inbox, e.peer.inboxURI)
	}
}

func TestResolveActorRejectsNonUser(t *testing.T) {
	e := newTestEnv(t)

	note := &Note{
		EntityBase: e.peer.newBase(TypeNote, "/notes/1"),
		Content:    map[string]ContentEntry{"text/plain": {Content: "hi"}},
	}
	e.peer.serve(t, "/notes/1", note)

	if _, err := e.resolver.ResolveActor(context.Background(), e.alice, note.URI); err == nil {
		t.Fatal("resolving a note as an actor succeeded")
	}
}

func TestResolveStatusNonNote(t *testing.T) {
	e := newTestEnv(t)

	if _, err := e.resolver.ResolveStatus(context.Background(), e.alice, e.peer.actorURI); err == nil {
		t.Fatal("resolving a user as a status succeeded")
	}
}

func TestNotePreferredContent(t *testing.T) {
	body, contentType := notePreferredContent(map[string]ContentEntry{
		"text/plain": {Content: "plain"},
		"text/html":  {Content: "<p>rich</p>"},
	})
	if body != "<p>rich</p>" || contentType != "text/html" {
		t.Errorf("got %q (%s), want the html rendering", body, contentType)
	}

	body, contentType = notePreferredContent(nil)
	if body != "" || contentType != "" {
		t.Errorf("got %q (%s) for an empty map", body, contentType)
	}

	body, contentType = notePreferredContent(map[string]ContentEntry{
		"application/vnd.example": {Content: "odd"},
	})
	if body != "odd" || contentType != "application/vnd.example" {
		t.Errorf("got %q (%s), want the only rendering", body, contentType)
	}
}

func TestStatusFromNoteDefaults(t *testing.T) {
	note := &Note{
		EntityBase: EntityBase{
			URI:    "https://remote.example/notes/1",
			Author: "https://remote.example/users/bob",
		},
	}

	status := StatusFromNote(note)
	if status.Visibility != VisibilityPublic {
		t.Errorf("visibility = %q, want the public default", status.Visibility)
	}
	if status.InstanceHost != "remote.example" {
		t.Errorf("instance host = %q, want %q", status.InstanceHost, "remote.example")
	}
}
