package versia

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestReceiveInboxLike(t *testing.T) {
	e := newTestEnv(t)
	status := e.seedLocalStatus(t, "st1")

	like := &Like{
		EntityBase: e.peer.newBase(TypeLike, "/likes/1"),
		Object:     status.URI,
	}
	if err := e.deliver(t, mustMarshal(t, like), nil); err != nil {
		t.Fatalf("deliver like: %v", err)
	}

	fav, err := e.favourites.Find(context.Background(), e.peer.actorURI, status.ID)
	if err != nil {
		t.Fatalf("favourite not recorded: %v", err)
	}
	if fav.URI != like.URI {
		t.Errorf("favourite uri = %q, want %q", fav.URI, like.URI)
	}

	notifications, err := e.notifications.ListForAccount(context.Background(), e.aliceURI)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifications) != 1 {
		t.Fatalf("got %d notifications, want 1", len(notifications))
	}
	if notifications[0].Type != NotificationFavourite {
		t.Errorf("notification type = %q, want %q", notifications[0].Type, NotificationFavourite)
	}
	if notifications[0].StatusID != status.ID {
		t.Errorf("notification status = %q, want %q", notifications[0].StatusID, status.ID)
	}
}

func TestReceiveInboxLikeDuplicate(t *testing.T) {
	e := newTestEnv(t)
	status := e.seedLocalStatus(t, "st1")

	like := &Like{
		EntityBase: e.peer.newBase(TypeLike, "/likes/1"),
		Object:     status.URI,
	}
	raw := mustMarshal(t, like)

	if err := e.deliver(t, raw, nil); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	if err := e.deliver(t, raw, nil); err != nil {
		t.Fatalf("redelivery must not error: %v", err)
	}

	if got := e.favourites.count(); got != 1 {
		t.Errorf("got %d favourites after redelivery, want 1", got)
	}

	notifications, err := e.notifications.ListForAccount(context.Background(), e.aliceURI)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifications) != 1 {
		t.Errorf("got %d notifications after redelivery, want 1", len(notifications))
	}
}

func TestReceiveInboxLikeUnknownStatus(t *testing.T) {
	e := newTestEnv(t)

	like := &Like{
		EntityBase: e.peer.newBase(TypeLike, "/likes/1"),
		Object:     e.urlResolver.resolveNoteURL("missing"),
	}
	err := e.deliver(t, mustMarshal(t, like), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestReceiveInboxUndoLike(t *testing.T) {
	e := newTestEnv(t)
	status := e.seedLocalStatus(t, "st1")

	like := &Like{
		EntityBase: e.peer.newBase(TypeLike, "/likes/1"),
		Object:     status.URI,
	}
	if err := e.deliver(t, mustMarshal(t, like), nil); err != nil {
		t.Fatalf("deliver like: %v", err)
	}

	undo := &Undo{
		EntityBase: e.peer.newBase(TypeUndo, "/undos/1"),
		Object:     like.URI,
	}
	if err := e.deliver(t, mustMarshal(t, undo), nil); err != nil {
		t.Fatalf("deliver undo: %v", err)
	}

	if got := e.favourites.count(); got != 0 {
		t.Errorf("got %d favourites after undo, want 0", got)
	}

	// The mirror is tombstoned, so a replayed undo finds nothing.
	replay := &Undo{
		EntityBase: e.peer.newBase(TypeUndo, "/undos/2"),
		Object:     like.URI,
	}
	if err := e.deliver(t, mustMarshal(t, replay), nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("replayed undo: got %v, want ErrNotFound", err)
	}
}

func TestReceiveInboxAnnounceAndUndo(t *testing.T) {
	e := newTestEnv(t)
	status := e.seedLocalStatus(t, "st1")
	status.Visibility = VisibilityUnlisted
	if _, err := e.statuses.Upsert(context.Background(), status); err != nil {
		t.Fatal(err)
	}

	announce := &Announce{
		EntityBase: e.peer.newBase(TypeAnnounce, "/announces/1"),
		Object:     status.URI,
	}
	if err := e.deliver(t, mustMarshal(t, announce), nil); err != nil {
		t.Fatalf("deliver announce: %v", err)
	}

	wrapper, err := e.statuses.FindByURI(context.Background(), announce.URI)
	if err != nil {
		t.Fatalf("wrapper not recorded: %v", err)
	}
	if wrapper.ReblogOfID != status.ID {
		t.Errorf("wrapper reblog_of = %q, want %q", wrapper.ReblogOfID, status.ID)
	}
	if wrapper.Visibility != VisibilityUnlisted {
		t.Errorf("wrapper visibility = %q, want %q", wrapper.Visibility, VisibilityUnlisted)
	}
	if wrapper.Content != "" {
		t.Errorf("wrapper carries content %q", wrapper.Content)
	}

	notifications, err := e.notifications.ListForAccount(context.Background(), e.aliceURI)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifications) != 1 || notifications[0].Type != NotificationReblog {
		t.Fatalf("got %v, want one reblog notification", notifications)
	}

	undo := &Undo{
		EntityBase: e.peer.newBase(TypeUndo, "/undos/1"),
		Object:     announce.URI,
	}
	if err := e.deliver(t, mustMarshal(t, undo), nil); err != nil {
		t.Fatalf("deliver undo: %v", err)
	}
	if _, err := e.statuses.FindByURI(context.Background(), announce.URI); !errors.Is(err, ErrNotFound) {
		t.Fatalf("wrapper still present after undo: %v", err)
	}
	if _, err := e.statuses.FindByURI(context.Background(), status.URI); err != nil {
		t.Fatalf("undo of the wrapper removed the target: %v", err)
	}
}

func TestReceiveInboxNote(t *testing.T) {
	e := newTestEnv(t)

	note := &Note{
		EntityBase: e.peer.newBase(TypeNote, "/notes/1"),
		Content: map[string]ContentEntry{
			"text/plain": {Content: "hi"},
			"text/html":  {Content: "<p>hi</p>"},
		},
		Visibility: "public",
		Mentions:   []string{e.aliceURI},
	}
	if err := e.deliver(t, mustMarshal(t, note), nil); err != nil {
		t.Fatalf("deliver note: %v", err)
	}

	status, err := e.statuses.FindByURI(context.Background(), note.URI)
	if err != nil {
		t.Fatalf("status not recorded: %v", err)
	}
	if status.Content != "<p>hi</p>" || status.ContentType != "text/html" {
		t.Errorf("got %q (%s), want the html rendering", status.Content, status.ContentType)
	}
	if status.AuthorURI != e.peer.actorURI {
		t.Errorf("author = %q, want %q", status.AuthorURI, e.peer.actorURI)
	}

	notifications, err := e.notifications.ListForAccount(context.Background(), e.aliceURI)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifications) != 1 || notifications[0].Type != NotificationMention {
		t.Fatalf("got %v, want one mention notification", notifications)
	}
}

func TestReceiveInboxNoteRedelivery(t *testing.T) {
	e := newTestEnv(t)

	note := &Note{
		EntityBase: e.peer.newBase(TypeNote, "/notes/1"),
		Content:    map[string]ContentEntry{"text/plain": {Content: "hi"}},
		Mentions:   []string{e.aliceURI},
	}
	raw := mustMarshal(t, note)

	if err := e.deliver(t, raw, nil); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	if err := e.deliver(t, raw, nil); err != nil {
		t.Fatalf("redelivery must not error: %v", err)
	}

	if got := e.statuses.count(); got != 1 {
		t.Errorf("got %d statuses after redelivery, want 1", got)
	}
	notifications, err := e.notifications.ListForAccount(context.Background(), e.aliceURI)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifications) != 1 {
		t.Errorf("got %d mention notifications after redelivery, want 1", len(notifications))
	}
}

func TestReceiveInboxAnnounceRedelivery(t *testing.T) {
	e := newTestEnv(t)
	status := e.seedLocalStatus(t, "st1")

	announce := &Announce{
		EntityBase: e.peer.newBase(TypeAnnounce, "/announces/1"),
		Object:     status.URI,
	}
	raw := mustMarshal(t, announce)

	if err := e.deliver(t, raw, nil); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	if err := e.deliver(t, raw, nil); err != nil {
		t.Fatalf("redelivery must not error: %v", err)
	}

	notifications, err := e.notifications.ListForAccount(context.Background(), e.aliceURI)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifications) != 1 {
		t.Errorf("got %d reblog notifications after redelivery, want 1", len(notifications))
	}
}

func TestReceiveInboxNoteUnreachableParent(t *testing.T) {
	e := newTestEnv(t)

	note := &Note{
		EntityBase: e.peer.newBase(TypeNote, "/notes/1"),
		Content:    map[string]ContentEntry{"text/plain": {Content: "reply"}},
		RepliesTo:  []string{e.peer.ts.URL + "/notes/gone"},
	}
	if err := e.deliver(t, mustMarshal(t, note), nil); err != nil {
		t.Fatalf("deliver note: %v", err)
	}

	status, err := e.statuses.FindByURI(context.Background(), note.URI)
	if err != nil {
		t.Fatalf("status not recorded: %v", err)
	}
	if status.InReplyToID != "" {
		t.Errorf("in_reply_to = %q, want empty for an unreachable parent", status.InReplyToID)
	}
}

func TestReceiveInboxNoteResolvesParent(t *testing.T) {
	e := newTestEnv(t)

	parent := &Note{
		EntityBase: e.peer.newBase(TypeNote, "/notes/parent"),
		Content:    map[string]ContentEntry{"text/plain": {Content: "root"}},
	}
	e.peer.serve(t, "/notes/parent", parent)

	reply := &Note{
		EntityBase: e.peer.newBase(TypeNote, "/notes/reply"),
		Content:    map[string]ContentEntry{"text/plain": {Content: "reply"}},
		RepliesTo:  []string{parent.URI},
	}
	if err := e.deliver(t, mustMarshal(t, reply), nil); err != nil {
		t.Fatalf("deliver reply: %v", err)
	}

	parentStatus, err := e.statuses.FindByURI(context.Background(), parent.URI)
	if err != nil {
		t.Fatalf("parent not resolved: %v", err)
	}
	replyStatus, err := e.statuses.FindByURI(context.Background(), reply.URI)
	if err != nil {
		t.Fatalf("reply not recorded: %v", err)
	}
	if replyStatus.InReplyToID != parentStatus.ID {
		t.Errorf("in_reply_to = %q, want %q", replyStatus.InReplyToID, parentStatus.ID)
	}
}

func TestReceiveInboxUndoNote(t *testing.T) {
	e := newTestEnv(t)

	note := &Note{
		EntityBase: e.peer.newBase(TypeNote, "/notes/1"),
		Content:    map[string]ContentEntry{"text/plain": {Content: "hi"}},
	}
	if err := e.deliver(t, mustMarshal(t, note), nil); err != nil {
		t.Fatalf("deliver note: %v", err)
	}

	undo := &Undo{
		EntityBase: e.peer.newBase(TypeUndo, "/undos/1"),
		Object:     note.URI,
	}
	if err := e.deliver(t, mustMarshal(t, undo), nil); err != nil {
		t.Fatalf("deliver undo: %v", err)
	}

	if _, err := e.statuses.FindByURI(context.Background(), note.URI); !errors.Is(err, ErrNotFound) {
		t.Fatalf("status still present after undo: %v", err)
	}
}

func TestReceiveInboxPatch(t *testing.T) {
	e := newTestEnv(t)

	note := &Note{
		EntityBase: e.peer.newBase(TypeNote, "/notes/1"),
		Content:    map[string]ContentEntry{"text/plain": {Content: "first"}},
	}
	if err := e.deliver(t, mustMarshal(t, note), nil); err != nil {
		t.Fatalf("deliver note: %v", err)
	}

	patch := &Patch{
		Note: Note{
			EntityBase: e.peer.newBase(TypePatch, "/patches/1"),
			Content:    map[string]ContentEntry{"text/plain": {Content: "second"}},
			Subject:    "cw",
		},
		PatchedID: note.ID,
		PatchedAt: time.Now().UTC(),
	}
	if err := e.deliver(t, mustMarshal(t, patch), nil); err != nil {
		t.Fatalf("deliver patch: %v", err)
	}

	status, err := e.statuses.FindByURI(context.Background(), note.URI)
	if err != nil {
		t.Fatal(err)
	}
	if status.Content != "second" {
		t.Errorf("content = %q, want %q", status.Content, "second")
	}
	if status.SpoilerText != "cw" {
		t.Errorf("spoiler = %q, want %q", status.SpoilerText, "cw")
	}
}

func TestReceiveInboxPatchUnknownTarget(t *testing.T) {
	e := newTestEnv(t)

	patch := &Patch{
		Note: Note{
			EntityBase: e.peer.newBase(TypePatch, "/patches/1"),
			Content:    map[string]ContentEntry{"text/plain": {Content: "second"}},
		},
		PatchedID: generateID4122(),
		PatchedAt: time.Now().UTC(),
	}
	if err := e.deliver(t, mustMarshal(t, patch), nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestReceiveInboxFollowUnlocked(t *testing.T) {
	e := newTestEnv(t)

	follow := &Follow{
		EntityBase: e.peer.newBase(TypeFollow, "/follows/1"),
		Followee:   e.aliceURI,
	}
	if err := e.deliver(t, mustMarshal(t, follow), nil); err != nil {
		t.Fatalf("deliver follow: %v", err)
	}

	rel, err := e.relationships.Find(context.Background(), e.peer.actorURI, e.aliceURI)
	if err != nil {
		t.Fatalf("relationship not recorded: %v", err)
	}
	if !rel.Following || rel.Requested {
		t.Errorf("got following=%v requested=%v, want an accepted edge", rel.Following, rel.Requested)
	}

	notifications, err := e.notifications.ListForAccount(context.Background(), e.aliceURI)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifications) != 1 || notifications[0].Type != NotificationFollow {
		t.Fatalf("got %v, want one follow notification", notifications)
	}

	deliveries := e.peer.inboxDeliveries()
	if len(deliveries) != 1 {
		t.Fatalf("got %d outbound deliveries, want the follow accept", len(deliveries))
	}
	entity, err := ValidateEntity(deliveries[0])
	if err != nil {
		t.Fatalf("outbound delivery is not a valid entity: %v", err)
	}
	accept, ok := entity.(*FollowAccept)
	if !ok {
		t.Fatalf("outbound delivery is a %T, want *FollowAccept", entity)
	}
	if accept.Follower != e.peer.actorURI {
		t.Errorf("accept follower = %q, want %q", accept.Follower, e.peer.actorURI)
	}
}

func TestReceiveInboxFollowLocked(t *testing.T) {
	e := newTestEnv(t)
	e.alice.ManuallyApprovesFollowers = true
	if err := e.accounts.Save(context.Background(), e.alice); err != nil {
		t.Fatal(err)
	}

	follow := &Follow{
		EntityBase: e.peer.newBase(TypeFollow, "/follows/1"),
		Followee:   e.aliceURI,
	}
	if err := e.deliver(t, mustMarshal(t, follow), nil); err != nil {
		t.Fatalf("deliver follow: %v", err)
	}

	rel, err := e.relationships.Find(context.Background(), e.peer.actorURI, e.aliceURI)
	if err != nil {
		t.Fatalf("relationship not recorded: %v", err)
	}
	if rel.Following || !rel.Requested {
		t.Errorf("got following=%v requested=%v, want a pending edge", rel.Following, rel.Requested)
	}

	notifications, err := e.notifications.ListForAccount(context.Background(), e.aliceURI)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifications) != 1 || notifications[0].Type != NotificationFollowRequest {
		t.Fatalf("got %v, want one follow request notification", notifications)
	}

	if got := len(e.peer.inboxDeliveries()); got != 0 {
		t.Errorf("got %d outbound deliveries, want none for a locked account", got)
	}
}

func TestReceiveInboxFollowWrongFollowee(t *testing.T) {
	e := newTestEnv(t)

	// Delivered to alice's inbox but naming another local user.
	follow := &Follow{
		EntityBase: e.peer.newBase(TypeFollow, "/follows/1"),
		Followee:   e.urlResolver.resolveActorURL("someone-else"),
	}
	if err := e.deliver(t, mustMarshal(t, follow), nil); !errors.Is(err, ErrInvalidActivity) {
		t.Fatalf("got %v, want ErrInvalidActivity", err)
	}

	if _, err := e.relationships.Find(context.Background(), e.peer.actorURI, follow.Followee); !errors.Is(err, ErrNotFound) {
		t.Fatalf("relationship recorded for a misdirected follow: %v", err)
	}
	if got := len(e.notifications.all()); got != 0 {
		t.Errorf("got %d notifications, want none", got)
	}
}

func TestReceiveInboxUndoFollow(t *testing.T) {
	e := newTestEnv(t)

	follow := &Follow{
		EntityBase: e.peer.newBase(TypeFollow, "/follows/1"),
		Followee:   e.aliceURI,
	}
	if err := e.deliver(t, mustMarshal(t, follow), nil); err != nil {
		t.Fatalf("deliver follow: %v", err)
	}

	undo := &Undo{
		EntityBase: e.peer.newBase(TypeUndo, "/undos/1"),
		Object:     follow.URI,
	}
	if err := e.deliver(t, mustMarshal(t, undo), nil); err != nil {
		t.Fatalf("deliver undo: %v", err)
	}

	if _, err := e.relationships.Find(context.Background(), e.peer.actorURI, e.aliceURI); !errors.Is(err, ErrNotFound) {
		t.Fatalf("relationship still present after undo: %v", err)
	}
}

func TestReceiveInboxFollowAccept(t *testing.T) {
	e := newTestEnv(t)
	if err := e.relationships.Upsert(context.Background(), &Relationship{
		OwnerURI:   e.aliceURI,
		SubjectURI: e.peer.actorURI,
		Requested:  true,
	}); err != nil {
		t.Fatal(err)
	}

	accept := &FollowAccept{
		EntityBase: e.peer.newBase(TypeFollowAccept, "/accepts/1"),
		Follower:   e.aliceURI,
	}
	if err := e.deliver(t, mustMarshal(t, accept), nil); err != nil {
		t.Fatalf("deliver accept: %v", err)
	}

	rel, err := e.relationships.Find(context.Background(), e.aliceURI, e.peer.actorURI)
	if err != nil {
		t.Fatal(err)
	}
	if !rel.Following || rel.Requested {
		t.Errorf("got following=%v requested=%v, want the accepted edge", rel.Following, rel.Requested)
	}
}

func TestReceiveInboxFollowAcceptWithoutRequest(t *testing.T) {
	e := newTestEnv(t)

	accept := &FollowAccept{
		EntityBase: e.peer.newBase(TypeFollowAccept, "/accepts/1"),
		Follower:   e.aliceURI,
	}
	if err := e.deliver(t, mustMarshal(t, accept), nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestReceiveInboxFollowReject(t *testing.T) {
	e := newTestEnv(t)
	if err := e.relationships.Upsert(context.Background(), &Relationship{
		OwnerURI:   e.aliceURI,
		SubjectURI: e.peer.actorURI,
		Requested:  true,
	}); err != nil {
		t.Fatal(err)
	}

	reject := &FollowReject{
		EntityBase: e.peer.newBase(TypeFollowReject, "/rejects/1"),
		Follower:   e.aliceURI,
	}
	if err := e.deliver(t, mustMarshal(t, reject), nil); err != nil {
		t.Fatalf("deliver reject: %v", err)
	}

	if _, err := e.relationships.Find(context.Background(), e.aliceURI, e.peer.actorURI); !errors.Is(err, ErrNotFound) {
		t.Fatalf("relationship still present after reject: %v", err)
	}
}

func TestReceiveInboxUndoForeignObject(t *testing.T) {
	e := newTestEnv(t)

	// A mirror owned by somebody else entirely.
	if _, err := e.objects.Upsert(context.Background(), &RemoteObject{
		ID:        generateID(),
		RemoteID:  generateID4122(),
		Type:      TypeLike,
		URI:       "https://elsewhere.example/likes/1",
		AuthorURI: "https://elsewhere.example/users/carol",
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatal(err)
	}

	undo := &Undo{
		EntityBase: e.peer.newBase(TypeUndo, "/undos/1"),
		Object:     "https://elsewhere.example/likes/1",
	}
	if err := e.deliver(t, mustMarshal(t, undo), nil); !errors.Is(err, ErrInvalidActivity) {
		t.Fatalf("got %v, want ErrInvalidActivity", err)
	}
}

func TestReceiveInboxDislikeRecordedOnly(t *testing.T) {
	e := newTestEnv(t)

	dislike := &Dislike{
		EntityBase: e.peer.newBase(TypeDislike, "/dislikes/1"),
		Object:     e.peer.ts.URL + "/notes/1",
	}
	if err := e.deliver(t, mustMarshal(t, dislike), nil); err != nil {
		t.Fatalf("deliver dislike: %v", err)
	}

	if _, err := e.objects.FindByURI(context.Background(), dislike.URI); err != nil {
		t.Fatalf("dislike not recorded: %v", err)
	}
	if got := e.favourites.count(); got != 0 {
		t.Errorf("got %d favourites, want none", got)
	}
	if got := len(e.notifications.all()); got != 0 {
		t.Errorf("got %d notifications, want none", got)
	}
}

func TestReceiveInboxAuthorMismatch(t *testing.T) {
	e := newTestEnv(t)
	status := e.seedLocalStatus(t, "st1")

	like := &Like{
		EntityBase: e.peer.newBase(TypeLike, "/likes/1"),
		Object:     status.URI,
	}
	like.Author = "https://elsewhere.example/users/carol"

	if err := e.deliver(t, mustMarshal(t, like), nil); !errors.Is(err, ErrInvalidActivity) {
		t.Fatalf("got %v, want ErrInvalidActivity", err)
	}
	if got := e.favourites.count(); got != 0 {
		t.Errorf("got %d favourites, want none", got)
	}
}

func TestReceiveInboxTamperedBody(t *testing.T) {
	e := newTestEnv(t)
	status := e.seedLocalStatus(t, "st1")

	like := &Like{
		EntityBase: e.peer.newBase(TypeLike, "/likes/1"),
		Object:     status.URI,
	}
	raw := mustMarshal(t, like)

	tampered := bytes.Replace(raw, []byte("Like"), []byte("Lika"), 1)
	req := newSignedRequest(t, e, raw)
	err := e.processor.ReceiveInbox(context.Background(), e.alice.ID, req, tampered)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("got %v, want ErrInvalidSignature", err)
	}
}

func TestReceiveInboxMissingSignature(t *testing.T) {
	e := newTestEnv(t)
	status := e.seedLocalStatus(t, "st1")

	like := &Like{
		EntityBase: e.peer.newBase(TypeLike, "/likes/1"),
		Object:     status.URI,
	}
	err := e.deliver(t, mustMarshal(t, like), func(req *http.Request) {
		req.Header.Del("Signature")
	})
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("got %v, want ErrInvalidSignature", err)
	}
}

func TestReceiveInboxStaleDate(t *testing.T) {
	e := newTestEnv(t)
	status := e.seedLocalStatus(t, "st1")

	like := &Like{
		EntityBase: e.peer.newBase(TypeLike, "/likes/1"),
		Object:     status.URI,
	}
	err := e.deliver(t, mustMarshal(t, like), func(req *http.Request) {
		req.Header.Set("Date", time.Now().Add(-2*time.Hour).UTC().Format(http.TimeFormat))
	})
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("got %v, want ErrInvalidSignature", err)
	}
}

func TestReceiveInboxUnknownType(t *testing.T) {
	e := newTestEnv(t)

	raw := mustMarshal(t, map[string]any{
		"id":         generateID4122(),
		"type":       "Zap",
		"uri":        e.peer.ts.URL + "/zaps/1",
		"author":     e.peer.actorURI,
		"created_at": time.Now().UTC(),
	})
	err := e.deliver(t, raw, nil)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("got %v, want a ValidationError", err)
	}
}

func TestNotifyTargets(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	// Self-action, remote target, empty target: all silent.
	e.processor.notify(ctx, NotificationFavourite, e.peer.actorURI, e.peer.actorURI, "st1")
	e.processor.notify(ctx, NotificationFavourite, e.peer.actorURI, "https://elsewhere.example/users/carol", "st1")
	e.processor.notify(ctx, NotificationFavourite, e.peer.actorURI, "", "st1")
	if got := len(e.notifications.all()); got != 0 {
		t.Fatalf("got %d notifications, want none", got)
	}

	e.processor.notify(ctx, NotificationFavourite, e.peer.actorURI, e.aliceURI, "st1")
	if got := len(e.notifications.all()); got != 1 {
		t.Fatalf("got %d notifications, want 1", got)
	}
}

func TestPostCreatesLocalStatus(t *testing.T) {
	e := newTestEnv(t)

	status, err := e.processor.Post(context.Background(), e.alice.ID, "hello world", VisibilityUnlisted)
	if err != nil {
		t.Fatal(err)
	}
	if status.AuthorURI != e.aliceURI {
		t.Errorf("author = %q, want %q", status.AuthorURI, e.aliceURI)
	}
	if status.Visibility != VisibilityUnlisted {
		t.Errorf("visibility = %q, want %q", status.Visibility, VisibilityUnlisted)
	}
	if _, err := e.statuses.FindByURI(context.Background(), status.URI); err != nil {
		t.Fatalf("status not persisted: %v", err)
	}
}

func TestSignupAndLogin(t *testing.T) {
	e := newTestEnv(t)

	id, err := e.processor.Signup(context.Background(), "dan@example.com", "dan", "hunter2")
	if err != nil {
		t.Fatal(err)
	}

	got, err := e.processor.Login(context.Background(), "dan@example.com", "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if got != id {
		t.Errorf("login returned %q, want %q", got, id)
	}

	if _, err := e.processor.Login(context.Background(), "dan@example.com", "wrong"); err == nil {
		t.Error("login with a wrong password succeeded")
	}
}

// newSignedRequest signs raw without delivering it, so tests can pair
// the signed request with a different body.
func newSignedRequest(t *testing.T, e *testEnv, raw []byte) *http.Request {
	t.Helper()
	req := newInboxRequest(e, raw)
	if err := signInboxRequest(e, req, raw); err != nil {
		t.Fatal(err)
	}
	return req
}
