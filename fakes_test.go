package versia

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/yumine/versia/lib/crypt"
	"github.com/yumine/versia/lib/httpsign"
)

// in-memory stores

type fakeAccountStore struct {
	mu   sync.Mutex
	rows map[string]*Account
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{rows: map[string]*Account{}}
}

func (s *fakeAccountStore) Find(c context.Context, id string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *acc
	return &cp, nil
}

func (s *fakeAccountStore) FindByEmail(c context.Context, email string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.rows {
		if acc.Email == email {
			cp := *acc
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeAccountStore) FindByUsername(c context.Context, username string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.rows {
		if acc.Username == username {
			cp := *acc
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeAccountStore) Save(c context.Context, account *Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *account
	s.rows[account.ID] = &cp
	return nil
}

type fakeRemoteObjectStore struct {
	mu    sync.Mutex
	byURI map[string]*RemoteObject
}

func newFakeRemoteObjectStore() *fakeRemoteObjectStore {
	return &fakeRemoteObjectStore{byURI: map[string]*RemoteObject{}}
}

func (s *fakeRemoteObjectStore) FindByURI(c context.Context, uri string) (*RemoteObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	object, ok := s.byURI[uri]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *object
	return &cp, nil
}

func (s *fakeRemoteObjectStore) FindByRemoteID(c context.Context, remoteID string) (*RemoteObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, object := range s.byURI {
		if object.RemoteID == remoteID {
			cp := *object
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeRemoteObjectStore) Upsert(c context.Context, object *RemoteObject) (*RemoteObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *object
	if existing, ok := s.byURI[object.URI]; ok {
		cp.ID = existing.ID
	}
	s.byURI[object.URI] = &cp
	out := cp
	return &out, nil
}

func (s *fakeRemoteObjectStore) DeleteByURI(c context.Context, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byURI, uri)
	return nil
}

type fakeStatusStore struct {
	mu   sync.Mutex
	rows map[string]*Status
}

func newFakeStatusStore() *fakeStatusStore {
	return &fakeStatusStore{rows: map[string]*Status{}}
}

func (s *fakeStatusStore) Find(c context.Context, id string) (*Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *st
	return &cp, nil
}

func (s *fakeStatusStore) FindByURI(c context.Context, uri string) (*Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.rows {
		if st.URI == uri {
			cp := *st
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeStatusStore) Upsert(c context.Context, status *Status) (*Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *status
	for _, existing := range s.rows {
		if existing.URI == status.URI {
			cp.ID = existing.ID
			break
		}
	}
	s.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *fakeStatusStore) Update(c context.Context, status *Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[status.ID]; !ok {
		return ErrNotFound
	}
	cp := *status
	s.rows[status.ID] = &cp
	return nil
}

func (s *fakeStatusStore) DeleteByURI(c context.Context, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, st := range s.rows {
		if st.URI == uri {
			delete(s.rows, id)
		}
	}
	return nil
}

func (s *fakeStatusStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

type fakeFavouriteStore struct {
	mu   sync.Mutex
	rows []*Favourite
}

func newFakeFavouriteStore() *fakeFavouriteStore {
	return &fakeFavouriteStore{}
}

func (s *fakeFavouriteStore) Insert(c context.Context, favourite *Favourite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.AccountURI == favourite.AccountURI && row.StatusID == favourite.StatusID {
			return nil
		}
	}
	cp := *favourite
	s.rows = append(s.rows, &cp)
	return nil
}

func (s *fakeFavouriteStore) Find(c context.Context, accountURI string, statusID string) (*Favourite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.AccountURI == accountURI && row.StatusID == statusID {
			cp := *row
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeFavouriteStore) DeleteByURI(c context.Context, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.rows[:0]
	for _, row := range s.rows {
		if row.URI != uri {
			kept = append(kept, row)
		}
	}
	s.rows = kept
	return nil
}

func (s *fakeFavouriteStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

type fakeRelationshipStore struct {
	mu   sync.Mutex
	rows map[[2]string]*Relationship
}

func newFakeRelationshipStore() *fakeRelationshipStore {
	return &fakeRelationshipStore{rows: map[[2]string]*Relationship{}}
}

func (s *fakeRelationshipStore) Find(c context.Context, ownerURI string, subjectURI string) (*Relationship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rel, ok := s.rows[[2]string{ownerURI, subjectURI}]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rel
	return &cp, nil
}

func (s *fakeRelationshipStore) Upsert(c context.Context, relationship *Relationship) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *relationship
	s.rows[[2]string{relationship.OwnerURI, relationship.SubjectURI}] = &cp
	return nil
}

func (s *fakeRelationshipStore) Delete(c context.Context, ownerURI string, subjectURI string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, [2]string{ownerURI, subjectURI})
	return nil
}

type fakeNotificationStore struct {
	mu   sync.Mutex
	rows []*Notification
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{}
}

func (s *fakeNotificationStore) Insert(c context.Context, notification *Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *notification
	s.rows = append(s.rows, &cp)
	return nil
}

func (s *fakeNotificationStore) ListForAccount(c context.Context, notifiedURI string) ([]*Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Notification
	for _, row := range s.rows {
		if row.NotifiedURI == notifiedURI {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeNotificationStore) all() []*Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Notification, len(s.rows))
	copy(out, s.rows)
	return out
}

// fakePeer is a remote instance behind an httptest server. It serves
// entity documents at registered paths and records inbox deliveries.
type fakePeer struct {
	ts       *httptest.Server
	key      ed25519.PrivateKey
	actorURI string
	inboxURI string

	mu          sync.Mutex
	entities    map[string][]byte
	fetches     map[string]int
	inbox       [][]byte
	lastHeaders http.Header
}

func newFakePeer(t *testing.T) *fakePeer {
	t.Helper()

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	p := &fakePeer{
		key:      key,
		entities: map[string][]byte{},
		fetches:  map[string]int{},
	}
	p.ts = httptest.NewServer(http.HandlerFunc(p.serveHTTP))
	t.Cleanup(p.ts.Close)

	p.actorURI = p.ts.URL + "/users/bob"
	p.inboxURI = p.ts.URL + "/inbox"

	privPEM, err := crypt.ConvertPrivateKeyToPEM(key)
	if err != nil {
		t.Fatal(err)
	}
	pubPEM, err := crypt.GeneratePublicKeyPEM(privPEM)
	if err != nil {
		t.Fatal(err)
	}

	p.serve(t, "/users/bob", &User{
		EntityBase: p.newBase(TypeUser, "/users/bob"),
		Username:   "bob",
		PublicKey: UserPublicKey{
			Actor:     p.actorURI,
			PublicKey: pubPEM,
		},
		Inbox: p.inboxURI,
	})

	return p
}

func (p *fakePeer) serveHTTP(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	p.fetches[r.URL.Path]++
	p.lastHeaders = r.Header.Clone()
	raw, ok := p.entities[r.URL.Path]
	p.mu.Unlock()

	if r.Method == http.MethodPost && r.URL.Path == "/inbox" {
		body, _ := io.ReadAll(r.Body)
		p.mu.Lock()
		p.inbox = append(p.inbox, body)
		p.mu.Unlock()
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte("{}"))
		return
	}

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(raw)
}

// newBase builds the shared entity fields for a document served by this
// peer, authored by its actor.
func (p *fakePeer) newBase(t EntityType, path string) EntityBase {
	base := EntityBase{
		ID:        generateID4122(),
		Type:      t,
		URI:       p.ts.URL + path,
		Author:    p.actorURI,
		CreatedAt: time.Now().UTC(),
	}
	if t == TypeServerMetadata {
		base.Author = ""
	}
	return base
}

func (p *fakePeer) serve(t *testing.T, path string, entity Entity) []byte {
	t.Helper()
	raw, err := json.Marshal(entity)
	if err != nil {
		t.Fatal(err)
	}
	p.mu.Lock()
	p.entities[path] = raw
	p.mu.Unlock()
	return raw
}

func (p *fakePeer) fetchCount(path string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fetches[path]
}

func (p *fakePeer) lastRequestHeaders() http.Header {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastHeaders
}

func (p *fakePeer) inboxDeliveries() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]byte, len(p.inbox))
	copy(out, p.inbox)
	return out
}

// testEnv wires a processor, resolver and remote client against
// in-memory stores and one fake peer.
type testEnv struct {
	urlResolver   *URLResolver
	remote        *RemoteServer
	resolver      *Resolver
	processor     *Processor
	peer          *fakePeer
	accounts      *fakeAccountStore
	objects       *fakeRemoteObjectStore
	statuses      *fakeStatusStore
	favourites    *fakeFavouriteStore
	relationships *fakeRelationshipStore
	notifications *fakeNotificationStore
	alice         *Account
	aliceURI      string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := zerolog.Nop()
	cfg := &Config{
		SoftwareName:     "versia",
		Host:             "localhost:8080",
		Port:             8080,
		SignatureMaxSkew: 30 * time.Second,
		FetchTimeout:     5 * time.Second,
	}

	e := &testEnv{
		urlResolver:   NewURLResolver(cfg),
		peer:          newFakePeer(t),
		accounts:      newFakeAccountStore(),
		objects:       newFakeRemoteObjectStore(),
		statuses:      newFakeStatusStore(),
		favourites:    newFakeFavouriteStore(),
		relationships: newFakeRelationshipStore(),
		notifications: newFakeNotificationStore(),
	}
	e.remote = NewRemoteServer(cfg, e.urlResolver)
	e.resolver = NewResolver(&log, e.remote, e.objects, e.statuses)
	e.processor = NewProcessor(cfg, &log, e.urlResolver, e.remote, e.resolver,
		e.accounts, e.objects, e.statuses, e.favourites, e.relationships, e.notifications)

	privPEM, err := crypt.GeneratePrivateKeyPEM()
	if err != nil {
		t.Fatal(err)
	}
	e.alice = &Account{
		ID:         generateID(),
		Username:   "alice",
		Email:      "alice@example.com",
		PrivateKey: privPEM,
	}
	if err := e.accounts.Save(context.Background(), e.alice); err != nil {
		t.Fatal(err)
	}
	e.aliceURI = e.urlResolver.resolveActorURL(e.alice.ID)

	return e
}

func newInboxRequest(e *testEnv, raw []byte) *http.Request {
	return httptest.NewRequest(http.MethodPost, e.urlResolver.resolveInboxURL(e.alice.ID), bytes.NewReader(raw))
}

func signInboxRequest(e *testEnv, req *http.Request, raw []byte) error {
	return httpsign.SignRequest(e.peer.key, e.peer.actorURI, req, raw)
}

// deliver signs raw with the peer's key and runs it through the inbox.
// mutate, when set, tampers with the request after signing.
func (e *testEnv) deliver(t *testing.T, raw []byte, mutate func(*http.Request)) error {
	t.Helper()

	req := newInboxRequest(e, raw)
	if err := signInboxRequest(e, req, raw); err != nil {
		t.Fatal(err)
	}
	if mutate != nil {
		mutate(req)
	}
	return e.processor.ReceiveInbox(context.Background(), e.alice.ID, req, raw)
}

func (e *testEnv) seedLocalStatus(t *testing.T, id string) *Status {
	t.Helper()

	saved, err := e.statuses.Upsert(context.Background(), &Status{
		ID:          id,
		URI:         e.urlResolver.resolveNoteURL(id),
		AuthorURI:   e.aliceURI,
		Content:     "hello",
		ContentType: "text/plain",
		Visibility:  VisibilityPublic,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatal(err)
	}
	return saved
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}
