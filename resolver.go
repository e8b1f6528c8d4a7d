package versia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// maxResolveDepth bounds transitive resolution (reply chains, quoted
// posts, authors) within a single call chain.
const maxResolveDepth = 5

// Resolver turns a bare URI into a locally cached, typed object,
// fetching it from the remote origin when no mirror exists. Resolution
// is idempotent: the remote_object table is upserted by its unique uri
// column, so concurrent resolvers of the same URI converge on one row.
type Resolver struct {
	log      *zerolog.Logger
	remote   *RemoteServer
	objects  RemoteObjectStore
	statuses StatusStore
}

func NewResolver(
	log *zerolog.Logger,
	remote *RemoteServer,
	objects RemoteObjectStore,
	statuses StatusStore,
) *Resolver {
	return &Resolver{
		log:      log,
		remote:   remote,
		objects:  objects,
		statuses: statuses,
	}
}

// resolveState tracks one resolution call chain: recursion depth and
// the URIs currently being resolved, to break mutual-reference loops
// between two instances.
type resolveState struct {
	depth     int
	resolving map[string]bool
}

func newResolveState() *resolveState {
	return &resolveState{resolving: map[string]bool{}}
}

// Resolve returns the local mirror of uri, fetching and persisting it
// if unknown. account is the local identity that signs the fetch.
func (r *Resolver) Resolve(c context.Context, account *Account, uri string) (*RemoteObject, error) {
	return r.resolve(c, account, uri, newResolveState())
}

func (r *Resolver) resolve(c context.Context, account *Account, uri string, st *resolveState) (*RemoteObject, error) {
	object, err := r.objects.FindByURI(c, uri)
	if err == nil {
		return object, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to look up object: %w", err)
	}

	if st.resolving[uri] {
		return nil, fmt.Errorf("already resolving %s in this chain", uri)
	}
	if st.depth >= maxResolveDepth {
		return nil, fmt.Errorf("resolution depth exceeded at %s", uri)
	}
	st.resolving[uri] = true
	st.depth++
	defer func() {
		delete(st.resolving, uri)
		st.depth--
	}()

	entity, raw, err := r.remote.GetEntity(c, account, uri)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", uri, err)
	}

	object, err = r.store(c, entity, raw)
	if err != nil {
		return nil, err
	}

	// Materialize projections and pull in the author so the mirror is
	// usable without a second fetch. Both are best effort.
	if note, ok := entity.(*Note); ok {
		r.materializeNote(c, account, note, st)
	}

	return object, nil
}

// store persists a validated entity as a remote object mirror.
func (r *Resolver) store(c context.Context, entity Entity, raw []byte) (*RemoteObject, error) {
	base := entity.Base()

	var extensions []byte
	if len(base.Extensions) > 0 {
		var err error
		extensions, err = json.Marshal(base.Extensions)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal extensions: %w", err)
		}
	}

	object, err := r.objects.Upsert(c, &RemoteObject{
		ID:         generateID(),
		RemoteID:   base.ID,
		Type:       base.Type,
		URI:        base.URI,
		AuthorURI:  base.Author,
		CreatedAt:  base.CreatedAt,
		ExtraData:  raw,
		Extensions: extensions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert object: %w", err)
	}
	return object, nil
}

// StoreEntity records an already-validated entity (an inbox delivery)
// without fetching anything.
func (r *Resolver) StoreEntity(c context.Context, entity Entity, raw []byte) (*RemoteObject, error) {
	return r.store(c, entity, raw)
}

// ResolveStatus returns the local status for uri, fetching the note
// behind it when unknown.
func (r *Resolver) ResolveStatus(c context.Context, account *Account, uri string) (*Status, error) {
	return r.resolveStatus(c, account, uri, newResolveState())
}

func (r *Resolver) resolveStatus(c context.Context, account *Account, uri string, st *resolveState) (*Status, error) {
	status, err := r.statuses.FindByURI(c, uri)
	if err == nil {
		return status, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to look up status: %w", err)
	}

	if _, err := r.resolve(c, account, uri, st); err != nil {
		return nil, fmt.Errorf("failed to resolve status: %w", err)
	}

	// Re-read: the fetch materializes the status row when the object
	// was a note; anything else stays ErrNotFound.
	status, err = r.statuses.FindByURI(c, uri)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up status: %w", err)
	}
	return status, nil
}

// ResolveReference resolves the first element of a reference list to a
// local status ID. An empty list, an unfetchable target or a validation
// failure all yield "": a reply to an unreachable parent still gets
// created, as a top-level post.
func (r *Resolver) ResolveReference(c context.Context, account *Account, uris []string) string {
	return r.resolveReference(c, account, uris, newResolveState())
}

func (r *Resolver) resolveReference(c context.Context, account *Account, uris []string, st *resolveState) string {
	if len(uris) == 0 {
		return ""
	}

	status, err := r.resolveStatus(c, account, uris[0], st)
	if err != nil {
		r.log.Debug().Err(err).Str("uri", uris[0]).Msg("reference left unresolved")
		return ""
	}
	return status.ID
}

// ResolveActor returns the typed user behind uri, from cache when the
// mirror exists, fetching otherwise.
func (r *Resolver) ResolveActor(c context.Context, account *Account, uri string) (*User, error) {
	object, err := r.Resolve(c, account, uri)
	if err != nil {
		return nil, err
	}
	if object.Type != TypeUser {
		return nil, fmt.Errorf("object %s is a %s, not a user", uri, object.Type)
	}

	entity, err := ValidateEntity(object.ExtraData)
	if err != nil {
		return nil, fmt.Errorf("failed to revalidate cached user: %w", err)
	}
	user, ok := entity.(*User)
	if !ok {
		return nil, fmt.Errorf("cached object %s is not a user", uri)
	}
	return user, nil
}

// materializeNote projects a fetched note into the status table,
// resolving its reply and quote targets best effort.
func (r *Resolver) materializeNote(c context.Context, account *Account, note *Note, st *resolveState) {
	// Cache the author's profile and key while the chain is hot.
	if note.Author != "" {
		if _, err := r.resolve(c, account, note.Author, st); err != nil {
			r.log.Debug().Err(err).Str("uri", note.Author).Msg("author left unresolved")
		}
	}

	status := StatusFromNote(note)
	status.InReplyToID = r.resolveReference(c, account, note.RepliesTo, st)
	status.QuotingID = r.resolveReference(c, account, note.Quotes, st)

	if _, err := r.statuses.Upsert(c, status); err != nil {
		r.log.Error().Err(err).Str("uri", note.URI).Msg("failed to materialize note")
	}
}

// notePreferredContent picks the status body out of a note's content
// map, preferring richer renderings.
var contentPreference = []string{"text/html", "text/markdown", "text/plain"}

func notePreferredContent(content map[string]ContentEntry) (body string, contentType string) {
	for _, mimeType := range contentPreference {
		if entry, ok := content[mimeType]; ok {
			return entry.Content, mimeType
		}
	}
	for mimeType, entry := range content {
		return entry.Content, mimeType
	}
	return "", ""
}

// StatusFromNote builds the status projection of a note, without
// references resolved.
func StatusFromNote(note *Note) *Status {
	content, contentType := notePreferredContent(note.Content)

	visibility := VisibilityPublic
	if v, ok := ParseVisibility(note.Visibility); ok {
		visibility = v
	}

	return &Status{
		ID:           generateID(),
		URI:          note.URI,
		AuthorURI:    note.Author,
		Content:      content,
		ContentType:  contentType,
		Visibility:   visibility,
		SpoilerText:  note.Subject,
		Sensitive:    note.IsSensitive,
		InstanceHost: hostOf(note.Author),
		CreatedAt:    note.CreatedAt,
	}
}

func hostOf(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return ""
	}
	return u.Host
}
