package versia

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// EntityType discriminates the federation entity union.
type EntityType string

const (
	TypeNote           EntityType = "Note"
	TypePatch          EntityType = "Patch"
	TypeUser           EntityType = "User"
	TypeLike           EntityType = "Like"
	TypeDislike        EntityType = "Dislike"
	TypeFollow         EntityType = "Follow"
	TypeFollowAccept   EntityType = "FollowAccept"
	TypeFollowReject   EntityType = "FollowReject"
	TypeAnnounce       EntityType = "Announce"
	TypeUndo           EntityType = "Undo"
	TypeReaction       EntityType = "Reaction"
	TypePoll           EntityType = "Poll"
	TypeVote           EntityType = "Vote"
	TypeVoteResult     EntityType = "VoteResult"
	TypeReport         EntityType = "Report"
	TypeServerMetadata EntityType = "ServerMetadata"
	TypeExtension      EntityType = "Extension"
)

// ValidationError reports the first schema violation found in a payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid entity: %s: %s", e.Field, e.Reason)
}

// Entity is the validated federation payload union. Exactly one concrete
// type exists per EntityType; consumers dispatch with a type switch.
type Entity interface {
	Base() *EntityBase
}

// EntityBase carries the fields shared by every entity type.
type EntityBase struct {
	ID         string                     `json:"id"`
	Type       EntityType                 `json:"type"`
	URI        string                     `json:"uri"`
	Author     string                     `json:"author,omitempty"`
	CreatedAt  time.Time                  `json:"created_at"`
	Extensions map[string]json.RawMessage `json:"extensions,omitempty"`
}

func (b *EntityBase) Base() *EntityBase { return b }

// validate checks the shared fields. ServerMetadata is the only type
// without an author.
func (b *EntityBase) validate() *ValidationError {
	if err := requireUUID("id", b.ID); err != nil {
		return err
	}
	if err := requireURL("uri", b.URI); err != nil {
		return err
	}
	if b.CreatedAt.IsZero() {
		return &ValidationError{Field: "created_at", Reason: "missing"}
	}
	if b.Type != TypeServerMetadata {
		if err := requireURL("author", b.Author); err != nil {
			return err
		}
	}
	return nil
}

// ContentEntry is one rendering of a note body, keyed by MIME type in
// the enclosing map.
type ContentEntry struct {
	Content string `json:"content"`
}

type Note struct {
	EntityBase
	Content     map[string]ContentEntry `json:"content,omitempty"`
	Visibility  string                  `json:"visibility,omitempty"`
	IsSensitive bool                    `json:"is_sensitive,omitempty"`
	Subject     string                  `json:"subject,omitempty"`
	RepliesTo   []string                `json:"replies_to,omitempty"`
	Quotes      []string                `json:"quotes,omitempty"`
	Mentions    []string                `json:"mentions,omitempty"`
}

func (n *Note) validate() *ValidationError {
	if err := n.EntityBase.validate(); err != nil {
		return err
	}
	if err := validateContentMap("content", n.Content); err != nil {
		return err
	}
	if n.Visibility != "" {
		if _, ok := ParseVisibility(n.Visibility); !ok {
			return &ValidationError{Field: "visibility", Reason: "unknown visibility"}
		}
	}
	for i, uri := range n.RepliesTo {
		if err := requireURL(fmt.Sprintf("replies_to[%d]", i), uri); err != nil {
			return err
		}
	}
	for i, uri := range n.Quotes {
		if err := requireURL(fmt.Sprintf("quotes[%d]", i), uri); err != nil {
			return err
		}
	}
	return nil
}

type Patch struct {
	Note
	PatchedID string    `json:"patched_id"`
	PatchedAt time.Time `json:"patched_at"`
}

func (p *Patch) validate() *ValidationError {
	if err := p.Note.validate(); err != nil {
		return err
	}
	return requireUUID("patched_id", p.PatchedID)
}

// UserPublicKey is the actor's Ed25519 verification key, PEM-encoded.
type UserPublicKey struct {
	Actor     string `json:"actor,omitempty"`
	PublicKey string `json:"public_key"`
}

type User struct {
	EntityBase
	Username                  string        `json:"username"`
	DisplayName               string        `json:"display_name,omitempty"`
	PublicKey                 UserPublicKey `json:"public_key"`
	Inbox                     string        `json:"inbox"`
	Outbox                    string        `json:"outbox,omitempty"`
	ManuallyApprovesFollowers bool          `json:"manually_approves_followers,omitempty"`
}

func (u *User) validate() *ValidationError {
	if err := u.EntityBase.validate(); err != nil {
		return err
	}
	if u.Username == "" {
		return &ValidationError{Field: "username", Reason: "missing"}
	}
	if u.PublicKey.PublicKey == "" {
		return &ValidationError{Field: "public_key.public_key", Reason: "missing"}
	}
	return requireURL("inbox", u.Inbox)
}

type Like struct {
	EntityBase
	Object string `json:"object"`
}

func (l *Like) validate() *ValidationError {
	if err := l.EntityBase.validate(); err != nil {
		return err
	}
	return requireURL("object", l.Object)
}

type Dislike struct {
	EntityBase
	Object string `json:"object"`
}

func (d *Dislike) validate() *ValidationError {
	if err := d.EntityBase.validate(); err != nil {
		return err
	}
	return requireURL("object", d.Object)
}

type Follow struct {
	EntityBase
	Followee string `json:"followee"`
}

func (f *Follow) validate() *ValidationError {
	if err := f.EntityBase.validate(); err != nil {
		return err
	}
	return requireURL("followee", f.Followee)
}

type FollowAccept struct {
	EntityBase
	Follower string `json:"follower"`
}

func (f *FollowAccept) validate() *ValidationError {
	if err := f.EntityBase.validate(); err != nil {
		return err
	}
	return requireURL("follower", f.Follower)
}

type FollowReject struct {
	EntityBase
	Follower string `json:"follower"`
}

func (f *FollowReject) validate() *ValidationError {
	if err := f.EntityBase.validate(); err != nil {
		return err
	}
	return requireURL("follower", f.Follower)
}

type Announce struct {
	EntityBase
	Object string `json:"object"`
}

func (a *Announce) validate() *ValidationError {
	if err := a.EntityBase.validate(); err != nil {
		return err
	}
	return requireURL("object", a.Object)
}

type Undo struct {
	EntityBase
	Object string `json:"object"`
}

func (u *Undo) validate() *ValidationError {
	if err := u.EntityBase.validate(); err != nil {
		return err
	}
	return requireURL("object", u.Object)
}

type Reaction struct {
	EntityBase
	Object  string `json:"object"`
	Content string `json:"content"`
}

func (r *Reaction) validate() *ValidationError {
	if err := r.EntityBase.validate(); err != nil {
		return err
	}
	if r.Content == "" {
		return &ValidationError{Field: "content", Reason: "missing"}
	}
	return requireURL("object", r.Object)
}

type Poll struct {
	EntityBase
	Options        []map[string]ContentEntry `json:"options"`
	MultipleChoice bool                      `json:"multiple_choice,omitempty"`
	ExpiresAt      time.Time                 `json:"expires_at,omitempty"`
}

func (p *Poll) validate() *ValidationError {
	if err := p.EntityBase.validate(); err != nil {
		return err
	}
	if len(p.Options) == 0 {
		return &ValidationError{Field: "options", Reason: "missing"}
	}
	for i, option := range p.Options {
		if err := validateContentMap(fmt.Sprintf("options[%d]", i), option); err != nil {
			return err
		}
	}
	return nil
}

type Vote struct {
	EntityBase
	Poll   string `json:"poll"`
	Option int    `json:"option"`
}

func (v *Vote) validate() *ValidationError {
	if err := v.EntityBase.validate(); err != nil {
		return err
	}
	if v.Option < 0 {
		return &ValidationError{Field: "option", Reason: "negative"}
	}
	return requireURL("poll", v.Poll)
}

type VoteResult struct {
	EntityBase
	Poll    string `json:"poll"`
	Results []int  `json:"results"`
}

func (v *VoteResult) validate() *ValidationError {
	if err := v.EntityBase.validate(); err != nil {
		return err
	}
	return requireURL("poll", v.Poll)
}

type Report struct {
	EntityBase
	Objects []string `json:"objects"`
	Reason  string   `json:"reason,omitempty"`
}

func (r *Report) validate() *ValidationError {
	if err := r.EntityBase.validate(); err != nil {
		return err
	}
	if len(r.Objects) == 0 {
		return &ValidationError{Field: "objects", Reason: "missing"}
	}
	for i, uri := range r.Objects {
		if err := requireURL(fmt.Sprintf("objects[%d]", i), uri); err != nil {
			return err
		}
	}
	return nil
}

type ServerMetadata struct {
	EntityBase
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

func (s *ServerMetadata) validate() *ValidationError {
	if err := s.EntityBase.validate(); err != nil {
		return err
	}
	if s.Name == "" {
		return &ValidationError{Field: "name", Reason: "missing"}
	}
	return nil
}

type Extension struct {
	EntityBase
	ExtensionType string          `json:"extension_type"`
	Data          json.RawMessage `json:"data,omitempty"`
}

func (e *Extension) validate() *ValidationError {
	if err := e.EntityBase.validate(); err != nil {
		return err
	}
	if e.ExtensionType == "" {
		return &ValidationError{Field: "extension_type", Reason: "missing"}
	}
	return nil
}

// ValidateEntity parses raw into its typed variant. Consumers of the
// returned Entity never re-check primitive shape, only business rules.
func ValidateEntity(raw []byte) (Entity, error) {
	var probe struct {
		Type *EntityType `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, &ValidationError{Field: "", Reason: fmt.Sprintf("malformed json: %v", err)}
	}
	if probe.Type == nil || *probe.Type == "" {
		return nil, &ValidationError{Field: "type", Reason: "missing"}
	}

	entity := newEntity(*probe.Type)
	if entity == nil {
		return nil, &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown type %q", *probe.Type)}
	}

	if err := json.Unmarshal(raw, entity); err != nil {
		return nil, &ValidationError{Field: "", Reason: fmt.Sprintf("malformed payload: %v", err)}
	}

	if err := validateEntity(entity); err != nil {
		return nil, err
	}

	return entity, nil
}

func newEntity(t EntityType) Entity {
	switch t {
	case TypeNote:
		return &Note{}
	case TypePatch:
		return &Patch{}
	case TypeUser:
		return &User{}
	case TypeLike:
		return &Like{}
	case TypeDislike:
		return &Dislike{}
	case TypeFollow:
		return &Follow{}
	case TypeFollowAccept:
		return &FollowAccept{}
	case TypeFollowReject:
		return &FollowReject{}
	case TypeAnnounce:
		return &Announce{}
	case TypeUndo:
		return &Undo{}
	case TypeReaction:
		return &Reaction{}
	case TypePoll:
		return &Poll{}
	case TypeVote:
		return &Vote{}
	case TypeVoteResult:
		return &VoteResult{}
	case TypeReport:
		return &Report{}
	case TypeServerMetadata:
		return &ServerMetadata{}
	case TypeExtension:
		return &Extension{}
	default:
		return nil
	}
}

func validateEntity(entity Entity) *ValidationError {
	switch e := entity.(type) {
	case *Note:
		return e.validate()
	case *Patch:
		return e.validate()
	case *User:
		return e.validate()
	case *Like:
		return e.validate()
	case *Dislike:
		return e.validate()
	case *Follow:
		return e.validate()
	case *FollowAccept:
		return e.validate()
	case *FollowReject:
		return e.validate()
	case *Announce:
		return e.validate()
	case *Undo:
		return e.validate()
	case *Reaction:
		return e.validate()
	case *Poll:
		return e.validate()
	case *Vote:
		return e.validate()
	case *VoteResult:
		return e.validate()
	case *Report:
		return e.validate()
	case *ServerMetadata:
		return e.validate()
	case *Extension:
		return e.validate()
	default:
		return &ValidationError{Field: "type", Reason: "unknown type"}
	}
}

func requireURL(field string, value string) *ValidationError {
	if value == "" {
		return &ValidationError{Field: field, Reason: "missing"}
	}
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return &ValidationError{Field: field, Reason: "not an absolute url"}
	}
	return nil
}

func requireUUID(field string, value string) *ValidationError {
	if value == "" {
		return &ValidationError{Field: field, Reason: "missing"}
	}
	if _, err := uuid.Parse(value); err != nil {
		return &ValidationError{Field: field, Reason: "not a uuid"}
	}
	return nil
}

func validateContentMap(field string, content map[string]ContentEntry) *ValidationError {
	for mimeType := range content {
		parsed, _, err := mime.ParseMediaType(mimeType)
		if err != nil || parsed != mimeType {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("unrecognized mime type %q", mimeType)}
		}
	}
	return nil
}
