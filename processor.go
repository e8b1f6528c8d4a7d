package versia

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/yumine/versia/lib/crypt"
	"github.com/yumine/versia/lib/httpsign"
)

// Processor applies verified inbox activities to the data model and
// drives the local account actions. Each inbound delivery is handled as
// one request-scoped unit of work; the database is the only shared
// state, so idempotence rests on its unique constraints rather than on
// in-process locks.
type Processor struct {
	log           *zerolog.Logger
	urlResolver   *URLResolver
	remoteServer  *RemoteServer
	resolver      *Resolver
	accounts      AccountStore
	objects       RemoteObjectStore
	statuses      StatusStore
	favourites    FavouriteStore
	relationships RelationshipStore
	notifications NotificationStore
	host          string
	maxSkew       time.Duration
}

func NewProcessor(
	config *Config,
	log *zerolog.Logger,
	urlResolver *URLResolver,
	remoteServer *RemoteServer,
	resolver *Resolver,
	accounts AccountStore,
	objects RemoteObjectStore,
	statuses StatusStore,
	favourites FavouriteStore,
	relationships RelationshipStore,
	notifications NotificationStore,
) *Processor {
	return &Processor{
		log:           log,
		urlResolver:   urlResolver,
		remoteServer:  remoteServer,
		resolver:      resolver,
		accounts:      accounts,
		objects:       objects,
		statuses:      statuses,
		favourites:    favourites,
		relationships: relationships,
		notifications: notifications,
		host:          urlResolver.host,
		maxSkew:       config.SignatureMaxSkew,
	}
}

// ReceiveInbox handles one inbound delivery to accountID's inbox:
// verify the signature, validate the body, record the raw object, then
// apply the typed mutation. Errors map to the response the remote sees:
// ErrNotFound -> 404, ErrInvalidSignature -> 401, ValidationError and
// ErrInvalidActivity -> 400, anything else -> 500 (retry later).
func (p *Processor) ReceiveInbox(c context.Context, accountID string, req *http.Request, body []byte) error {
	account, err := p.accounts.Find(c, accountID)
	if err != nil {
		return fmt.Errorf("failed to find account: %w", err)
	}

	actor, err := p.verifyInboxRequest(c, account, req, body)
	if err != nil {
		return err
	}

	entity, err := ValidateEntity(body)
	if err != nil {
		return err
	}

	// The acting author is the signature's subject, nobody else.
	base := entity.Base()
	if base.Author != "" && base.Author != actor.URI {
		return fmt.Errorf("%w: author %s does not match signer %s", ErrInvalidActivity, base.Author, actor.URI)
	}

	// Record the raw object unconditionally so partially failing typed
	// handling still leaves an auditable trail.
	if _, err := p.resolver.StoreEntity(c, entity, body); err != nil {
		return fmt.Errorf("failed to record object: %w", err)
	}

	switch e := entity.(type) {
	case *Note:
		return p.receiveNote(c, account, actor, e)
	case *Patch:
		return p.receivePatch(c, account, e)
	case *Like:
		return p.receiveLike(c, actor, e)
	case *Follow:
		return p.receiveFollow(c, account, actor, e)
	case *FollowAccept:
		return p.receiveFollowAccept(c, actor, e)
	case *FollowReject:
		return p.receiveFollowReject(c, actor, e)
	case *Announce:
		return p.receiveAnnounce(c, actor, e)
	case *Undo:
		return p.receiveUndo(c, actor, e)
	case *Dislike, *Reaction, *Poll, *Vote, *VoteResult, *Report, *ServerMetadata, *Extension:
		// Recorded above, no typed mutation. Answering 200 keeps the
		// remote from retrying traffic we deliberately don't act on.
		return nil
	default:
		return fmt.Errorf("%w: unsupported type", ErrInvalidActivity)
	}
}

// verifyInboxRequest authenticates the delivery. The signer's key is
// fetched through the resolver via the keyId claim; every failure
// collapses into ErrInvalidSignature so the response doesn't reveal
// which check broke.
func (p *Processor) verifyInboxRequest(c context.Context, account *Account, req *http.Request, body []byte) (*User, error) {
	keyID, err := httpsign.KeyID(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	actor, err := p.resolver.ResolveActor(c, account, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot resolve signer %s: %v", ErrInvalidSignature, keyID, err)
	}

	publicKey, err := crypt.ConvertPublicKey(actor.PublicKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if err := httpsign.Verify(publicKey, req, body, p.maxSkew); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	return actor, nil
}

func (p *Processor) receiveNote(c context.Context, account *Account, actor *User, note *Note) error {
	_, err := p.statuses.FindByURI(c, note.URI)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to look up status: %w", err)
	}
	redelivery := err == nil

	status := StatusFromNote(note)
	status.InReplyToID = p.resolver.ResolveReference(c, account, note.RepliesTo)
	status.QuotingID = p.resolver.ResolveReference(c, account, note.Quotes)

	saved, err := p.statuses.Upsert(c, status)
	if err != nil {
		return fmt.Errorf("failed to save status: %w", err)
	}

	if !redelivery {
		for _, mention := range note.Mentions {
			p.notify(c, NotificationMention, actor.URI, mention, saved.ID)
		}
	}

	return nil
}

func (p *Processor) receivePatch(c context.Context, account *Account, patch *Patch) error {
	target, err := p.objects.FindByRemoteID(c, patch.PatchedID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("patch target %s: %w", patch.PatchedID, ErrNotFound)
		}
		return fmt.Errorf("failed to find patch target: %w", err)
	}

	status, err := p.statuses.FindByURI(c, target.URI)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("patch target %s: %w", target.URI, ErrNotFound)
		}
		return fmt.Errorf("failed to find patched status: %w", err)
	}

	content, contentType := notePreferredContent(patch.Content)
	status.Content = content
	status.ContentType = contentType
	status.SpoilerText = patch.Subject
	status.Sensitive = patch.IsSensitive
	if v, ok := ParseVisibility(patch.Visibility); ok {
		status.Visibility = v
	}
	status.InReplyToID = p.resolver.ResolveReference(c, account, patch.RepliesTo)
	status.QuotingID = p.resolver.ResolveReference(c, account, patch.Quotes)

	if err := p.statuses.Update(c, status); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

func (p *Processor) receiveLike(c context.Context, actor *User, like *Like) error {
	status, err := p.statuses.FindByURI(c, like.Object)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("like target %s: %w", like.Object, ErrNotFound)
		}
		return fmt.Errorf("failed to find liked status: %w", err)
	}

	// Duplicate likes are a no-op, and must not notify again.
	if _, err := p.favourites.Find(c, actor.URI, status.ID); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to look up favourite: %w", err)
	}

	err = p.favourites.Insert(c, &Favourite{
		ID:         generateID(),
		URI:        like.URI,
		AccountURI: actor.URI,
		StatusID:   status.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to save favourite: %w", err)
	}

	p.notify(c, NotificationFavourite, actor.URI, status.AuthorURI, status.ID)
	return nil
}

func (p *Processor) receiveFollow(c context.Context, account *Account, actor *User, follow *Follow) error {
	// The followee must be the inbox owner; a follow naming anyone else
	// was delivered to the wrong inbox.
	if follow.Followee != p.urlResolver.resolveActorURL(account.ID) {
		return fmt.Errorf("%w: followee %s is not the inbox owner", ErrInvalidActivity, follow.Followee)
	}

	relationship := &Relationship{
		OwnerURI:   actor.URI,
		SubjectURI: follow.Followee,
	}

	notificationType := NotificationFollow
	if account.ManuallyApprovesFollowers {
		relationship.Requested = true
		notificationType = NotificationFollowRequest
	} else {
		relationship.Following = true
	}

	if err := p.relationships.Upsert(c, relationship); err != nil {
		return fmt.Errorf("failed to save relationship: %w", err)
	}

	p.notify(c, notificationType, actor.URI, follow.Followee, "")

	if !account.ManuallyApprovesFollowers {
		p.sendFollowAccept(c, account, actor)
	}
	return nil
}

// sendFollowAccept delivers the acceptance for an unlocked account.
// Best effort: the edge is already recorded, the remote re-follows if
// the delivery is lost.
func (p *Processor) sendFollowAccept(c context.Context, account *Account, actor *User) {
	ownerURI := p.urlResolver.resolveActorURL(account.ID)
	accept := FollowAccept{
		EntityBase: EntityBase{
			ID:        generateID4122(),
			Type:      TypeFollowAccept,
			URI:       p.urlResolver.resolveActivityURL(GenerateSortableID()),
			Author:    ownerURI,
			CreatedAt: time.Now().UTC(),
		},
		Follower: actor.URI,
	}

	if err := p.remoteServer.PostInbox(c, account, actor.Inbox, accept); err != nil {
		p.log.Warn().Err(err).Str("inbox", actor.Inbox).Msg("failed to deliver follow accept")
	}
}

func (p *Processor) receiveFollowAccept(c context.Context, actor *User, accept *FollowAccept) error {
	relationship, err := p.relationships.Find(c, accept.Follower, actor.URI)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("no pending follow from %s: %w", accept.Follower, ErrNotFound)
		}
		return fmt.Errorf("failed to find relationship: %w", err)
	}

	relationship.Requested = false
	relationship.Following = true
	if err := p.relationships.Upsert(c, relationship); err != nil {
		return fmt.Errorf("failed to update relationship: %w", err)
	}
	return nil
}

func (p *Processor) receiveFollowReject(c context.Context, actor *User, reject *FollowReject) error {
	if _, err := p.relationships.Find(c, reject.Follower, actor.URI); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("no pending follow from %s: %w", reject.Follower, ErrNotFound)
		}
		return fmt.Errorf("failed to find relationship: %w", err)
	}

	if err := p.relationships.Delete(c, reject.Follower, actor.URI); err != nil {
		return fmt.Errorf("failed to delete relationship: %w", err)
	}
	return nil
}

func (p *Processor) receiveAnnounce(c context.Context, actor *User, announce *Announce) error {
	target, err := p.statuses.FindByURI(c, announce.Object)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("announce target %s: %w", announce.Object, ErrNotFound)
		}
		return fmt.Errorf("failed to find announced status: %w", err)
	}

	// A redelivered announce already has its wrapper.
	if _, err := p.statuses.FindByURI(c, announce.URI); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to look up reblog: %w", err)
	}

	// The wrapper carries no content of its own, only the reference and
	// the target's visibility.
	wrapper := &Status{
		ID:           generateID(),
		URI:          announce.URI,
		AuthorURI:    actor.URI,
		Visibility:   target.Visibility,
		ReblogOfID:   target.ID,
		InstanceHost: hostOf(actor.URI),
		CreatedAt:    announce.CreatedAt,
	}
	if _, err := p.statuses.Upsert(c, wrapper); err != nil {
		return fmt.Errorf("failed to save reblog: %w", err)
	}

	p.notify(c, NotificationReblog, actor.URI, target.AuthorURI, target.ID)
	return nil
}

// receiveUndo dispatches on the stored type of the referenced object.
// An Undo racing ahead of the action it undoes finds no object and
// fails with a clean 404; the remote redelivers once its own ordering
// settles.
func (p *Processor) receiveUndo(c context.Context, actor *User, undo *Undo) error {
	object, err := p.objects.FindByURI(c, undo.Object)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("undo target %s: %w", undo.Object, ErrNotFound)
		}
		return fmt.Errorf("failed to find undo target: %w", err)
	}

	if object.AuthorURI != actor.URI {
		return fmt.Errorf("%w: undo of an object owned by %s", ErrInvalidActivity, object.AuthorURI)
	}

	switch object.Type {
	case TypeLike:
		if err := p.favourites.DeleteByURI(c, object.URI); err != nil {
			return fmt.Errorf("failed to delete favourite: %w", err)
		}
	case TypeAnnounce:
		if err := p.statuses.DeleteByURI(c, object.URI); err != nil {
			return fmt.Errorf("failed to delete reblog: %w", err)
		}
	case TypeNote:
		if err := p.statuses.DeleteByURI(c, object.URI); err != nil {
			return fmt.Errorf("failed to delete status: %w", err)
		}
	case TypeFollow:
		entity, err := ValidateEntity(object.ExtraData)
		if err != nil {
			return fmt.Errorf("failed to revalidate stored follow: %w", err)
		}
		follow, ok := entity.(*Follow)
		if !ok {
			return fmt.Errorf("%w: stored object is not a follow", ErrInvalidActivity)
		}
		if err := p.relationships.Delete(c, actor.URI, follow.Followee); err != nil {
			return fmt.Errorf("failed to delete relationship: %w", err)
		}
	default:
		return fmt.Errorf("%w: cannot undo a %s", ErrInvalidActivity, object.Type)
	}

	// Tombstone the mirror so a replayed Undo 404s instead of acting twice.
	if err := p.objects.DeleteByURI(c, undo.Object); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// notify records a notification for a local account. Remote targets and
// self-actions are skipped.
func (p *Processor) notify(c context.Context, t NotificationType, actorURI string, notifiedURI string, statusID string) {
	if notifiedURI == "" || actorURI == notifiedURI {
		return
	}
	if hostOf(notifiedURI) != p.host {
		return
	}

	err := p.notifications.Insert(c, &Notification{
		ID:          generateID(),
		NotifiedURI: notifiedURI,
		AccountURI:  actorURI,
		Type:        t,
		StatusID:    statusID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		p.log.Error().Err(err).Str("notified", notifiedURI).Msg("failed to save notification")
	}
}

// ----- local account actions -----

// Login - ログインを行う
// 成功した場合アカウントのIDを返す
func (p *Processor) Login(c context.Context, email string, password string) (string, error) {
	account, err := p.accounts.FindByEmail(c, email)
	if err != nil {
		return "", fmt.Errorf("failed to find account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return "", fmt.Errorf("invalid password")
	}

	return account.ID, nil
}

// Signup - サインアップを行う
// 成功した場合アカウントのIDを返す
func (p *Processor) Signup(c context.Context, email string, username string, password string) (string, error) {
	id := generateID()

	privateKey, err := crypt.GeneratePrivateKeyPEM()
	if err != nil {
		return "", fmt.Errorf("failed to generate private key: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	account := &Account{
		ID:         id,
		Email:      email,
		Username:   username,
		Password:   string(hashedPassword),
		PrivateKey: privateKey,
	}

	if err := p.accounts.Save(c, account); err != nil {
		return "", fmt.Errorf("failed to save account: %w", err)
	}

	return account.ID, nil
}

// Post creates a local status authored by accountID.
func (p *Processor) Post(c context.Context, accountID string, content string, visibility Visibility) (*Status, error) {
	account, err := p.accounts.Find(c, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	id := generateID()
	status := &Status{
		ID:          id,
		URI:         p.urlResolver.resolveNoteURL(id),
		AuthorURI:   p.urlResolver.resolveActorURL(account.ID),
		Content:     content,
		ContentType: "text/plain",
		Visibility:  visibility,
		CreatedAt:   time.Now().UTC(),
	}

	saved, err := p.statuses.Upsert(c, status)
	if err != nil {
		return nil, fmt.Errorf("failed to save status: %w", err)
	}
	return saved, nil
}

// Webfinger resolves an acct: resource to the local actor document URL.
func (p *Processor) Webfinger(c context.Context, resource string) (string, error) {
	acct, err := parseAcctScheme(resource)
	if err != nil {
		return "", fmt.Errorf("failed to parse acct: %w", err)
	}

	if acct.host != "" && acct.host != p.host {
		return "", ErrNotFound
	}

	account, err := p.accounts.FindByUsername(c, acct.preferredUsername)
	if err != nil {
		return "", fmt.Errorf("failed to find account: %w", err)
	}

	return p.urlResolver.resolveActorURL(account.ID), nil
}

// GetLocalUser renders a local account as its federation user document.
func (p *Processor) GetLocalUser(c context.Context, accountID string) (*User, error) {
	account, err := p.accounts.Find(c, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	publicKey, err := crypt.GeneratePublicKeyPEM(account.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to generate public key: %w", err)
	}

	actorURL := p.urlResolver.resolveActorURL(account.ID)
	return &User{
		EntityBase: EntityBase{
			ID:        formatAsUUID(account.ID),
			Type:      TypeUser,
			URI:       actorURL,
			Author:    actorURL,
			CreatedAt: time.Now().UTC(),
		},
		Username: account.Username,
		PublicKey: UserPublicKey{
			Actor:     actorURL,
			PublicKey: publicKey,
		},
		Inbox:                     p.urlResolver.resolveInboxURL(account.ID),
		Outbox:                    p.urlResolver.resolveOutboxURL(account.ID),
		ManuallyApprovesFollowers: account.ManuallyApprovesFollowers,
	}, nil
}

type ViewResult struct {
	Actor      *Actor
	IsFollow   bool
	IsFollower bool
}

// View - アクターの状態を表示する
// acctStr は user@host の形式で指定する
func (p *Processor) View(c context.Context, accountID string, acctStr string) (*ViewResult, error) {
	account, err := p.accounts.Find(c, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	acct, err := p.complementUserAddr(acctStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse acct: %w", err)
	}

	actor, err := p.findActor(c, account, acct)
	if err != nil {
		return nil, err
	}

	fromURI := p.urlResolver.resolveActorURL(accountID)

	isFollow := false
	if rel, err := p.relationships.Find(c, fromURI, actor.URI); err == nil {
		isFollow = rel.Following || rel.Requested
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check following: %w", err)
	}

	isFollower := false
	if rel, err := p.relationships.Find(c, actor.URI, fromURI); err == nil {
		isFollower = rel.Following
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check follower: %w", err)
	}

	return &ViewResult{
		Actor:      actor,
		IsFollow:   isFollow,
		IsFollower: isFollower,
	}, nil
}

// Follow - フォローを行う
// acctStr は user@host の形式で指定する
func (p *Processor) Follow(c context.Context, accountID string, acctStr string) error {
	account, err := p.accounts.Find(c, accountID)
	if err != nil {
		return fmt.Errorf("failed to find account: %w", err)
	}

	acct, err := p.complementUserAddr(acctStr)
	if err != nil {
		return fmt.Errorf("failed to parse acct: %w", err)
	}

	actor, err := p.findActor(c, account, acct)
	if err != nil {
		return fmt.Errorf("failed to find actor: %w", err)
	}

	followerURI := p.urlResolver.resolveActorURL(account.ID)

	// リモートユーザーには通知が必要
	if actor.Host != p.host {
		follow := Follow{
			EntityBase: EntityBase{
				ID:        generateID4122(),
				Type:      TypeFollow,
				URI:       p.urlResolver.resolveActivityURL(GenerateSortableID()),
				Author:    followerURI,
				CreatedAt: time.Now().UTC(),
			},
			Followee: actor.URI,
		}

		if err := p.remoteServer.PostInbox(c, account, actor.Inbox, follow); err != nil {
			return fmt.Errorf("failed to post inbox: %w", err)
		}
	}

	relationship := &Relationship{
		OwnerURI:   followerURI,
		SubjectURI: actor.URI,
		Requested:  actor.Host != p.host,
		Following:  actor.Host == p.host,
	}
	if err := p.relationships.Upsert(c, relationship); err != nil {
		return fmt.Errorf("failed to follow: %w", err)
	}

	return nil
}

// Unfollow - フォローを解除する
func (p *Processor) Unfollow(c context.Context, accountID string, acctStr string) error {
	account, err := p.accounts.Find(c, accountID)
	if err != nil {
		return fmt.Errorf("failed to find account: %w", err)
	}

	acct, err := p.complementUserAddr(acctStr)
	if err != nil {
		return fmt.Errorf("failed to parse acct: %w", err)
	}

	actor, err := p.findActor(c, account, acct)
	if err != nil {
		return fmt.Errorf("failed to find actor: %w", err)
	}

	followerURI := p.urlResolver.resolveActorURL(account.ID)
	if err := p.relationships.Delete(c, followerURI, actor.URI); err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}

	return nil
}

// findActor - ユーザーを検索する
// acctStr は user@host の形式で指定する
func (p *Processor) findActor(c context.Context, account *Account, acct *userAddr) (*Actor, error) {
	if acct.host == p.host {
		return p.findLocalActor(c, acct)
	}
	return p.findRemoteActor(c, account, acct)
}

func (p *Processor) findLocalActor(c context.Context, acct *userAddr) (*Actor, error) {
	account, err := p.accounts.FindByUsername(c, acct.preferredUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to find actor: %w", err)
	}

	publicKey, err := crypt.GeneratePublicKeyPEM(account.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to generate public key: %w", err)
	}

	return &Actor{
		URI:       p.urlResolver.resolveActorURL(account.ID),
		Username:  account.Username,
		Host:      p.host,
		Inbox:     p.urlResolver.resolveInboxURL(account.ID),
		PublicKey: publicKey,
	}, nil
}

// findRemoteActor - webfinger でリモートユーザーを検索する
func (p *Processor) findRemoteActor(c context.Context, account *Account, acct *userAddr) (*Actor, error) {
	if account == nil {
		return nil, ErrNotFound
	}

	resource := fmt.Sprintf("acct:%s@%s", acct.preferredUsername, acct.host)
	webfinger, err := p.remoteServer.GetWebfinger(c, acct.host, resource)
	if err != nil {
		return nil, fmt.Errorf("failed to get webfinger: %w", err)
	}

	actorURI := findActorURIFromWebfinger(webfinger)
	if actorURI == "" {
		return nil, fmt.Errorf("failed to find actor uri from webfinger")
	}

	user, err := p.resolver.ResolveActor(c, account, actorURI)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}

	return &Actor{
		URI:       user.URI,
		Username:  user.Username,
		Host:      acct.host,
		Inbox:     user.Inbox,
		PublicKey: user.PublicKey.PublicKey,
	}, nil
}

// complementUserAddr - 完全なユーザー名を解析する
func (p *Processor) complementUserAddr(acctStr string) (*userAddr, error) {
	acct, err := parseUserAddr(acctStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse acct: %w", err)
	}

	if acct.host == "" {
		acct.host = p.host
	}

	return acct, nil
}

// generateID4122 is generateID with the dashes kept; entity ids on the
// wire must parse as UUIDs.
func generateID4122() string {
	return formatAsUUID(generateID())
}

func formatAsUUID(id string) string {
	if len(id) != 32 {
		return id
	}
	return fmt.Sprintf("%s-%s-%s-%s-%s", id[0:8], id[8:12], id[12:16], id[16:20], id[20:32])
}
