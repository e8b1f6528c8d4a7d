package versia

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ironstar-io/chizerolog"
	"github.com/rs/zerolog"

	"github.com/yumine/versia/internal"
)

const InternalServerError = "internal server error"
const sessionKey = "session_id"

// interface

type Session interface {
	Close() error
	Set(c context.Context, key string, value any)
	Get(c context.Context, key string) any
	Delete(c context.Context, key string)
	Clear(c context.Context)
	Middleware(next http.Handler) http.Handler
}

// Server

type Server struct {
	handler *Handler
	port    int
}

func NewServer(cfg *Config, handler *Handler) (*Server, error) {
	return &Server{
		handler: handler,
		port:    cfg.Port,
	}, nil
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	return http.ListenAndServe(addr, s.handler)
}

// handler

type Handler struct {
	log              *zerolog.Logger
	urlResolver      *URLResolver
	sess             Session
	processor        *Processor
	federationRouter chi.Router
	browserRouter    chi.Router
}

func NewHandler(log *zerolog.Logger, urlResolver *URLResolver, sess Session, processor *Processor) *Handler {
	h := &Handler{
		log:         log,
		urlResolver: urlResolver,
		sess:        sess,
		processor:   processor,
	}

	tracer := serverIOTracer{enable: true, log: log}

	fallback := chi.NewRouter()
	fallback.Use(sess.Middleware)
	fallback.Get("/", h.handleIndex)
	fallback.Get("/login", h.handleLoginGet)
	fallback.Post("/login", h.handleLoginPost)
	fallback.Post("/logout", h.handleLogoutPost)
	fallback.Get("/signup", h.handleSignupGet)
	fallback.Post("/signup", h.handleSignupPost)
	fallback.Post("/post", h.handlePostPost)
	fallback.Get("/@{username}", h.handleUserGet)
	fallback.Post("/@{username}/follow", h.handleUserFollowPost)
	fallback.Post("/@{username}/unfollow", h.handleUserUnfollowPost)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer, tracer.middleware, chizerolog.LoggerMiddleware(log))
	router.Get("/.well-known/host-meta", h.handleWellKnownHostMetaGet)
	router.Get("/.well-known/nodeinfo", h.handleWellKnownNodeInfoGet)
	router.Get("/nodeinfo/2.1", h.handleNodeInfo2Dot1Get)
	router.Get("/.well-known/webfinger", h.handleWellKnownWebfingerGet)
	router.Get("/users/{accountID}", h.handleUserDocumentGet)
	router.Post("/users/{accountID}/inbox", h.handleUserInboxPost)
	router.Get("/users/{accountID}/outbox", h.handleUserOutboxGet)
	router.Handle("/*", fallback)

	h.federationRouter = router
	h.browserRouter = fallback

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.federationRouter.ServeHTTP(w, r)
}

// GET /.well-known/host-meta
func (h *Handler) handleWellKnownHostMetaGet(w http.ResponseWriter, r *http.Request) {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	w.Header().Set("Content-Type", "application/xrd+xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header))
	enc.Encode(internal.XMLHostMeta{
		XMLName: xml.Name{
			Local: "XRD",
		},
		Xmlns: "http://docs.oasis-open.org/ns/xri/xrd-1.0",
		Links: []internal.XMLHostMetaLink{
			{
				Rel:  "lrdd",
				Type: "application/xrd+xml",
				Template: fmt.Sprintf("%s/.well-known/webfinger?resource={uri}",
					h.urlResolver.myURLPrefix()),
			},
		},
	})
}

// GET /.well-known/nodeinfo
func (h *Handler) handleWellKnownNodeInfoGet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(internal.JSONNodeInfo{
		Links: []internal.JSONNodeInfoLink{
			{
				Rel:  "http://nodeinfo.diaspora.software/ns/schema/2.1",
				Href: fmt.Sprintf("%s/nodeinfo/2.1", h.urlResolver.myURLPrefix()),
			},
		},
	})
}

// GET /nodeinfo/2.1
func (h *Handler) handleNodeInfo2Dot1Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(internal.JSONNodeInfo2Dot1{
		Version: "2.1",
		Software: internal.JSONNodeInfo2Dot1Software{
			Name:    "versia",
			Version: "0.0.1",
		},
		Protocols: []string{
			"versia",
		},
		Services: internal.JSONNodeInfo2Dot1Services{
			Inbound:  []string{},
			Outbound: []string{},
		},
		OpenRegistrations: false,
		Usage:             internal.JSONNodeInfo2Dot1Usage{},
		Metadata:          internal.JSONNodeInfo2Dot1Metadata{},
	})
}

// Get /.well-known/webfinger
func (h *Handler) handleWellKnownWebfingerGet(w http.ResponseWriter, r *http.Request) {
	resource := r.URL.Query().Get("resource")

	actorURL, err := h.processor.Webfinger(r.Context(), resource)
	if err != nil {
		h.respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/jrd+json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(internal.JSONWebfinger{
		Subject: resource,
		Links: []internal.JSONWebfingerLink{
			{
				Rel:  "self",
				Type: "application/json",
				Href: actorURL,
			},
		},
	})
}

// GET /users/{accountID}
func (h *Handler) handleUserDocumentGet(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	if accountID == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	user, err := h.processor.GetLocalUser(r.Context(), accountID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
}

// POST /users/{accountID}/inbox
func (h *Handler) handleUserInboxPost(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	accountID := chi.URLParam(r, "accountID")
	if accountID == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if err := h.processor.ReceiveInbox(c, accountID, r, body); err != nil {
		h.respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("{}"))
}

// GET /users/{accountID}/outbox
func (h *Handler) handleUserOutboxGet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"items":[]}`))
}

// GET /
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	_, ok := h.sess.Get(c, sessionKey).(string)
	if !ok {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`
			<ul>
				<li><a href="/login">login</a></li>
				<li><a href="/signup">signup</a></li>
			</ul>
		`))
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`
		<form method="POST" action="/post">
			<textarea name="content"></textarea>
			<select name="visibility">
				<option value="public">public</option>
				<option value="unlisted">unlisted</option>
				<option value="private">private</option>
				<option value="direct">direct</option>
			</select>
			<button>post</button>
		</form>
		<form method="POST" action="/logout">
			<button>logout</button>
		</form>
	`))
}

// GET /login
func (h *Handler) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`
		<form method="POST">
			<input type="text" name="email" />
			<input type="password" name="password" />
			<input type="submit" />
		</form>
	`))
}

// POST /login
func (h *Handler) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	email := r.FormValue("email")
	password := r.FormValue("password")
	id, err := h.processor.Login(c, email, password)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.sess.Set(c, sessionKey, id)
	http.Redirect(w, r, "/", http.StatusFound)
}

// POST /logout
func (h *Handler) handleLogoutPost(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	h.sess.Clear(c)
	http.Redirect(w, r, "/", http.StatusFound)
}

// GET /signup
func (h *Handler) handleSignupGet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`
		<form method="POST">
			<input type="text" name="email" />
			<input type="text" name="username" />
			<input type="password" name="password" />
			<input type="submit" />
		</form>
	`))
}

// POST /signup
func (h *Handler) handleSignupPost(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	email := r.FormValue("email")
	username := r.FormValue("username")
	password := r.FormValue("password")
	id, err := h.processor.Signup(c, email, username, password)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.sess.Set(c, sessionKey, id)
	http.Redirect(w, r, "/", http.StatusFound)
}

// POST /post
func (h *Handler) handlePostPost(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	accountID, ok := h.sess.Get(c, sessionKey).(string)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	visibility, ok := ParseVisibility(r.FormValue("visibility"))
	if !ok {
		visibility = VisibilityPublic
	}

	if _, err := h.processor.Post(c, accountID, r.FormValue("content"), visibility); err != nil {
		h.respondError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// GET /@{username}
func (h *Handler) handleUserGet(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	acct := chi.URLParam(r, "username")
	accountID, ok := h.sess.Get(c, sessionKey).(string)
	if !ok {
		accountID = ""
	}

	user, err := h.processor.View(c, accountID, acct)
	if err != nil {
		h.respondError(w, err)
		return
	}

	tmpl, _ := template.New("").Parse(`
		<h1>{{.username}}</h1>
		{{if .isFollow}}<p>フォロー中</p>{{end}}
		{{if .isFollower}}<p>フォロワー</p>{{end}}
		{{if .isFollow}}
		<form method="post" action="/@{{.acct}}/unfollow">
			<button type="submit">解除フォロー</button>
		</form>
		{{else}}
		<form method="post" action="/@{{.acct}}/follow">
			<button type="submit">フォロー</button>
		</form>
		{{end}}
	`)

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	tmpl.Execute(w, map[string]interface{}{
		"acct":       acct,
		"username":   user.Actor.Username,
		"isFollow":   user.IsFollow,
		"isFollower": user.IsFollower,
	})
}

// POST /@{username}/follow
func (h *Handler) handleUserFollowPost(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	acct := chi.URLParam(r, "username")
	accountID, ok := h.sess.Get(c, sessionKey).(string)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	err := h.processor.Follow(c, accountID, acct)
	if err != nil {
		h.respondError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/@%s", acct), http.StatusFound)
}

// POST /@{username}/unfollow
func (h *Handler) handleUserUnfollowPost(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	acct := chi.URLParam(r, "username")
	accountID, ok := h.sess.Get(c, sessionKey).(string)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	err := h.processor.Unfollow(c, accountID, acct)
	if err != nil {
		h.respondError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/@%s", acct), http.StatusFound)
}

// respondError maps processor errors onto the status codes federation
// peers interpret: 4xx means "don't retry", 5xx means "retry later".
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrInvalidActivity):
		http.Error(w, "invalid activity", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidSignature):
		http.Error(w, "invalid signature", http.StatusUnauthorized)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		h.log.Error().Err(err).Send()
		http.Error(w, InternalServerError, http.StatusInternalServerError)
	}
}

// urlResolver

func NewURLResolver(cfg *Config) *URLResolver {
	return &URLResolver{
		host:  cfg.Host,
		https: cfg.Https,
	}
}

type URLResolver struct {
	host  string
	https bool
}

func (u *URLResolver) myURLPrefix() string {
	scheme := "http"
	if u.https {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, u.host)
}

func (u *URLResolver) resolveActorURL(accountID string) string {
	return fmt.Sprintf("%s/users/%s", u.myURLPrefix(), accountID)
}

func (u *URLResolver) resolveInboxURL(accountID string) string {
	return fmt.Sprintf("%s/users/%s/inbox", u.myURLPrefix(), accountID)
}

func (u *URLResolver) resolveOutboxURL(accountID string) string {
	return fmt.Sprintf("%s/users/%s/outbox", u.myURLPrefix(), accountID)
}

func (u *URLResolver) resolveActivityURL(activityID string) string {
	return fmt.Sprintf("%s/activities/%s", u.myURLPrefix(), activityID)
}

func (u *URLResolver) resolveNoteURL(statusID string) string {
	return fmt.Sprintf("%s/notes/%s", u.myURLPrefix(), statusID)
}

// acct

type userAddr struct {
	preferredUsername string
	host              string
}

func parseAcctScheme(str string) (*userAddr, error) {
	prefix := "acct:"
	if !strings.HasPrefix(str, prefix) {
		return nil, fmt.Errorf("invalid acct: %s", str)
	}

	acctStr := strings.TrimPrefix(str, prefix)
	return parseUserAddr(acctStr)
}

func parseUserAddr(str string) (*userAddr, error) {
	acctStr := strings.TrimSuffix(str, "@")

	atIndex := strings.Index(acctStr, "@")
	if atIndex == -1 {
		return &userAddr{
			preferredUsername: acctStr,
		}, nil
	}

	return &userAddr{
		preferredUsername: acctStr[:atIndex],
		host:              acctStr[atIndex+1:],
	}, nil
}

type serverIOTracer struct {
	enable bool
	log    *zerolog.Logger
}

func (s *serverIOTracer) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.enable {
			body, _ := io.ReadAll(r.Body)
			r.Body.Close()
			br := bytes.NewReader(body)
			r.Body = io.NopCloser(br)

			header, _ := json.Marshal(r.Header)
			s.log.Trace().
				Str("path", r.URL.String()).
				RawJSON("header", header).
				Str("body", string(body)).
				Send()
		}

		next.ServeHTTP(w, r)
	})
}
