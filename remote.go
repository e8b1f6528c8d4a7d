package versia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/yumine/versia/internal"
	"github.com/yumine/versia/lib/crypt"
	"github.com/yumine/versia/lib/httpsign"
)

// RemoteServer is the federation HTTP client. Every request it issues
// is signed with the acting account's key; the client timeout bounds
// how long a slow origin can stall an inbound request that triggered
// the fetch.
type RemoteServer struct {
	softwareName string
	cli          *http.Client
	urlResolver  *URLResolver
}

func NewRemoteServer(cfg *Config, urlResolver *URLResolver) *RemoteServer {
	cli := &http.Client{Timeout: cfg.FetchTimeout}

	return &RemoteServer{
		softwareName: cfg.SoftwareName,
		cli:          cli,
		urlResolver:  urlResolver,
	}
}

// SignedFetch issues a signed request to a remote origin. Default
// headers carry the federation profile; headers supplied by the caller
// win on conflict. A nil body signs as the empty string.
func (s *RemoteServer) SignedFetch(c context.Context, account *Account, method string, rawurl string, body []byte, headers http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(c, method, rawurl, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Origin", s.urlResolver.myURLPrefix())
	req.Header.Set("User-Agent", s.softwareName)
	for key, values := range headers {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	privateKey, err := crypt.ConvertPrivateKey(account.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	keyID := s.urlResolver.resolveActorURL(account.ID)
	if err := httpsign.SignRequest(privateKey, keyID, req, body); err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}

	return s.cli.Do(req)
}

// GetEntity fetches and validates the federation entity at uri. The raw
// body is returned alongside so callers can persist it verbatim.
func (s *RemoteServer) GetEntity(c context.Context, account *Account, uri string) (Entity, []byte, error) {
	res, err := s.SignedFetch(c, account, http.MethodGet, uri, nil, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get entity: %w", err)
	}

	defer func() {
		io.Copy(io.Discard, res.Body)
		res.Body.Close()
	}()

	if res.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("failed to get entity: status code %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read entity: %w", err)
	}

	entity, err := ValidateEntity(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to validate entity: %w", err)
	}

	return entity, raw, nil
}

// PostInbox delivers an activity to a remote actor's inbox.
func (s *RemoteServer) PostInbox(c context.Context, account *Account, inboxURL string, bodyJSON any) error {
	body, err := json.Marshal(bodyJSON)
	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	res, err := s.SignedFetch(c, account, http.MethodPost, inboxURL, body, nil)
	if err != nil {
		return fmt.Errorf("failed to post inbox: %w", err)
	}

	defer func() {
		io.Copy(io.Discard, res.Body)
		res.Body.Close()
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("failed to post inbox: status code %d", res.StatusCode)
	}

	return nil
}

func (s *RemoteServer) GetWebfinger(c context.Context, host string, resource string) (*internal.JSONWebfinger, error) {
	uri := url.URL{
		Scheme: "https",
		Host:   host,
		Path:   ".well-known/webfinger",
		RawQuery: url.Values{
			"resource": []string{resource},
		}.Encode(),
	}
	req, err := http.NewRequestWithContext(c, http.MethodGet, uri.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	res, err := s.cli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get webfinger: %w", err)
	}

	defer func() {
		io.Copy(io.Discard, res.Body)
		res.Body.Close()
	}()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get webfinger: status code %d", res.StatusCode)
	}

	var webfinger internal.JSONWebfinger
	if err := json.NewDecoder(res.Body).Decode(&webfinger); err != nil {
		return nil, fmt.Errorf("failed to decode webfinger: %w", err)
	}

	return &webfinger, nil
}
