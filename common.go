package versia

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SoftwareName      string        `envconfig:"SOFTWARE_NAME" default:"versia"`
	Host              string        `envconfig:"HOST" default:"localhost:8080"`
	Port              int           `envconfig:"PORT" default:"8080"`
	Https             bool          `envconfig:"HTTPS" default:"false"`
	SignatureMaxSkew  time.Duration `envconfig:"SIGNATURE_MAX_SKEW" default:"30s"`
	FetchTimeout      time.Duration `envconfig:"FETCH_TIMEOUT" default:"10s"`
	OpenRegistrations bool          `envconfig:"OPEN_REGISTRATIONS" default:"false"`
}

func ParseConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("versia", &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config: %w", err)
	}
	return &cfg, nil
}

var (
	// ErrNotFound is returned when a looked-up entity does not exist.
	// Handlers map it to 404.
	ErrNotFound = errors.New("not found")
	// ErrInvalidSignature covers every inbound signature failure.
	// Handlers map it to 401 without detailing which check failed.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrInvalidActivity is returned for activities that are well-formed
	// JSON but cannot be processed (unknown undo target, author mismatch).
	// Handlers map it to 400.
	ErrInvalidActivity = errors.New("invalid activity")
)

// Visibility is the audience of a status.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
	VisibilityDirect   Visibility = "direct"
)

func ParseVisibility(s string) (Visibility, bool) {
	switch Visibility(s) {
	case VisibilityPublic, VisibilityUnlisted, VisibilityPrivate, VisibilityDirect:
		return Visibility(s), true
	default:
		return "", false
	}
}

// NotificationType enumerates the notifications the inbox emits.
type NotificationType string

const (
	NotificationFavourite     NotificationType = "favourite"
	NotificationFollow        NotificationType = "follow"
	NotificationFollowRequest NotificationType = "follow_request"
	NotificationReblog        NotificationType = "reblog"
	NotificationMention       NotificationType = "mention"
)
