package store

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// RemoteBundle is the whole-collection payload exchanged with the sync
// backend. LastModified is the newest timestamp across Sessions and is
// the only signal conflict resolution looks at.
type RemoteBundle struct {
	Sessions     []*SavedSession `json:"sessions"`
	Behavior     BehaviorStats   `json:"behavior"`
	LastModified time.Time       `json:"lastModifiedTimestamp"`
}

// RemoteClient is the persistence collaborator for cross-device sync.
type RemoteClient interface {
	// Load fetches the owner's bundle. Returns (nil, nil) when the
	// backend has no bundle for this owner.
	Load(ctx context.Context, ownerID string) (*RemoteBundle, error)

	// Save pushes the owner's bundle, replacing the remote copy.
	Save(ctx context.Context, ownerID string, bundle *RemoteBundle) error
}

// RemoteConfig configures the HTTP sync backend.
type RemoteConfig struct {
	BaseURL string
	Token   string
}

// HTTPRemoteClient talks to the sync backend over REST.
type HTTPRemoteClient struct {
	client *resty.Client
}

// NewHTTPRemoteClient creates a RemoteClient for the given backend.
// Timeouts are supplied per call through the context; the sync manager
// owns the 8s/10s budgets.
func NewHTTPRemoteClient(cfg RemoteConfig) *HTTPRemoteClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json")
	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}
	return &HTTPRemoteClient{client: client}
}

func (c *HTTPRemoteClient) Load(ctx context.Context, ownerID string) (*RemoteBundle, error) {
	var bundle RemoteBundle
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("owner", ownerID).
		SetResult(&bundle).
		Get("/v1/sessions/{owner}")
	if err != nil {
		return nil, fmt.Errorf("load remote bundle: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return &bundle, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("load remote bundle: unexpected status %d", resp.StatusCode())
	}
}

func (c *HTTPRemoteClient) Save(ctx context.Context, ownerID string, bundle *RemoteBundle) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("owner", ownerID).
		SetBody(bundle).
		Put("/v1/sessions/{owner}")
	if err != nil {
		return fmt.Errorf("save remote bundle: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("save remote bundle: unexpected status %d", resp.StatusCode())
	}
	return nil
}
