package export

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/matzehuels/graphsketch/pkg/graph"
	"github.com/matzehuels/graphsketch/pkg/httputil"
)

// HTTPPublisher POSTs each snapshot as JSON to URL. Network errors, 429 and
// 5xx responses are retried under Policy; other failures return at once.
type HTTPPublisher struct {
	URL    string
	Client *http.Client
	Policy httputil.Policy
}

// NewHTTPPublisher returns a publisher for url whose requests time out after
// timeout (no timeout when zero).
func NewHTTPPublisher(url string, timeout time.Duration) *HTTPPublisher {
	return &HTTPPublisher{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
		Policy: httputil.DefaultPolicy,
	}
}

// Publish sends s to the host.
func (p *HTTPPublisher) Publish(ctx context.Context, s graph.Snapshot) error {
	body, err := graph.MarshalSnapshot(s)
	if err != nil {
		return err
	}
	err = p.Policy.Do(ctx, func() error {
		return httputil.Post(ctx, p.Client, p.URL, "application/json", body)
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", p.URL, err)
	}
	return nil
}
