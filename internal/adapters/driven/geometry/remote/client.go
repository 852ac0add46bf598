// Package remote delegates ring construction to an external
// geo-computation service over HTTP. The service performs the geodesic
// dilation and difference server-side and returns the ring as GeoJSON.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/time/rate"

	"github.com/yvynation/zonepack/internal/core/domain"
	"github.com/yvynation/zonepack/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.GeometryEngine = (*Client)(nil)

// DefaultTimeout bounds one ring request. A timeout is reported as a
// geometry operation failure, like any other backend error.
const DefaultTimeout = 30 * time.Second

// Client is an HTTP implementation of driven.GeometryEngine.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Useful for testing.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.http = c
	}
}

// WithRateLimit caps requests per second against the backend.
func WithRateLimit(rps float64) Option {
	return func(client *Client) {
		client.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// New creates a client for the geometry service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type ringRequest struct {
	Geometry  *geojson.Geometry `json:"geometry"`
	DistanceM float64           `json:"distance_m"`
}

type ringResponse struct {
	Ring *geojson.Geometry `json:"ring"`
}

// Ring requests the external buffer ring from the remote service.
func (c *Client) Ring(ctx context.Context, source orb.Geometry, distanceKm float64) (orb.Geometry, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeometryOperation, err)
	}

	body, err := json.Marshal(ringRequest{
		Geometry:  geojson.NewGeometry(source),
		DistanceM: distanceKm * 1000,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", domain.ErrGeometryOperation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/ring", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeometryOperation, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeometryOperation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: backend returned %s", domain.ErrGeometryOperation, resp.Status)
	}

	var decoded ringResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrGeometryOperation, err)
	}
	if decoded.Ring == nil {
		return nil, fmt.Errorf("%w: backend returned no ring", domain.ErrGeometryOperation)
	}

	return decoded.Ring.Geometry(), nil
}
