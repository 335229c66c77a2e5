package destination

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/razorpay/pipeline-testkit/internal/merror"
	"github.com/razorpay/pipeline-testkit/pkg/httpclient"
	"github.com/razorpay/pipeline-testkit/pkg/logger"
	"golang.org/x/oauth2"
)

const maxErrorBodyBytes = 512

// HTTPDestination posts json bodies to an http endpoint
type HTTPDestination struct {
	endpoint string
	client   *http.Client
}

// NewHTTPDestination returns a destination posting to endpoint. A non empty
// authToken is attached to every request as a bearer token.
func NewHTTPDestination(endpoint, authToken string, config *httpclient.Config) (*HTTPDestination, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, merror.Wrapf(merror.InvalidArgument, err, "invalid http endpoint %v", endpoint)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, merror.Newf(merror.InvalidArgument, "invalid http endpoint %v, expected an absolute http(s) url", endpoint)
	}

	if config == nil {
		config = &httpclient.Config{}
	}
	client := httpclient.NewClient(config)

	if authToken != "" {
		client.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: authToken, TokenType: "Bearer"}),
			Base:   client.Transport,
		}
	}

	return &HTTPDestination{endpoint: endpoint, client: client}, nil
}

// Deliver posts body, any non 2xx status is an error
func (h *HTTPDestination) Deliver(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return merror.Wrapf(merror.Transport, err, "failed to build request for %v", h.endpoint)
	}
	req.Header.Set("content-type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return merror.Wrapf(merror.Transport, err, "failed to post message to %v", h.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := ioutil.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return merror.Newf(merror.Transport, "%v responded with status %v: %s", h.endpoint, resp.StatusCode, respBody)
	}
	// drain so the connection is reused
	_, _ = io.Copy(ioutil.Discard, resp.Body)

	logger.Ctx(ctx).Debugw("message posted", "endpoint", h.endpoint, "status", resp.StatusCode)
	return nil
}

// Close releases idle connections
func (h *HTTPDestination) Close(ctx context.Context) error {
	h.client.CloseIdleConnections()
	return nil
}

func (h *HTTPDestination) String() string {
	return fmt.Sprintf("http endpoint %v", h.endpoint)
}
