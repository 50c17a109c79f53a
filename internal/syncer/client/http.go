package client

import (
	"context"
	"time"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"

	"github.com/oaksmart/pos-ledger/internal/syncer"
)

// HTTPClient talks to the authority's reconciliation endpoint. Every call
// carries a bounded timeout; an expired call counts as a transport failure
// so the single-flight guard is never held indefinitely.
type HTTPClient struct {
	endpoint string
	timeout  time.Duration
}

func NewHTTPClient(endpoint string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		timeout:  timeout,
	}
}

func (c *HTTPClient) Reconcile(ctx context.Context, req *syncer.ReconcileRequest) (*syncer.ReconcileResponse, error) {
	var resp syncer.ReconcileResponse
	var code int
	err := gout.POST(c.endpoint + "/api/sync").
		WithContext(ctx).
		SetTimeout(c.timeout).
		SetJSON(req).
		BindJSON(&resp).
		Code(&code).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "reconcile request")
	}
	if code < 200 || code >= 300 {
		return nil, errors.Errorf("reconcile endpoint returned status %d", code)
	}
	return &resp, nil
}
