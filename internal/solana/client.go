package solana

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// Client is a minimal Solana JSON-RPC HTTP client covering the two calls the
// indexer needs. It does no retries; failed calls abort the current cycle and
// the scheduler picks the same window up again.
type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) post(ctx context.Context, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "new request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, errors.Errorf("rpc status %d: %s", resp.StatusCode, string(msg))
	}

	ret, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	return ret, nil
}

// GetSignaturesForAddress returns the most recent transaction signatures
// referencing the address, newest-first, bounded by limit. A non-empty until
// stops the backwards search at that signature (end-exclusive).
func (c *Client) GetSignaturesForAddress(ctx context.Context, address string, limit int, until string) ([]*SignatureInfo, error) {
	cfg := map[string]any{
		"limit":      limit,
		"commitment": "confirmed",
	}
	if until != "" {
		cfg["until"] = until
	}

	body, err := c.post(ctx, rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "getSignaturesForAddress",
		Params:  []any{address, cfg},
	})
	if err != nil {
		return nil, err
	}

	var resp struct {
		Result []*SignatureInfo `json:"result"`
		Error  *rpcError        `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "decode signatures response")
	}
	if resp.Error != nil {
		return nil, errors.Wrap(resp.Error, "get signatures for address")
	}

	return resp.Result, nil
}

// GetTransactions fetches parsed transaction bodies for the given signatures
// in one batched JSON-RPC call. The returned slice is aligned with the input;
// a nil entry marks a transaction the node could not return.
func (c *Client) GetTransactions(ctx context.Context, signatures []string) ([]*Transaction, error) {
	if len(signatures) == 0 {
		return nil, nil
	}

	batch := make([]rpcRequest, 0, len(signatures))
	for i, sig := range signatures {
		batch = append(batch, rpcRequest{
			JSONRPC: "2.0",
			ID:      i,
			Method:  "getTransaction",
			Params: []any{sig, map[string]any{
				"encoding":                       "jsonParsed",
				"commitment":                     "confirmed",
				"maxSupportedTransactionVersion": 0,
			}},
		})
	}

	body, err := c.post(ctx, batch)
	if err != nil {
		return nil, err
	}

	var resp []struct {
		ID     int          `json:"id"`
		Result *Transaction `json:"result"`
		Error  *rpcError    `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "decode transactions response")
	}

	// batched responses come back in arbitrary order
	ret := make([]*Transaction, len(signatures))
	for _, r := range resp {
		if r.Error != nil {
			return nil, errors.Wrapf(r.Error, "get transaction %s", signatures[r.ID])
		}
		if r.ID < 0 || r.ID >= len(ret) {
			return nil, errors.Errorf("unexpected response id %d", r.ID)
		}
		ret[r.ID] = r.Result
	}

	return ret, nil
}
