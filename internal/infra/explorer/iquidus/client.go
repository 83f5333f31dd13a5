// Package iquidus implements blocknotify.Explorer for explorers running the
// Iquidus explorer API (summary at /ext/getsummary, lookups under /api).
package iquidus

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gabapcia/blocknotify/internal/blocknotify"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"
)

// maxBodySize caps how much of a response is read into memory.
const maxBodySize = 1 << 20

const (
	endpointSummary   = "summary"
	endpointBlockHash = "blockhash"
	endpointBlockInfo = "blockinfo"
)

// summaryResponse is the subset of /ext/getsummary used here. Difficulty may
// be encoded as a JSON number or a string.
type summaryResponse struct {
	BlockCount *int64           `json:"blockcount"`
	Difficulty *decimal.Decimal `json:"difficulty"`
}

// blockResponse is the subset of /api/getblock used here.
type blockResponse struct {
	Hash   string `json:"hash"`
	Height int64  `json:"height"`
	Time   int64  `json:"time"`
}

// client queries an Iquidus explorer over HTTP.
type client struct {
	httpClient   *retryablehttp.Client
	summaryURL   string
	blockHashURL string
	blockInfoURL string
}

var _ blocknotify.Explorer = (*client)(nil)

// FetchSummary returns the current block count and difficulty.
func (c *client) FetchSummary(ctx context.Context) (blocknotify.ChainSummary, error) {
	body, err := c.get(ctx, c.summaryURL, nil)
	if err != nil {
		return blocknotify.ChainSummary{}, err
	}

	var data summaryResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return blocknotify.ChainSummary{}, malformed(endpointSummary, body, err)
	}

	switch {
	case data.BlockCount == nil:
		return blocknotify.ChainSummary{}, malformed(endpointSummary, body, errors.New("missing blockcount"))
	case data.Difficulty == nil:
		return blocknotify.ChainSummary{}, malformed(endpointSummary, body, errors.New("missing difficulty"))
	}

	return blocknotify.ChainSummary{
		BlockCount: *data.BlockCount,
		Difficulty: *data.Difficulty,
	}, nil
}

// FetchBlockHash returns the hash of the block at height. The endpoint
// answers in plain text.
func (c *client) FetchBlockHash(ctx context.Context, height int64) (string, error) {
	body, err := c.get(ctx, c.blockHashURL, url.Values{"index": {strconv.FormatInt(height, 10)}})
	if err != nil {
		return "", err
	}

	hash := strings.TrimSpace(string(body))
	if hash == "" {
		return "", malformed(endpointBlockHash, body, errors.New("empty block hash"))
	}

	// Iquidus reports lookup errors as a 200 with a human readable sentence.
	if _, err := hex.DecodeString(hash); err != nil {
		return "", malformed(endpointBlockHash, body, fmt.Errorf("block hash is not hex: %w", err))
	}

	return hash, nil
}

// FetchBlockInfo returns the metadata of the block with the given hash.
func (c *client) FetchBlockInfo(ctx context.Context, hash string) (blocknotify.BlockInfo, error) {
	body, err := c.get(ctx, c.blockInfoURL, url.Values{"hash": {hash}})
	if err != nil {
		return blocknotify.BlockInfo{}, err
	}

	var data blockResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return blocknotify.BlockInfo{}, malformed(endpointBlockInfo, body, err)
	}

	if data.Time <= 0 {
		return blocknotify.BlockInfo{}, malformed(endpointBlockInfo, body, errors.New("missing block time"))
	}

	return blocknotify.BlockInfo{
		Hash:   data.Hash,
		Height: data.Height,
		Time:   data.Time,
	}, nil
}

// get performs a GET on rawURL with query merged into any query it already
// has, and returns the body of a 200 response. Transport failures and any
// other status wrap blocknotify.ErrTransientFetch.
func (c *client) get(ctx context.Context, rawURL string, query url.Values) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid explorer url: %w", err)
	}

	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Set(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json, text/plain")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", blocknotify.ErrTransientFetch, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", blocknotify.ErrTransientFetch, err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", blocknotify.ErrTransientFetch, u.Path, res.StatusCode)
	}

	return body, nil
}

func malformed(endpoint string, body []byte, err error) error {
	return &blocknotify.MalformedResponseError{
		Endpoint: endpoint,
		Body:     string(body),
		Err:      err,
	}
}

// NewClient creates an Explorer backed by the given endpoints. The hash and
// block URLs receive the index and hash query parameters respectively.
func NewClient(httpClient *retryablehttp.Client, summaryURL, blockHashURL, blockInfoURL string) *client {
	return &client{
		httpClient:   httpClient,
		summaryURL:   summaryURL,
		blockHashURL: blockHashURL,
		blockInfoURL: blockInfoURL,
	}
}
