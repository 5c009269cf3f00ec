package restdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
)

const maxErrorBodyBytes = 4096

// Client is a collection-scoped document-store client. List returns raw
// documents so callers own the decoding; Create returns the stored document
// with the identifier the store assigned.
type Client interface {
	List(ctx context.Context, q Query) ([]json.RawMessage, error)
	Create(ctx context.Context, doc any) (json.RawMessage, error)
	Delete(ctx context.Context, id string) error
}

type client struct {
	log     *logger.Logger
	cfg     Config
	baseURL string
	http    *http.Client
}

func NewClient(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	c := &client{
		log:     log.With("client", "restdb"),
		cfg:     cfg,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	c.log.Info("restdb client ready", "base_url", c.baseURL, "collection", cfg.Collection)
	return c, nil
}

func (c *client) List(ctx context.Context, q Query) ([]json.RawMessage, error) {
	const op = "list"
	query, err := q.encode()
	if err != nil {
		return nil, opErr(op, OperationErrorEncodeFailed, "encode query failed", err)
	}
	var docs []json.RawMessage
	if err := c.doJSON(ctx, op, http.MethodGet, c.collectionPath(""), query, nil, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []json.RawMessage{}
	}
	return docs, nil
}

func (c *client) Create(ctx context.Context, doc any) (json.RawMessage, error) {
	const op = "create"
	var created json.RawMessage
	if err := c.doJSON(ctx, op, http.MethodPost, c.collectionPath(""), nil, doc, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *client) Delete(ctx context.Context, id string) error {
	const op = "delete"
	id = strings.TrimSpace(id)
	if id == "" {
		return opErr(op, OperationErrorValidation, "record id is required", nil)
	}
	return c.doJSON(ctx, op, http.MethodDelete, c.collectionPath("/"+url.PathEscape(id)), nil, nil, nil)
}

func (c *client) collectionPath(suffix string) string {
	path := "/rest/" + c.cfg.Collection
	if strings.TrimSpace(suffix) == "" {
		return path
	}
	return path + suffix
}

func (c *client) doJSON(ctx context.Context, op, method, path string, query url.Values, in any, out any) error {
	var body io.Reader
	if in != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(in); err != nil {
			return opErr(op, OperationErrorEncodeFailed, "encode request failed", err)
		}
		body = &buf
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return opErr(op, OperationErrorTransportFailed, "build request failed", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-apikey", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyHTTPCallError(op, "restdb request failed", err)
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return opErr(op, OperationErrorDecodeFailed, "read response failed", readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("restdb call failed", "op", op, "status", resp.StatusCode)
		return &OperationError{
			Code:       OperationErrorUpstream,
			Operation:  op,
			StatusCode: resp.StatusCode,
			Body:       errorBody(raw),
			Message:    fmt.Sprintf("restdb http status=%d body=%q", resp.StatusCode, truncateBody(raw)),
		}
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return opErr(op, OperationErrorDecodeFailed, "decode restdb response failed", err)
	}
	return nil
}

func classifyHTTPCallError(op, message string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return opErr(op, OperationErrorTimeout, message, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return opErr(op, OperationErrorTimeout, message, err)
	}
	return opErr(op, OperationErrorTransportFailed, message, err)
}

// errorBody keeps an upstream error payload in a shape that can be embedded
// into a JSON envelope as-is: valid JSON passes through raw, anything else is
// carried as a JSON string of the text.
func errorBody(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	if gjson.ValidBytes(trimmed) {
		return json.RawMessage(trimmed)
	}
	quoted, err := json.Marshal(string(trimmed))
	if err != nil {
		return nil
	}
	return json.RawMessage(quoted)
}

func truncateBody(raw []byte) string {
	if len(raw) <= maxErrorBodyBytes {
		return string(raw)
	}
	return string(raw[:maxErrorBodyBytes]) + "..."
}
