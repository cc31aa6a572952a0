// Package ledger is the client for the car-registry ledger REST API. It hides
// the API's wire shapes behind four calls that speak model.Car.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/okian/fabcar-web/internal/domain/model"
	"github.com/okian/fabcar-web/pkg/logger"
	"github.com/okian/fabcar-web/pkg/metrics"
)

// Ledger API paths.
const (
	pathQueryAllCars   = "/queryallcars"
	pathQueryCar       = "/querycar"
	pathCreateCar      = "/createcar"
	pathChangeCarOwner = "/changecarowner"
)

// Operation names used in errors, logs and metrics.
const (
	OpQueryAllCars   = "queryAllCars"
	OpQueryCar       = "queryCar"
	OpCreateCar      = "createCar"
	OpChangeCarOwner = "changeCarOwner"
)

// Longest body excerpt kept on a StatusError.
const maxErrorBody = 512

// Client calls the ledger API. It keeps no state besides its base address
// and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     logger.Logger
}

// NewClient creates a client for the ledger API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// BaseURL returns the ledger address the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// QueryAllCars returns every car on the ledger in the order the ledger lists them.
func (c *Client) QueryAllCars(ctx context.Context) ([]model.Car, error) {
	var resp []model.CarResponse
	if err := c.do(ctx, OpQueryAllCars, http.MethodGet, pathQueryAllCars, nil, &resp); err != nil {
		return nil, err
	}
	return model.FromResponses(resp), nil
}

// QueryCar returns the car stored under carNumber.
func (c *Client) QueryCar(ctx context.Context, carNumber string) (model.Car, error) {
	var rec model.CarRecord
	path := pathQueryCar + "?" + url.Values{"car": {carNumber}}.Encode()
	if err := c.do(ctx, OpQueryCar, http.MethodGet, path, nil, &rec); err != nil {
		return model.Car{}, err
	}
	return model.FromRecord(carNumber, rec), nil
}

// CreateCar submits a new car. The response body is ignored.
func (c *Client) CreateCar(ctx context.Context, car model.Car) error {
	return c.do(ctx, OpCreateCar, http.MethodPost, pathCreateCar, car, nil)
}

// ChangeCarOwner transfers carNumber to newOwner and returns the updated car.
func (c *Client) ChangeCarOwner(ctx context.Context, carNumber, newOwner string) (model.Car, error) {
	var rec model.CarRecord
	body := model.ChangeOwnerRequest{CarNumber: carNumber, NewOwner: newOwner}
	if err := c.do(ctx, OpChangeCarOwner, http.MethodPost, pathChangeCarOwner, body, &rec); err != nil {
		return model.Car{}, err
	}
	return model.FromRecord(carNumber, rec), nil
}

// do performs one round trip. A nil in sends no body; a nil out drains and
// discards the response body.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) (err error) {
	start := time.Now()
	defer func() {
		latencyMs := float64(time.Since(start).Microseconds()) / 1000
		metrics.RecordLedgerRequest(op, outcome(err), latencyMs)
		if err != nil {
			c.logger.Warn(ctx, "ledger call failed",
				logger.String("operation", op),
				logger.Float64("latency_ms", latencyMs),
				logger.Error(err),
			)
			return
		}
		c.logger.Debug(ctx, "ledger call",
			logger.String("operation", op),
			logger.Float64("latency_ms", latencyMs),
		)
	}()

	var body io.Reader
	if in != nil {
		data, merr := json.Marshal(in)
		if merr != nil {
			return WrapKind(op, ErrEncode, merr)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return WrapKind(op, ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return WrapKind(op, ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		serr := &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(excerpt))}
		if resp.StatusCode == http.StatusNotFound {
			return WrapKind(op, ErrNotFound, serr)
		}
		return WrapKind(op, ErrUnexpectedStatus, serr)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if derr := json.NewDecoder(resp.Body).Decode(out); derr != nil {
		return WrapKind(op, ErrDecode, derr)
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrTransport):
		return "transport_error"
	case errors.Is(err, ErrDecode):
		return "decode_error"
	case errors.Is(err, ErrUnexpectedStatus):
		return "status_error"
	default:
		return "error"
	}
}
