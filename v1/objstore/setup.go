package objstore

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/stratal/objstore/v1/observability"
	"github.com/stratal/objstore/v1/s3types"
	"golang.org/x/sync/singleflight"
)

// ObjstoreClient is the concrete client behind the Client interface. It
// assembles protocol messages, hands them to the configured Transport and
// decodes the responses. It carries no connection state of its own; the
// transport owns sockets, signing and retries.
type ObjstoreClient struct {
	// transport executes the assembled requests
	transport Transport

	// cfg holds the configuration for this client instance
	cfg Config

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer

	// logger provides optional logging capabilities
	logger Logger

	// regionGroup deduplicates concurrent bucket-location lookups
	regionGroup singleflight.Group

	// regionCache stores resolved bucket regions
	regionCache *regionCache
}

// NewClient creates a new object storage client over the given transport.
//
// Example:
//
//	client, err := objstore.NewClient(config, transport)
//	if err != nil {
//	    return fmt.Errorf("failed to initialize objstore client: %w", err)
//	}
//
//	// Optionally attach logger and observer
//	client = client.
//	    WithLogger(myLogger).
//	    WithObserver(myObserver)
func NewClient(config Config, transport Transport) (*ObjstoreClient, error) {
	if transport == nil {
		return nil, ErrNilTransport
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &ObjstoreClient{
		transport:   transport,
		cfg:         config,
		logger:      config.Logger,
		regionCache: newRegionCache(),
	}, nil
}

// WithObserver attaches an observer for observability hooks. Returns the
// client for method chaining.
func (c *ObjstoreClient) WithObserver(observer observability.Observer) *ObjstoreClient {
	c.observer = observer
	return c
}

// WithLogger attaches a logger for background and decode-failure logging.
// Returns the client for method chaining.
func (c *ObjstoreClient) WithLogger(logger Logger) *ObjstoreClient {
	c.logger = logger
	return c
}

// do executes one request and returns the raw response. Non-2xx responses
// are decoded into an APIError; the response body is consumed and closed
// in that case.
func (c *ObjstoreClient) do(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("objstore: read error response: %w", err)
	}
	var errResp s3types.ErrorResponse
	if len(body) > 0 {
		if err := xml.Unmarshal(body, &errResp); err != nil {
			c.logWarn("failed to decode error response body", err, map[string]interface{}{
				"status": resp.StatusCode,
			})
		}
	}
	if errResp.Code == "" {
		// Some operations (HEAD) carry no body; synthesize from status.
		switch resp.StatusCode {
		case 404:
			errResp.Code = s3types.ErrCodeNoSuchKey
		case 403:
			errResp.Code = s3types.ErrCodeAccessDenied
		default:
			errResp.Code = fmt.Sprintf("UnexpectedStatus%d", resp.StatusCode)
		}
	}
	errResp.StatusCode = resp.StatusCode
	return nil, newAPIError(errResp)
}

// executeXML runs a request, decodes the XML response body into out (when
// out is non-nil) and reports the operation to the observer.
func (c *ObjstoreClient) executeXML(ctx context.Context, operation string, req *Request, out interface{}) error {
	start := time.Now()
	err := c.executeXMLNoObserve(ctx, req, out)
	c.observeOperation(operation, req.Bucket, req.Key, time.Since(start), err, req.ContentLength, nil)
	return err
}

func (c *ObjstoreClient) executeXMLNoObserve(ctx context.Context, req *Request, out interface{}) error {
	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, err = io.Copy(io.Discard, resp.Body)
		return err
	}
	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("objstore: decode response: %w", err)
	}
	return nil
}

// marshalBody encodes an XML document for a request body.
func marshalBody(doc interface{}) (io.Reader, int64, error) {
	data, err := xml.Marshal(doc)
	if err != nil {
		return nil, 0, fmt.Errorf("objstore: encode request body: %w", err)
	}
	body := append([]byte(xml.Header), data...)
	return bytes.NewReader(body), int64(len(body)), nil
}

// newRequest builds a request skeleton with an initialized query map.
func newRequest(method, bucket, key string) *Request {
	return &Request{
		Method:        method,
		Bucket:        bucket,
		Key:           key,
		Query:         url.Values{},
		Headers:       map[string]string{},
		ContentLength: -1,
	}
}

func (c *ObjstoreClient) logInfo(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Info(msg, nil, fields)
	}
}

func (c *ObjstoreClient) logWarn(msg string, err error, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Warn(msg, err, fields)
	}
}
