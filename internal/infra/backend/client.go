// Package backend implements the domain gateways against the REST backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"fieldops/config"
	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/service"
	"fieldops/internal/errors"
)

const (
	defaultTimeout   = 30 * time.Second
	maxErrorBodySize = 64 << 10
)

// Client talks to the backend REST API. Reads are retried on transport
// errors and 5xx responses; writes are sent exactly once.
type Client struct {
	baseURL      *url.URL
	httpClient   *http.Client
	readRetries  int
	retryBackoff time.Duration
	logger       *slog.Logger
}

// NewClient creates a backend client from the backend configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.Backend == nil || strings.TrimSpace(cfg.Backend.BaseURL) == "" {
		return nil, errors.New("backend.baseUrl is required")
	}

	base, err := url.Parse(strings.TrimRight(cfg.Backend.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse backend.baseUrl")
	}

	timeout := cfg.Backend.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:      base,
		httpClient:   &http.Client{Timeout: timeout},
		readRetries:  max(cfg.Backend.ReadRetries, 0),
		retryBackoff: cfg.Backend.RetryBackoff,
		logger:       logger,
	}, nil
}

// NewBackend exposes the client as the domain backend.
func NewBackend(c *Client) service.Backend {
	return c
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type uploadResponse struct {
	Paths []entity.PhotoRef `json:"paths"`
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/api/login", loginRequest{Email: email, Password: password}, &out); err != nil {
		return "", err
	}

	if out.AccessToken == "" {
		return "", domainerrors.NewBackendError(http.StatusBadGateway, "login response carries no access token")
	}

	return out.AccessToken, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := c.get(ctx, "/api/users", nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := c.get(ctx, "/api/users/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, input service.UserInput) (*entity.User, error) {
	var user entity.User
	if err := c.sendJSON(ctx, http.MethodPost, "/api/users", input, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, input service.UserInput) (*entity.User, error) {
	var user entity.User
	if err := c.sendJSON(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id), input, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListLocations(ctx context.Context) ([]entity.Location, error) {
	var locations []entity.Location
	if err := c.get(ctx, "/api/locations", nil, &locations); err != nil {
		return nil, err
	}

	return locations, nil
}

func (c *Client) CreateLocation(ctx context.Context, location entity.Location) (*entity.Location, error) {
	var created entity.Location
	if err := c.sendJSON(ctx, http.MethodPost, "/api/locations", location, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *Client) UpdateLocation(ctx context.Context, location entity.Location) (*entity.Location, error) {
	var updated entity.Location
	if err := c.sendJSON(ctx, http.MethodPut, "/api/locations/"+url.PathEscape(location.ID), location, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (c *Client) DeleteLocation(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/api/locations/"+url.PathEscape(id), nil, nil)
}

// ListRecords returns every record, or the records of city when it is set.
func (c *Client) ListRecords(ctx context.Context, city string) ([]entity.ServiceRecord, error) {
	var query url.Values
	if city != "" {
		query = url.Values{"city": {city}}
	}

	var records []entity.ServiceRecord
	if err := c.get(ctx, "/api/records", query, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (c *Client) GetRecord(ctx context.Context, id string) (*entity.ServiceRecord, error) {
	var record entity.ServiceRecord
	if err := c.get(ctx, "/api/records/"+url.PathEscape(id), nil, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (c *Client) CreateRecord(ctx context.Context, record entity.ServiceRecord) (*entity.ServiceRecord, error) {
	var created entity.ServiceRecord
	if err := c.sendJSON(ctx, http.MethodPost, "/api/records", record, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/api/records/"+url.PathEscape(id), nil, nil)
}

// UploadPhotos sends files as one multipart batch tagged with phase.
func (c *Client) UploadPhotos(ctx context.Context, recordID string, phase entity.Phase, files []service.PhotoFile) ([]entity.PhotoRef, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("phase", phase.String()); err != nil {
		return nil, errors.WithStack(err)
	}

	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", multipart.FileContentDisposition("files", f.Name))
		header.Set("Content-Type", f.ContentType)

		part, err := mw.CreatePart(header)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		if _, err := part.Write(f.Data); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	path := "/api/records/" + url.PathEscape(recordID) + "/photos"
	req, err := c.newRequest(ctx, http.MethodPost, c.resolve(path, nil), &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out uploadResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}

	return out.Paths, nil
}

// FetchPhoto downloads a photo by its backend path or absolute URL.
func (c *Client) FetchPhoto(ctx context.Context, ref entity.PhotoRef) ([]byte, error) {
	target, err := c.photoURL(ref)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = c.retryRead(ctx, func() error {
		req, err := c.newRequest(ctx, http.MethodGet, target, nil)
		if err != nil {
			return err
		}

		data, err = c.doRaw(req)

		return err
	})

	return data, err
}

func (c *Client) photoURL(ref entity.PhotoRef) (string, error) {
	raw := string(ref)
	if raw == "" {
		return "", errors.New("empty photo reference")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.Wrapf(err, "parse photo reference %q", raw)
	}

	if u.IsAbs() {
		return u.String(), nil
	}

	return c.resolve("/"+strings.TrimLeft(u.Path, "/"), u.Query()), nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.resolve(path, query)

	return c.retryRead(ctx, func() error {
		req, err := c.newRequest(ctx, http.MethodGet, target, nil)
		if err != nil {
			return err
		}

		return c.do(req, out)
	})
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, c.resolve(path, nil), body)
	if err != nil {
		return err
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// retryRead runs fn until it succeeds, fails permanently, or the retries run out.
func (c *Client) retryRead(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt <= c.readRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return errors.WithStack(ctx.Err())
			case <-time.After(c.retryBackoff * time.Duration(attempt)):
			}
		}

		err = fn()
		if err == nil || !retryable(err) {
			return err
		}

		if c.logger != nil {
			c.logger.WarnContext(ctx, "[Backend] Read failed, retrying",
				slog.Int("attempt", attempt+1),
				slog.Any("error", err),
			)
		}
	}

	return err
}

func retryable(err error) bool {
	var backendErr *domainerrors.BackendError
	if !errors.As(err, &backendErr) {
		return false
	}

	return backendErr.Status() == 0 || backendErr.Status() >= http.StatusInternalServerError
}

func (c *Client) resolve(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	return u.String()
}

func (c *Client) newRequest(ctx context.Context, method, target string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req.Header.Set("Accept", "application/json")
	if token := service.AccessTokenFromContext(ctx); token != "" && c.sameOrigin(req.URL) {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// sameOrigin reports whether u points at the backend. The user's token is
// only ever sent there, never to photo hosts behind absolute references.
func (c *Client) sameOrigin(u *url.URL) bool {
	return strings.EqualFold(u.Scheme, c.baseURL.Scheme) && strings.EqualFold(u.Host, c.baseURL.Host)
}

func (c *Client) do(req *http.Request, out any) error {
	data, err := c.doRaw(req)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return domainerrors.NewBackendError(http.StatusBadGateway, "unexpected response body: "+err.Error())
	}

	return nil
}

func (c *Client) doRaw(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewBackendTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

		return nil, domainerrors.NewBackendError(resp.StatusCode, errorDetail(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.NewBackendTransportError(err)
	}

	return data, nil
}

// errorDetail extracts the structured message of an error body, if any.
func errorDetail(body []byte) string {
	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
		Error   string          `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	if len(payload.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(payload.Detail, &detail); err == nil {
			return detail
		}

		// Validation errors come as a list of {msg} objects.
		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(payload.Detail, &items); err == nil {
			msgs := make([]string, 0, len(items))
			for _, it := range items {
				if it.Msg != "" {
					msgs = append(msgs, it.Msg)
				}
			}

			return strings.Join(msgs, "; ")
		}
	}

	if payload.Message != "" {
		return payload.Message
	}

	return payload.Error
}
