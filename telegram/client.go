// Package telegram talks to the Telegram Bot API on behalf of the relay.
// The bot token only ever appears in server-to-platform URLs; every error
// leaving this package has it scrubbed.
package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Super-Badmen-Viper/SongRelay/domain"
	"github.com/tidwall/gjson"
)

const DefaultBaseURL = "https://api.telegram.org"

const redacted = "<redacted>"

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient builds a Bot API client. httpClient may be nil; it must not carry
// a global Timeout since downloads are streamed for as long as the caller reads.
func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

func (c *Client) HasToken() bool {
	return c.token != ""
}

func (c *Client) methodURL(method string, params url.Values) string {
	u := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *Client) fileURL(filePath string) string {
	return fmt.Sprintf("%s/file/bot%s/%s", c.baseURL, c.token, strings.TrimLeft(filePath, "/"))
}

type updatesEnvelope struct {
	OK          bool            `json:"ok"`
	Result      []domain.Update `json:"result"`
	Description string          `json:"description"`
}

// GetUpdates long-polls for updates with id >= offset, waiting up to timeout seconds.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout int) ([]domain.Update, error) {
	params := url.Values{}
	params.Set("offset", strconv.FormatInt(offset, 10))
	params.Set("timeout", strconv.Itoa(timeout))

	resp, err := c.get(ctx, c.methodURL("getUpdates", params))
	if err != nil {
		return nil, fmt.Errorf("getUpdates: %w", err)
	}
	defer resp.Body.Close()

	var envelope updatesEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("getUpdates: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !envelope.OK {
		return nil, fmt.Errorf("getUpdates: %w: status %d: %s", domain.ErrUpstream, resp.StatusCode, c.scrub(envelope.Description))
	}
	return envelope.Result, nil
}

// GetFilePath exchanges a file identifier for its transient download path.
func (c *Client) GetFilePath(ctx context.Context, fileID string) (string, error) {
	params := url.Values{}
	params.Set("file_id", fileID)

	resp, err := c.get(ctx, c.methodURL("getFile", params))
	if err != nil {
		return "", fmt.Errorf("getFile: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("getFile: read response: %w", c.redact(err))
	}

	result := gjson.ParseBytes(body)
	if !result.Get("ok").Bool() {
		description := c.scrub(result.Get("description").String())
		if result.Get("error_code").Int() == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
			return "", fmt.Errorf("getFile %q: %w: %s", fileID, domain.ErrFileNotFound, description)
		}
		return "", fmt.Errorf("getFile %q: %w: status %d: %s", fileID, domain.ErrUpstream, resp.StatusCode, description)
	}

	filePath := result.Get("result.file_path").String()
	if filePath == "" {
		return "", fmt.Errorf("getFile %q: %w: empty file_path", fileID, domain.ErrFileNotFound)
	}
	return filePath, nil
}

// Download opens a streaming GET against the file endpoint. The body is
// handed to the caller unread.
func (c *Client) Download(ctx context.Context, filePath string) (*domain.FileStream, error) {
	resp, err := c.get(ctx, c.fileURL(filePath))
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("download: %w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	return &domain.FileStream{
		Body:          resp.Body,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
	}, nil
}

func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, c.redact(err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.redact(err)
	}
	return resp, nil
}

// redact strips the token from transport errors, which embed the request URL.
func (c *Client) redact(err error) error {
	if err == nil || c.token == "" {
		return err
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: c.scrub(urlErr.URL), Err: scrubbedError{err: urlErr.Err, scrub: c.scrub}}
	}
	return scrubbedError{err: err, scrub: c.scrub}
}

func (c *Client) scrub(s string) string {
	if c.token == "" {
		return s
	}
	s = strings.ReplaceAll(s, c.token, redacted)
	return strings.ReplaceAll(s, url.PathEscape(c.token), redacted)
}

type scrubbedError struct {
	err   error
	scrub func(string) string
}

func (e scrubbedError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.scrub(e.err.Error())
}

func (e scrubbedError) Unwrap() error { return e.err }
