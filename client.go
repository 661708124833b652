// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Default client configuration values
const (
	DefaultUsername = "admin"
	DefaultDomain   = "local"
	DefaultTimeout  = 30 * time.Second
)

// authCookieName is the session cookie issued by the controller at login
const authCookieName = "AuthCookie"

// Client represents a session with a Nexus Dashboard controller
//
// A Client owns the credentials, the current session token, and a bounded
// diagnostic history of calls. It is either fully unauthenticated (empty
// token, Authenticated() false) or holds exactly one valid token; no
// transitional state is visible to callers.
//
// A Client is NOT safe for concurrent use: token renewal and history
// appends are unguarded. Serialize calls externally, or use one Client per
// worker.
type Client struct {
	// httpClient performs the actual HTTP round-trips
	httpClient *http.Client

	// Controller addresses. If both are set, ip4 is preferred.
	ip4 string
	ip6 string

	// Credentials, unexported for security
	username string
	password string
	domain   string

	// Timeout is the default per-request timeout
	Timeout time.Duration

	// VerifyCertificate enables TLS certificate verification.
	// Controllers commonly ship self-signed certificates, so verification
	// is disabled by default.
	VerifyCertificate bool

	// Session state
	authenticated bool
	token         string
	rbac          string

	// Diagnostics
	lastStatusCode int
	lastURL        string
	hist           history

	logger Logger
}

// NewClient creates a new controller client with the specified options
//
// Defaults are sourced from the environment at construction time and may
// be overridden by options:
//
//	ND_IP4       controller IPv4 address
//	ND_IP6       controller IPv6 address
//	ND_USERNAME  login username (default "admin")
//	ND_PASSWORD  login password
//	ND_DOMAIN    login domain (default "local")
//
// The client performs no network I/O at construction. Call Login to
// authenticate, then Send to dispatch requests.
//
// Example:
//
//	client, err := nd.NewClient(
//	    nd.Host("192.168.1.1"),
//	    nd.Username("admin"),
//	    nd.Password("secret"),
//	)
//	if err != nil {
//	    log.Fatal(err)  // Configuration error
//	}
//	if err := client.Login(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Returns a configured Client or an error if configuration validation fails.
func NewClient(opts ...func(*Client)) (*Client, error) {
	client := &Client{
		ip4:            os.Getenv("ND_IP4"),
		ip6:            os.Getenv("ND_IP6"),
		username:       envOrDefault("ND_USERNAME", DefaultUsername),
		password:       os.Getenv("ND_PASSWORD"),
		domain:         envOrDefault("ND_DOMAIN", DefaultDomain),
		Timeout:        DefaultTimeout,
		lastStatusCode: -1,
		logger:         &NoOpLogger{},
	}

	for _, opt := range opts {
		opt(client)
	}

	if err := client.validateConfig(); err != nil {
		return nil, err
	}

	client.httpClient = &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: !client.VerifyCertificate, //nolint:gosec // Controller certificates are typically self-signed
			},
		},
	}

	client.logger.Info("nd client created",
		"ip4", client.ip4,
		"ip6", client.ip6,
		"domain", client.domain)

	return client, nil
}

// envOrDefault returns the environment variable value or def when unset
func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// validateConfig validates the client configuration
//
// Host and credentials are validated later, by Login and Send, because the
// lenient contract allows configuring them after construction.
//
// Returns a KindConfig error if validation fails.
func (c *Client) validateConfig() error {
	if c.Timeout <= 0 {
		return configError("client", "timeout must be positive, got: %v", c.Timeout)
	}
	if !c.VerifyCertificate {
		c.logger.Warn("TLS certificate verification disabled",
			"recommendation", "enable with nd.VerifyCertificate(true) when the controller has a trusted certificate")
	}
	return nil
}

// Authenticated reports whether a login round-trip has succeeded
func (c *Client) Authenticated() bool {
	return c.authenticated
}

// Token returns the current session token. Empty until the first
// successful login.
func (c *Client) Token() string {
	return c.token
}

// RBAC returns the raw RBAC object from the most recent login response,
// as a JSON string. Empty until the first successful login.
func (c *Client) RBAC() string {
	return c.rbac
}

// LastStatusCode returns the status code of the most recent call,
// or -1 if no call has been made.
func (c *Client) LastStatusCode() int {
	return c.lastStatusCode
}

// LastURL returns the URL of the most recent call
func (c *Client) LastURL() string {
	return c.lastURL
}

// History returns the bounded diagnostic trail of (status code, URL)
// pairs, most recent first. At most HistoryCapacity entries are retained.
func (c *Client) History() []HistoryEntry {
	return c.hist.list()
}

// host returns the controller address to use, preferring ip4 when both
// are set. IPv6 addresses are bracketed for URL use.
func (c *Client) host() (string, error) {
	if c.ip4 != "" {
		return c.ip4, nil
	}
	if c.ip6 != "" {
		if strings.Contains(c.ip6, ":") && !strings.HasPrefix(c.ip6, "[") {
			return "[" + c.ip6 + "]", nil
		}
		return c.ip6, nil
	}
	return "", configError("send", "ip4 or ip6 must be set before sending requests")
}

// buildURL builds the absolute request URL from the controller host and
// the endpoint path, ensuring exactly one path separator.
func (c *Client) buildURL(path string) (string, error) {
	host, err := c.host()
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(path, "/") {
		return "https://" + host + path, nil
	}
	return "https://" + host + "/" + path, nil
}

// headers returns the headers attached to every request. The current
// session token (when present) rides in the Authorization header and in
// the AuthCookie session cookie.
func (c *Client) headers() map[string]string {
	return map[string]string{
		"Content-Type":  "application/json",
		"Cookie":        authCookieName + "=" + c.token,
		authCookieName:  c.token,
		"Authorization": c.token,
	}
}

// Login authenticates to the controller and retrieves a session token
//
// Login is idempotent: if the client is already authenticated it returns
// immediately without a network call. Username, password, and domain must
// be set (directly or via the environment) before calling Login.
//
// On success the token is extracted from the response body's jwttoken
// field and from the session cookie, and the client is marked
// authenticated. A response that cannot be parsed for a token (rejected
// credentials or an unexpected payload shape) yields a KindAuth error.
func (c *Client) Login(ctx context.Context) error {
	if c.authenticated {
		return nil
	}
	if err := c.validateCredentials("login"); err != nil {
		return err
	}

	res, err := c.Send(ctx, Req{
		Verb:    VerbPost,
		Path:    PathLogin,
		Payload: c.loginPayload(),
	})
	if err != nil {
		return err
	}

	if err := c.updateToken("login", res); err != nil {
		return err
	}
	c.authenticated = true

	c.logger.Info("logged in to controller",
		"username", c.username,
		"domain", c.domain)
	return nil
}

// RefreshLogin unconditionally re-issues the login round-trip against the
// controller's refresh endpoint, replacing the session token. Use it when
// the controller has expired the token mid-session.
//
// Unlike Login, RefreshLogin does not check the authenticated flag first:
// it is meant for forced re-authentication, not a first login. The
// existing session cookie is reused as an additional request header.
func (c *Client) RefreshLogin(ctx context.Context) error {
	if err := c.validateCredentials("refreshLogin"); err != nil {
		return err
	}

	res, err := c.Send(ctx, Req{
		Verb:    VerbPost,
		Path:    PathRefresh,
		Payload: c.loginPayload(),
	})
	if err != nil {
		return err
	}

	if err := c.updateToken("refreshLogin", res); err != nil {
		return err
	}

	c.logger.Info("refreshed controller login",
		"username", c.username,
		"domain", c.domain)
	return nil
}

// validateCredentials checks that username, password, and domain are set.
// Returns a KindConfig error naming the missing field.
func (c *Client) validateCredentials(operation string) error {
	if c.username == "" {
		return configError(operation, "username must be set before calling %s", operation)
	}
	if c.password == "" {
		return configError(operation, "password must be set before calling %s", operation)
	}
	if c.domain == "" {
		return configError(operation, "domain must be set before calling %s", operation)
	}
	return nil
}

// loginPayload builds the login/refresh request body
func (c *Client) loginPayload() string {
	return Body{}.
		Set("userName", c.username).
		Set("userPasswd", c.password).
		Set("domain", c.domain).
		Res()
}

// updateToken extracts the session token and RBAC object from a login or
// refresh response body. Returns a KindAuth error when the token field is
// missing.
func (c *Client) updateToken(operation string, res Res) error {
	token := res.GetValue("jwttoken")
	if !token.Exists() || token.String() == "" {
		return authError(operation, "unable to parse token from response: %s", res.JSON())
	}
	c.token = token.String()
	c.rbac = res.GetValue("rbac").Raw
	return nil
}

// Send dispatches a single REST request to the controller and returns the
// raw response.
//
// The request requires a verb, a path, and a configured controller host;
// missing configuration fails with a KindConfig error before any network
// activity. A transport-level failure (DNS, connection refused, timeout)
// fails with a KindTransport error and leaves session state unchanged
// except for diagnostics.
//
// Send does not require Login to have been called: a request against a
// controller that never issued a token simply receives an authorization
// failure from the controller, surfaced as a normal Res with a non-2xx
// status for the caller or ResponseHandler to classify.
//
// On every response, if the controller issued a new session cookie the
// token is renewed before returning; sessions are refreshed
// opportunistically on each call, not only at explicit login. No automatic
// retry is performed; callers may safely call Send again.
func (c *Client) Send(ctx context.Context, req Req) (Res, error) {
	if err := req.validate(); err != nil {
		return Res{}, err
	}
	if err := checkContextCancellation(ctx); err != nil {
		return Res{}, err
	}

	url, err := c.buildURL(req.Path)
	if err != nil {
		return Res{}, err
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var bodyReader io.Reader
	if req.Payload != "" {
		bodyReader = strings.NewReader(req.Payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Verb, url, bodyReader)
	if err != nil {
		return Res{}, configError("send", "building request for %s: %s", url, err.Error())
	}
	for key, value := range c.headers() {
		httpReq.Header.Set(key, value)
	}

	c.logger.Debug("sending request",
		"verb", req.Verb,
		"path", req.Path,
		"url", url,
		"payload", redactPayload(req.Payload))

	httpRes, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("request failed",
			"verb", req.Verb,
			"url", url,
			"error", err.Error())
		return Res{}, transportError("send", err)
	}
	defer httpRes.Body.Close() //nolint:errcheck

	rawBody, err := io.ReadAll(httpRes.Body)
	if err != nil {
		return Res{}, transportError("send", err)
	}

	// Renew the session token whenever the controller issues a new
	// session cookie.
	if cookies := httpRes.Cookies(); len(cookies) > 0 {
		c.token = cookies[0].Value
		c.logger.Debug("session token renewed", "cookie", cookies[0].Name)
	}

	res := Res{
		StatusCode: httpRes.StatusCode,
		Message:    reasonPhrase(httpRes),
		Data:       wrapBody(rawBody),
		Verb:       req.Verb,
		Path:       req.Path,
	}

	c.lastStatusCode = res.StatusCode
	c.lastURL = url
	c.hist.add(res.StatusCode, url)

	c.logger.Debug("received response",
		"verb", req.Verb,
		"url", url,
		"status", res.StatusCode,
		"message", res.Message)

	return res, nil
}

// checkContextCancellation returns the context error when ctx is already
// canceled or past its deadline.
func checkContextCancellation(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// reasonPhrase extracts the HTTP reason phrase from a response, falling
// back to the standard status text when the server omitted it.
func reasonPhrase(res *http.Response) string {
	phrase := strings.TrimSpace(strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode)))
	if phrase == "" {
		phrase = http.StatusText(res.StatusCode)
	}
	return phrase
}

// wrapBody returns the response body as a JSON document. Non-JSON bodies
// are wrapped as {"INVALID_JSON": "<text>"} so Res.Data stays queryable.
func wrapBody(body []byte) string {
	text := string(body)
	if gjson.Valid(text) && strings.TrimSpace(text) != "" {
		return text
	}
	wrapped, err := sjson.Set("", InvalidJSONKey, text)
	if err != nil {
		return ""
	}
	return wrapped
}

// redactPayload masks the password field in a payload for logging
func redactPayload(payload string) string {
	if payload == "" {
		return ""
	}
	if gjson.Get(payload, "userPasswd").Exists() {
		masked, err := sjson.Set(payload, "userPasswd", "********")
		if err == nil {
			return masked
		}
	}
	return payload
}
