package blueprint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/swaggyp/swag"
	"k8s.io/klog/v2"
	kyaml "sigs.k8s.io/yaml"
)

// ErrorCode categorizes blueprint errors for clearer handling and messaging.
type ErrorCode string

const (
	InputError      ErrorCode = "InputError"
	NetworkError    ErrorCode = "NetworkError"
	ParseError      ErrorCode = "ParseError"
	ValidationError ErrorCode = "ValidationError"
)

// Error is a structured blueprint error with the offending location.
type Error struct {
	Code     ErrorCode
	Message  string
	Location string // file path or URL
	Field    string // record field path for validation errors
	Cause    error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Cause }

// Settings configures how remote blueprints are fetched.
type Settings struct {
	// HTTPTimeout bounds each HTTP request.
	HTTPTimeout time.Duration
	// MaxRetries for transient HTTP failures (>=500, 429, or network errors).
	MaxRetries int
	// BackoffBase is the base delay for exponential backoff.
	BackoffBase time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		HTTPTimeout: 10 * time.Second,
		MaxRetries:  3,
		BackoffBase: 200 * time.Millisecond,
	}
}

// Option mutates Settings.
type Option func(*Settings)

func WithHTTPTimeout(d time.Duration) Option  { return func(s *Settings) { s.HTTPTimeout = d } }
func WithMaxRetries(n int) Option            { return func(s *Settings) { s.MaxRetries = n } }
func WithBackoffBase(d time.Duration) Option { return func(s *Settings) { s.BackoffBase = d } }

// Load reads a blueprint from a filesystem path or an http/https URL and
// returns the validated document. file:// URLs are rejected; pass the plain
// path instead.
func Load(ctx context.Context, input string, opts ...Option) (*swag.Document, error) {
	if strings.TrimSpace(input) == "" {
		return nil, &Error{Code: InputError, Message: "blueprint: input is empty"}
	}

	settings := DefaultSettings()
	for _, opt := range opts {
		opt(&settings)
	}

	var (
		raw      []byte
		location string
	)
	u, uerr := url.Parse(input)
	if uerr == nil && u.Scheme != "" && u.Host != "" {
		scheme := strings.ToLower(u.Scheme)
		if scheme == "file" {
			return nil, &Error{Code: InputError, Message: "blueprint: file:// URLs are not supported, pass a path", Location: input}
		}
		if scheme != "http" && scheme != "https" {
			return nil, &Error{Code: InputError, Message: fmt.Sprintf("blueprint: unsupported URL scheme %q (only http/https allowed)", scheme), Location: input}
		}
		data, err := fetchWithRetry(ctx, input, settings)
		if err != nil {
			return nil, &Error{Code: NetworkError, Message: fmt.Sprintf("fetch %s: %v", input, err), Location: input, Cause: err}
		}
		raw, location = data, input
	} else {
		abs, err := filepath.Abs(input)
		if err != nil {
			return nil, &Error{Code: InputError, Message: fmt.Sprintf("resolve path: %v", err), Location: input, Cause: err}
		}
		data, err := os.ReadFile(abs)
		if err != nil {
			return nil, &Error{Code: InputError, Message: fmt.Sprintf("read file %s: %v", abs, err), Location: abs, Cause: err}
		}
		raw, location = data, abs
	}

	doc, err := Parse(raw)
	if err != nil {
		var be *Error
		if errors.As(err, &be) {
			be.Location = location
		}
		return nil, err
	}
	klog.V(2).InfoS("Loaded blueprint", "location", location, "paths", len(doc.Paths), "definitions", len(doc.Definitions))
	return doc, nil
}

// Parse decodes a YAML or JSON blueprint and validates it. Unknown and
// duplicate keys are rejected.
func Parse(data []byte) (*swag.Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, &Error{Code: ParseError, Message: "blueprint: document is empty"}
	}
	var d swag.Document
	if err := kyaml.UnmarshalStrict(data, &d); err != nil {
		return nil, &Error{Code: ParseError, Message: fmt.Sprintf("blueprint: parse: %v", err), Cause: err}
	}
	if err := typeSchemas(&d); err != nil {
		return nil, err
	}
	doc, err := swag.NewDocument(d)
	if err != nil {
		be := &Error{Code: ValidationError, Message: fmt.Sprintf("blueprint: %v", err), Cause: err}
		var ve *swag.ValidationError
		if errors.As(err, &ve) {
			be.Field = ve.Field
		}
		return nil, be
	}
	return doc, nil
}

func fetchWithRetry(ctx context.Context, rawURL string, settings Settings) ([]byte, error) {
	client := &http.Client{Timeout: settings.HTTPTimeout}
	var lastErr error
	backoff := settings.BackoffBase
	if backoff <= 0 {
		backoff = 200 * time.Millisecond
	}
	attempts := settings.MaxRetries
	if attempts <= 0 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		body, retry, err := fetchOnce(ctx, client, rawURL)
		if err == nil {
			return body, nil
		}
		if !retry {
			return nil, err
		}
		lastErr = err
		klog.V(2).InfoS("Retrying blueprint fetch", "url", rawURL, "attempt", i+1, "err", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	if lastErr == nil {
		lastErr = errors.New("fetch failed")
	}
	return nil, lastErr
}

// fetchOnce performs a single GET and reports whether a failure is transient.
func fetchOnce(ctx context.Context, client *http.Client, rawURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 300 {
		body, err := io.ReadAll(resp.Body)
		return body, false, err
	}
	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return nil, true, fmt.Errorf("transient http error %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return nil, false, fmt.Errorf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
