package corpus

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	fakelish "github.com/nwtgck/go-fakelish"
	"github.com/rs/zerolog/log"
	"github.com/soapiestwaffles/input-gen/internal/pkg/assets"
	"github.com/soapiestwaffles/input-gen/pkg/aws/s3"
)

const (
	// SourceEmbedded selects the word list compiled into the binary
	SourceEmbedded = "embedded"

	// SourceFakelish selects generated, pronounceable fake words. An optional count may follow: `fakelish:1000`
	SourceFakelish = "fakelish"

	defaultFakelishCount = 5000
	fakelishMinLength    = 3
	fakelishMaxLength    = 16
)

// LoaderOption configures Load
type LoaderOption func(l *loader)

type loader struct {
	httpClient *http.Client
	s3svc      s3.Service
}

// WithHTTPClient sets the client used for http(s) sources
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *loader) {
		l.httpClient = client
	}
}

// WithS3Service sets the service used for s3:// sources. Without it, s3:// sources fail.
func WithS3Service(svc s3.Service) LoaderOption {
	return func(l *loader) {
		l.s3svc = svc
	}
}

// Load reads a corpus from source:
//
//   embedded            the built-in English word list
//   fakelish[:N]        N generated fake words (default 5000)
//   http(s)://...       a word list downloaded over HTTP
//   s3://bucket/key     a word list stored in S3
//   anything else       a local file path
//
// Every failure to obtain the source wraps ErrCorpusUnavailable.
func Load(ctx context.Context, source string, opts ...LoaderOption) (*Corpus, error) {
	l := &loader{httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(l)
	}

	log.Debug().Str("source", source).Msg("corpus: loading")

	switch {
	case source == "" || source == SourceEmbedded:
		return Parse(strings.NewReader(assets.Words))
	case source == SourceFakelish || strings.HasPrefix(source, SourceFakelish+":"):
		return l.fromFakelish(source)
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return l.fromHTTP(ctx, source)
	case strings.HasPrefix(source, "s3://"):
		return l.fromS3(ctx, source)
	default:
		return l.fromFile(source)
	}
}

func (l *loader) fromFakelish(source string) (*Corpus, error) {
	count := defaultFakelishCount
	if i := strings.IndexByte(source, ':'); i >= 0 {
		n, err := strconv.Atoi(source[i+1:])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: %s: invalid word count %q", ErrCorpusUnavailable, source, source[i+1:])
		}
		count = n
	}

	words := make([]string, 0, count)
	for i := 0; i < count; i++ {
		words = append(words, fakelish.GenerateFakeWord(fakelishMinLength, fakelishMaxLength))
	}

	return New(words), nil
}

func (l *loader) fromHTTP(ctx context.Context, url string) (*Corpus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorpusUnavailable, url, err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorpusUnavailable, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %s: HTTP %d: %s", ErrCorpusUnavailable, url, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	c, err := Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return c, nil
}

func (l *loader) fromS3(ctx context.Context, uri string) (*Corpus, error) {
	bucket, key, err := ParseS3URI(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}
	if l.s3svc == nil {
		return nil, fmt.Errorf("%w: %s: no S3 service configured", ErrCorpusUnavailable, uri)
	}

	body, err := l.s3svc.GetObjectSimple(ctx, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorpusUnavailable, uri, err)
	}

	return Parse(bytes.NewReader(body))
}

func (l *loader) fromFile(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseS3URI splits `s3://bucket/key` into bucket and key
func ParseS3URI(uri string) (string, string, error) {
	rest := strings.TrimPrefix(uri, "s3://")
	if rest == uri {
		return "", "", fmt.Errorf("%s: not an s3:// URI", uri)
	}

	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%s: expected s3://bucket/key", uri)
	}

	return parts[0], parts[1], nil
}
