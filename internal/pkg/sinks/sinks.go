// Package sinks stores generated input files, either in a local directory or under an S3 prefix.
package sinks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/soapiestwaffles/input-gen/pkg/aws/s3"
)

// Sink stores a named file body and returns the location it was written to
type Sink interface {
	Write(ctx context.Context, name string, body []byte) (string, error)

	// Existing lists input files already present at the destination
	Existing(ctx context.Context) ([]string, error)

	// Location describes the destination, for display
	Location() string
}

// Dir writes files into a local directory, creating it on first use
type Dir struct {
	Path string
}

// NewDir returns a Dir sink rooted at path
func NewDir(path string) *Dir {
	return &Dir{Path: path}
}

func (d *Dir) Write(ctx context.Context, name string, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p := filepath.Join(d.Path, name)
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return p, fmt.Errorf("create output directory: %w", err)
	}
	// the *fs.PathError already names the file
	if err := os.WriteFile(p, body, 0o644); err != nil {
		return p, err
	}

	return p, nil
}

// Existing lists input*.txt files in the directory. A missing directory has none.
func (d *Dir) Existing(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var existing []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if isInputName(entry.Name()) {
			existing = append(existing, filepath.Join(d.Path, entry.Name()))
		}
	}
	return existing, nil
}

func (d *Dir) Location() string {
	return d.Path
}

// S3 uploads files under Prefix in Bucket
type S3 struct {
	svc    s3.Service
	Bucket string
	Prefix string
}

// NewS3 returns an S3 sink. The prefix is used verbatim, so include a trailing `/` for a folder.
func NewS3(svc s3.Service, bucket string, prefix string) *S3 {
	return &S3{svc: svc, Bucket: bucket, Prefix: prefix}
}

func (s *S3) Write(ctx context.Context, name string, body []byte) (string, error) {
	key := s.Prefix + name
	uri := "s3://" + path.Join(s.Bucket, key)

	if _, _, err := s.svc.PutObjectSimple(ctx, s.Bucket, key, bytes.NewReader(body)); err != nil {
		return uri, fmt.Errorf("write %s: %w", uri, err)
	}

	return uri, nil
}

func (s *S3) Existing(ctx context.Context) ([]string, error) {
	var existing []string
	var continuationToken *string

	prefix := s.Prefix
	for {
		keys, token, err := s.svc.ListObjects(ctx, s.Bucket, continuationToken, &prefix)
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			if isInputName(path.Base(key)) {
				existing = append(existing, key)
			}
		}
		if token == nil {
			break
		}
		continuationToken = token
	}

	return existing, nil
}

func (s *S3) Location() string {
	return "s3://" + path.Join(s.Bucket, s.Prefix)
}

func isInputName(name string) bool {
	return strings.HasPrefix(name, "input") && strings.HasSuffix(name, ".txt")
}
