package s3

import "errors"

// ErrNoClient is returned when no S3 client could be configured (for example, invalid AWS config or profile)
var ErrNoClient = errors.New("s3: no client configured")
