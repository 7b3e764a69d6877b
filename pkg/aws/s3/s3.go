package s3

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/soapiestwaffles/input-gen/pkg/aws/config"
)

// Service defines functions related to S3 operations
type Service interface {
	// GetAllBuckets loads buckets into memory
	GetAllBuckets(ctx context.Context) ([]Bucket, error)

	// CreateBucketSimple creates a new, simple S3 bucket in the given region
	CreateBucketSimple(ctx context.Context, bucketName string, region string, versioned bool) error

	// PutObjectSimple puts an object in an S3 bucket
	//
	// returns Etag, VersionID, and Error
	PutObjectSimple(ctx context.Context, bucketName string, keyName string, body io.Reader) (*string, *string, error)

	// GetObjectSimple reads the whole body of an object into memory
	GetObjectSimple(ctx context.Context, bucketName string, keyName string) ([]byte, error)

	// GetBucketRegion will return the region of a bucket
	GetBucketRegion(ctx context.Context, bucketName string) (string, error)

	// ListObjects will return some or all (up to 1,000) of the objects in a bucket with each request.
	// Objects are returned sorted in an ascending order of the respective key names in the list.
	// use continuationToken to list the next page of objects. For first call, set continuationToken to nil
	//
	// prefix limits the response to keys that begin with the specified prefix. Set to nil if not used.
	//
	// returns:
	// `[]string`` contains the slice of keys returned by this request
	// `*string` contains the continuation token, if any
	// `error` is returned not nil if an error has occurred requesting the list
	ListObjects(ctx context.Context, bucketName string, continuationToken *string, prefix *string) ([]string, *string, error)
}

// Bucket contains information about an S3 bucket
type Bucket struct {
	CreationDate *time.Time
	Name         *string
}

// ServiceOption is used with NewService and configures the newly created service
type ServiceOption func(s *service)

type service struct {
	client      S3API
	awsEndpoint string
	region      string
	profile     string
}

// NewService returns an initialized Service
func NewService(opts ...ServiceOption) Service {
	svc := &service{}
	for _, opt := range opts {
		opt(svc)
	}

	if svc.client == nil {
		region := svc.region
		if region == "" {
			region = os.Getenv("AWS_REGION")
		}
		// a nil *s3.Client must not end up in the interface field
		if client := newS3Client(region, svc.profile, svc.awsEndpoint); client != nil {
			svc.client = client
		}
	}

	return svc
}

// WithS3API should be used if you want to initialize your own S3 client (such as in cases of a mock S3 client for testing)
// This cannot be used with WithAWSEndpoint
func WithS3API(s3Client S3API) ServiceOption {
	return func(s *service) {
		s.client = s3Client
	}
}

// WithAWSEndpoint sets endpoint to be used by the AWS client
// This cannot be used with WithS3API
func WithAWSEndpoint(awsEndpoint string) ServiceOption {
	return func(s *service) {
		s.awsEndpoint = awsEndpoint
	}
}

// WithRegion sets the AWS client region
func WithRegion(region string) ServiceOption {
	return func(s *service) {
		s.region = region
	}
}

// WithProfile selects a shared config profile for credentials
func WithProfile(profile string) ServiceOption {
	return func(s *service) {
		s.profile = profile
	}
}

func (s *service) GetAllBuckets(ctx context.Context) ([]Bucket, error) {
	if s.client == nil {
		return nil, ErrNoClient
	}

	result, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, err
	}

	buckets := make([]Bucket, 0)
	for _, b := range result.Buckets {
		buckets = append(buckets,
			Bucket{
				CreationDate: b.CreationDate,
				Name:         b.Name,
			},
		)
	}

	return buckets, nil
}

func (s *service) CreateBucketSimple(ctx context.Context, bucketName string, region string, versioned bool) error {
	if s.client == nil {
		return ErrNoClient
	}

	input := &s3.CreateBucketInput{
		Bucket: &bucketName,
		ACL:    types.BucketCannedACLPrivate,
	}
	// us-east-1 is the default location and is rejected as an explicit constraint
	if region != "" && region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}

	_, err := s.client.CreateBucket(ctx, input)
	if err != nil {
		return err
	}

	if versioned {
		_, err := s.client.PutBucketVersioning(ctx, &s3.PutBucketVersioningInput{
			Bucket: &bucketName,
			VersioningConfiguration: &types.VersioningConfiguration{
				Status: "Enabled",
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *service) PutObjectSimple(ctx context.Context, bucketName string, keyName string, body io.Reader) (*string, *string, error) {
	if s.client == nil {
		return nil, nil, ErrNoClient
	}

	result, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucketName,
		Key:    &keyName,
		Body:   body,
	})

	if err != nil {
		return nil, nil, err
	}

	return result.ETag, result.VersionId, nil
}

func (s *service) GetObjectSimple(ctx context.Context, bucketName string, keyName string) ([]byte, error) {
	if s.client == nil {
		return nil, ErrNoClient
	}

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucketName,
		Key:    &keyName,
	})
	if err != nil {
		return nil, err
	}
	defer result.Body.Close()

	return io.ReadAll(result.Body)
}

func (s *service) GetBucketRegion(ctx context.Context, bucketName string) (string, error) {
	if s.client == nil {
		return "", ErrNoClient
	}

	result, err := s.client.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
		Bucket: &bucketName,
	})

	if err != nil {
		return "", err
	}

	if result.LocationConstraint == "" {
		return "us-east-1", nil
	}

	return string(result.LocationConstraint), nil
}

func (s *service) ListObjects(ctx context.Context, bucketName string, continuationToken *string, prefix *string) ([]string, *string, error) {
	if s.client == nil {
		return nil, nil, ErrNoClient
	}

	result, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:            &bucketName,
		ContinuationToken: continuationToken,
		MaxKeys:           1000,
		Prefix:            prefix,
	})

	if err != nil {
		return nil, nil, err
	}

	keys := []string{}
	for _, object := range result.Contents {
		keys = append(keys, *object.Key)
	}

	if result.IsTruncated {
		return keys, result.NextContinuationToken, nil
	}

	return keys, nil, nil
}

func newS3Client(region string, profile string, awsEndpoint string) *s3.Client {
	// Initialize AWS S3 Client
	cfg, err := config.NewWithProfile(region, profile, awsEndpoint)
	if err != nil {
		return nil
	}

	return s3.NewFromConfig(cfg)
}

// =====

// S3API defines the interface for AWS S3 SDK functions
type S3API interface {
	ListBuckets(ctx context.Context,
		params *s3.ListBucketsInput,
		optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)

	CreateBucket(ctx context.Context,
		params *s3.CreateBucketInput,
		optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)

	PutBucketVersioning(ctx context.Context,
		params *s3.PutBucketVersioningInput,
		optFns ...func(*s3.Options)) (*s3.PutBucketVersioningOutput, error)

	PutObject(ctx context.Context,
		params *s3.PutObjectInput,
		optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)

	GetObject(ctx context.Context,
		params *s3.GetObjectInput,
		optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)

	GetBucketLocation(ctx context.Context,
		params *s3.GetBucketLocationInput,
		optFns ...func(*s3.Options)) (*s3.GetBucketLocationOutput, error)

	ListObjectsV2(ctx context.Context,
		params *s3.ListObjectsV2Input,
		optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}
