package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
)

// New creates a new aws.Config with custom endpoint resolver and region set
func New(region string, awsEndpoint string) (aws.Config, error) {
	return load(region, awsEndpoint)
}

// NewWithProfile creates a new aws.Config like New, loading credentials from the named shared config profile.
// An empty profile behaves the same as New.
func NewWithProfile(region string, profile string, awsEndpoint string) (aws.Config, error) {
	if profile == "" {
		return load(region, awsEndpoint)
	}

	return load(region, awsEndpoint, config.WithSharedConfigProfile(profile))
}

func load(region string, awsEndpoint string, extra ...func(*config.LoadOptions) error) (aws.Config, error) {
	retrier := func() aws.Retryer {
		return retry.NewAdaptiveMode()
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithRetryer(retrier),
	}

	if awsEndpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               awsEndpoint,
				HostnameImmutable: true,
				SigningRegion:     region,
			}, nil
		})
		opts = append(opts, config.WithEndpointResolverWithOptions(resolver))
	}

	opts = append(opts, extra...)

	return config.LoadDefaultConfig(context.TODO(), opts...)
}
