package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// clientSettings is the DynamoDB connection surface read from the
// environment. endpoint is only set when pointing at DynamoDB Local.
type clientSettings struct {
	region    string
	accessKey string
	secretKey string
	endpoint  string
}

func settingsFromEnv() clientSettings {
	s := clientSettings{
		region:    os.Getenv("AWS_REGION"),
		accessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		secretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
	}
	if s.region == "" {
		s.region = "us-east-1"
	}
	// DynamoDB Local accepts any credentials, but the SDK refuses empty ones.
	if s.accessKey == "" {
		s.accessKey = "local"
	}
	if s.secretKey == "" {
		s.secretKey = "local"
	}
	return s
}

// ConnectDynamoDB builds the shared DynamoDB client from environment
// settings (AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and,
// for DynamoDB Local, DYNAMODB_ENDPOINT).
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := settingsFromEnv().load(context.Background())
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func (s clientSettings) load(ctx context.Context) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(s.region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s.accessKey, s.secretKey, "")),
	}
	if s.endpoint != "" {
		opts = append(opts, config.WithEndpointResolverWithOptions(localEndpointResolver(s.endpoint)))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

func localEndpointResolver(endpoint string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		if service == dynamodb.ServiceID {
			return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	}
}
