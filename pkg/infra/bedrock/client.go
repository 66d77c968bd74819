package bedrock

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

type Credentials struct {
	AccessKey    string
	SecretKey    string
	SessionToken string
	Region       string
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=bedrock_client_mock.go --case=underscore --with-expecter
type Client interface {
	InvokeModel(
		ctx context.Context,
		params *bedrockruntime.InvokeModelInput,
		optFns ...func(*bedrockruntime.Options),
	) (*bedrockruntime.InvokeModelOutput, error)
	BuildClient(ctx context.Context, creds Credentials) (Client, error)
	GetRuntimeClient() *bedrockruntime.Client
}

type client struct {
	client *bedrockruntime.Client
	logger *logrus.Logger
	pool   *sync.Map
	sf     *singleflight.Group
}

func NewClient(logger *logrus.Logger) Client {
	return &client{
		logger: logger,
		pool:   &sync.Map{},
		sf:     &singleflight.Group{},
	}
}

func (c Credentials) key() string {
	return strings.Join([]string{c.Region, c.AccessKey, c.SessionToken}, "|")
}

// BuildClient returns a runtime client for creds, reusing the one built for
// the same region and key. Without an access key the default AWS credential
// chain is used.
func (c *client) BuildClient(ctx context.Context, creds Credentials) (Client, error) {
	key := creds.key()
	if v, ok := c.pool.Load(key); ok {
		if cl, ok := v.(*client); ok {
			return cl, nil
		}
	}
	v, err, _ := c.sf.Do(key, func() (any, error) {
		if existing, ok := c.pool.Load(key); ok {
			return existing, nil
		}
		cl, err := c.build(ctx, creds)
		if err != nil {
			return nil, err
		}
		c.pool.Store(key, cl)
		return cl, nil
	})
	if err != nil {
		return nil, err
	}
	cl, ok := v.(*client)
	if !ok {
		return nil, fmt.Errorf("unexpected bedrock client type %T", v)
	}
	return cl, nil
}

func (c *client) build(ctx context.Context, creds Credentials) (*client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(creds.Region),
	}
	if creds.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     creds.AccessKey,
					SecretAccessKey: creds.SecretKey,
					SessionToken:    creds.SessionToken,
				}, nil
			},
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		c.logger.WithError(err).Error("failed to load AWS config")
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &client{
		client: bedrockruntime.NewFromConfig(awsCfg),
		logger: c.logger,
		pool:   c.pool,
		sf:     c.sf,
	}, nil
}

func (c *client) GetRuntimeClient() *bedrockruntime.Client {
	return c.client
}

func (c *client) InvokeModel(
	ctx context.Context,
	params *bedrockruntime.InvokeModelInput,
	optFns ...func(*bedrockruntime.Options),
) (*bedrockruntime.InvokeModelOutput, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not initialized")
	}
	return c.client.InvokeModel(ctx, params, optFns...)
}
