// Package secret resolves "ssm:<name>" configuration values through AWS
// Systems Manager Parameter Store.
package secret

import (
	"context"
	"fmt"
	"strings"

	"devdash-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

const ssmPrefix = "ssm:"

// SSMClient is the subset of *ssm.Client used here.
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type Resolver interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

type SSMResolver struct {
	client SSMClient
}

func NewSSMResolver(client SSMClient) *SSMResolver {
	return &SSMResolver{client: client}
}

// NewAWSResolver builds an SSM resolver from the default AWS credential chain.
func NewAWSResolver(ctx context.Context, region string) (*SSMResolver, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewSSMResolver(ssm.NewFromConfig(awsCfg)), nil
}

// GetSecret reads a parameter with decryption.
func (r *SSMResolver) GetSecret(ctx context.Context, name string) (string, error) {
	out, err := r.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("ssm get parameter %q: %w", name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("ssm parameter %q has no value", name)
	}
	return *out.Parameter.Value, nil
}

// IsReference reports whether value names a parameter instead of holding one.
func IsReference(value string) bool {
	return strings.HasPrefix(value, ssmPrefix)
}

// HasReferences reports whether any secret-bearing field of cfg needs resolving.
func HasReferences(cfg *config.Config) bool {
	for _, field := range secretFields(cfg) {
		if IsReference(*field) {
			return true
		}
	}
	return false
}

// ResolveConfig replaces every "ssm:<name>" secret field of cfg in place.
func ResolveConfig(ctx context.Context, cfg *config.Config, r Resolver) error {
	for _, field := range secretFields(cfg) {
		if !IsReference(*field) {
			continue
		}
		name := strings.TrimPrefix(*field, ssmPrefix)
		if name == "" {
			return fmt.Errorf("empty parameter name in %q", *field)
		}
		value, err := r.GetSecret(ctx, name)
		if err != nil {
			return err
		}
		*field = value
	}
	return nil
}

func secretFields(cfg *config.Config) []*string {
	return []*string{&cfg.JWT.Secret, &cfg.Database.Password, &cfg.Database.URL}
}
