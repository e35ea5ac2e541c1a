package devops

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Configuration holds the server settings. Stored as one yaml document in SSM
// Parameter Store under /timesheet/config; local runs can bypass SSM with
// TIMESHEET_DSN and TIMESHEET_SIGNING_SECRET.
type Configuration struct {
	Dsn string `yaml:"dsn"`

	// SigningSecret is the base64-encoded HS256 key for session tokens.
	SigningSecret string `yaml:"signingSecret"`

	NotifyEmailFrom string `yaml:"notifyEmailFrom"`
	SlackChannelID  string `yaml:"slackChannelId"`
}

var (
	once    sync.Once
	loaded  Configuration
	loadErr error
)

func LoadConfiguration(ctx context.Context) (Configuration, error) {
	once.Do(func() {
		if dsn := os.Getenv("TIMESHEET_DSN"); dsn != "" {
			loaded = Configuration{
				Dsn:           dsn,
				SigningSecret: os.Getenv("TIMESHEET_SIGNING_SECRET"),
			}
			return
		}

		paramName := "/timesheet/config"

		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			loadErr = fmt.Errorf("load aws config: %w", err)
			return
		}

		client := ssm.NewFromConfig(cfg)

		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(paramName),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			loadErr = fmt.Errorf("get parameter: %w", err)
			return
		}

		var parsed Configuration
		if err := yaml.Unmarshal([]byte(*out.Parameter.Value), &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		loaded = parsed
	})

	return loaded, loadErr
}
