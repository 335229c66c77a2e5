package boot

import (
	"context"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/razorpay/pipeline-testkit/internal/config"
	config_reader "github.com/razorpay/pipeline-testkit/pkg/config"
	logpkg "github.com/razorpay/pipeline-testkit/pkg/logger"
	sentrypkg "github.com/razorpay/pipeline-testkit/pkg/monitoring/sentry"
	"github.com/razorpay/pipeline-testkit/pkg/tracing"
)

const (
	// Producer component name
	Producer = "producer"
	// Consumer component name
	Consumer = "consumer"
)

var (
	// Config contains application configuration values.
	Config config.Config

	// RunID identifies this process in logs
	RunID string

	// Tracer is used for creating spans for distributed tracing
	Tracer opentracing.Tracer
	// Closer holds an instance to the RequestTracing object's Closer.
	Closer io.Closer = nopCloser{}
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// GetEnv returns the current environment, prod, dev etc
func GetEnv() string {
	// Fetch env for bootstrapping
	environment := os.Getenv("APP_ENV")
	if environment == "" {
		environment = "dev"
	}

	return environment
}

// LoadConfig reads the config for env
func LoadConfig(env string) (config.Config, error) {
	var appConfig config.Config
	err := config_reader.NewDefaultConfig().Load(env, &appConfig)
	return appConfig, err
}

// initialize all core dependencies for the application
func initialize(ctx context.Context, env string, component string) error {
	appConfig, err := LoadConfig(env)
	if err != nil {
		return err
	}
	Config = appConfig
	RunID = uuid.New().String()

	// Initializes Sentry monitoring client.
	sentry, err := sentrypkg.InitSentry(Config.Sentry, env)
	if err != nil {
		return err
	}

	// Initializes logging driver.
	servicekv := map[string]interface{}{
		"appEnv":        Config.App.Env,
		"serviceName":   Config.App.ServiceName,
		"component":     component,
		"gitCommitHash": Config.App.GitCommitHash,
		"runID":         RunID,
	}
	lgr, err := logpkg.NewLogger(env, Config.App.LogLevel, servicekv, sentry)
	if err != nil {
		return err
	}

	tracingConfig := Config.Tracing
	tracingConfig.ServiceName = Config.Tracing.ServiceName + "-" + component
	Tracer, Closer, err = tracing.Init(tracingConfig, lgr)
	if err != nil {
		return err
	}

	return nil
}

// InitProducer initializes the dependencies of the producer executable
func InitProducer(ctx context.Context, env string) error {
	return initialize(ctx, env, Producer)
}

// InitConsumer initializes the dependencies of the consumer executable
func InitConsumer(ctx context.Context, env string) error {
	return initialize(ctx, env, Consumer)
}

// NewContext adds core key-value e.g. service name, git hash etc to
// existing context or to a new background context and returns.
func NewContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx
}
