package cli

import (
	"context"

	"github.com/razorpay/pipeline-testkit/internal/merror"
	"github.com/spf13/cobra"
)

// noArgs rejects positional arguments as an invalid argument error
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return merror.Wrap(merror.InvalidArgument, err, "invalid arguments")
	}
	return nil
}

func flagError(_ *cobra.Command, err error) error {
	return merror.Wrap(merror.InvalidArgument, err, "invalid flag")
}

// NewProducerCommand returns the root command of the producer. run is called with validated args.
func NewProducerCommand(run func(context.Context, ProducerArgs) error) *cobra.Command {
	var args ProducerArgs

	cmd := &cobra.Command{
		Use:   "producer",
		Short: "Publish synthetic test messages to a topic or an http endpoint",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := args.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetFlagErrorFunc(flagError)

	flags := cmd.Flags()
	flags.UintVarP(&args.Count, "count", "c", 1, "Number of messages to publish")
	flags.UintVarP(&args.SizeKB, "size", "s", 1, "Size of each message in kilobytes")
	flags.StringVarP(&args.Topic, "topic", "t", "", "Topic to publish messages to")
	flags.StringVar(&args.HTTPEndpoint, "http-endpoint", "", "HTTP endpoint to POST messages to")
	flags.StringVar(&args.AuthToken, "auth-token", "", "Bearer token sent with http requests")

	return cmd
}

// NewConsumerCommand returns the root command of the consumer. run is called with validated args.
func NewConsumerCommand(run func(context.Context, ConsumerArgs) error) *cobra.Command {
	var args ConsumerArgs

	cmd := &cobra.Command{
		Use:   "consumer",
		Short: "Consume and acknowledge test messages from a topic",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := args.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetFlagErrorFunc(flagError)

	flags := cmd.Flags()
	flags.StringVarP(&args.Topic, "topic", "t", DefaultConsumerTopic, "Topic to consume messages from")
	flags.StringVar(&args.ConsumerName, "consumer-name", DefaultConsumerName, "Consumer name")
	flags.StringVar(&args.SubscriptionName, "subscription-name", DefaultSubscriptionName, "Subscription name")

	return cmd
}
