package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	awsclient "tasnim.dev/elbv2-dump/internal/aws"
	"tasnim.dev/elbv2-dump/internal/config"
	"tasnim.dev/elbv2-dump/internal/output"
	"tasnim.dev/elbv2-dump/internal/snapshot"
)

// Clients are the AWS collaborators of a single run.
type Clients struct {
	ELB       snapshot.Source
	S3        output.Uploader
	AccountID func(ctx context.Context) string
	Region    string
}

// ClientFactory builds Clients for a profile and region. It returns
// awsclient.ErrNoCredentials when no credentials can be resolved.
type ClientFactory func(ctx context.Context, profile, region string) (*Clients, error)

func newAWSClients(ctx context.Context, profile, region string) (*Clients, error) {
	sc, err := awsclient.NewServiceClient(ctx, profile, region)
	if err != nil {
		return nil, err
	}
	return &Clients{ELB: sc.ELB, S3: sc.S3, AccountID: sc.AccountID, Region: sc.Region()}, nil
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(newAWSClients, config.Load)
}

func newRootCmd(newClients ClientFactory, loadConfig func() (*config.Config, error)) *cobra.Command {
	var (
		outputPath   string
		profile      string
		region       string
		names        []string
		includeRules bool
		indent       int
		format       string
		query        string
	)

	cmd := &cobra.Command{
		Use:   "elbv2-dump [flags]",
		Short: "Retrieve AWS Load Balancer information and output as JSON",
		Long: `Retrieve every Elastic Load Balancer (ELBv2) in the account together with its
listeners, and write the result as JSON to stdout or a file.

Credentials come from the standard AWS chain (environment, shared config,
SSO, instance or task role). Required IAM permissions:
elasticloadbalancing:DescribeLoadBalancers, elasticloadbalancing:DescribeListeners
and, with --rules, elasticloadbalancing:DescribeRules.`,
		Example: `  elbv2-dump                           # Output to stdout
  elbv2-dump -o loadbalancers.json     # Output to file
  elbv2-dump --output lb_info.json     # Output to file (long form)
  elbv2-dump --rules -n web,api        # Only web and api, with listener rules
  elbv2-dump -o s3://bucket/elb.json   # Upload to S3`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageErrorf("%w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return usageErrorf("loading config: %w", err)
			}
			profile, region = cfg.Merge(profile, region)
			if !cmd.Flags().Changed("rules") {
				includeRules = cfg.IncludeRules
			}
			if !cmd.Flags().Changed("indent") {
				indent = cfg.IndentOr(config.DefaultIndent)
			}
			if !cmd.Flags().Changed("format") {
				format = cfg.FormatOr(config.FormatJSON)
			}

			opts := output.Options{Format: format, Indent: indent, Query: query}
			if err := opts.Validate(); err != nil {
				return usageErrorf("%w", err)
			}

			ctx := cmd.Context()
			stderr := cmd.ErrOrStderr()
			fmt.Fprintln(stderr, "Retrieving load balancer information...")

			clients, err := newClients(ctx, profile, region)
			if err != nil {
				return err
			}
			if clients.AccountID != nil {
				if acct := clients.AccountID(ctx); acct != "" {
					if clients.Region != "" {
						fmt.Fprintf(stderr, "Using AWS account %s in %s\n", acct, clients.Region)
					} else {
						fmt.Fprintf(stderr, "Using AWS account %s\n", acct)
					}
				}
			}

			results, err := snapshot.New(clients.ELB, snapshot.WithRules(includeRules)).Fetch(ctx, names)
			if err != nil {
				return err
			}
			for _, w := range snapshot.Warnings(results) {
				fmt.Fprintf(stderr, "Warning: %s\n", w)
			}

			records := snapshot.Records(results)
			data, err := output.Render(records, opts)
			if err != nil {
				return err
			}

			sink := &output.Sink{Stdout: cmd.OutOrStdout(), S3: clients.S3}
			if err := sink.Write(ctx, outputPath, data, opts.ContentType()); err != nil {
				return err
			}
			if outputPath != "" {
				fmt.Fprintf(stderr, "Successfully wrote load balancer information to '%s'\n", outputPath)
			}
			fmt.Fprintf(stderr, "Successfully retrieved information for %d load balancer(s).\n", len(records))
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageErrorf("%w", err)
	})

	f := cmd.Flags()
	f.StringVarP(&outputPath, "output", "o", "", "Output JSON to specified `FILE` (or s3://bucket/key) instead of stdout")
	f.StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	f.StringVarP(&region, "region", "r", "", "AWS region to use")
	f.StringSliceVarP(&names, "names", "n", nil, "Only describe the load balancers with these names")
	f.BoolVar(&includeRules, "rules", false, "Attach the rules of every listener")
	f.IntVar(&indent, "indent", config.DefaultIndent, "Indentation width; 0 prints compact JSON")
	f.StringVar(&format, "format", config.FormatJSON, "Output format: json or yaml")
	f.StringVarP(&query, "query", "q", "", "JMESPath expression applied to the output")

	return cmd
}
