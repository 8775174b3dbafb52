package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	utilserrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/klog/v2"

	"givenergyexporter/cmd/exporter/config"
	"givenergyexporter/cmd/exporter/options"
	"givenergyexporter/pkg/exposition"
	"givenergyexporter/pkg/generic"
	baseoptions "givenergyexporter/pkg/generic/options"
	"givenergyexporter/pkg/register"
	"givenergyexporter/pkg/version"
	"givenergyexporter/pkg/version/verflag"
	"givenergyexporter/pkg/web"
)

const (
	ComponentExporter = "givenergy-exporter"
)

func NewExporterCmd() *cobra.Command {
	cleanFlagSet := pflag.NewFlagSet(ComponentExporter, pflag.ContinueOnError)
	o := options.NewDefaultOptions()
	cmd := &cobra.Command{
		Use:                ComponentExporter,
		Long:               `The givenergy exporter polls a GivEnergy inverter over its Wi-Fi adapter and reports the register values for Prometheus.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// initial flag parse, since we disable cobra's flag parsing
			if err := cleanFlagSet.Parse(args); err != nil {
				klog.ErrorS(err, "Failed to parse flag")
				_ = cmd.Usage()
				os.Exit(1)
			}

			// check if there are non-flag arguments in the command line
			cmds := cleanFlagSet.Args()
			if len(cmds) > 0 {
				klog.ErrorS(nil, "Unknown command", "command", cmds[0])
				_ = cmd.Usage()
				os.Exit(1)
			}

			verflag.PrintAndExitIfRequested()
			// short-circuit on help
			baseoptions.PrintHelpAndExitIfRequested(cmd, cleanFlagSet)

			// short-circuit on defaultconfig
			baseoptions.PrintDefaultConfigAndExitIfRequested(options.NewDefaultOptions(), cleanFlagSet)

			if err := baseoptions.ParseAndApplyConfigFile(o, args); err != nil {
				return err
			}

			if errs := options.Validate(o); len(errs) != 0 {
				return utilserrors.NewAggregate(errs)
			}

			// To help debugging, immediately log version
			klog.Infof("Version: %+v", version.Get())
			return run(o)
		},
	}

	verflag.AddFlags(cleanFlagSet)
	o.AddFlags(cleanFlagSet)
	o.AddBaseFlags(cmd, cleanFlagSet)

	return cmd
}

func run(o *options.Options) error {
	c, err := o.Config()
	if err != nil {
		return err
	}
	if c.Publisher != nil {
		defer c.Publisher.Close()
	}

	if len(c.Listen) == 0 && c.Interval == 0 {
		// one shot: poll, report, exit
		return pollAndReport(context.Background(), c)
	}

	var exit func(ctx context.Context)
	if len(c.Listen) != 0 {
		server := web.NewServer(generic.Default(), c.Listen, c.Collector)
		exit, err = server.Serve()
		if err != nil {
			return err
		}
		klog.V(1).InfoS("Server started", "listen", c.Listen)
	}

	stopCh := make(chan struct{})
	if c.Interval > 0 {
		go pollLoop(c, stopCh)
	}

	// Graceful shutdown
	// Wait for interrupt signal to gracefully shutdown the server
	exitCh := make(chan os.Signal, 1)
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be catch, so don't need add it
	signal.Notify(exitCh, syscall.SIGINT, syscall.SIGTERM)
	<-exitCh
	close(stopCh)
	if exit != nil {
		ctx, cancel := context.WithTimeout(context.Background(), o.Wait)
		defer cancel()
		exit(ctx)
	}

	return nil
}

func pollLoop(c *config.Config, stopCh <-chan struct{}) {
	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	for {
		if err := pollAndReport(context.Background(), c); err != nil {
			klog.ErrorS(err, "Poll failed")
		}
		select {
		case <-ticker.C:
		case <-stopCh:
			return
		}
	}
}

func pollAndReport(ctx context.Context, c *config.Config) error {
	metrics, err := c.Collector.PollOnce(ctx)
	if err != nil {
		return err
	}
	if err := exposition.WriteFile(c.PromFile, metrics); err != nil {
		return err
	}
	publishMetrics(c, metrics)
	return nil
}

func publishMetrics(c *config.Config, metrics []register.Metric) {
	if c.Publisher == nil {
		return
	}
	if err := c.Publisher.Publish(metrics); err != nil {
		klog.ErrorS(err, "Publish failed")
	}
}
