// File: cmd/imgup/root.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"imgup/internal/flags"
	"imgup/internal/logger"
	"imgup/internal/provider/factory"
	"imgup/internal/provider/registry"
	"imgup/internal/service"
	"imgup/pkg/formatter"

	"github.com/spf13/cobra"
)

const noFilesMessage = "Please provide at least one file path"

type uploadFlags struct {
	provider string
	folder   string
	tags     []string
	timeout  time.Duration
	output   string
	noColor  bool
}

func newRootCmd(app *appContainer) *cobra.Command {
	cmdFlags := uploadFlags{}
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "imgup [file...]",
		Short: "imgup uploads files to a cloud media service and prints their URLs.",
		Long: `Uploads every file given on the command line, one after another, to the
configured media provider (Cloudinary by default) and prints a report with the
URL of each uploaded file or the reason it failed.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetDebug(debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd, app, cmdFlags, args)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, flags.Debug, flags.DebugShort, false, "Enable debug logging on stderr")

	rootCmd.Flags().StringVarP(&cmdFlags.provider, flags.Provider, flags.ProviderShort, "", "Provider to upload to (defaults to upload.provider, then cloudinary)")
	rootCmd.Flags().StringVar(&cmdFlags.folder, flags.Folder, "", "Remote folder to upload into (defaults to upload.folder)")
	rootCmd.Flags().StringSliceVarP(&cmdFlags.tags, flags.Tag, flags.TagShort, nil, "Tag to attach to every uploaded file; repeatable")
	rootCmd.Flags().DurationVar(&cmdFlags.timeout, flags.Timeout, 0, "Maximum time per upload, e.g. 30s (0 means no limit)")
	rootCmd.Flags().StringVarP(&cmdFlags.output, flags.Output, flags.OutputShort, string(formatter.OutputText), "Report format: "+strings.Join(formatter.SupportedOutputFormats(), ", "))
	rootCmd.Flags().BoolVar(&cmdFlags.noColor, flags.NoColor, false, "Disable colored status output")

	rootCmd.AddCommand(newDeleteCmd(app))
	rootCmd.AddCommand(newProvidersCmd(app))
	rootCmd.AddCommand(newConfigCmd(app))

	return rootCmd
}

func runUpload(cmd *cobra.Command, app *appContainer, cmdFlags uploadFlags, paths []string) error {
	if len(paths) == 0 {
		return service.ErrNoFiles
	}

	format, err := formatter.ParseOutputFormat(cmdFlags.output)
	if err != nil {
		return err
	}

	providerName, err := resolveProvider(app, cmdFlags.provider)
	if err != nil {
		return err
	}

	opts := service.BatchOptions{
		Folder:  app.Config.Upload.Folder,
		Tags:    app.Config.Upload.Tags,
		Timeout: app.Config.Upload.Timeout,
	}
	if cmdFlags.folder != "" {
		opts.Folder = cmdFlags.folder
	}
	if cmd.Flags().Changed(flags.Tag) {
		opts.Tags = cmdFlags.tags
	}
	if cmd.Flags().Changed(flags.Timeout) {
		if cmdFlags.timeout < 0 {
			return fmt.Errorf("--%s must not be negative", flags.Timeout)
		}
		opts.Timeout = cmdFlags.timeout
	}

	out := cmd.OutOrStdout()

	// Machine-readable reports keep stdout free of progress lines
	var progress io.Writer = out
	if format == formatter.OutputJSON || format == formatter.OutputYAML {
		progress = cmd.ErrOrStderr()
	}

	report, err := app.UploadService.UploadFiles(cmd.Context(), service.BatchRequest{
		Provider: providerName,
		Paths:    paths,
		Options:  opts,
		Progress: progress,
	})
	if err != nil {
		return err
	}

	rendered, err := formatter.NewReportFormatter(out, !cmdFlags.noColor).Format(report, format)
	if err != nil {
		return err
	}
	fmt.Fprint(out, rendered)
	return nil
}

// resolveProvider falls back to the configured default and rejects names no provider registered
func resolveProvider(app *appContainer, requested string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(requested))
	if name == "" {
		name = app.Config.Upload.Provider
	}
	if !registry.IsSupported(name) {
		return "", fmt.Errorf("%w: %s. Supported providers are: %v", factory.ErrUnsupportedProvider, name, registry.GetSupportedProviders())
	}
	return name, nil
}

// Execute runs the command line and returns the process exit code. Failed uploads are part
// of the report and still exit 0; only usage and setup errors exit 1.
func Execute(app *appContainer, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(app)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Interrupting mid-batch fails the remaining files; the report is still printed
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, service.ErrNoFiles) {
			fmt.Fprintln(stderr, noFilesMessage)
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}
