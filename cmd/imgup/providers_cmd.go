// File: cmd/imgup/providers_cmd.go
package main

import (
	"fmt"

	"imgup/internal/flags"
	"imgup/internal/provider/registry"
	"imgup/internal/service"
	"imgup/pkg/formatter"

	"github.com/spf13/cobra"
)

func newProvidersCmd(app *appContainer) *cobra.Command {
	var check bool

	providersCmd := &cobra.Command{
		Use:   "providers",
		Short: "List supported providers",
		Long: `Lists every supported media provider, whether it is configured and which one
is the default. Use --check to also contact each configured provider.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := registry.GetSupportedProviders()
			out := cmd.OutOrStdout()

			headers := []string{"PROVIDER", "CONFIGURED", "DEFAULT"}
			if check {
				headers = append(headers, "STATUS")
			}
			table := formatter.NewTable(headers)

			if !check {
				for _, name := range names {
					table.AddRow([]string{name, yesNo(app.ProviderFactory.IsConfigured(name)), defaultMark(app, name)})
				}
				fmt.Fprintln(out, table.String())
				return nil
			}

			statuses := make(map[string]service.ProviderStatus)
			for _, status := range app.UploadService.CheckProviders(cmd.Context()) {
				statuses[status.Provider] = status
			}

			for _, name := range names {
				state := "-"
				status, configured := statuses[name]
				switch {
				case status.Reachable:
					state = "reachable"
				case status.Error != "":
					state = status.Error
				}
				table.AddRow([]string{name, yesNo(configured), defaultMark(app, name), state})
			}
			fmt.Fprintln(out, table.String())
			return nil
		},
	}
	providersCmd.Flags().BoolVar(&check, flags.Check, false, "Contact each configured provider and report whether it is reachable")

	return providersCmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func defaultMark(app *appContainer, name string) string {
	if name == app.Config.Upload.Provider {
		return "*"
	}
	return ""
}
