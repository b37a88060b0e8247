// File: cmd/imgup/delete_cmd.go
package main

import (
	"fmt"

	"imgup/internal/flags"
	"imgup/pkg/media"

	"github.com/spf13/cobra"
)

type deleteFlags struct {
	provider     string
	resourceType string
	force        bool
}

func newDeleteCmd(app *appContainer) *cobra.Command {
	cmdFlags := deleteFlags{}

	deleteCmd := &cobra.Command{
		Use:   "delete [public-id]",
		Short: "Delete an uploaded asset",
		Long: `Deletes an asset by the public ID reported when it was uploaded. For s3 and gcs the
public ID is the object key. You are asked to type the ID again unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			publicID := args[0]
			providerName, err := resolveProvider(app, cmdFlags.provider)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !cmdFlags.force {
				message := fmt.Sprintf("You are about to permanently delete asset '%s' from provider %s.", publicID, providerName)
				confirmed, err := app.Prompter.Confirm(message, publicID)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(out, "Deletion cancelled.")
					return nil
				}
			}

			opts := media.DeleteOptions{ResourceType: cmdFlags.resourceType}
			if err := app.UploadService.DeleteAsset(cmd.Context(), providerName, publicID, opts); err != nil {
				return fmt.Errorf("error deleting asset '%s' on %s: %w", publicID, providerName, err)
			}

			fmt.Fprintf(out, "Asset '%s' deleted successfully from provider %s.\n", publicID, providerName)
			return nil
		},
	}
	deleteCmd.Flags().StringVarP(&cmdFlags.provider, flags.Provider, flags.ProviderShort, "", "Provider holding the asset (defaults to upload.provider)")
	deleteCmd.Flags().StringVar(&cmdFlags.resourceType, flags.ResourceType, "image", "Cloudinary resource type of the asset: image, video or raw")
	deleteCmd.Flags().BoolVarP(&cmdFlags.force, flags.Force, flags.ForceShort, false, "Delete without asking for confirmation")

	return deleteCmd
}
