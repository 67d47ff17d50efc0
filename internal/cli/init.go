package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/romancalc/internal/infra/fsworkspace"
	"github.com/aalvaropc/romancalc/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a romancalc workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := path
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}
			abs, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			if err := usecase.NewInitWorkspace(fsworkspace.NewInitializer()).Execute(abs, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready: %s\n", abs)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Directory to initialize (defaults to current directory)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite romancalc.yaml if it exists")
	return cmd
}
