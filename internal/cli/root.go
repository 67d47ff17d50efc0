package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/romancalc/internal/infra/logger"
	"github.com/aalvaropc/romancalc/internal/ui/tui"
	"github.com/aalvaropc/romancalc/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "romancalc",
		Short:        "romancalc — adds Roman numerals by concatenation",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws := openWorkspace("")

			defer setupLogging(ws, debug)()
			log := logger.L()

			deps := tui.Deps{
				Adder:         usecase.NewAddNumerals(ws.recorder(), usecase.WithLogger(log)),
				WorkspaceRoot: ws.root,
				Logger:        log,
				LogPath:       logger.Path(),
				Debug:         debug,
				InitialErr:    ws.configErr(),
			}
			if r := ws.reader(); r != nil {
				deps.History = usecase.NewListHistory(r)
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .romancalc/logs/romancalc.log")

	cmd.AddCommand(
		addCmd(),
		historyCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// setupLogging starts the file logger under the workspace (or cwd) and
// returns its cleanup. Failures leave the discard logger in place.
func setupLogging(ws *workspaceCtx, debug bool) func() {
	root := ws.root
	if root == "" {
		root = ws.cwd
	}
	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
