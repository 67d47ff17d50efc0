package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/romancalc/internal/domain"
	"github.com/aalvaropc/romancalc/internal/infra/logger"
	"github.com/aalvaropc/romancalc/internal/usecase"
)

func addCmd() *cobra.Command {
	var workspace string
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "add AUGEND ADDEND",
		Short: "Add two Roman numerals (concatenation)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := openWorkspace(workspace)
			if workspace != "" && ws.err != nil {
				return ws.err
			}
			// A found workspace with a broken config would silently lose history.
			if err := ws.configErr(); err != nil {
				return err
			}

			f, err := outputFormat(format, ws)
			if err != nil {
				return err
			}

			// Only log inside a workspace; a bare `add` should not create files.
			if ws.root != "" {
				debug, _ := cmd.Flags().GetBool("debug")
				defer setupLogging(ws, debug)()
			}

			recorder := ws.recorder()
			if noSave {
				recorder = nil
			}

			uc := usecase.NewAddNumerals(recorder, usecase.WithLogger(logger.L()))
			sum, id, err := uc.Execute(cmd.Context(), domain.Numeral(args[0]), domain.Numeral(args[1]))
			if perr := printSum(cmd.OutOrStdout(), sum, id, f); perr != nil {
				return perr
			}
			return err
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not record the sum in the workspace history")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (defaults to workspace setting)")
	return c
}

func printSum(w io.Writer, sum domain.Sum, id string, format domain.OutputFormat) error {
	switch format {
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"id":  id,
			"sum": sum,
		}
		if raw := sum.Raw(); raw != nil {
			payload["raw"] = raw
		}
		return enc.Encode(payload)
	case domain.FormatPretty, "":
		// Style against w so pipes and buffers get plain text.
		style := lipgloss.NewRenderer(w).NewStyle().Bold(true)
		fmt.Fprintln(w, style.Render(string(sum.Result)))
		if id != "" {
			fmt.Fprintf(w, "saved: %s\n", id)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
