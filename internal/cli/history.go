package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/romancalc/internal/domain"
	"github.com/aalvaropc/romancalc/internal/usecase"
)

func historyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded sums",
	}

	c.AddCommand(historyListCmd(), historyShowCmd())
	return c
}

func historyListCmd() *cobra.Command {
	var workspace string
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sums, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws := openWorkspace(workspace)
			if ws.err != nil {
				return ws.err
			}

			f, err := outputFormat(format, ws)
			if err != nil {
				return err
			}

			entries, err := usecase.NewListHistory(ws.reader()).Execute(limit)
			if err != nil {
				return err
			}
			return printHistory(cmd.OutOrStdout(), entries, f)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries (0 = all)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: pretty|json (defaults to workspace setting)")
	return cmd
}

func historyShowCmd() *cobra.Command {
	var workspace string
	var format string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one recorded sum by its history id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := openWorkspace(workspace)
			if ws.err != nil {
				return ws.err
			}

			f, err := outputFormat(format, ws)
			if err != nil {
				return err
			}

			rec, err := usecase.NewShowSum(ws.loader()).Execute(args[0])
			if err != nil {
				return err
			}
			return printSum(cmd.OutOrStdout(), rec.Sum, strings.TrimSuffix(strings.TrimSpace(args[0]), ".json"), f)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: pretty|json (defaults to workspace setting)")
	return cmd
}

func printHistory(w io.Writer, entries []domain.HistoryEntry, format domain.OutputFormat) error {
	switch format {
	case domain.FormatJSON:
		out := make([]domain.HistoryEntry, len(entries))
		for i, e := range entries {
			e.Raw = e.Sum().Raw()
			out[i] = e
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case domain.FormatPretty, "":
		if len(entries) == 0 {
			fmt.Fprintln(w, "(no sums recorded)")
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(w, "%s  %s + %s = %s  (%s)\n",
				e.RecordedAt.Format(time.RFC3339), e.Augend, e.Addend, e.Result, e.ID)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
