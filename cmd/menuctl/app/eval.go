package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"qr-menu/internal/menu"
	"qr-menu/internal/menu/usecase"
	"qr-menu/internal/model"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Render the menu for a filter",
		Long: `Render the menu grouped by category for the given filter key. Unknown or
inactive keys fall back to the full menu, the same as the public endpoint.`,
		RunE: runEval,
	}
	addCatalogFlag(cmd)
	cmd.Flags().String("filter", model.FilterKeyAll, "Filter key to apply")
	cmd.Flags().Bool("hidden", false, "Include items that are not visible to customers")
	cmd.Flags().String("output", "table", "Output format (table|json)")
	return cmd
}

func runEval(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	path, _ := cmd.Flags().GetString("catalog")
	key, _ := cmd.Flags().GetString("filter")
	hidden, _ := cmd.Flags().GetBool("hidden")
	format, _ := cmd.Flags().GetString("output")
	if format != "table" && format != "json" {
		return fmt.Errorf("unknown output format %q", format)
	}

	file, err := readCatalog(path)
	if err != nil {
		return err
	}
	r, err := file.load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	uc := usecase.New(r, newLogger(cmd), usecase.Config{})
	var out menu.MenuOutput
	if hidden {
		out, err = uc.Preview(ctx, menu.PreviewInput{FilterKey: key})
	} else {
		out, err = uc.GetMenu(ctx, menu.GetMenuInput{FilterKey: key})
	}
	if err != nil {
		return err
	}

	if format == "json" {
		return writeMenuJSON(cmd.OutOrStdout(), out)
	}
	return writeMenuTable(cmd.OutOrStdout(), out, file.tagKeys())
}

type jsonGroup struct {
	Category model.Category `json:"category"`
	Items    []model.Item   `json:"items"`
}

func writeMenuJSON(w io.Writer, out menu.MenuOutput) error {
	groups := make([]jsonGroup, len(out.Groups))
	for i, g := range out.Groups {
		groups[i] = jsonGroup{Category: g.Category, Items: g.Items}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		ActiveFilter string      `json:"activeFilter"`
		Categories   []jsonGroup `json:"categories"`
	}{out.ActiveFilter, groups})
}

func writeMenuTable(w io.Writer, out menu.MenuOutput, tagKeys map[string]string) error {
	fmt.Fprintf(w, "Filter: %s\n", out.ActiveFilter)

	table := tablewriter.NewWriter(w)
	table.Header("Category", "Item", "Price", "Tags")
	count := 0
	for _, g := range out.Groups {
		for _, it := range g.Items {
			tags := make([]string, 0, len(it.TagIDs))
			for _, id := range it.TagIDs {
				if k, ok := tagKeys[id]; ok {
					id = k
				}
				tags = append(tags, id)
			}
			name := it.Name
			if !it.IsVisible {
				name += " (hidden)"
			}
			if err := table.Append(g.Category.Name, name, strconv.FormatFloat(it.Price, 'f', -1, 64), strings.Join(tags, ", ")); err != nil {
				return err
			}
			count++
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d item(s)\n", count)
	return nil
}
