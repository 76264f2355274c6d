package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"qr-menu/internal/filterengine"
	"qr-menu/internal/model"
)

const (
	severityError   = "error"
	severityWarning = "warning"
)

// errFindings makes the command exit non-zero once findings are printed.
var errFindings = errors.New("catalog check failed")

type finding struct {
	Subject  string
	Severity string
	Problem  string
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check every filter predicate in a catalog",
		Long: `Check reports malformed predicates, duplicate or reserved filter keys, tag
references that resolve to no tag and items pointing at unknown categories or tags.
Errors make the command fail. Warnings fail it only with --strict.`,
		RunE: runCheck,
	}
	addCatalogFlag(cmd)
	cmd.Flags().Bool("strict", false, "Treat warnings as errors")
	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("catalog")
	strict, _ := cmd.Flags().GetBool("strict")

	file, err := readCatalog(path)
	if err != nil {
		return err
	}

	findings := checkCatalog(file)
	w := cmd.OutOrStdout()
	if len(findings) == 0 {
		fmt.Fprintf(w, "%d filter(s) checked, no findings\n", len(file.Filters))
		return nil
	}
	if err := writeFindings(w, findings); err != nil {
		return err
	}

	for _, f := range findings {
		if f.Severity == severityError || strict {
			return errFindings
		}
	}
	return nil
}

func checkCatalog(file catalogFile) []finding {
	var out []finding
	tags := filterengine.NewTagIndex(file.modelTags())

	seen := make(map[string]bool, len(file.Filters))
	for _, f := range file.Filters {
		subject := "filter " + f.Key
		switch {
		case f.Key == model.FilterKeyAll:
			out = append(out, finding{subject, severityError, `key "all" is reserved`})
		case seen[f.Key]:
			out = append(out, finding{subject, severityError, "duplicate filter key"})
		}
		seen[f.Key] = true

		if !f.Type.Valid() {
			out = append(out, finding{subject, severityError, fmt.Sprintf("unknown filter type %q", f.Type)})
		}
		out = append(out, splitFindings(subject, severityError, filterengine.CheckPredicate(f.Predicate))...)
		out = append(out, splitFindings(subject, severityWarning, filterengine.CheckTagRefs(f.Predicate, tags))...)
	}

	categories := make(map[string]bool, len(file.Categories))
	for _, c := range file.Categories {
		categories[c.ID] = true
	}
	tagIDs := file.tagKeys()
	for _, it := range file.Items {
		subject := "item " + cmpOr(it.ID, it.Name)
		if !categories[it.Category] {
			out = append(out, finding{subject, severityWarning, fmt.Sprintf("unknown category %q, item is not shown", it.Category)})
		}
		for _, id := range it.TagIDs {
			if _, ok := tagIDs[id]; !ok {
				out = append(out, finding{subject, severityWarning, fmt.Sprintf("unknown tag %q", id)})
			}
		}
	}
	return out
}

// splitFindings turns a joined error into one finding per line.
func splitFindings(subject, severity string, err error) []finding {
	if err == nil {
		return nil
	}
	var out []finding
	for _, line := range strings.Split(err.Error(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, finding{subject, severity, line})
		}
	}
	return out
}

func writeFindings(w io.Writer, findings []finding) error {
	table := tablewriter.NewWriter(w)
	table.Header("Subject", "Severity", "Problem")
	for _, f := range findings {
		if err := table.Append(f.Subject, f.Severity, f.Problem); err != nil {
			return err
		}
	}
	return table.Render()
}

func cmpOr(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
