package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/pkg/ui"
)

var summaryCopy bool

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary [name]",
	Short: "Show an AI summary of a document",
	Long: `Request an AI-generated summary of a document.

Without arguments an interactive picker opens. With a name argument the
first matching document is summarized.

Examples:
  docan summary
  docan summary report
  docan summary report --copy`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().BoolVarP(&summaryCopy, "copy", "c", false, "Copy the summary to the clipboard")
}

func runSummary(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	doc, err := pickDocument(query)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	fmt.Println(ui.FormatInfo("Summarizing " + doc.Filename + "..."))

	summary, err := apiClient.Summarize(getContext(), doc.ID)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to summarize " + doc.Filename))
		requireAuthHint(err)
		return err
	}

	fmt.Println()
	fmt.Println(ui.FormatTitle(doc.Filename))
	fmt.Println()
	fmt.Println(summary)
	fmt.Println()

	if summaryCopy {
		if err := clipboard.WriteAll(summary); err != nil {
			fmt.Println(ui.FormatWarning("Could not copy to clipboard: " + err.Error()))
		} else {
			fmt.Println(ui.FormatMuted("Copied to clipboard"))
		}
	}

	return nil
}
