package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/pkg/ui"
)

var deleteForce bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete [name]",
	Short:   "Delete a document from the corpus",
	Aliases: []string{"rm"},
	Long: `Delete a document from the corpus.

Without arguments an interactive picker opens. With a name argument the
first matching document is deleted after confirmation.`,
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if !deleteForce {
		answer, err := promptLine(fmt.Sprintf("Delete %s? [y/N] ", doc.Filename))
		if err != nil {
			return err
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			fmt.Println(ui.FormatMuted("Cancelled"))
			return nil
		}
	}

	if err := apiClient.DeleteDocument(getContext(), doc.ID); err != nil {
		fmt.Println(ui.FormatError("Failed to delete " + doc.Filename))
		requireAuthHint(err)
		return err
	}

	listService.Invalidate()
	fmt.Println(ui.FormatSuccess("Deleted " + doc.Filename))
	return nil
}
