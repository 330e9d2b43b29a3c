package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/services"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/pkg/ui"
)

var (
	listQuery   string
	listStatus  string
	listSortBy  string
	listReverse bool
	listNoCache bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List your documents",
	Aliases: []string{"ls"},
	Long: `List the documents in your corpus in a table format.

Filtering and sorting happen locally on the fetched listing, so they
combine freely.

Examples:
  docan list
  docan list --query report
  docan list --status ready --sort size --reverse
  docan list --no-cache`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Filter by filename substring (case-insensitive)")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by exact status (uploaded, processing, ready, failed)")
	// Sort defaults come from config unless the flag is set explicitly
	listCmd.Flags().StringVar(&listSortBy, "sort", "date", "Sort by field (name, size, date)")
	listCmd.Flags().BoolVar(&listReverse, "reverse", false, "Reverse sort order")
	listCmd.Flags().BoolVar(&listNoCache, "no-cache", false, "Bypass the listing cache")
}

func runList(cmd *cobra.Command, args []string) error {
	// If the flag was NOT changed by the user, use the config default
	if !cmd.Flags().Changed("sort") {
		listSortBy = appConfig.DefaultSort
	}
	if !cmd.Flags().Changed("reverse") {
		listReverse = appConfig.ReverseSort
	}

	req := services.ListRequest{
		Query:   listQuery,
		Status:  listStatus,
		SortBy:  listSortBy,
		Reverse: listReverse,
		NoCache: listNoCache,
	}

	ctx := getContext()
	resp, err := listService.Execute(ctx, req)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list documents"))
		requireAuthHint(err)
		return err
	}

	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No documents yet"))
		fmt.Println(ui.FormatInfo("Upload your first document with: docan upload <file>"))
		return nil
	}

	if len(resp.Documents) == 0 {
		fmt.Println(ui.FormatWarning("No documents match your filters"))
		return nil
	}

	// Print header
	if listQuery != "" || listStatus != "" {
		fmt.Println(ui.FormatTitle(fmt.Sprintf("Documents (%d of %d)", len(resp.Documents), resp.Total)))
	} else {
		fmt.Println(ui.FormatTitle("Documents"))
	}
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Name", Width: 40, Align: "left"},
		{Header: "Size", Width: 10, Align: "right"},
		{Header: "Status", Width: 12, Align: "left"},
		{Header: "Uploaded", Width: 12, Align: "left"},
	})

	for _, doc := range resp.Documents {
		table.AddRow([]string{
			ui.Truncate(doc.Filename, 40),
			domain.FormatSize(doc.SizeBytes),
			string(doc.Status),
			doc.CreatedAt.Format(appConfig.DisplayDateFormat),
		})
	}

	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d documents", resp.Total)))

	return nil
}
