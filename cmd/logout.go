package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/pkg/ui"
)

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sessionStore.Clear(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		listService.Invalidate()
		fmt.Println(ui.FormatSuccess("Signed out"))
		return nil
	},
}
