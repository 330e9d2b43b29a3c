package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the docan configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appConfigPath

		// Write the defaults out first so the user edits a populated file
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := appConfig.Save(path); err != nil {
				return err
			}
		}

		fmt.Println(ui.FormatInfo("Opening config: " + path))

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		c := exec.Command(editor, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}
