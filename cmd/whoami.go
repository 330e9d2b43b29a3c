package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/adapters/session"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/pkg/ui"
)

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		token := sessionStore.Token()
		if token == "" {
			fmt.Println(ui.FormatWarning("Not signed in"))
			fmt.Println(ui.FormatInfo("Run 'docan login' to sign in"))
			return nil
		}

		claims, err := session.InspectToken(token)
		if err != nil {
			// Opaque token: still signed in, just nothing to display.
			fmt.Println(ui.FormatSuccess("Signed in"))
			return nil
		}

		fmt.Println(ui.FormatSuccess("Signed in"))
		if claims.Subject != "" {
			fmt.Println(ui.RenderKeyValue("Account", claims.Subject))
		}
		if !claims.ExpiresAt.IsZero() {
			expiry := claims.ExpiresAt.Format(time.RFC1123)
			if time.Now().After(claims.ExpiresAt) {
				expiry += " " + ui.StyleError.Render("(expired)")
			}
			fmt.Println(ui.RenderKeyValue("Token expires", expiry))
		}
		return nil
	},
}
