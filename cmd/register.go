package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/pkg/ui"
)

var registerEmail string

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE:  runRegister,
}

func init() {
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Account email (prompted if omitted)")
}

func runRegister(cmd *cobra.Command, args []string) error {
	email := registerEmail
	if email == "" {
		var err error
		email, err = promptLine("Email: ")
		if err != nil {
			return err
		}
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}

	if err := apiClient.Register(getContext(), email, password); err != nil {
		fmt.Println(ui.FormatError("Registration failed"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Account created"))
	fmt.Println(ui.FormatInfo("Run 'docan login' to sign in"))
	return nil
}
