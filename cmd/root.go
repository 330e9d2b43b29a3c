package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/adapters/api"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/adapters/session"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/services"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/logging"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/pkg/config"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/pkg/ui"
)

var (
	// Global application state
	appConfig     *config.Config
	appConfigPath string
	appLogger     *slog.Logger

	// Adapters
	sessionStore *session.Store
	listingCache *session.Cache
	apiClient    *api.Client

	// Services
	listService *services.ListService
	chatService *services.ChatService
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docan",
	Short: "Docan - document analysis from your terminal",
	Long: ui.StyleTitle.Render("DOCAN") + " - Document Analysis CLI\n\n" +
		"Upload documents, track their analysis, and chat with your corpus\n" +
		"without leaving the terminal.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	stateDir, err := config.Dir()
	if err != nil {
		return err
	}

	appConfigPath = filepath.Join(stateDir, "config.yaml")
	cfg, err := config.Load(appConfigPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	appConfig = cfg

	ui.SetTheme(appConfig.ColorTheme)

	appLogger = logging.NewLogger(filepath.Join(stateDir, "docan.log"), appConfig.LogLevel)

	sessionStore = session.NewStore(filepath.Join(stateDir, "session.json"))

	cacheTTL := time.Duration(appConfig.CacheExpirationMinutes) * time.Minute
	if !appConfig.EnableCache {
		cacheTTL = 0
	}
	listingCache = session.NewCache(filepath.Join(stateDir, "cache", "documents.json"), cacheTTL)

	apiClient = api.NewClient(
		appConfig.ServerURL,
		sessionStore.Token,
		api.WithLogger(appLogger),
		api.WithTimeout(time.Duration(appConfig.RequestTimeoutSeconds)*time.Second),
	)

	listService = services.NewListService(apiClient, listingCache)
	chatService = services.NewChatService(apiClient)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}

// requireAuthHint prints a re-login hint when a request came back 401.
func requireAuthHint(err error) {
	if api.IsUnauthorized(err) {
		fmt.Println(ui.FormatWarning("Session expired or not signed in"))
		fmt.Println(ui.FormatInfo("Run 'docan login' to sign in"))
	}
}
