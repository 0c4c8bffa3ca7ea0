package main

import (
	"fmt"
	"os"
	"time"

	"lead-crm-backend/internal/auth"
	"lead-crm-backend/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	subject string
	role    string
	ttl     time.Duration
)

// rootCmd issues bearer tokens for the API
var rootCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue API tokens",
	Long: `Issue signed bearer tokens for the lead CRM API.

Tokens are signed with JWT_SECRET and carry JWT_ISSUER, read the same way
the server reads them (config.yaml, .env or the environment).`,
	SilenceUsage: true,
}

// issueCmd prints a token for a subject and role
var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a token for a user",
	Example: `  token issue --subject jan.nowak --role manager
  token issue --subject ops --role admin --ttl 1h`,
	RunE: runIssue,
}

// rolesCmd lists the roles and what they may do
var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List roles and their capabilities",
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range auth.Roles() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %v\n", r, auth.CapabilitiesOf(r))
		}
	},
}

func init() {
	issueCmd.Flags().StringVar(&subject, "subject", "", "user the token is issued to (required)")
	issueCmd.Flags().StringVar(&role, "role", string(auth.RoleAgent), "role granted by the token: admin, manager or agent")
	issueCmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")
	_ = issueCmd.MarkFlagRequired("subject")

	rootCmd.AddCommand(issueCmd, rolesCmd)
}

func runIssue(cmd *cobra.Command, args []string) error {
	parsedRole, err := auth.ParseRole(role)
	if err != nil {
		return fmt.Errorf("%w: %q", err, role)
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	service, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTIssuer, ttl)
	if err != nil {
		return err
	}

	token, err := service.GenerateJWT(subject, parsedRole)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
