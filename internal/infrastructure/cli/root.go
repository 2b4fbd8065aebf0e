package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "preflight",
	Version: Version,
	Short:   "Score an iOS app submission before sending it to review",
	Long: `Preflight scores an iOS app submission package against the App Store
review guidelines before you submit it. It answers:
1. What would a reviewer flag in my build files and metadata?
2. How risky is this submission overall?
3. What should I fix first?`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}
