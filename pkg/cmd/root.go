package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled in when building with a release pipeline, but *not*
// when installing via "go install".
var Version string

var rootCmd = &cobra.Command{
	Use:   "intervalctl",
	Short: "A driver for the interval abstract-interpretation domain.",
	Long: `intervalctl runs the interval domain to a fixed point over a
small CFG fixture and reports, for each program point, what the domain
was able to prove about every tracked variable.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("intervalctl ")

			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}

			fmt.Println()

			return
		}

		fmt.Println(cmd.UsageString())
	},
}

// Execute runs the root command. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().Uint("textwidth", 0, "width of the per-node header rule in analyze output (0 = detect terminal width)")
	rootCmd.Flags().Bool("version", false, "print version information")

	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(simplifyCmd)
}

func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}
