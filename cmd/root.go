package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string
var logFile string

var rootCmd = &cobra.Command{
	Use:   "gridline",
	Short: "A console ATM simulator for GridLine Bank",
	Long: `gridline runs an interactive ATM session in the terminal.

Two accounts are seeded at startup. After choosing one and entering its
PIN you can check the balance, deposit, withdraw, review the transaction
history, change the PIN, take fast cash, or transfer funds to the other
account. Everything lives in memory for one run of the program.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runATM()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "append structured logs to this file")
}
