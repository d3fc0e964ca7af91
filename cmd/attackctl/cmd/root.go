package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/ensai-tp/attackdb/pkg/atkdb"
	"github.com/ensai-tp/attackdb/pkg/atkdb/stor"
	"github.com/ensai-tp/attackdb/pkg/attack"
	"github.com/ensai-tp/attackdb/pkg/clog"
	"github.com/ensai-tp/attackdb/pkg/config"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	dotenvPath string
	logLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "attackctl",
	Short: "Create, read and list attacks in the attack database",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := clog.Setup(os.Stderr, logLevel); err != nil {
			log.Fatalf("Invalid --log-level: %s", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dotenvPath, "dotenv", "", "dotenv file to load (default is $ATTACKDB_DOTENV_PATH)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

func mustOpenDB() *gorm.DB {
	return atkdb.MustConnectToDB(config.MustLoadFromDotenv(dotenvPath))
}

func mustOpenStors() *stor.Stors {
	return stor.NewGormStors(mustOpenDB(), attack.NewFactory())
}
