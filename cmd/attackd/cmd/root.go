package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/ensai-tp/attackdb/pkg/atkdb"
	"github.com/ensai-tp/attackdb/pkg/atkdb/stor"
	"github.com/ensai-tp/attackdb/pkg/attack"
	"github.com/ensai-tp/attackdb/pkg/clog"
	"github.com/ensai-tp/attackdb/pkg/config"
	"github.com/ensai-tp/attackdb/pkg/webapi"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
)

var dotenvPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "attackd",
	Short: "Run the attack API server",
	Long: `attackd serves the attack table over HTTP. It lists attacks, reads
an attack by id and creates new attacks whose type is known to the
attack_type table.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := config.MustLoadFromDotenv(dotenvPath)
		if err := clog.Setup(os.Stdout, c.GetKey("ATTACKDB_LOG_LEVEL")); err != nil {
			log.Fatalf("Invalid ATTACKDB_LOG_LEVEL: %s", err)
		}

		db := atkdb.MustConnectToDB(c)
		factory := attack.NewFactory()
		stors := stor.NewGormStors(db, factory)

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Use(middleware.Recover())

		webapi.SetupRoutes(e, stors, factory)

		port := c.GetKeyWithDefault("ATTACKD_PORT", "8470")
		log.Infof("attackd listening on :%s", port)
		if err := e.Start(":" + port); err != nil {
			log.Fatalf("Unable to start server: %v", err)
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
	rootCmd.Flags().StringVar(&dotenvPath, "dotenv", "", "dotenv file to load (default is $ATTACKDB_DOTENV_PATH)")
}
