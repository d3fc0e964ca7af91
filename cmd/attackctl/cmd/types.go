package cmd

import (
	"io"
	"strconv"

	"github.com/apex/log"
	"github.com/ensai-tp/attackdb/pkg/atkdb"
	"github.com/ensai-tp/attackdb/pkg/atkdb/atkmodel"
	"github.com/ensai-tp/attackdb/pkg/attack"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the attack types",
	Run: func(cmd *cobra.Command, args []string) {
		attackTypes, err := mustOpenStors().AttackTypeStor.ListAttackTypes()
		if err != nil {
			log.Fatalf("Unable to list attack types: %s", err)
		}

		if err := printAttackTypes(cmd.OutOrStdout(), attackTypes); err != nil {
			log.Fatalf("Unable to print attack types: %s", err)
		}
	},
}

func printAttackTypes(w io.Writer, attackTypes []atkmodel.AttackType) error {
	table := tablewriter.NewWriter(w)
	defer table.Close()

	table.Header([]string{"ID", "Name", "Description"})
	for _, t := range attackTypes {
		if err := table.Append([]string{strconv.Itoa(t.ID), t.Name, t.Description}); err != nil {
			return err
		}
	}

	return table.Render()
}

// initDBCmd creates missing tables and type rows. It is meant for sqlite
// development databases; shared databases are provisioned separately.
var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the attack tables if missing and seed the known attack types",
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()
		if err := atkdb.CreateTables(db); err != nil {
			log.Fatalf("Unable to create tables: %s", err)
		}

		labels := attack.NewFactory().Labels()
		if err := atkdb.SeedAttackTypes(db, labels...); err != nil {
			log.Fatalf("Unable to seed attack types: %s", err)
		}

		log.Infof("Database ready with attack types %v", labels)
	},
}

func init() {
	rootCmd.AddCommand(typesCmd, initDBCmd)
}
