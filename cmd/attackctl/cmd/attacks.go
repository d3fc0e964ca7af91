package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/apex/log"
	"github.com/ensai-tp/attackdb/pkg/atkdb/stor"
	"github.com/ensai-tp/attackdb/pkg/attack"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var newAttack struct {
	attackType  string
	name        string
	power       int
	accuracy    int
	element     string
	description string
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an attack",
	Example: `  attackctl create --type Physical --name chatouille --power 50 --accuracy 90 \
    --element Normal --description guili-guilis`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := attack.NewFactory().Instantiate(newAttack.attackType, 0, newAttack.name, newAttack.power,
			newAttack.accuracy, newAttack.element, newAttack.description)
		if err != nil {
			log.Fatalf("Unable to build attack: %s", err)
		}

		created, err := mustOpenStors().AttackStor.CreateAttack(a)
		if err != nil {
			log.Fatalf("Unable to create attack: %s", err)
		}

		if !created {
			log.Fatalf("Attack not created: attack type '%s' is not in the attack_type table", newAttack.attackType)
		}

		if err := printAttacks(cmd.OutOrStdout(), []attack.Attack{a}); err != nil {
			log.Fatalf("Unable to print attack: %s", err)
		}
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show the attack with the given id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("Invalid attack id '%s'", args[0])
		}

		a, found, err := mustOpenStors().AttackStor.GetAttackByID(id)
		switch {
		case err != nil:
			log.Fatalf("Unable to retrieve attack %d: %s", id, err)
		case !found:
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No attack with id %d\n", id)
		default:
			if err := printAttacks(cmd.OutOrStdout(), []attack.Attack{a}); err != nil {
				log.Fatalf("Unable to print attack: %s", err)
			}
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all attacks",
	Run: func(cmd *cobra.Command, args []string) {
		if err := listAttacks(cmd.OutOrStdout(), mustOpenStors().AttackStor); err != nil {
			log.Fatalf("Unable to list attacks: %s", err)
		}
	},
}

func listAttacks(w io.Writer, attackStor stor.AttackStor) error {
	attacks, err := attackStor.ListAttacks()
	if err != nil {
		return err
	}

	return printAttacks(w, attacks)
}

func printAttacks(w io.Writer, attacks []attack.Attack) error {
	table := tablewriter.NewWriter(w)
	defer table.Close()

	table.Header([]string{"ID", "Type", "Name", "Power", "Accuracy", "Element", "Description"})
	for _, a := range attacks {
		attrs := a.Attrs()
		row := []string{
			strconv.Itoa(attrs.ID),
			a.Type(),
			attrs.Name,
			strconv.Itoa(attrs.Power),
			strconv.Itoa(attrs.Accuracy),
			attrs.Element,
			attrs.Description,
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}

func init() {
	rootCmd.AddCommand(createCmd, getCmd, listCmd)

	createCmd.Flags().StringVar(&newAttack.attackType, "type", attack.PhysicalLabel, "attack type label")
	createCmd.Flags().StringVar(&newAttack.name, "name", "", "attack name")
	createCmd.Flags().IntVar(&newAttack.power, "power", 0, "attack power")
	createCmd.Flags().IntVar(&newAttack.accuracy, "accuracy", 100, "attack accuracy")
	createCmd.Flags().StringVar(&newAttack.element, "element", "Normal", "attack element")
	createCmd.Flags().StringVar(&newAttack.description, "description", "", "attack description")
	_ = createCmd.MarkFlagRequired("name")
}
