package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command; subcommands do the actual work.
var rootCmd = &cobra.Command{
	Use:   "agendatp",
	Short: "Bot de agenda para Tierra Prometida Atizapán",
	Long: `Lee la agenda mensual desde Google Sheets y publica resúmenes mensuales,
semanales y diarios en Telegram y WhatsApp, con menú interactivo y
registro de asistencia.`,
}

// Execute registers every subcommand on the root and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
