package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/asccclass/agendatp/internal/agenda"
	"github.com/asccclass/agendatp/internal/config"
	"github.com/asccclass/agendatp/internal/gateway"
	"github.com/asccclass/agendatp/internal/sheets"
)

var (
	digestMes    string
	digestSemana int
	digestDia    int
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Imprimir un resumen en la terminal sin enviarlo",
	Long: `Genera el mismo texto que el bot publicaría y lo imprime, útil para
revisar el formato antes de un envío. Sin banderas imprime el mes actual.`,
	Run: runDigest,
}

func init() {
	digestCmd.Flags().StringVar(&digestMes, "mes", "", "mes a consultar (Enero..Diciembre)")
	digestCmd.Flags().IntVar(&digestSemana, "semana", 0, "semana fija del mes (1-6)")
	digestCmd.Flags().IntVar(&digestDia, "dia", 0, "día del mes")
	rootCmd.AddCommand(digestCmd)
}

func runDigest(cmd *cobra.Command, args []string) {
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.SpreadsheetID == "" {
		log.Fatal("❌ Falta SPREADSHEET_ID")
	}

	src, err := sheets.NewSource(ctx, cfg.CredentialsPath, cfg.SpreadsheetID)
	if err != nil {
		log.Fatalf("❌ Sheets: %v", err)
	}

	dispatcher := gateway.NewDispatcher(src, nil, nil, nil, nil, cfg)

	monthName := digestMes
	if monthName == "" {
		monthName = agenda.MonthNames[int(time.Now().In(cfg.Location).Month())-1]
	}
	month := agenda.MonthNumber(monthName)
	if month == 0 {
		log.Fatalf("❌ Mes desconocido: %q", digestMes)
	}

	var text string
	switch {
	case digestDia > 0:
		text, err = dispatcher.RenderDay(ctx, monthName, digestDia)
	case digestSemana > 0:
		text, err = dispatcher.RenderWeek(ctx, monthName, digestSemana)
	default:
		text, err = dispatcher.RenderMonthly(ctx, month)
	}
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	fmt.Println(text)
}
