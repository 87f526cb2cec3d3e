package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/asccclass/agendatp/internal/channel"
	"github.com/asccclass/agendatp/internal/config"
	"github.com/asccclass/agendatp/internal/gateway"
	"github.com/asccclass/agendatp/internal/greeter"
	"github.com/asccclass/agendatp/internal/notify"
	"github.com/asccclass/agendatp/internal/rsvp"
	"github.com/asccclass/agendatp/internal/scheduler"
	"github.com/asccclass/agendatp/internal/sheets"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Iniciar el bot: canales, menú y publicaciones programadas",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := config.LoadConfig()
	ctx := context.Background()

	if cfg.TelegramToken == "" {
		log.Fatal("❌ Falta TELEGRAM_BOT_TOKEN")
	}
	if cfg.SpreadsheetID == "" {
		log.Fatal("❌ Falta SPREADSHEET_ID")
	}

	src, err := sheets.NewSource(ctx, cfg.CredentialsPath, cfg.SpreadsheetID)
	if err != nil {
		log.Fatalf("❌ Sheets: %v", err)
	}

	store, err := rsvp.NewStore(cfg.RSVPDBPath)
	if err != nil {
		log.Fatalf("❌ RSVP: %v", err)
	}
	defer store.Close()

	g := greeter.New(cfg.OllamaURL, cfg.OllamaModel)

	// Six hours of dedup: enough to swallow a crash-restart double post
	// without blocking tomorrow's identical "no events" day.
	fanout := notify.NewFanout(6 * time.Hour)

	tg, err := channel.NewTelegramChannel(cfg.TelegramToken, cfg.Debug)
	if err != nil {
		log.Fatalf("❌ Telegram: %v", err)
	}
	if err := tg.SetCommands(ctx); err != nil {
		log.Printf("⚠️ [Telegram] No se pudieron registrar los comandos: %v", err)
	}

	var wa *channel.WhatsAppChannel
	if cfg.WhatsAppJID != "" {
		wa, err = channel.NewWhatsAppChannel(cfg.WhatsAppSession, cfg.WhatsAppJID)
		if err != nil {
			log.Fatalf("❌ WhatsApp: %v", err)
		}
		fanout.Register(wa)
	}
	if cfg.WhatsAppToken != "" && cfg.WhatsAppPhoneID != "" && cfg.NotifyPhone != "" {
		fanout.Register(notify.NewWhatsAppCloud(cfg.WhatsAppToken, cfg.WhatsAppPhoneID, cfg.NotifyPhone))
	}

	dispatcher := gateway.NewDispatcher(src, store, g, fanout, tg, cfg)

	engine := scheduler.NewEngine(cfg.Location)
	planner := scheduler.NewPlanner(cfg.Location)

	planToday := func() {
		now := time.Now().In(cfg.Location)
		var times []string
		events, err := dispatcher.TodayEvents(ctx, now)
		if err != nil {
			log.Printf("⚠️ [Planner] No se pudo leer la agenda de hoy: %v", err)
		}
		for _, ev := range events {
			times = append(times, ev.Time)
		}

		planner.PlanDaily(now, times, func() {
			sendCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			dispatcher.SendDailyReminder(sendCtx, time.Now().In(cfg.Location))
		})
	}

	scheduled := func(task func(ctx context.Context, now time.Time)) func() {
		return func() {
			taskCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			task(taskCtx, time.Now().In(cfg.Location))
		}
	}

	// Day 1 at 09:00 the monthly digest; Mondays 09:00 the weekly one.
	engine.AddTask("0 9 1 * *", scheduled(func(ctx context.Context, now time.Time) {
		dispatcher.SendMonthlySummary(ctx, int(now.Month()))
	}))
	engine.AddTask("0 9 * * 1", scheduled(dispatcher.SendWeeklySummary))
	engine.AddTask("0 9 * * *", scheduled(dispatcher.CheckStellarEvents))
	// Shortly after midnight, plan today's smart reminder slot.
	engine.AddTask("1 0 * * *", planToday)
	engine.Start()
	defer engine.Stop()

	// A bot started mid-day still plans (and maybe fires) today's reminder.
	planToday()

	go tg.Listen(dispatcher.HandleMessage)
	if wa != nil {
		go func() {
			if err := wa.Listen(dispatcher.HandleMessage); err != nil {
				log.Printf("❌ [WhatsApp] %v", err)
			}
		}()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	fmt.Println("\n🛑 Apagando el bot...")
	planner.Stop()
	tg.Stop()
	if wa != nil {
		wa.Stop()
	}
}
