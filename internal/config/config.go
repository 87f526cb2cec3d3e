package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds the bot-wide settings, loaded once at startup.
type Config struct {
	// Telegram
	TelegramToken string
	ChannelID     int64 // destination chat for scheduled digests
	AdminID       string

	// Google Sheets source
	SpreadsheetID   string
	CredentialsPath string

	// WhatsApp
	WhatsAppSession string // whatsmeow sqlite session store
	WhatsAppJID     string // broadcast destination (group or channel JID)
	WhatsAppToken   string // Cloud API notifier token
	WhatsAppPhoneID string
	NotifyPhone     string

	// Greeting generator
	OllamaURL   string
	OllamaModel string

	RSVPDBPath string
	ImagesDir  string

	TargetYear int
	Location   *time.Location
	Debug      bool
}

// LoadConfig reads everything from environment variables, with sane defaults
// where the bot can run without them. Secrets (tokens, spreadsheet ID) have no
// default on purpose; callers must check what they need.
func LoadConfig() *Config {
	year := time.Now().Year()
	if v := getEnv("AGENDA_YEAR", ""); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		} else {
			log.Printf("⚠️ [Config] AGENDA_YEAR inválido (%q), usando %d", v, year)
		}
	}

	tz := getEnv("AGENDA_TIMEZONE", "America/Mexico_City")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("⚠️ [Config] zona horaria %q no encontrada, usando UTC", tz)
		loc = time.UTC
	}

	var channelID int64
	if v := getEnv("TELEGRAM_CHANNEL_ID", ""); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			channelID = id
		} else {
			log.Printf("⚠️ [Config] TELEGRAM_CHANNEL_ID inválido: %q", v)
		}
	}

	return &Config{
		TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		ChannelID:     channelID,
		AdminID:       getEnv("AGENDA_ADMIN_ID", ""),

		SpreadsheetID:   getEnv("SPREADSHEET_ID", ""),
		CredentialsPath: getEnv("GOOGLE_CREDENTIALS", "credentials.json"),

		WhatsAppSession: getEnv("WHATSAPP_SESSION_DB", "whatsapp.db"),
		WhatsAppJID:     getEnv("WHATSAPP_CHANNEL_JID", ""),
		WhatsAppToken:   getEnv("WHATSAPP_CLOUD_TOKEN", ""),
		WhatsAppPhoneID: getEnv("WHATSAPP_PHONE_ID", ""),
		NotifyPhone:     getEnv("WHATSAPP_NOTIFY_PHONE", ""),

		OllamaURL:   getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel: getEnv("OLLAMA_MODEL", "llama3.2"),

		RSVPDBPath: getEnv("AGENDA_RSVP_DB", "rsvp.db"),
		ImagesDir:  getEnv("AGENDA_IMAGES_DIR", "images"),

		TargetYear: year,
		Location:   loc,
		Debug:      getEnv("AGENDA_DEBUG", "") != "",
	}
}

// getEnv is the usual env-or-fallback helper.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
