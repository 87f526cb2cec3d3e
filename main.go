package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/asccclass/agendatp/cmd"
)

func main() {
	// .env is optional; real deployments use environment variables.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("⚠️  [Main] .env existe pero no se pudo cargar: %v\n", err)
	}
	cmd.Execute()
}
