package main

import (
	"fmt"

	"go-job-compiler/internal/config"
)

func main() {
	fmt.Println("🔧 Testing config loading...")
	cfg := config.Load()
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Input: %s %v\n", cfg.InputDir, cfg.InputPatterns)
	fmt.Printf("   Output: %s %v\n", cfg.OutputDir, cfg.Formats)
	fmt.Printf("   Platforms: %d base URLs\n", len(cfg.Platforms))
	fmt.Printf("   History: %v (%s)\n", cfg.History, cfg.CachePath)
	fmt.Printf("   Telegram: %v\n", cfg.TelegramEnabled())
	fmt.Printf("   Database archive: %v\n", cfg.DatabaseURL != "")
	fmt.Printf("   SFTP upload: %v\n", cfg.SFTP.Enabled)
}
