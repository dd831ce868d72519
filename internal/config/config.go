package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string
	GerentePIN  string // PIN do perfil gerente (controlo completo)
	EquipaPIN   string // PIN do perfil equipa (só registo de saídas)
}

func Load() *Config {
	// .env local opcional; em produção vem tudo do ambiente
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=cozinha port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		GerentePIN:  getEnv("GERENTE_PIN", ""),
		EquipaPIN:   getEnv("EQUIPA_PIN", ""),
	}

	// Verificações de arranque
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET não está definido! Obrigatório para produção.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET tem de ter pelo menos 32 caracteres! Risco de segurança.")
	}
	if cfg.GerentePIN == "" || cfg.EquipaPIN == "" {
		log.Fatal("[FATAL] GERENTE_PIN e EQUIPA_PIN têm de estar definidos no ambiente.")
	}
	if cfg.GerentePIN == cfg.EquipaPIN {
		log.Fatal("[FATAL] GERENTE_PIN e EQUIPA_PIN não podem ser iguais.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=cozinha port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN está com o valor por omissão; em produção define a tua ligação Postgres.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS está com o valor por omissão; em produção define o teu domínio.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
