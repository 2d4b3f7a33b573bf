package dsn

import (
	"fmt"
	"os"
	"strings"
)

// DefaultSchema схема, в которую выгружаются открытые данные Transferegov
const DefaultSchema = "api_transferegov_discricionarias"

// FromEnv собирает строку подключения к Postgres из переменных окружения.
// DB_SCHEMA попадает в search_path, поэтому модели используют голые имена таблиц.
func FromEnv() string {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	pass := os.Getenv("DB_PASS")
	dbname := getEnv("DB_NAME", "transferegov")
	schema := getEnv("DB_SCHEMA", DefaultSchema)
	sslmode := getEnv("DB_SSLMODE", "disable")

	parts := []string{
		fmt.Sprintf("host=%s", host),
		fmt.Sprintf("port=%s", port),
		fmt.Sprintf("user=%s", user),
		fmt.Sprintf("dbname=%s", dbname),
		fmt.Sprintf("sslmode=%s", sslmode),
	}
	if pass != "" {
		parts = append(parts, fmt.Sprintf("password=%s", quote(pass)))
	}
	if schema != "" {
		parts = append(parts, fmt.Sprintf("search_path=%s", schema))
	}
	return strings.Join(parts, " ")
}

func quote(v string) string {
	if !strings.ContainsAny(v, " '\\") {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
