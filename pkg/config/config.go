package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Auth AuthConfig
	Sim  SimConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env     string // development, staging, production
	Name    string
	Version string // reportada por GET /health
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthConfig credenciales de prueba. No son credenciales reales: existen para
// que el agente de pruebas pueda ejercitar de forma determinista tanto la ruta
// de éxito como la de 401.
type AuthConfig struct {
	APIKey      string // valor esperado en el header X-API-Key
	BearerToken string // valor esperado tras "Bearer " en Authorization
}

// SimConfig parámetros de los endpoints de falla simulada. Sin aleatoriedad:
// el mismo endpoint responde siempre igual.
type SimConfig struct {
	TimeoutDelay time.Duration // pausa de GET /error/timeout
	RetryAfter   string        // valor del header Retry-After en GET /error/rate-limit
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, AUTH_API_KEY, SIM_TIMEOUT_SECONDS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:     getString(v, "APP_ENV", "development"),
			Name:    getString(v, "APP_NAME", "sample-api"),
			Version: getString(v, "APP_VERSION", "1.0.0"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8000),
		},
		Auth: AuthConfig{
			APIKey:      getString(v, "AUTH_API_KEY", "valid_api_key"),
			BearerToken: getString(v, "AUTH_BEARER_TOKEN", "valid_token"),
		},
		Sim: SimConfig{
			TimeoutDelay: time.Duration(getInt(v, "SIM_TIMEOUT_SECONDS", 30)) * time.Second,
			RetryAfter:   getString(v, "SIM_RETRY_AFTER_SECONDS", "60"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
