package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Store     StoreConfig
	Inventory InventoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
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

// StoreConfig ubicación de los archivos JSON de respaldo.
type StoreConfig struct {
	Dir              string // directorio base de datos persistidas
	ProductsFile     string // nombre del archivo de productos
	TransactionsFile string // nombre del archivo de transacciones
}

// ProductsPath ruta completa del archivo de productos.
func (c StoreConfig) ProductsPath() string {
	return filepath.Join(c.Dir, c.ProductsFile)
}

// TransactionsPath ruta completa del archivo de transacciones.
func (c StoreConfig) TransactionsPath() string {
	return filepath.Join(c.Dir, c.TransactionsFile)
}

// InventoryConfig parámetros del negocio.
type InventoryConfig struct {
	LowStockThreshold int // umbral del reporte de stock bajo
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, LOG_LEVEL, DATA_DIR, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio actual
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-ledger"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			Dir:              getString(v, "DATA_DIR", "."),
			ProductsFile:     getString(v, "PRODUCTS_FILE", "products.json"),
			TransactionsFile: getString(v, "TRANSACTIONS_FILE", "transactions.json"),
		},
		Inventory: InventoryConfig{
			LowStockThreshold: getInt(v, "LOW_STOCK_THRESHOLD", 5),
		},
	}

	if cfg.Inventory.LowStockThreshold < 0 {
		return nil, fmt.Errorf("LOW_STOCK_THRESHOLD no puede ser negativo: %d", cfg.Inventory.LowStockThreshold)
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
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
