// Configuración del servidor leída desde variables de entorno (con .env opcional).

package dto

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	DBHost            string
	DBPort            int
	DBUsuario         string
	DBClave           string
	DBNombre          string
	Puerto            int
	CarpetaVideos     string
	CarpetaMiniaturas string
	CarpetaPagos      string
}

func CargarConfig() *Config {
	return &Config{
		DBHost:    getEnv("DB_HOST", "127.0.0.1"),
		DBPort:    getEnvInt("DB_PORT", 3306),
		DBUsuario: getEnv("DB_USER", "root"),
		DBClave:   getEnv("DB_PASSWORD", ""),
		DBNombre:  getEnv("DB_NAME", "videorenta"),
		Puerto:    getEnvInt("PUERTO", 5000),

		CarpetaVideos:     getEnv("CARPETA_VIDEOS", "videos"),
		CarpetaMiniaturas: getEnv("CARPETA_MINIATURAS", "thumbnails"),
		CarpetaPagos:      getEnv("CARPETA_PAGOS", "pagos"),
	}
}

// DSN arma la cadena de conexión para el driver de MySQL.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUsuario, c.DBClave, c.DBHost, c.DBPort, c.DBNombre)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
