// Archivo principal para iniciar la conexión a la base de datos y el servidor.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"videorenta/api"
	"videorenta/dto"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Print("No se encontró archivo .env, se usan valores por defecto")
	}

	cfg := dto.CargarConfig()
	dto.ConectarBaseDatos(cfg)

	// Carpetas de almacenamiento para videos, miniaturas y bouchers
	for _, carpeta := range []string{cfg.CarpetaVideos, cfg.CarpetaMiniaturas, cfg.CarpetaPagos} {
		if err := os.MkdirAll(carpeta, 0o755); err != nil {
			log.Fatal("No se pudo crear la carpeta ", carpeta, ": ", err)
		}
	}

	router := api.InicializarServidor(cfg)
	router.Run(fmt.Sprintf(":%d", cfg.Puerto))
}
