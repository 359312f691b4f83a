// Configuración de conexión a la base de datos.

package dto

import (
	"log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

var DB *sqlx.DB

func ConectarBaseDatos(cfg *Config) {
	var err error
	DB, err = sqlx.Connect("mysql", cfg.DSN())
	if err != nil {
		log.Fatal("Error al conectar la base de datos:", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)

	log.Println("Conexión a la base de datos establecida")
}
