// Definición de estructuras de datos principales: Cliente, Video, Pregunta, Respuesta.

package dto

import (
	"database/sql"
)

type Cliente struct {
	ID            int32           `json:"id" db:"id"`
	Nombre        string          `json:"nombre" db:"nombre"`
	Correo        string          `json:"correo" db:"correo"`
	Contrasena    string          `json:"-" db:"contrasena"`
	TipoVenta     sql.NullString  `json:"tipo_venta" db:"tipo_venta"`
	DuracionRenta sql.NullString  `json:"duracion_renta" db:"duracion_renta"`
	PagoRealizado bool            `json:"pago_realizado" db:"pago_realizado"`
	BoucherURL    sql.NullString  `json:"boucher_url" db:"boucher_url"`
	Deuda         sql.NullFloat64 `json:"deuda" db:"deuda"`
}

type Video struct {
	ID        int32  `json:"id" db:"id"`
	Nombre    string `json:"nombre" db:"nombre"`
	Ruta      string `json:"ruta" db:"ruta"`
	Miniatura string `json:"miniatura" db:"miniatura"`
}

type Pregunta struct {
	ID       int32  `json:"id" db:"id"`
	Pregunta string `json:"pregunta" db:"pregunta"`
}

type Respuesta struct {
	Respuesta string `json:"respuesta" db:"respuesta"`
	Cantidad  int32  `json:"cantidad" db:"cantidad"`
}
