// Manejador de clientes (registro, listado, actualización, confirmación de pago).

package api

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"videorenta/dto"
)

type ClienteInput struct {
	Nombre        string  `json:"nombre"`
	Correo        string  `json:"correo"`
	Contrasena    string  `json:"contrasena"`
	TipoVenta     *string `json:"tipo_venta"`
	DuracionRenta *string `json:"duracion_renta"`
}

// POST /clientes
func AgregarCliente(c *gin.Context) {
	var input ClienteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Faltan datos"})
		return
	}

	if input.Nombre == "" || input.Correo == "" || input.Contrasena == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Faltan datos"})
		return
	}

	_, err := dto.DB.Exec("INSERT INTO clientes (nombre, correo, contrasena, tipo_venta, duracion_renta) VALUES (?, ?, ?, ?, ?)",
		input.Nombre, input.Correo, input.Contrasena, input.TipoVenta, input.DuracionRenta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al agregar cliente: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Cliente agregado correctamente"})
}

// GET /clientes
func ListarClientes(c *gin.Context) {
	rows, err := dto.DB.Query("SELECT id, nombre, correo, tipo_venta, duracion_renta, pago_realizado, boucher_url FROM clientes")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al obtener los clientes: %v", err)})
		return
	}
	defer rows.Close()

	clientes := []gin.H{}
	for rows.Next() {
		var (
			id            int32
			nombre        string
			correo        string
			tipoVenta     sql.NullString
			duracionRenta sql.NullString
			pagoRealizado bool
			boucherURL    sql.NullString
		)

		if err := rows.Scan(&id, &nombre, &correo, &tipoVenta, &duracionRenta, &pagoRealizado, &boucherURL); err != nil {
			continue
		}

		clientes = append(clientes, gin.H{
			"id":             id,
			"nombre":         nombre,
			"correo":         correo,
			"tipo_venta":     tipoVenta.String,
			"duracion_renta": duracionRenta.String,
			"pago_realizado": pagoRealizado,
			"boucher_url":    boucherURL.String,
		})
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "clientes": clientes})
}

// PUT /clientes/:id
// Un id desconocido no afecta filas pero igual se reporta éxito.
func ActualizarCliente(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Nombre        string `json:"nombre"`
		Correo        string `json:"correo"`
		PagoRealizado bool   `json:"pago_realizado"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Datos inválidos"})
		return
	}

	_, err := dto.DB.Exec("UPDATE clientes SET nombre = ?, correo = ?, pago_realizado = ? WHERE id = ?",
		input.Nombre, input.Correo, input.PagoRealizado, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al actualizar cliente: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Cliente actualizado correctamente"})
}

// DELETE /clientes/:id
func EliminarCliente(c *gin.Context) {
	id := c.Param("id")

	_, err := dto.DB.Exec("DELETE FROM clientes WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al eliminar cliente: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Cliente eliminado correctamente"})
}

// PUT /clientes/:id/pago
func ConfirmarPago(c *gin.Context) {
	id := c.Param("id")

	_, err := dto.DB.Exec("UPDATE clientes SET pago_realizado = 1, deuda = 0 WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al confirmar el pago: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Pago confirmado correctamente"})
}
