package api

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phpdave11/gofpdf"
	"videorenta/dto"
)

// Genera un recibo de pago en PDF para un cliente específico
func GenerarReciboPDF(c *gin.Context) {
	id := c.Param("id")

	var datos struct {
		Nombre        string
		Correo        string
		TipoVenta     sql.NullString
		DuracionRenta sql.NullString
		PagoRealizado bool
		Deuda         sql.NullFloat64
	}

	err := dto.DB.QueryRow(`
		SELECT nombre, correo, tipo_venta, duracion_renta, pago_realizado, deuda
		FROM clientes WHERE id = ?`, id).
		Scan(&datos.Nombre, &datos.Correo, &datos.TipoVenta, &datos.DuracionRenta, &datos.PagoRealizado, &datos.Deuda)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Cliente no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al generar el recibo: %v", err)})
		return
	}

	estado := "Pendiente"
	if datos.PagoRealizado {
		estado = "Pagado"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Recibo de Pago")

	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Cliente: %s (%s)", datos.Nombre, datos.Correo))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Estado del pago: %s", estado))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Deuda pendiente: %.2f", datos.Deuda.Float64))
	if datos.TipoVenta.Valid {
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("Tipo de venta: %s", datos.TipoVenta.String))
	}
	if datos.DuracionRenta.Valid {
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("Duración de renta: %s", datos.DuracionRenta.String))
	}

	c.Header("Content-Type", "application/pdf")
	_ = pdf.Output(c.Writer)
}
