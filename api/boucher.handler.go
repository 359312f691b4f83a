// Subida de bouchers (comprobantes de pago) y su registro en el cliente.

package api

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"videorenta/dto"
)

// POST /subir_boucher
func SubirBoucher(c *gin.Context) {
	file, err := c.FormFile("file")
	clienteIDStr := c.PostForm("cliente_id")
	if err != nil || clienteIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Faltan datos"})
		return
	}

	fmt.Printf("File: %s, Cliente ID: %s\n", file.Filename, clienteIDStr)

	clienteID, err := strconv.Atoi(clienteIDStr)
	if err != nil || clienteID < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Cliente ID no es un número válido"})
		return
	}

	// Guardar la imagen en el servidor
	filename := fmt.Sprintf("%d_%s", clienteID, filepath.Base(file.Filename))
	ruta := filepath.Join(carpetaPagos, filename)
	if err := c.SaveUploadedFile(file, ruta); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al subir boucher: %v", err)})
		return
	}

	// Validación de la imagen; una falla de decodificación solo se registra
	validarImagen(ruta)

	boucherURL := fmt.Sprintf("/%s/%s", carpetaPagos, filename)

	_, err = dto.DB.Exec("UPDATE clientes SET boucher_url = ? WHERE id = ?", boucherURL, clienteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al subir boucher: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Boucher subido correctamente", "boucher_url": boucherURL})
}

func validarImagen(ruta string) {
	f, err := os.Open(ruta)
	if err != nil {
		fmt.Println("No se pudo abrir el boucher para validar:", err)
		return
	}
	defer f.Close()

	if _, _, err := image.Decode(f); err != nil {
		fmt.Println("El boucher no se pudo decodificar como imagen:", err)
	}
}
