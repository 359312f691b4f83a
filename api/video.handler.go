// Manejador de videos: subida con generación de miniatura, listado y primer video.

package api

import (
	"database/sql"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"videorenta/dto"
)

// POST /upload
// Si la miniatura falla, el archivo de video queda en disco y no se inserta la fila.
func SubirVideo(c *gin.Context) {
	file, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "No se envió ningún archivo"})
		return
	}

	nombre := filepath.Base(file.Filename)
	rutaVideo := filepath.Join(carpetaVideos, nombre)

	if err := c.SaveUploadedFile(file, rutaVideo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al guardar el video o generar la miniatura: %v", err)})
		return
	}
	fmt.Printf("Archivo guardado en %s\n", rutaVideo)

	// Generar una miniatura con el primer fotograma
	base := strings.TrimSuffix(nombre, filepath.Ext(nombre))
	rutaMiniatura := filepath.Join(carpetaMiniaturas, base+".png")
	if err := GenerarMiniatura(rutaVideo, rutaMiniatura); err != nil {
		fmt.Println("Error al generar la miniatura:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Error al abrir el video para generar la miniatura"})
		return
	}
	fmt.Printf("Miniatura generada en %s\n", rutaMiniatura)

	_, err = dto.DB.Exec("INSERT INTO videos (nombre, ruta, miniatura) VALUES (?, ?, ?)",
		nombre, "/videos/"+nombre, "/thumbnails/"+base+".png")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al guardar el video o generar la miniatura: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Video y miniatura subidos correctamente"})
}

// GET /videos
func ListarVideos(c *gin.Context) {
	videos := []dto.Video{}
	err := dto.DB.Select(&videos, "SELECT id, nombre, ruta FROM videos")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al obtener los videos: %v", err)})
		return
	}

	lista := []gin.H{}
	for _, v := range videos {
		lista = append(lista, gin.H{"id": v.ID, "nombre": v.Nombre, "ruta": v.Ruta})
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "videos": lista})
}

// GET /videos/first
func PrimerVideo(c *gin.Context) {
	var ruta string
	err := dto.DB.QueryRow("SELECT ruta FROM videos ORDER BY id ASC LIMIT 1").Scan(&ruta)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "No hay videos disponibles"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al obtener el primer video: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "video": gin.H{"ruta": ruta}})
}
