// Entrega de archivos almacenados (videos, miniaturas y bouchers).

package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// GET /videos/:filename
func ServirVideo(c *gin.Context) {
	servirArchivo(c, carpetaVideos, "Error al obtener el video")
}

// GET /thumbnails/:filename
func ServirMiniatura(c *gin.Context) {
	servirArchivo(c, carpetaMiniaturas, "Error al obtener la miniatura")
}

// GET /pagos/:filename
func ServirBoucher(c *gin.Context) {
	servirArchivo(c, carpetaPagos, "Error al obtener el boucher")
}

func servirArchivo(c *gin.Context, carpeta, mensaje string) {
	filename := c.Param("filename")

	ruta, ok := rutaSegura(carpeta, filename)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": mensaje})
		return
	}

	info, err := os.Stat(ruta)
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": mensaje})
		return
	}

	c.File(ruta)
}

// rutaSegura resuelve el nombre pedido dentro de la carpeta y rechaza
// cualquier ruta que escape de ella.
func rutaSegura(carpeta, filename string) (string, bool) {
	base, err := filepath.Abs(carpeta)
	if err != nil {
		return "", false
	}
	abs, err := filepath.Abs(filepath.Join(carpeta, filename))
	if err != nil {
		return "", false
	}
	if !strings.HasPrefix(abs, base+string(filepath.Separator)) {
		return "", false
	}
	return abs, true
}
