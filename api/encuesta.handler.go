// Datos de encuestas: preguntas y conteo de respuestas.

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"videorenta/dto"
)

// GET /preguntas
func ListarPreguntas(c *gin.Context) {
	preguntas := []dto.Pregunta{}
	err := dto.DB.Select(&preguntas, "SELECT id, pregunta FROM datos_pregunta")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al obtener las preguntas: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "preguntas": preguntas})
}

// GET /respuestas/:id_pregunta
func ListarRespuestas(c *gin.Context) {
	idPregunta, err := strconv.Atoi(c.Param("id_pregunta"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "La página que buscas no existe"})
		return
	}

	respuestas := []dto.Respuesta{}
	err = dto.DB.Select(&respuestas, "SELECT respuesta, cantidad FROM datos_respuestas WHERE id_pregunta = ?", idPregunta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al obtener las respuestas: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "respuestas": respuestas})
}
