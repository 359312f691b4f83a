// Login contra las tres tablas de roles: admin, gerentes y clientes (en ese orden).

package api

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"videorenta/dto"
)

var secretKey = []byte("clave_secreta_super_segura")

// Orden de prioridad fijo de las tablas de roles.
var tablasRoles = []struct {
	Tabla string
	Rol   string
}{
	{"admin", "admin"},
	{"gerentes", "gerente"},
	{"clientes", "cliente"},
}

// POST /login
func LoginUsuario(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Faltan credenciales"})
		return
	}

	for _, t := range tablasRoles {
		var id int32
		query := fmt.Sprintf("SELECT id FROM %s WHERE correo = ? AND contrasena = ?", t.Tabla)
		err := dto.DB.QueryRow(query, input.Email, input.Password).Scan(&id)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al autenticar: %v", err)})
			return
		}

		token, err := generarToken(id, t.Rol)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": fmt.Sprintf("Error al autenticar: %v", err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "id": id, "role": t.Rol, "token": token})
		return
	}

	c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Credenciales inválidas"})
}

func generarToken(id int32, rol string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   id,
		"role": rol,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(secretKey)
}
