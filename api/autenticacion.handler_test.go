package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v4"
)

// Si el correo existe en admin y también en clientes, gana admin.
func TestLoginPrioridadAdmin(t *testing.T) {
	router, mock := prepararServidor(t)

	mock.ExpectQuery("SELECT id FROM admin WHERE correo = ? AND contrasena = ?").
		WithArgs("jefe@mail.com", "1234").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	w := peticionJSON(t, router, http.MethodPost, "/login", `{"email":"jefe@mail.com","password":"1234"}`)
	verificarEstado(t, w, http.StatusOK)

	var resp struct {
		Status string `json:"status"`
		ID     int32  `json:"id"`
		Role   string `json:"role"`
		Token  string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}
	if resp.Status != "success" || resp.ID != 5 || resp.Role != "admin" {
		t.Fatalf("respuesta inesperada: %s", w.Body.String())
	}

	token, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token inválido: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["role"] != "admin" || claims["id"].(float64) != 5 {
		t.Errorf("claims inesperados: %v", claims)
	}
	verificarExpectativas(t, mock)
}

func TestLoginGerente(t *testing.T) {
	router, mock := prepararServidor(t)

	mock.ExpectQuery("SELECT id FROM admin WHERE correo = ? AND contrasena = ?").
		WithArgs("g@mail.com", "abcd").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT id FROM gerentes WHERE correo = ? AND contrasena = ?").
		WithArgs("g@mail.com", "abcd").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	w := peticionJSON(t, router, http.MethodPost, "/login", `{"email":"g@mail.com","password":"abcd"}`)
	verificarEstado(t, w, http.StatusOK)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}
	if resp["role"] != "gerente" {
		t.Errorf("role = %v", resp["role"])
	}
	verificarExpectativas(t, mock)
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	router, mock := prepararServidor(t)

	for _, tabla := range []string{"admin", "gerentes", "clientes"} {
		mock.ExpectQuery("SELECT id FROM "+tabla+" WHERE correo = ? AND contrasena = ?").
			WithArgs("nadie@mail.com", "mal").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
	}

	w := peticionJSON(t, router, http.MethodPost, "/login", `{"email":"nadie@mail.com","password":"mal"}`)
	verificarEstado(t, w, http.StatusUnauthorized)
	verificarExpectativas(t, mock)
}

func TestLoginFaltanCredenciales(t *testing.T) {
	router, mock := prepararServidor(t)

	w := peticionJSON(t, router, http.MethodPost, "/login", `{"email":"solo@mail.com"}`)
	verificarEstado(t, w, http.StatusBadRequest)
	verificarExpectativas(t, mock)
}
