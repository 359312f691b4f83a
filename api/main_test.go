package api

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"videorenta/dto"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// prepararServidor deja un router completo con la base de datos simulada y
// carpetas temporales de almacenamiento.
func prepararServidor(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	dto.DB = sqlx.NewDb(db, "sqlmock")

	cfg := &dto.Config{
		CarpetaVideos:     t.TempDir(),
		CarpetaMiniaturas: t.TempDir(),
		CarpetaPagos:      t.TempDir(),
	}
	return InicializarServidor(cfg), mock
}

func hacerPeticion(t *testing.T, router *gin.Engine, metodo, ruta string, cuerpo *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	if cuerpo == nil {
		cuerpo = &bytes.Buffer{}
	}
	req := httptest.NewRequest(metodo, ruta, cuerpo)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func peticionJSON(t *testing.T, router *gin.Engine, metodo, ruta, cuerpo string) *httptest.ResponseRecorder {
	t.Helper()
	return hacerPeticion(t, router, metodo, ruta, bytes.NewBufferString(cuerpo), "application/json")
}

// cuerpoMultipart arma un formulario con un archivo y campos de texto extra.
func cuerpoMultipart(t *testing.T, campoArchivo, nombreArchivo string, contenido []byte, campos map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	if campoArchivo != "" {
		parte, err := w.CreateFormFile(campoArchivo, nombreArchivo)
		if err != nil {
			t.Fatalf("multipart: %v", err)
		}
		if _, err := parte.Write(contenido); err != nil {
			t.Fatalf("multipart: %v", err)
		}
	}
	for k, v := range campos {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("multipart: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("multipart: %v", err)
	}
	return buf, w.FormDataContentType()
}

func verificarEstado(t *testing.T, w *httptest.ResponseRecorder, esperado int) {
	t.Helper()
	if w.Code != esperado {
		t.Fatalf("código HTTP = %d, se esperaba %d (cuerpo: %s)", w.Code, esperado, w.Body.String())
	}
}

func verificarExpectativas(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectativas de SQL sin cumplir: %v", err)
	}
}
