package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"videorenta/dto"
)

// Carpetas de almacenamiento, asignadas al inicializar el servidor.
var (
	carpetaVideos     string
	carpetaMiniaturas string
	carpetaPagos      string
)

func InicializarServidor(cfg *dto.Config) *gin.Engine {
	carpetaVideos = cfg.CarpetaVideos
	carpetaMiniaturas = cfg.CarpetaMiniaturas
	carpetaPagos = cfg.CarpetaPagos

	router := gin.Default()
	router.MaxMultipartMemory = 100 << 20 // 100 MB para videos grandes

	// Middleware CORS para el frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	// CLIENTES
	router.POST("/clientes", AgregarCliente)
	router.GET("/clientes", ListarClientes)
	router.PUT("/clientes/:id", ActualizarCliente)
	router.DELETE("/clientes/:id", EliminarCliente)
	router.PUT("/clientes/:id/pago", ConfirmarPago)
	router.GET("/clientes/:id/recibo", GenerarReciboPDF)

	// VIDEOS Y MINIATURAS
	router.POST("/upload", SubirVideo)
	router.GET("/videos", ListarVideos)
	router.GET("/videos/first", PrimerVideo)
	router.GET("/videos/:filename", ServirVideo)
	router.GET("/thumbnails/:filename", ServirMiniatura)

	// PAGOS (bouchers)
	router.POST("/subir_boucher", SubirBoucher)
	router.GET("/pagos/:filename", ServirBoucher)

	// AUTENTICACIÓN Y ENCUESTAS
	router.POST("/login", LoginUsuario)
	router.GET("/preguntas", ListarPreguntas)
	router.GET("/respuestas/:id_pregunta", ListarRespuestas)

	// Página no encontrada
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "La página que buscas no existe"})
	})

	return router
}
