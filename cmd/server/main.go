package main

import (
	"log"
	"strings"

	"lanchonete-backend/internal/auth"
	"lanchonete-backend/internal/config"
	"lanchonete-backend/internal/database"
	"lanchonete-backend/internal/menu"
	"lanchonete-backend/internal/models"
	"lanchonete-backend/internal/orders"
	"lanchonete-backend/internal/reports"
	"lanchonete-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Erro inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro inesperado no servidor",
			})
		},
	})

	// CORS: origens separadas por vírgula na env
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Público
	api.Post("/login", auth.LoginHandler(cfg))

	// Protegido
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/me", auth.MeHandler())

	// Rotas de admin
	adminRoutes := protected.Group("")
	adminRoutes.Use(auth.RequirePapel(models.PapelAdmin))

	// Pessoas (funcionários e clientes)
	adminRoutes.Post("/pessoas", auth.CadastroPessoaHandler())
	adminRoutes.Get("/pessoas", auth.ListPessoasHandler())
	adminRoutes.Put("/pessoas/:id", auth.UpdatePessoaHandler())

	// Cardápio
	adminRoutes.Post("/lanches", menu.CreateLancheHandler())
	adminRoutes.Put("/lanches/:id", menu.UpdateLancheHandler())
	adminRoutes.Post("/bebidas", menu.CreateBebidaHandler())
	adminRoutes.Put("/bebidas/:id", menu.UpdateBebidaHandler())
	adminRoutes.Post("/categorias", menu.CreateCategoriaHandler())
	adminRoutes.Put("/categorias/:id", menu.UpdateCategoriaHandler())

	// Receitas (vínculo lanche x insumo)
	adminRoutes.Post("/lanche-insumos", menu.CreateLancheInsumoHandler())
	adminRoutes.Delete("/lanche-insumos", menu.DeleteLancheInsumoHandler())

	// Estoque
	adminRoutes.Post("/insumos", stock.CreateInsumoHandler())
	adminRoutes.Put("/insumos/:id", stock.UpdateInsumoHandler())
	adminRoutes.Post("/entradas", stock.CreateEntradaHandler())

	// Rotas comuns (qualquer papel autenticado)
	protected.Get("/lanches", menu.ListLanchesHandler())
	protected.Get("/bebidas", menu.ListBebidasHandler())
	protected.Get("/categorias", menu.ListCategoriasHandler())
	protected.Get("/lanche-insumos", menu.ListLancheInsumosHandler())
	protected.Get("/lanches/:id/receita", menu.GetReceitaLancheHandler())
	protected.Get("/insumos", stock.ListInsumosHandler())
	protected.Get("/insumos/:id", stock.GetInsumoHandler())
	protected.Get("/entradas", stock.ListEntradasHandler())

	// Pedidos (salão e cozinha)
	pedidoRoutes := protected.Group("/pedidos")
	pedidoRoutes.Use(auth.RequirePapel(models.PapelAdmin, models.PapelGarcom, models.PapelCozinha))
	pedidoRoutes.Post("/", orders.CreatePedidoHandler())
	pedidoRoutes.Get("/", orders.ListPedidosHandler())
	pedidoRoutes.Put("/mesa", orders.FecharMesaHandler())
	pedidoRoutes.Put("/:id", orders.UpdatePedidoStatusHandler())

	// Vendas
	vendaRoutes := protected.Group("/vendas")
	vendaRoutes.Use(auth.RequirePapel(models.PapelAdmin, models.PapelGarcom, models.PapelCozinha))
	vendaRoutes.Post("/", orders.CreateVendaHandler())
	vendaRoutes.Get("/", orders.ListVendasHandler())
	vendaRoutes.Get("/receitas", reports.VendasReceitasHandler())
	vendaRoutes.Get("/resumo-mensal", reports.ResumoMensalVendasHandler())
	vendaRoutes.Put("/:id", orders.UpdateVendaStatusHandler())

	log.Println("Servidor rodando na porta:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
