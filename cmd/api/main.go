package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/academiaskate/academia-api/internal/application/auth"
	"github.com/academiaskate/academia-api/internal/application/usecase"
	"github.com/academiaskate/academia-api/internal/infrastructure/mail"
	infrapdf "github.com/academiaskate/academia-api/internal/infrastructure/pdf"
	"github.com/academiaskate/academia-api/internal/infrastructure/postgres"
	httpRouter "github.com/academiaskate/academia-api/internal/interfaces/http"
	"github.com/academiaskate/academia-api/internal/worker"
	"github.com/academiaskate/academia-api/pkg/config"
	"github.com/academiaskate/academia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	rolRepo := postgres.NewRolRepository(pool)
	administradorRepo := postgres.NewAdministradorRepository(pool)
	instructorRepo := postgres.NewInstructorRepository(pool)
	estudianteRepo := postgres.NewEstudianteRepository(pool)
	claseRepo := postgres.NewClaseRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	matriculaRepo := postgres.NewMatriculaRepository(pool)
	eventoRepo := postgres.NewEventoRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	envioRepo := postgres.NewEnvioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := mail.NewMailer(cfg.SMTP)
	reciboGenerator := infrapdf.NewMarotoReciboGenerator(cfg.App.Name)

	authUC := auth.NewAuthUseCase(usuarioRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.BaseURL, log)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	rolUC := usecase.NewRolUseCase(rolRepo)
	administradorUC := usecase.NewAdministradorUseCase(txRunner, administradorRepo)
	instructorUC := usecase.NewInstructorUseCase(txRunner, instructorRepo)
	estudianteUC := usecase.NewEstudianteUseCase(txRunner, estudianteRepo)
	matriculaUC := usecase.NewMatriculaUseCase(txRunner, matriculaRepo)
	claseUC := usecase.NewClaseUseCase(claseRepo, instructorRepo)
	planUC := usecase.NewPlanUseCase(planRepo)
	eventoUC := usecase.NewEventoUseCase(eventoRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	ventaUC := usecase.NewVentaUseCase(txRunner, ventaRepo, clienteRepo, reciboGenerator, mailer)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	compraUC := usecase.NewCompraUseCase(txRunner, proveedorRepo, compraRepo)
	envioUC := usecase.NewEnvioUseCase(envioRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs. El middleware entra en
	// pánico si el archivo no existe, así que solo se monta cuando está generado.
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado; Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		UsuarioUC:       usuarioUC,
		RolUC:           rolUC,
		AdministradorUC: administradorUC,
		InstructorUC:    instructorUC,
		EstudianteUC:    estudianteUC,
		MatriculaUC:     matriculaUC,
		ClaseUC:         claseUC,
		PlanUC:          planUC,
		EventoUC:        eventoUC,
		ProductoUC:      productoUC,
		VentaUC:         ventaUC,
		ClienteUC:       clienteUC,
		ProveedorUC:     proveedorUC,
		CompraUC:        compraUC,
		EnvioUC:         envioUC,
		Resolutor:       rolRepo,
		Estudiantes:     estudianteRepo,
		JWTSecret:       cfg.JWT.Secret,
	})

	// Worker de envíos masivos: un solo despachador sobre la cola en BD.
	workerCtx, stopWorker := context.WithCancel(ctx)
	envioWorker := worker.NewEnvioWorker(envioRepo, mailer, log)
	go envioWorker.Run(workerCtx)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	stopWorker()

	log.Info().Msg("aplicación detenida")
}
