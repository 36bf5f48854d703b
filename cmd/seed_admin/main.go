// seed_admin crea el primer administrador; sin él nadie puede dar de alta empleados.
//
// Uso: go run ./cmd/seed_admin -username admin -password <secreto>
// La base se toma de la misma configuración que la API (DATABASE_URL, DB_*).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Nomina-api/internal/application/access"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/application/usecase"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Nomina-api/pkg/config"
	"github.com/jhoicas/Nomina-api/pkg/logger"
)

func main() {
	username := flag.String("username", "admin", "username del administrador")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "contraseña (o ADMIN_PASSWORD)")
	flag.Parse()

	if len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "la contraseña debe tener al menos 8 caracteres")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	uc := usecase.NewEmployeeUseCase(postgres.NewEmployeeRepository(pool), postgres.NewModuleRepository(pool))
	system := access.Actor{Username: "seed", Role: entity.RoleAdmin}
	out, err := uc.Create(ctx, system, dto.CreateEmployeeRequest{
		Username: *username,
		Password: *password,
		Role:     entity.RoleAdmin,
	})
	if errors.Is(err, domain.ErrDuplicate) {
		log.Info().Str("username", *username).Msg("el administrador ya existe, nada que hacer")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("crear administrador")
	}
	log.Info().Str("id", out.ID).Str("username", out.Username).Msg("administrador creado")
}
