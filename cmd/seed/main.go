package main

import (
	"errors"
	"os"

	"go-farmpet-api/internal/config"
	"go-farmpet-api/internal/logger"
	"go-farmpet-api/internal/repository"
	"go-farmpet-api/internal/service"
	"go-farmpet-api/pkg/database"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var medications = []service.MedicationRequest{
	{Name: "Amoxicilina 250mg", Description: "Antibiotico de amplo espectro", Price: decimal.RequireFromString("45.90"), Stock: 40, Prescription: "Receita simples"},
	{Name: "Vermifugo Canino", Description: "Vermifugo oral para caes", Price: decimal.RequireFromString("32.50"), Stock: 60},
	{Name: "Antipulgas Felino", Description: "Pipeta antipulgas para gatos", Price: decimal.RequireFromString("58.00"), Stock: 25},
	{Name: "Meloxicam 0.5mg", Description: "Anti-inflamatorio", Price: decimal.RequireFromString("27.80"), Stock: 8, Prescription: "Receita controlada"},
}

var clients = []struct {
	client service.ClientRequest
	pets   []service.PetRequest
}{
	{
		client: service.ClientRequest{Name: "Ana Souza", Address: "Rua das Flores, 120", CPF: "123.456.789-09", Phone: "11988887777"},
		pets: []service.PetRequest{
			{Name: "Thor", Species: "Cachorro", Breed: "Labrador"},
			{Name: "Mimi", Species: "Gato", Breed: "Siames"},
		},
	},
	{
		client: service.ClientRequest{Name: "Carlos Lima", Address: "Av. Brasil, 455", CPF: "987.654.321-00", Phone: "21977776666"},
		pets: []service.PetRequest{
			{Name: "Bidu", Species: "Cachorro", Breed: "Vira-lata"},
		},
	},
}

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("failed to load config")
	}
	log := logger.New(cfg)

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.Database, logger.NewGormLogger(log, cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	clientRepo := repository.NewClientRepo(db)
	catalog := service.NewCatalogService(repository.NewMedicationRepo(db), clientRepo, repository.NewPetRepo(db))

	// 3. Medications
	for i := range medications {
		req := medications[i]
		m, err := catalog.CreateMedication(&req)
		switch {
		case errors.Is(err, service.ErrConflict):
			log.Info().Str("name", req.Name).Msg("medication already seeded")
		case err != nil:
			log.Fatal().Err(err).Str("name", req.Name).Msg("failed to seed medication")
		default:
			log.Info().Str("id", m.ID.String()).Str("name", m.Name).Int("stock", m.Stock).Msg("medication created")
		}
	}

	// 4. Clients and their pets
	for _, entry := range clients {
		req := entry.client
		c, err := catalog.CreateClient(&req)
		if errors.Is(err, service.ErrConflict) {
			existing, findErr := clientRepo.FindByCPF(req.CPF)
			if findErr != nil {
				log.Fatal().Err(findErr).Str("cpf", req.CPF).Msg("failed to load seeded client")
			}
			c = existing
			log.Info().Str("cpf", req.CPF).Msg("client already seeded")
		} else if err != nil {
			log.Fatal().Err(err).Str("cpf", req.CPF).Msg("failed to seed client")
		}

		for _, pet := range entry.pets {
			pet.ClientID = c.ID
			pet.OwnerAddress = c.Address
			p, err := catalog.CreatePet(&pet)
			switch {
			case errors.Is(err, service.ErrConflict):
				log.Info().Str("pet", pet.Name).Msg("pet already seeded")
			case err != nil:
				log.Fatal().Err(err).Str("pet", pet.Name).Msg("failed to seed pet")
			default:
				log.Info().Str("id", p.ID.String()).Str("pet", p.Name).Str("client", c.Name).Msg("pet created")
			}
		}
	}

	log.Info().Msg("seed finished")
}
