package main

import (
	"context"
	"log"
	"time"

	"chapati/internal/config"
	"chapati/internal/handler"
	"chapati/internal/infra/db"
	"chapati/internal/infra/notify"
	infraRepo "chapati/internal/infra/repository"
	repo "chapati/internal/repository"
	"chapati/internal/server"
	"chapati/internal/usecase"
	"chapati/internal/validator"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(role string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"role": role,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	//Store生成（file or postgres）
	var store repo.OrderStore
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		gormDB, err := db.Connect(cfg)
		if err != nil {
			log.Fatalf("db connect: %v", err)
		}
		store, err = infraRepo.NewGormOrderStore(gormDB)
		if err != nil {
			log.Fatalf("db migrate: %v", err)
		}
	default:
		store = infraRepo.NewFileOrderStore(cfg.OrdersFile)
	}

	//壊れた保存データは起動時に検知して落とす
	if _, err := store.Load(context.Background()); err != nil {
		log.Fatalf("order store: %v", err)
	}

	//usecaseに渡す部品
	clock := &realClock{}
	hub := notify.NewHub()
	verifier := usecase.NewBcryptPasswordVerifier()
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}

	//Usecase生成
	orderUC := usecase.NewOrderUsecase(store, hub, validator.NewOrderValidator(), clock, cfg.UnitPrice, cfg.Retention)
	loginUC := usecase.NewAdminLoginUsecase(cfg.AdminPasswordHash, verifier, issuer, clock)

	//Handler生成
	orderH := handler.NewOrderHandler(orderUC, cfg)
	adminH := handler.NewAdminOrderHandler(orderUC, hub)
	authH := handler.NewAuthHandler(loginUC)

	//Server起動
	e := server.New(cfg, orderH, adminH, authH)
	if err := server.Start(e, ":"+cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
