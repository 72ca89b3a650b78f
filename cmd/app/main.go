package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"brewery/cmd"
	httpadapter "brewery/internal/adapters/in/http"
	"brewery/internal/adapters/out/postgres/beerorderrepo"
	"brewery/internal/adapters/out/postgres/beerrepo"
	"brewery/internal/adapters/out/postgres/customerrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	connectionString, err := makeConnectionString(
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode)
	if err != nil {
		log.Fatalf("connection string error: %v", err)
	}

	gormDB := mustGormOpen(connectionString)
	mustAutoMigrate(gormDB)

	compositionRoot := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	e := echo.New()
	httpadapter.NewServer(compositionRoot.NewHTTPHandlers(), logger).RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("error loading .env file: %v", err)
	}
	return os.Getenv(key)
}

func makeConnectionString(host string, port string, user string,
	password string, dbName string, sslMode string) (string, error) {
	if host == "" {
		return "", errors.New("db host is required")
	}
	if port == "" {
		return "", errors.New("db port is required")
	}
	if user == "" {
		return "", errors.New("db user is required")
	}
	if password == "" {
		return "", errors.New("db password is required")
	}
	if dbName == "" {
		return "", errors.New("db name is required")
	}
	if sslMode == "" {
		return "", errors.New("db sslmode is required")
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode), nil
}

func mustGormOpen(connectionString string) *gorm.DB {
	pgGorm, err := gorm.Open(postgres.New(
		postgres.Config{
			DSN:                  connectionString,
			PreferSimpleProtocol: true,
		},
	), &gorm.Config{})
	if err != nil {
		log.Fatalf("connection error: %v", err)
	}
	return pgGorm
}

func mustAutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&beerrepo.BeerDTO{},
		&customerrepo.CustomerDTO{},
		&beerorderrepo.BeerOrderDTO{},
		&beerorderrepo.BeerOrderLineDTO{},
	)
	if err != nil {
		log.Fatalf("migration error: %v", err)
	}
}
