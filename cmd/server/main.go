package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/samira-travel/backoffice/conf"
	"github.com/samira-travel/backoffice/docstore"
	"github.com/samira-travel/backoffice/http"
	"github.com/samira-travel/backoffice/jamaah"
	jamaahhttp "github.com/samira-travel/backoffice/jamaah/http"
	"github.com/samira-travel/backoffice/s3files"
	"github.com/samira-travel/backoffice/user"
	userhttp "github.com/samira-travel/backoffice/user/http"
)

func main() {
	_ = godotenv.Load()

	cfg, err := conf.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	jwtKey, err := conf.JwtKeyFromEnv()
	if err != nil {
		slog.Error("failed to read JWT key", "error", err)
		os.Exit(1)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AwsRegion))
	if err != nil {
		slog.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}

	store := docstore.New(dynamodb.NewFromConfig(awsCfg))
	docsBucket := s3files.NewBucket(awsCfg, cfg.DocsBucket)

	var notifier jamaah.EventNotifier
	if cfg.EventQueue != "" {
		notifier = jamaah.NewSqsNotifier(sqs.NewFromConfig(awsCfg), cfg.EventQueue)
	}

	jamaahSrvc := jamaah.NewService(
		jamaah.NewDdbSubmissionStore(store, cfg.SubmTable),
		docsBucket,
		notifier,
	)
	userSrvc := user.NewUserSrvc(
		user.NewDynamoDbUserTable(dynamodb.NewFromConfig(awsCfg), cfg.UserTable))

	httpServer := http.NewHttpServer(
		jamaahhttp.NewJamaahHttpHandler(jamaahSrvc),
		userhttp.NewUserHttpHandler(userSrvc, jwtKey),
		jwtKey,
		cfg.CorsOrigins,
	)

	log.Printf("Starting server on %s", cfg.ListenAddr)
	err = httpServer.Start(cfg.ListenAddr)
	log.Printf("Server stopped with error: %v", err)
}
