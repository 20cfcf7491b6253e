package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/flowHater/user-seeder/pkg/config"
	"github.com/flowHater/user-seeder/pkg/logger"
	"github.com/flowHater/user-seeder/pkg/repository"
	"github.com/flowHater/user-seeder/pkg/seeder"
	"github.com/flowHater/user-seeder/pkg/user"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	mode := flag.String("mode", "", "write mode: insert or upsert (overrides seed.mode)")
	ensureIndex := flag.Bool("ensure-index", false, "create a unique index on puid before writing")
	verify := flag.Bool("verify", false, "read the users back after writing")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("An error occured during configuration loading: %s", err)
	}
	cfg.Override(*mode, *ensureIndex)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("An error occured during configuration loading: %s", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, *verify); err != nil {
		stop()
		log.WithError(err).Fatal("seeding failed")
	}
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger, verify bool) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	log.WithFields(logrus.Fields{
		"uri":        config.RedactURI(cfg.Mongo.URI),
		"database":   cfg.Mongo.Database,
		"collection": cfg.Mongo.Collection,
	}).Info("connecting")

	client, err := repository.Connect(ctx, repository.ConnectOptions{
		URI:            cfg.Mongo.URI,
		CAFile:         cfg.Mongo.CAFile,
		AppName:        cfg.Mongo.AppName,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("disconnect failed")
		}
	}()

	s := seeder.New(
		repository.New(repository.WithClient(client)),
		seeder.WithTarget(cfg.Mongo.Database, cfg.Mongo.Collection),
		seeder.WithMode(cfg.Seed.Mode),
		seeder.WithEnsureIndex(cfg.Seed.EnsureIndex),
		seeder.WithLogger(log),
	)

	us := user.Fixtures()
	res, err := s.Seed(ctx, us)
	if err != nil {
		return err
	}

	if verify {
		if err := s.Verify(ctx, us); err != nil {
			return err
		}
	}

	fmt.Println(res)

	return nil
}
