package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"gin-auction-service/internal/handler/middleware"
	"gin-auction-service/internal/pkg/config"
	"gin-auction-service/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// migrate brings the database to the state declared in the schema file. It
// shells out to the atlas binary, which must be on PATH.
func main() {
	var (
		schemaFile = flag.String("schema", "migrations/001_initial_schema.sql", "desired schema (SQL)")
		devURL     = flag.String("dev-url", "docker://postgres/17/dev", "scratch database atlas uses to compute the diff")
		dryRun     = flag.Bool("dry-run", false, "print the planned statements without applying them")
		timeout    = flag.Duration("timeout", 2*time.Minute, "overall timeout")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	applied, err := apply(ctx, cfg.DB.BuildDSN(), *schemaFile, *devURL, *dryRun)
	if err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err.Error())
		os.Exit(1)
	}
	for _, stmt := range applied {
		logger.Info("statement", "sql", stmt, "dry_run", *dryRun)
	}
	logger.Info("マイグレーションが完了しました", "statements", len(applied), "dry_run", *dryRun)
}

func apply(ctx context.Context, dsn, schemaFile, devURL string, dryRun bool) ([]string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errs.Wrap(err, "failed to resolve working directory")
	}
	client, err := atlasexec.NewClient(wd, "atlas")
	if err != nil {
		return nil, errs.Wrap(err, "failed to initialize atlas client")
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         dsn,
		To:          "file://" + schemaFile,
		DevURL:      devURL,
		DryRun:      dryRun,
		AutoApprove: true,
	})
	if err != nil {
		return nil, errs.Wrap(err, "schema apply failed")
	}
	if dryRun {
		return res.Changes.Pending, nil
	}
	return res.Changes.Applied, nil
}
