// Command abwconvert batch-converts a glob of AbiWord documents into
// structural trace files, recording each attempt in a history database.
// A content-hash-keyed cache marks converted inputs: a file whose hash is
// cached and whose trace file exists is skipped entirely; every other file
// runs both parsing passes, and the cache entry it records carries no
// pass-one results.
package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/pgavlin/abiword-kit/abw"
	"github.com/pgavlin/abiword-kit/internal/cache"
	"github.com/pgavlin/abiword-kit/internal/config"
	"github.com/pgavlin/abiword-kit/internal/dump"
	"github.com/pgavlin/abiword-kit/internal/history"
)

func main() {
	cmd := &cli.Command{
		Name:      "abwconvert",
		Usage:     "batch-convert a glob of AbiWord documents",
		ArgsUsage: "<glob>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a TOML configuration file"},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "abwconvert:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	pattern := cmd.Args().First()
	if pattern == "" {
		return fmt.Errorf("missing input glob")
	}
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files matched %s", pattern)
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}

	geomCache, err := cache.Open(cfg.CachePath)
	if err != nil {
		return err
	}
	defer geomCache.Close()

	hist, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer hist.Close()

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}

	for _, path := range paths {
		path := path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			startedAt := time.Now()
			convErr := convertOne(path, cfg, geomCache, log)
			if recErr := hist.Record(path, startedAt, convErr); recErr != nil {
				log.WithError(recErr).WithField("path", path).Warn("abwconvert: failed to record history")
			}
			if convErr != nil {
				log.WithError(convErr).WithField("path", path).Warn("abwconvert: conversion failed")
			}
			return nil // one file's failure doesn't abort the batch
		})
	}
	return g.Wait()
}

func convertOne(path string, cfg config.Config, geomCache *cache.Cache, log *logrus.Logger) error {
	input, err := dump.LoadInput(path)
	if err != nil {
		return err
	}
	hash, err := contentHash(path)
	if err != nil {
		return err
	}
	outPath := filepath.Join(cfg.OutputDir, filepath.Base(path)+".trace")

	if _, hit, err := geomCache.Get(hash); err == nil && hit {
		if _, statErr := os.Stat(outPath); statErr == nil {
			log.WithField("path", path).Debug("abwconvert: unchanged since last run, skipping")
			return nil
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	printer := dump.NewPrinter(out)
	dispatcher := abw.NewDispatcher(log)
	ok, parseErr := dispatcher.Parse(input, printer)
	if !ok {
		return parseErr
	}

	return geomCache.Put(hash, cache.Entry{})
}

func contentHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
