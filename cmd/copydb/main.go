// Command copydb copies dashboard collections from one SurrealDB
// database to another, typically local development into production.
// Existing target records are never overwritten.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"studioboard/internal/transfer"
)

func main() {
	var (
		sourceURL = flag.String("source-url", "ws://localhost:8000/rpc", "source endpoint")
		targetURL = flag.String("target-url", "", "target endpoint (required)")
		sourceDB  = flag.String("source-db", "board", "expected source database name")
		targetDB  = flag.String("target-db", "board", "expected target database name")
		ns        = flag.String("ns", "studio", "namespace on both sides")
		user      = flag.String("user", "", "auth user for both sides")
		pass      = flag.String("pass", "", "auth password for both sides")
		timeout   = flag.Duration("timeout", 2*time.Minute, "overall deadline")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *targetURL == "" {
		log.Fatal().Msg("-target-url is required")
	}
	// Refuse before dialing anything: same endpoint means source and
	// target are the same server and the run could write into the data
	// it is reading.
	if err := transfer.CheckEndpoints(*sourceURL, *targetURL); err != nil {
		log.Fatal().Err(err).Msg("endpoint check")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	src, err := transfer.Dial(ctx, *sourceURL, *ns, *sourceDB, *user, *pass)
	if err != nil {
		log.Fatal().Err(err).Msg("dial source")
	}
	defer src.Close(ctx)

	dst, err := transfer.Dial(ctx, *targetURL, *ns, *targetDB, *user, *pass)
	if err != nil {
		log.Fatal().Err(err).Msg("dial target")
	}
	defer dst.Close(ctx)

	counts, err := transfer.Run(ctx, src, dst, transfer.Options{
		SourceURI:  *sourceURL,
		TargetURI:  *targetURL,
		SourceName: *sourceDB,
		TargetName: *targetDB,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("copy aborted")
	}

	var found, upserted, skipped int
	for _, c := range counts {
		found += c.Found
		upserted += c.Upserted
		skipped += c.Skipped
	}
	log.Info().Int("found", found).Int("upserted", upserted).Int("skipped", skipped).
		Msg("copy complete")
}
