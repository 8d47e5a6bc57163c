package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/app/bootstrap"
)

func main() {
	var (
		configPath = flag.String("config", "configs/default.yaml", "path to the service config file")
		inputPath  = flag.String("input", "", "CSV command file (default stdin)")
		outputPath = flag.String("output", "", "account snapshot file (default stdout)")
		policy     = flag.String("policy", "", "withdrawal dispute policy: permissive or strict")
		sortOutput = flag.Bool("sort", false, "sort the snapshot by client id")
		serve      = flag.Bool("serve", false, "keep the inspection API running after the stream is drained")
	)
	flag.Parse()

	overrides := bootstrap.Overrides{WithdrawalDisputePolicy: *policy}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "sort" {
			overrides.SortSnapshotByClient = sortOutput
		}
	})

	ctx := context.Background()
	runtime, err := bootstrap.NewRuntime(ctx, *configPath, overrides)
	if err != nil {
		log.Fatalf("bootstrap runtime: %v", err)
	}

	var input io.Reader = os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatalf("open input: %v", err)
		}
		defer f.Close()
		input = f
	}
	var output io.Writer = os.Stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer f.Close()
		output = f
	}

	if _, err := runtime.RunBatch(ctx, input, output); err != nil {
		log.Fatalf("process stream: %v", err)
	}
	if *serve {
		if err := runtime.RunServe(ctx); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}
}
