package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/corpustools/ocrclean/internal/clean"
	dbcmd "github.com/corpustools/ocrclean/internal/db"
	"github.com/corpustools/ocrclean/internal/headers"
	"github.com/corpustools/ocrclean/internal/ingest"
	"github.com/corpustools/ocrclean/internal/rulesgen"
	"github.com/corpustools/ocrclean/pkg/cleanup"
	"github.com/corpustools/ocrclean/pkg/rules"
)

func main() {
	app := &cli.App{
		Name:  "ocrclean",
		Usage: "OCR cleanup pipeline for a digitized historical-text corpus",
		Commands: []*cli.Command{
			{
				Name:   "clean",
				Usage:  "Clean a corpus of page records, work by work",
				Action: clean.Action,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pages", Usage: "input pages JSONL (.jsonl or .jsonl.gz)", Required: true},
					&cli.StringFlag{Name: "out", Usage: "output cleaned JSONL path", Required: true},
					&cli.StringFlag{Name: "config", Usage: "YAML config file"},
					&cli.StringFlag{Name: "corrections", Usage: "OCR correction dictionary (TSV)"},
					&cli.StringFlag{Name: "f-s-hack", Usage: "generated f/ſ substitution table"},
					&cli.StringFlag{Name: "db", Usage: "also persist into this SQLite corpus database"},
					&cli.IntFlag{Name: "workers", Usage: "number of concurrent work cleaners"},
					&cli.Float64Flag{Name: "similarity-threshold", Value: cleanup.DefaultSimilarityThreshold, Usage: "header fuzzy-match threshold (0-100)"},
					&cli.BoolFlag{Name: "keep-headers", Usage: "skip running-header detection and removal"},
					&cli.BoolFlag{Name: "quiet", Usage: "errors only on stderr"},
				},
			},
			{
				Name:   "headers",
				Usage:  "Identify running headers per work without cleaning",
				Action: headers.Action,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pages", Usage: "input pages JSONL", Required: true},
					&cli.Float64Flag{Name: "threshold", Value: cleanup.DefaultSimilarityThreshold, Usage: "fuzzy-match threshold (0-100)"},
					&cli.BoolFlag{Name: "quiet", Usage: "errors only on stderr"},
				},
			},
			{
				Name:   "generate-rules",
				Usage:  "Derive the f/ſ substitution table from a long-s correction log",
				Action: rulesgen.Action,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "source", Usage: "long-s correction log (TSV with header row)", Required: true},
					&cli.StringFlag{Name: "out", Usage: "accepted substitutions output (TSV)", Required: true},
					&cli.StringFlag{Name: "disregard", Usage: "rejected too-common candidates output (TSV)", Required: true},
					&cli.StringFlag{Name: "freq-table", Usage: "word-frequency table file", Required: true},
					&cli.StringFlag{Name: "lang", Value: "en", Usage: "frequency-oracle language code"},
					&cli.Float64Flag{Name: "threshold", Value: rules.DefaultFrequencyThreshold, Usage: "frequency above which a candidate is disregarded"},
					&cli.StringFlag{Name: "skip-words", Usage: "comma-separated candidates to skip outright"},
					&cli.BoolFlag{Name: "quiet", Usage: "errors only on stderr"},
				},
			},
			{
				Name:  "ingest",
				Usage: "Convert source editions into corpus page records",
				Subcommands: []*cli.Command{
					{
						Name:   "ecco",
						Usage:  "Parse an ECCO XML pair into pages JSONL",
						Action: ingest.EccoAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "text", Usage: "ECCO text XML", Required: true},
							&cli.StringFlag{Name: "meta", Usage: "ECCO per-page metadata XML"},
							&cli.StringFlag{Name: "work-id", Usage: "work id to prefix page ids with", Required: true},
							&cli.StringFlag{Name: "out", Usage: "output pages JSONL path", Required: true},
							&cli.BoolFlag{Name: "quiet", Usage: "errors only on stderr"},
						},
					},
				},
			},
			{
				Name:  "db",
				Usage: "Inspect the corpus database",
				Subcommands: []*cli.Command{
					{
						Name:   "stats",
						Usage:  "Work, page and correction counts",
						Action: dbcmd.StatsAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Value: "corpus.db", Usage: "corpus database path"},
						},
					},
					{
						Name:   "top",
						Usage:  "Most frequent corrections for a stage",
						Action: dbcmd.TopAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Value: "corpus.db", Usage: "corpus database path"},
							&cli.StringFlag{Name: "stage", Value: "ocr", Usage: "headers, linebreaks, long_s, ocr or f_s"},
							&cli.IntFlag{Name: "limit", Value: 25, Usage: "number of pairs to show"},
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
