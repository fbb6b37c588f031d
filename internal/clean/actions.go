package clean

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/corpustools/ocrclean/models"
	"github.com/corpustools/ocrclean/pkg/cleanup"
	dbpkg "github.com/corpustools/ocrclean/pkg/db"
	"github.com/corpustools/ocrclean/pkg/langid"
	"github.com/corpustools/ocrclean/pkg/rules"
	"github.com/corpustools/ocrclean/pkg/storage"
)

// Summary is the YAML run report printed on stdout.
type Summary struct {
	Works       int            `yaml:"works"`
	Pages       int            `yaml:"pages"`
	Corrections map[string]int `yaml:"corrections"`
	NonEnglish  []string       `yaml:"non_english_works,omitempty"`
	Output      string         `yaml:"output"`
	Database    string         `yaml:"database,omitempty"`
	Elapsed     string         `yaml:"elapsed"`
}

// Action runs the corpus cleanup: read pages, group into works, clean each
// work on a pool of workers, write cleaned JSONL and optionally persist to
// the corpus database.
func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("similarity-threshold") {
		cfg.SimilarityThreshold = c.Float64("similarity-threshold")
	}
	if c.IsSet("corrections") {
		cfg.Rules.Corrections = c.String("corrections")
	}
	if c.IsSet("f-s-hack") {
		cfg.Rules.FSHack = c.String("f-s-hack")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}

	reg, err := rules.NewRegistry(cfg.Rules.Corrections, cfg.Rules.FSHack)
	if err != nil {
		return err
	}
	logger.Info("Loaded rule tables",
		"corrections", len(reg.Corrections()), "f_s_hack", len(reg.FSHack()))

	pagesPath := c.String("pages")
	pages, err := storage.ReadPages(pagesPath)
	if err != nil {
		return err
	}
	works := models.GroupPages(pages)
	logger.Info("Loaded corpus", "pages", len(pages), "works", len(works))

	opts := cleanup.Options{
		KeepHeaders:         c.Bool("keep-headers"),
		SimilarityThreshold: cfg.SimilarityThreshold,
	}
	results := run(logger, works, reg, langid.New(), cfg.Workers, opts)

	summary := Summary{
		Works:       len(works),
		Corrections: make(map[string]int),
		Output:      c.String("out"),
		Elapsed:     time.Since(startTime).Round(time.Millisecond).String(),
	}

	var cleaned []models.CleanedPage
	for _, result := range results {
		cleaned = append(cleaned, result.Pages...)
		if result.Language != "" && result.Language != "en" {
			summary.NonEnglish = append(summary.NonEnglish, result.WorkID)
		}
		for _, page := range result.Pages {
			summary.Corrections["headers"] += len(page.Headers)
			summary.Corrections["linebreaks"] += len(page.Linebreaks)
			summary.Corrections["long_s"] += len(page.LongS)
			summary.Corrections["ocr"] += len(page.OCR)
			summary.Corrections["f_s"] += len(page.FSHack)
		}
	}
	summary.Pages = len(cleaned)

	if err := storage.WriteCleanedPages(c.String("out"), cleaned); err != nil {
		return err
	}
	logger.Info("Wrote cleaned pages", "path", c.String("out"), "pages", len(cleaned))

	if cfg.DBPath != "" {
		if err := persist(cfg.DBPath, results); err != nil {
			return err
		}
		summary.Database = cfg.DBPath
		logger.Info("Persisted corpus database", "path", cfg.DBPath)
	}

	summary.Elapsed = time.Since(startTime).Round(time.Millisecond).String()
	yamlBytes, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}

func persist(dbPath string, results []Result) error {
	database, err := dbpkg.Open(dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	for _, result := range results {
		if err := database.InsertWork(result.WorkID, result.Language, len(result.Pages)); err != nil {
			return err
		}
		for _, page := range result.Pages {
			if err := database.InsertCleanedPage(result.WorkID, page); err != nil {
				return err
			}
		}
	}
	return nil
}
