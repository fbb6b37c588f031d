// Package db implements the corpus-database inspection commands.
package db

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	dbpkg "github.com/corpustools/ocrclean/pkg/db"
)

// StatsAction prints corpus database statistics as YAML.
func StatsAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	stats, err := database.Stats()
	if err != nil {
		return err
	}

	yamlBytes, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}

// TopAction prints the most frequent correction pairs for a stage.
func TopAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	top, err := database.TopCorrections(c.String("stage"), c.Int("limit"))
	if err != nil {
		return err
	}
	if len(top) == 0 {
		fmt.Println("No corrections recorded for stage", c.String("stage"))
		return nil
	}

	yamlBytes, err := yaml.Marshal(top)
	if err != nil {
		return fmt.Errorf("failed to marshal corrections: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}
