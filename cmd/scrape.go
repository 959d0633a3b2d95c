/*
Copyright © 2025 ShaikM36
*/
package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/ShaikM36/tds-virtual-ta/config"
	"github.com/ShaikM36/tds-virtual-ta/scraper"
	"github.com/ShaikM36/tds-virtual-ta/store"
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape TDS Discourse topics into a JSON file",
	Long: `Collects every topic created within the given date range from the
course Discourse category and writes the cleaned posts to a JSON file.
The output can then be loaded into the knowledge base by "serve".`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		startDate, _ := cmd.Flags().GetString("start-date")
		endDate, _ := cmd.Flags().GetString("end-date")
		category, _ := cmd.Flags().GetInt("category")
		output, _ := cmd.Flags().GetString("output")

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if output == "" {
			output = cfg.DataFile
		}

		scraperCfg := scraper.DefaultConfig()
		scraperCfg.BaseURL = cfg.Discourse.BaseURL
		scraperCfg.CategoryPath = cfg.Discourse.CategoryPath
		scraperCfg.CategoryID = cfg.Discourse.CategoryID
		scraperCfg.UserAgent = cfg.Discourse.UserAgent
		scraperCfg.MaxPages = cfg.Discourse.MaxPages
		scraperCfg.FetchDelay = cfg.Discourse.FetchDelay
		if category != 0 {
			scraperCfg.CategoryID = category
		}

		posts, err := scraper.New(scraperCfg).Scrape(context.Background(), startDate, endDate)
		if err != nil {
			// No partial result: a failed scrape leaves the output
			// file untouched.
			log.Printf("Scrape failed: %v", err)
			return
		}

		if err := store.NewJSONFileStore().Save(posts, output); err != nil {
			log.Printf("Failed to save scraped data to %s: %v", output, err)
			return
		}
		log.Printf("Saved %d posts to %s", len(posts), output)
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	scrapeCmd.Flags().String("start-date", "2025-01-01", "Earliest topic creation date (YYYY-MM-DD, inclusive)")
	scrapeCmd.Flags().String("end-date", "2025-04-14", "Latest topic creation date (YYYY-MM-DD, inclusive)")
	scrapeCmd.Flags().Int("category", 0, "Discourse category ID (defaults to the configured course category)")
	scrapeCmd.Flags().StringP("output", "o", "", "Output file (defaults to the configured data file)")
}
