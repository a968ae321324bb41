// Command preview fetches one page of the live Bizinfo listing and prints
// the normalized projects as a table. Useful for checking field fallback
// and status classification against real upstream data.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"

	"github.com/jiwonnow/jiwonnow/internal/bizinfo"
	"github.com/jiwonnow/jiwonnow/internal/config"
)

func main() {
	_ = godotenv.Load()

	category := flag.String("category", "", "category label or code (금융 … 경영)")
	hashtags := flag.String("hashtags", "", "comma-separated hashtag filter")
	count := flag.Int("count", 30, "number of announcements to fetch")
	flag.Parse()

	cfg := config.FromEnv()
	client := bizinfo.NewClient(cfg.BizinfoBaseURL, cfg.BizinfoAPIKey)

	query := bizinfo.ListQuery{
		PageSize: *count,
		Hashtags: *hashtags,
	}
	if *category != "" {
		rules := bizinfo.DefaultRules()
		if code := rules.CategoryCode(*category); code != "" {
			query.CategoryCode = code
		} else {
			query.CategoryCode = *category
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	projects, err := client.FetchProjects(ctx, query)
	if err != nil {
		log.Fatalf("Fetch failed: %v", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Status", "Title", "Org", "Region", "Type", "Apply Until"})

	for _, p := range projects {
		title := p.Title
		if len([]rune(title)) > 40 {
			title = string([]rune(title)[:40]) + "…"
		}
		t.AppendRow(table.Row{p.ID, p.Status, title, p.Organization, p.Region, p.SupportType, p.ApplicationEndDate})
	}
	t.Render()
	log.Printf("%d announcements", len(projects))
}
