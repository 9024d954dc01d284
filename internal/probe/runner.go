package probe

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/okian/sentia/internal/domain/model"
	"github.com/okian/sentia/internal/domain/types"
	"github.com/okian/sentia/pkg/logger"
)

// Run generates subjects, assesses each against the service, asks the
// service to rank the collected reports, and verifies the ranking is ordered
// by average score. Returns an error on the first failed request or when the
// returned ranking is inconsistent.
func Run(ctx context.Context, cfg *Config) error {
	log := logger.Get().Named("probe")
	client := newHTTPClient(cfg.Timeout)

	subjects := generateSubjects(cfg.Subjects, cfg.Seed)
	log.Info(ctx, "submitting assessments",
		logger.Int("subjects", len(subjects)),
		logger.String("url", cfg.BaseURL))

	reports := make([]model.Report, 0, len(subjects))
	for _, s := range subjects {
		var report model.Report
		body := map[string]any{"subject": s.Name, "scores": s.Scores}
		if err := client.postJSON(ctx, cfg.BaseURL+"/assess", body, &report); err != nil {
			return fmt.Errorf("assess %s: %w", s.Name, err)
		}
		if cfg.Verbose {
			log.Info(ctx, "assessed",
				logger.String("subject", report.Subject),
				logger.String("level", report.LevelName),
				logger.Float64("average", report.AverageScore))
		}
		reports = append(reports, report)
	}

	var ranking []types.RankEntry
	if err := client.postJSON(ctx, cfg.BaseURL+"/compare", reports, &ranking); err != nil {
		return fmt.Errorf("compare: %w", err)
	}
	if err := verifyRanking(ranking); err != nil {
		return err
	}

	printRanking(ranking)
	log.Info(ctx, "probe complete", logger.Int("ranked", len(ranking)))
	return nil
}

// verifyRanking checks ranks are consecutive from 1 and scores descend.
func verifyRanking(entries []types.RankEntry) error {
	if !sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	}) {
		return ErrRankingOrder
	}
	for i, e := range entries {
		if e.Rank != i+1 {
			return fmt.Errorf("%w: position %d has rank %d", ErrRankingGap, i+1, e.Rank)
		}
	}
	return nil
}

func printRanking(entries []types.RankEntry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tSUBJECT\tLEVEL\tSCORE")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.4f\n", e.Rank, e.Subject, e.Level, e.Score)
	}
	_ = w.Flush()
}
