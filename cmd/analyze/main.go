package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"inbox-workload/config"
	"inbox-workload/internal/model"
	"inbox-workload/internal/patterns"
	"inbox-workload/internal/workload"
	"inbox-workload/internal/workload/deadline"
	"inbox-workload/internal/workload/extractor"
	"inbox-workload/internal/workload/priority"
	"inbox-workload/internal/workload/scheduler"
	"inbox-workload/internal/workload/usecase"
	"inbox-workload/pkg/datemath"
	"inbox-workload/pkg/log"
)

// analyze reads a JSON array of messages from a file and prints the
// resulting tasks and workload snapshot. Intended for offline runs over an
// exported mailbox.
func main() {
	var (
		inputPath = flag.String("input", "", "path to a JSON array of messages")
		asJSON    = flag.Bool("json", false, "emit raw JSON instead of a text report")
	)
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -input messages.json [-json]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: false,
	})

	ctx := context.Background()

	raw, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to read input:", err)
		os.Exit(1)
	}

	var messages []model.Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to parse input:", err)
		os.Exit(1)
	}

	dateMathParser, dtErr := datemath.NewParser(cfg.Scheduler.Timezone)
	if dtErr != nil {
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	lib := patterns.NewLibrary()
	uc := usecase.New(
		logger,
		extractor.New(lib, extractor.Config{
			ContextRadius:   cfg.Scheduler.ContextRadius,
			ProjectKeywords: cfg.Projects.Keywords,
		}),
		deadline.New(lib, dateMathParser, deadline.Config{
			EndOfBusinessHour:   cfg.Scheduler.EndOfBusinessHour,
			DefaultDeadlineDays: cfg.Scheduler.DefaultDeadlineDays,
			WeekDeadlineWeekday: cfg.Scheduler.WeekDeadlineWeekday,
			NextWeekWeekday:     cfg.Scheduler.NextWeekWeekday,
		}),
		priority.New(lib, priority.Config{
			SenderWeights:       cfg.Senders.Weights,
			SenderHighThreshold: cfg.Scheduler.SenderHighThreshold,
		}),
		scheduler.New(scheduler.Config{
			DailyCapacityHours:   cfg.Scheduler.DailyCapacityHours,
			MaxCriticalPerDay:    cfg.Scheduler.MaxCriticalPerDay,
			SenderDominanceShare: cfg.Scheduler.SenderDominanceShare,
		}),
		cfg.Scheduler.ContextRadius,
	)

	out, err := uc.AnalyzeBatch(ctx, workload.AnalyzeBatchInput{
		Messages:      messages,
		ReferenceTime: time.Now(),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Analysis failed:", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to encode output:", err)
			os.Exit(1)
		}
		return
	}

	printReport(out)
}

func printReport(out workload.AnalyzeBatchOutput) {
	snap := out.Snapshot

	fmt.Printf("Messages analyzed, %d task(s) found\n\n", snap.TotalTasks)
	for _, e := range snap.Entries {
		marker := " "
		if e.AtRisk {
			marker = "!"
		}
		due := "no deadline"
		if e.Task.Deadline != nil {
			due = e.Task.Deadline.Due.Format("Mon Jan 2 15:04")
		}
		fmt.Printf("%s [%-8s] %-50.50s  due %-18s  %.2fh cum\n",
			marker, e.Task.Priority, e.Task.Description, due, e.CumulativeHours)
	}

	fmt.Printf("\nTotal effort: %.2fh of %.2fh daily capacity", snap.TotalEstimatedHours, snap.DailyCapacityHours)
	if snap.Overflow {
		fmt.Print("  (OVERFLOW)")
	}
	fmt.Printf("\nDue today: %d\n", snap.DueToday)

	if len(snap.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, rec := range snap.Recommendations {
			fmt.Println("  -", rec)
		}
	}
}
