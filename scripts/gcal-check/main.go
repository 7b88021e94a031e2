// Verifies Google Calendar credentials before starting the server.
//
// Usage:
//
//	go run scripts/gcal-check/main.go [credentials.json] [calendar-id]
//
// It authenticates with the service account file and lists today's events.
// A non-zero exit means the credentials or calendar ID are wrong.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"smart-day-planner/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	calendarID := ""
	if len(os.Args) > 2 {
		calendarID = os.Args[2]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, credsPath)
	if err != nil {
		log.Fatalf("Failed to create calendar client from %q: %v", credsPath, err)
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	events, err := client.ListEvents(ctx, calendarID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		log.Fatalf("Failed to list events: %v", err)
	}

	fmt.Printf("Credentials OK, %d event(s) today:\n", len(events))
	for _, ev := range events {
		fmt.Printf("  %s - %s  %s\n", ev.Start.Format("15:04"), ev.End.Format("15:04"), ev.Summary)
	}
}
