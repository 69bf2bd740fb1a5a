package main

import (
	"context"
	"os"

	"grimoire-scribe/internal/config"
	"grimoire-scribe/pkg/client"

	"github.com/fatih/color"
)

// Starter notes for a fresh grimoire.
var starterNotes = []client.CreateNotePayload{
	{
		Title:   "First Mock Scroll",
		Content: "This is the first note stored in the grimoire.",
		Color:   "#ffcc80",
	},
	{
		Title:   "Second Mock Scroll",
		Content: "Another entry in the annals of mock data.",
		Color:   "#80cbc4",
	},
	{
		Content: "A scroll left untitled, as many are.",
	},
}

func main() {
	cfg := config.Load()
	api := client.New(cfg.Client.APIBaseURL)
	ctx := context.Background()

	color.Cyan("Seeding starter notes into %s", cfg.Client.APIBaseURL)

	for i, payload := range starterNotes {
		note, err := api.CreateNote(ctx, payload)
		if err != nil {
			color.Red("Failed to create note %d: %v", i+1, err)
			os.Exit(1)
		}
		color.Green("Created %s (%s)", note.Title, note.Id)

		// Pin the first scroll so the list renders it on top.
		if i == 0 {
			pinned := true
			if _, err := api.UpdateNote(ctx, note.Id, client.UpdateNotePayload{Pinned: &pinned}); err != nil {
				color.Red("Failed to pin note %s: %v", note.Id, err)
				os.Exit(1)
			}
			color.Yellow("Pinned %s", note.Title)
		}
	}

	notes, err := api.GetNotes(ctx)
	if err != nil {
		color.Red("Failed to list notes: %v", err)
		os.Exit(1)
	}
	color.Cyan("Done. Store now holds %d notes.", len(notes))
}
