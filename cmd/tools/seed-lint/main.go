// cmd/tools/seed-lint/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"activity-signup/pkg/catalog"
)

func main() {
	path := flag.String("path", "internal/registry/seed/activities.json", "Path to seed catalog file")
	flag.Parse()

	cat, err := catalog.Load(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed catalog %s is valid (version %s, %d activities)\n", *path, cat.Version, len(cat.Activities))
	for _, activity := range cat.Activities {
		fmt.Printf("  %-20s capacity %2d, %d seeded participants\n",
			activity.Name, activity.MaxParticipants, len(activity.Participants))
	}
}
