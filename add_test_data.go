//go:build ignore
// +build ignore

// Helper script to add test students to the roster file
// Run with: go run add_test_data.go [path]

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/roster"
)

func main() {
	path := roster.DefaultFileName
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	store := roster.Open(path)

	grades := []string{"A", "B", "C", "D"}
	for i := 1; i <= 20; i++ {
		st := models.Student{
			Name:       fmt.Sprintf("Student %d", i),
			RollNumber: fmt.Sprintf("%d", 100+i),
			Grade:      grades[i%len(grades)],
		}
		if err := store.Add(st); err != nil {
			log.Fatalf("Failed to add student %d: %v", i, err)
		}
	}

	fmt.Printf("Roster %s now holds %d students\n", store.Path(), store.Len())
}
