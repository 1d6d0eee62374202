//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// fixtureBook mirrors the catalog record layout
type fixtureBook struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Country   string `json:"country"`
	Language  string `json:"language"`
	Year      int    `json:"year"`
	Pages     int    `json:"pages"`
	ImageLink string `json:"imageLink"`
	Link      string `json:"link"`
}

var fixtureCountries = []string{"Russia", "France", "Italy"}

// DefaultBooks returns 25 records spread over three countries. The last
// one is Dune, which no other title or author contains.
func DefaultBooks() []fixtureBook {
	books := make([]fixtureBook, 0, 25)
	for i := 1; i <= 24; i++ {
		books = append(books, fixtureBook{
			Title:     fmt.Sprintf("Volume %02d", i),
			Author:    fmt.Sprintf("Writer %02d", i),
			Country:   fixtureCountries[i%len(fixtureCountries)],
			Language:  "English",
			Year:      1800 + i,
			Pages:     100 + i*5,
			ImageLink: fmt.Sprintf("images/volume-%02d.jpg", i),
		})
	}
	books = append(books, fixtureBook{
		Title:     "Dune",
		Author:    "Frank Herbert",
		Country:   "United States",
		Language:  "English",
		Year:      1965,
		Pages:     412,
		ImageLink: "images/dune.jpg",
		Link:      "https://en.wikipedia.org/wiki/Dune_(novel)",
	})
	return books
}

// CreateTestWorkspace creates a temporary directory for the catalog and config
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteCatalog writes books as a JSON catalog in the workspace and returns its path
func (tf *TUITestFramework) WriteCatalog(name string, books []fixtureBook) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// StartWithDefaultCatalog writes DefaultBooks and launches the browser on it
func (tf *TUITestFramework) StartWithDefaultCatalog(args ...string) error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	path, err := tf.WriteCatalog("books.json", DefaultBooks())
	if err != nil {
		return err
	}
	return tf.StartApp(append([]string{"--catalog", path}, args...)...)
}
