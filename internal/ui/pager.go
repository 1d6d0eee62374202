package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"bookshelf/internal/domain"
	"bookshelf/internal/logic"
	"bookshelf/internal/ui/views"
)

// ErrNoProgram is returned when the pager is opened before the program is attached
var ErrNoProgram = errors.New("program not set")

// PagerOps runs the ov pager over the terminal owned by the program
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show displays content in ov until the user quits it
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return ErrNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to create pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// BuildListing renders every filtered book as plain text for the pager
func BuildListing(view logic.View, summary string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "bookshelf: %d books", len(view.Filtered))
	if summary != "" {
		fmt.Fprintf(&b, " (%s)", summary)
	}
	b.WriteString("\n\n")

	if len(view.Filtered) == 0 {
		b.WriteString("No books found.\n")
		return b.String()
	}

	for i, book := range view.Filtered {
		fmt.Fprintf(&b, "%4d. %s\n", i+1, listingLine(book))
	}
	return b.String()
}

func listingLine(book domain.Book) string {
	return fmt.Sprintf("%s by %s (%s, %s, %s, %d pages)",
		book.Title, book.Author, book.Country, book.Language, views.FormatYear(book.Year), book.Pages)
}
