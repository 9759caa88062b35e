//go:build mage

// Package main contains Mage build targets for itinerary-engine developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/itinerary-engine/internal/plan"
	"github.com/pdiddy/itinerary-engine/pkg/types"
)

// projectDirs lists the working directories the CLI expects.
var projectDirs = []string{
	"plans",
	"calendars",
	"data",
	".secrets",
}

// Init creates the project directory structure.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "itinerary-engine"
	cmdPkg  = "./cmd/itinerary-engine"
)

// Build compiles the CLI binary into bin/, stamping the version from git.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Check runs vet and then the tests.
func Check() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	mg.Deps(Test)
	return nil
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// samplePlan is a two-alternative response in the format the generate
// command asks for.
const samplePlan = `## Day 1: Arrival in Lisbon
- 09:00 Check in at **Hotel Avenida** (1 hour)
- 11:00 Walk the old quarter **Alfama** (2 hours)
- 19:30 Dinner with fado **Clube de Fado** (2 hours)

## Day 2: Belem
- 10:00 Visit the monastery **Jeronimos Monastery** (90 minutes)
- 14:00 Riverside walk to the tower **Belem Tower** (1 hour)

---

Option 2

## Day 1: Sintra day trip
- 08:30 Train from **Rossio Station** (45 minutes)
- 10:00 Palace tour **Pena Palace** (3 hours)

## Day 2: Cascais
- 11:00 Beach afternoon **Praia da Rainha** (3 hours)
`

// Sample writes plans/sample.yaml so preview and calendar can be tried
// without an API key.
func Sample() error {
	mg.Deps(Init)

	part, err := plan.Split(samplePlan)
	if err != nil {
		return err
	}
	path, err := plan.WriteFile("plans", types.PlanFile{
		RequestID:    "sample",
		Query:        "Plan a trip to Lisbon for 2 days",
		Agent:        "itinerary",
		GeneratedAt:  time.Now().UTC(),
		Strategy:     part.Strategy,
		Alternatives: part.Alternatives[:],
	})
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s; try: itinerary-engine preview sample --alt 2\n", path)
	return nil
}

// Stats prints project metrics: Go production/test LOC and documentation word count.
func Stats() error {
	prodLines, testLines, err := countGoLines(".")
	if err != nil {
		return err
	}
	docWords, err := countDocWords(".")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (documentation):           %d\n", docWords)
	return nil
}

// skipDir reports directories that are not part of the project source.
func skipDir(name string) bool {
	return name != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == binDir)
}

// countGoLines counts non-blank lines in production and test Go files.
func countGoLines(root string) (prod, test int, err error) {
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := 0
		sc := bufio.NewScanner(bytes.NewReader(data))
		for sc.Scan() {
			if strings.TrimSpace(sc.Text()) != "" {
				n++
			}
		}
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, test, err
}

// countDocWords counts words in Markdown files outside hidden and
// underscore-prefixed directories.
func countDocWords(root string) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".md" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		total += len(strings.Fields(string(data)))
		return nil
	})
	return total, err
}
