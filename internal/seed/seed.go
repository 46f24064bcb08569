// Package seed loads the sample data the console starts with. Stores are
// in-memory only, so every start begins from this data (or a file supplied
// in configuration).
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/planops/ruleboard/internal/collateral"
	"github.com/planops/ruleboard/internal/domain/rule"
	"github.com/planops/ruleboard/internal/domain/user"
	"github.com/planops/ruleboard/internal/memory"
)

//go:embed data.yaml
var embedded []byte

// Data is the full sample data set.
type Data struct {
	Rules     []rule.Rule                `yaml:"rules"`
	Users     []user.User                `yaml:"users"`
	Documents []collateral.Document      `yaml:"documents"`
	Queued    []collateral.QueuedJob     `yaml:"queued"`
	Portfolio []collateral.PortfolioItem `yaml:"portfolio"`
}

// Stores groups the in-memory stores the seed fills.
type Stores struct {
	Rules     *memory.RuleStore
	Users     *memory.Collection[user.User]
	Documents *memory.Collection[collateral.Document]
	Queued    *memory.Collection[collateral.QueuedJob]
	Portfolio *memory.Collection[collateral.PortfolioItem]
}

// Load parses seed data from path, falling back to the embedded sample set
// when path is empty.
func Load(path string) (Data, error) {
	raw := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Data{}, fmt.Errorf("reading seed file: %w", err)
		}
		raw = b
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("parsing seed data: %w", err)
	}

	now := time.Now()
	for i := range data.Rules {
		if data.Rules[i].CreatedAt.IsZero() {
			data.Rules[i].CreatedAt = now
		}
		if data.Rules[i].LastModified.IsZero() {
			data.Rules[i].LastModified = now
		}
	}
	for i := range data.Users {
		if data.Users[i].CreatedAt.IsZero() {
			data.Users[i].CreatedAt = now
		}
		if data.Users[i].LastModified.IsZero() {
			data.Users[i].LastModified = now
		}
	}

	return data, nil
}

// Apply fills the stores with the data set.
func Apply(data Data, stores Stores) {
	if stores.Rules != nil {
		stores.Rules.Replace(data.Rules)
	}
	if stores.Users != nil {
		stores.Users.Replace(data.Users)
	}
	if stores.Documents != nil {
		stores.Documents.Replace(data.Documents)
	}
	if stores.Queued != nil {
		stores.Queued.Replace(data.Queued)
	}
	if stores.Portfolio != nil {
		stores.Portfolio.Replace(data.Portfolio)
	}
}
