package taxonomy

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default_taxonomy.yaml
var defaultTaxonomyYAML []byte

type fileFormat struct {
	Categories []categoryYAML  `yaml:"categories"`
	Budgets    yearBudgetsYAML `yaml:"budgets"`
	Synthetic  []syntheticYAML `yaml:"synthetic"`
}

type categoryYAML struct {
	Name          string            `yaml:"name"`
	Subcategories []subcategoryYAML `yaml:"subcategories"`
}

type subcategoryYAML struct {
	Name      string   `yaml:"name"`
	LineItems []string `yaml:"line_items"`
}

type syntheticYAML struct {
	Category    string   `yaml:"category"`
	Subcategory string   `yaml:"subcategory"`
	LineItem    string   `yaml:"line_item"`
	Keywords    []string `yaml:"keywords"`
}

// yearBudgetsYAML keeps the mapping order of years and of items within a year.
type yearBudgetsYAML []*BudgetBook

func (y *yearBudgetsYAML) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("budgets: expected mapping at line %d", node.Line)
	}

	books := make([]*BudgetBook, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		yearNode, itemsNode := node.Content[i], node.Content[i+1]
		if itemsNode.Kind != yaml.MappingNode {
			return fmt.Errorf("budgets.%s: expected mapping at line %d", yearNode.Value, itemsNode.Line)
		}

		entries := make([]BudgetEntry, 0, len(itemsNode.Content)/2)
		for j := 0; j+1 < len(itemsNode.Content); j += 2 {
			keyNode, valueNode := itemsNode.Content[j], itemsNode.Content[j+1]
			amount, err := decimal.NewFromString(valueNode.Value)
			if err != nil {
				return fmt.Errorf("budgets.%s.%s: invalid amount %q: %w", yearNode.Value, keyNode.Value, valueNode.Value, err)
			}
			entries = append(entries, BudgetEntry{Item: keyNode.Value, Amount: amount})
		}
		books = append(books, NewBudgetBook(yearNode.Value, entries))
	}

	*y = books
	return nil
}

// Parse decodes a taxonomy document.
func Parse(data []byte) (*Taxonomy, error) {
	var doc fileFormat
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}

	categories := make([]Category, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		subs := make([]Subcategory, 0, len(c.Subcategories))
		for _, s := range c.Subcategories {
			subs = append(subs, Subcategory{Name: s.Name, LineItems: s.LineItems})
		}
		categories = append(categories, Category{Name: c.Name, Subcategories: subs})
	}

	synthetic := make([]SyntheticRow, 0, len(doc.Synthetic))
	for _, s := range doc.Synthetic {
		synthetic = append(synthetic, SyntheticRow{
			Category:    s.Category,
			Subcategory: s.Subcategory,
			LineItem:    s.LineItem,
			Keywords:    s.Keywords,
		})
	}

	return New(categories, doc.Budgets, synthetic)
}

// Default returns the embedded taxonomy.
func Default() (*Taxonomy, error) {
	return Parse(defaultTaxonomyYAML)
}

// Load reads a taxonomy file, falling back to the embedded default when path is empty.
func Load(path string) (*Taxonomy, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, err
	}

	slog.Info("Loaded budget taxonomy",
		"path", path,
		"line_items", len(t.entries),
		"years", t.Years(),
	)
	return t, nil
}
