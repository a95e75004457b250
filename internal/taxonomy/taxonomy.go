package taxonomy

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTaxonomy = errors.New("taxonomy has no categories")
	ErrUnknownYear   = errors.New("no budget configured for fiscal year")
	ErrDuplicateItem = errors.New("line item appears more than once in taxonomy")
	ErrEmptyLineItem = errors.New("taxonomy contains an empty line item")
	ErrNoKeywordsSet = errors.New("synthetic row has no keywords")
)

// Subcategory groups line items under a 세목.
type Subcategory struct {
	Name      string
	LineItems []string
}

// Category is a top-level 예산목.
type Category struct {
	Name          string
	Subcategories []Subcategory
}

// Entry is one line item together with its position in the forest.
type Entry struct {
	Category           string
	Subcategory        string
	LineItem           string
	FirstInCategory    bool
	FirstInSubcategory bool
}

// SyntheticRow describes a keyword-matched row that is not part of the forest.
type SyntheticRow struct {
	Category    string
	Subcategory string
	LineItem    string
	Keywords    []string
}

// Taxonomy is the read-only budget forest plus per-year default budgets.
// Values returned from its methods are copies; callers cannot mutate it.
type Taxonomy struct {
	categories []Category
	entries    []Entry
	budgets    []*BudgetBook
	synthetic  []SyntheticRow
}

// New builds a Taxonomy and validates its structure.
func New(categories []Category, budgets []*BudgetBook, synthetic []SyntheticRow) (*Taxonomy, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyTaxonomy
	}

	seen := make(map[string]struct{})
	var entries []Entry
	for _, category := range categories {
		firstInCategory := true
		for _, sub := range category.Subcategories {
			firstInSub := true
			for _, item := range sub.LineItems {
				if strings.TrimSpace(item) == "" {
					return nil, fmt.Errorf("%w: %s/%s", ErrEmptyLineItem, category.Name, sub.Name)
				}
				if _, dup := seen[item]; dup {
					return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, item)
				}
				seen[item] = struct{}{}

				entries = append(entries, Entry{
					Category:           category.Name,
					Subcategory:        sub.Name,
					LineItem:           item,
					FirstInCategory:    firstInCategory,
					FirstInSubcategory: firstInSub,
				})
				firstInCategory = false
				firstInSub = false
			}
		}
	}

	for _, row := range synthetic {
		if len(row.Keywords) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoKeywordsSet, row.LineItem)
		}
	}

	return &Taxonomy{
		categories: cloneCategories(categories),
		entries:    entries,
		budgets:    budgets,
		synthetic:  cloneSynthetic(synthetic),
	}, nil
}

// Categories returns the forest in insertion order.
func (t *Taxonomy) Categories() []Category {
	return cloneCategories(t.categories)
}

// Entries returns every line item in category -> subcategory -> item order.
func (t *Taxonomy) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// LineItems returns the flat list of line items in taxonomy order.
func (t *Taxonomy) LineItems() []string {
	items := make([]string, len(t.entries))
	for i, e := range t.entries {
		items[i] = e.LineItem
	}
	return items
}

// SyntheticRows returns the keyword-matched rows used by research summaries.
func (t *Taxonomy) SyntheticRows() []SyntheticRow {
	return cloneSynthetic(t.synthetic)
}

// Years lists the configured fiscal years in file order.
func (t *Taxonomy) Years() []string {
	years := make([]string, len(t.budgets))
	for i, b := range t.budgets {
		years[i] = b.Year()
	}
	return years
}

// Budget returns the default budget book for a fiscal year.
func (t *Taxonomy) Budget(year string) (*BudgetBook, error) {
	for _, b := range t.budgets {
		if b.Year() == year {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownYear, year)
}

// BudgetBooks returns every configured year's budget book.
func (t *Taxonomy) BudgetBooks() []*BudgetBook {
	out := make([]*BudgetBook, len(t.budgets))
	copy(out, t.budgets)
	return out
}

// AllBudgetItems returns the sorted union of budget items across every year.
func (t *Taxonomy) AllBudgetItems() []string {
	set := make(map[string]struct{})
	for _, b := range t.budgets {
		for _, e := range b.entries {
			set[e.Item] = struct{}{}
		}
	}

	items := make([]string, 0, len(set))
	for item := range set {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// BudgetEntry is a single default amount for a line item.
type BudgetEntry struct {
	Item   string
	Amount decimal.Decimal
}

// BudgetBook holds one fiscal year's default budgets in their configured order.
type BudgetBook struct {
	year    string
	entries []BudgetEntry
	index   map[string]decimal.Decimal
}

// NewBudgetBook builds a book from ordered entries. Later duplicates are ignored.
func NewBudgetBook(year string, entries []BudgetEntry) *BudgetBook {
	book := &BudgetBook{
		year:  year,
		index: make(map[string]decimal.Decimal, len(entries)),
	}
	for _, e := range entries {
		if _, exists := book.index[e.Item]; exists {
			continue
		}
		book.index[e.Item] = e.Amount
		book.entries = append(book.entries, e)
	}
	return book
}

func (b *BudgetBook) Year() string {
	return b.year
}

// Entries returns the book in configured order.
func (b *BudgetBook) Entries() []BudgetEntry {
	out := make([]BudgetEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Exact returns the amount configured for exactly this item.
func (b *BudgetBook) Exact(item string) (decimal.Decimal, bool) {
	amount, ok := b.index[item]
	return amount, ok
}

// Containing scans entries in order and returns the first whose key contains
// the item or is contained by it.
func (b *BudgetBook) Containing(item string) (decimal.Decimal, bool) {
	if item == "" {
		return decimal.Zero, false
	}
	for _, e := range b.entries {
		if strings.Contains(item, e.Item) || strings.Contains(e.Item, item) {
			return e.Amount, true
		}
	}
	return decimal.Zero, false
}

// Lookup is the two-phase budget lookup: exact, then containment, then zero.
func (b *BudgetBook) Lookup(item string) decimal.Decimal {
	if amount, ok := b.Exact(item); ok {
		return amount
	}
	if amount, ok := b.Containing(item); ok {
		return amount
	}
	return decimal.Zero
}

// LookupExact returns the exact amount or zero.
func (b *BudgetBook) LookupExact(item string) decimal.Decimal {
	amount, _ := b.Exact(item)
	return amount
}

// Total sums every configured amount, including items outside the forest.
func (b *BudgetBook) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range b.entries {
		total = total.Add(e.Amount)
	}
	return total
}

func cloneCategories(in []Category) []Category {
	out := make([]Category, len(in))
	for i, c := range in {
		subs := make([]Subcategory, len(c.Subcategories))
		for j, s := range c.Subcategories {
			items := make([]string, len(s.LineItems))
			copy(items, s.LineItems)
			subs[j] = Subcategory{Name: s.Name, LineItems: items}
		}
		out[i] = Category{Name: c.Name, Subcategories: subs}
	}
	return out
}

func cloneSynthetic(in []SyntheticRow) []SyntheticRow {
	out := make([]SyntheticRow, len(in))
	for i, r := range in {
		keywords := make([]string, len(r.Keywords))
		copy(keywords, r.Keywords)
		out[i] = SyntheticRow{
			Category:    r.Category,
			Subcategory: r.Subcategory,
			LineItem:    r.LineItem,
			Keywords:    keywords,
		}
	}
	return out
}
