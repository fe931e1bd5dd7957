package validator

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/arcanaland/hearthlodge/internal/card"
	"github.com/arcanaland/hearthlodge/internal/catalog"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	CatalogPath string
	Results     ValidationResults

	records []indexedRecord
}

type indexedRecord struct {
	index  int
	record card.Record
}

func NewValidator(catalogPath string) *Validator {
	return &Validator{
		CatalogPath: catalogPath,
		Results:     ValidationResults{},
	}
}

// Validate checks every record of a card dataset. It only returns an error
// when the file cannot be read or decoded at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateStructure(); err != nil {
		return v.Results, err
	}

	v.validateRecords()
	v.validateNames()
	v.validateSpellDamage()

	return v.Results, nil
}

func (v *Validator) validateStructure() error {
	data, err := os.ReadFile(v.CatalogPath)
	if err != nil {
		return errors.Wrap(err, "reading card dataset")
	}

	raw, err := catalog.Decode(data, catalog.FormatOf(v.CatalogPath))
	if err != nil {
		return err
	}

	items, ok := raw.([]any)
	if !ok {
		return errors.Errorf("card dataset must be a list of records, got %T", raw)
	}

	if len(items) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "card dataset is empty")
	}

	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("record %d: expected a mapping, got %T", i, item))
			continue
		}
		rec := card.Record(m)
		if rec.Name() == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("record %d: name is required", i))
			continue
		}
		v.records = append(v.records, indexedRecord{index: i, record: rec})
	}
	return nil
}

// validateRecords parses each record as its declared type
func (v *Validator) validateRecords() {
	unsupported := map[card.Kind]int{}

	for _, r := range v.records {
		switch kind := r.record.Kind(); kind {
		case card.KindMinion, card.KindSpell, card.KindWeapon:
			if _, err := card.Parse(r.record); err != nil {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("record %d: %v", r.index, err))
			}
		default:
			unsupported[kind]++
		}
	}

	kinds := make([]string, 0, len(unsupported))
	for kind := range unsupported {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		label := kind
		if label == "" {
			label = "(none)"
		}
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%d records of unsupported type %s are ignored by threat resolution",
				unsupported[card.Kind(kind)], label))
	}
}

// validateNames warns about names that appear more than once
func (v *Validator) validateNames() {
	seen := map[string][]int{}
	var order []string
	for _, r := range v.records {
		name := r.record.Name()
		if _, ok := seen[name]; !ok {
			order = append(order, name)
		}
		seen[name] = append(seen[name], r.index)
	}

	for _, name := range order {
		indexes := seen[name]
		if len(indexes) < 2 {
			continue
		}
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("duplicate name %q in records %s (the last one wins)", name, joinInts(indexes)))
	}
}

// validateSpellDamage flags spells that mention damage the text heuristic
// cannot read
func (v *Validator) validateSpellDamage() {
	for _, r := range v.records {
		if r.record.Kind() != card.KindSpell {
			continue
		}
		s, err := card.ParseSpell(r.record)
		if err != nil {
			continue // Already reported
		}
		if s.Damage == 0 && strings.Contains(strings.ToLower(s.Text), "damage") {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("spell %q mentions damage but no fixed amount could be read", s.Name))
		}
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, n := range values {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
