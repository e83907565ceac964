// Package dataset provides the per-locale string tables the fable sampling
// modules draw from.
//
// Datasets are plain in-code tables keyed by BCP-47 locale tag. A locale
// may ship partial tables; Resolve merges it over the base locale so every
// table a module samples is always populated.
package dataset

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/language"

	"github.com/fablegen/fable/internal/number"
)

// BaseLocale is the complete locale every partial locale falls back to.
const BaseLocale = "en"

// Weighted pairs a table value with its relative selection weight.
type Weighted struct {
	Value  string
	Weight int64
}

// Dataset holds the string tables for one locale.
type Dataset struct {
	// Locale is the resolved BCP-47 tag the tables belong to.
	Locale string

	FirstNames       []string
	LastNames        []string
	NamePrefixes     []string
	NameSuffixes     []string
	FullNamePatterns []Weighted

	CompanySuffixes []string
	CompanyPatterns []Weighted
	BuzzAdjectives  []string
	BuzzNouns       []string

	Words []string

	EmailProviders []string
}

// registry maps locale tags to their (possibly partial) datasets.
var registry = map[string]Dataset{
	"en":    en,
	"pt-BR": ptBR,
	"de":    de,
}

// supported lists the registry tags in matcher order; the base locale comes
// first so unknown requests fall back to it.
var supported = []language.Tag{
	language.MustParse("en"),
	language.MustParse("pt-BR"),
	language.MustParse("de"),
}

var matcher = language.NewMatcher(supported)

// Locales returns the registered locale tags in sorted order.
func Locales() []string {
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Resolve returns the merged dataset for a locale. The tag is matched
// against the registered locales (so "en-AU" resolves to "en" and "pt"
// to "pt-BR"), and any table the matched locale leaves empty is filled
// from the base locale. An empty locale resolves to the base.
func Resolve(locale string) (Dataset, error) {
	if locale == "" {
		locale = BaseLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Dataset{}, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	_, index, _ := matcher.Match(tag)
	matched := supported[index].String()

	merged := merge(registry[BaseLocale], registry[matched])
	merged.Locale = matched
	return merged, nil
}

// merge overlays a partial dataset on the base, table by table.
func merge(base, over Dataset) Dataset {
	pick := func(over, base []string) []string {
		if len(over) > 0 {
			return over
		}
		return base
	}
	pickWeighted := func(over, base []Weighted) []Weighted {
		if len(over) > 0 {
			return over
		}
		return base
	}

	return Dataset{
		FirstNames:       pick(over.FirstNames, base.FirstNames),
		LastNames:        pick(over.LastNames, base.LastNames),
		NamePrefixes:     pick(over.NamePrefixes, base.NamePrefixes),
		NameSuffixes:     pick(over.NameSuffixes, base.NameSuffixes),
		FullNamePatterns: pickWeighted(over.FullNamePatterns, base.FullNamePatterns),
		CompanySuffixes:  pick(over.CompanySuffixes, base.CompanySuffixes),
		CompanyPatterns:  pickWeighted(over.CompanyPatterns, base.CompanyPatterns),
		BuzzAdjectives:   pick(over.BuzzAdjectives, base.BuzzAdjectives),
		BuzzNouns:        pick(over.BuzzNouns, base.BuzzNouns),
		Words:            pick(over.Words, base.Words),
		EmailProviders:   pick(over.EmailProviders, base.EmailProviders),
	}
}

// ErrEmptyTable indicates a pick was attempted against a table with no
// entries.
var ErrEmptyTable = errors.New("dataset table is empty")

// Pick returns a uniformly chosen element of table, consuming one draw
// (none when the table holds a single entry).
func Pick(s *number.Sampler, table []string) (string, error) {
	if len(table) == 0 {
		return "", ErrEmptyTable
	}
	max := int64(len(table) - 1)
	i, err := s.Int(number.IntOptions{Max: &max})
	if err != nil {
		return "", err
	}
	return table[i], nil
}

// PickWeighted returns an element of table with probability proportional
// to its weight, consuming one draw over the cumulative weight domain.
func PickWeighted(s *number.Sampler, table []Weighted) (string, error) {
	if len(table) == 0 {
		return "", ErrEmptyTable
	}
	var total int64
	for _, entry := range table {
		if entry.Weight <= 0 {
			return "", fmt.Errorf("%w: weight for %q must be positive", number.ErrInvalidArgument, entry.Value)
		}
		total += entry.Weight
	}

	max := total - 1
	n, err := s.Int(number.IntOptions{Max: &max})
	if err != nil {
		return "", err
	}
	for _, entry := range table {
		if n < entry.Weight {
			return entry.Value, nil
		}
		n -= entry.Weight
	}
	return table[len(table)-1].Value, nil
}
