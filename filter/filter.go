// ABOUTME: Generic filter engine for list pages
// ABOUTME: Narrows collections by free-text search and categorical predicates
package filter

import (
	"strconv"
	"strings"

	"github.com/harperreed/crmdash/models"
)

// All disables a categorical filter.
const All = "All"

type Predicate[T any] func(T) bool

// Query describes one list page's filter state. Fields are the searchable
// string fields of T; a record matches Text if any field contains it.
type Query[T any] struct {
	Text       string
	Fields     []func(T) string
	Predicates []Predicate[T]
}

// Apply returns the matching records in their original order. The result is
// never nil and never shares a backing array with items.
func Apply[T any](items []T, q Query[T]) []T {
	needle := strings.ToLower(q.Text)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !matchesText(item, needle, q.Fields) {
			continue
		}
		if !matchesAll(item, q.Predicates) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesText[T any](item T, needle string, fields []func(T) string) bool {
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f(item)), needle) {
			return true
		}
	}
	return false
}

func matchesAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if !p(item) {
			return false
		}
	}
	return true
}

// Equals matches records whose field equals want exactly. An empty want or
// All matches everything.
func Equals[T any](want string, get func(T) string) Predicate[T] {
	return func(item T) bool {
		if want == "" || want == All {
			return true
		}
		return get(item) == want
	}
}

func LeadQuery(text, status string) Query[models.Lead] {
	return Query[models.Lead]{
		Text: text,
		Fields: []func(models.Lead) string{
			func(l models.Lead) string { return l.Name },
			func(l models.Lead) string { return l.Email },
			func(l models.Lead) string { return l.Company },
		},
		Predicates: []Predicate[models.Lead]{
			Equals(status, func(l models.Lead) string { return string(l.Status) }),
		},
	}
}

func CustomerQuery(text, status string) Query[models.Customer] {
	return Query[models.Customer]{
		Text: text,
		Fields: []func(models.Customer) string{
			func(c models.Customer) string { return c.Name },
			func(c models.Customer) string { return c.Email },
			func(c models.Customer) string { return c.Company },
		},
		Predicates: []Predicate[models.Customer]{
			Equals(status, func(c models.Customer) string { return string(c.Status) }),
		},
	}
}

func CampaignQuery(text, status string) Query[models.Campaign] {
	return Query[models.Campaign]{
		Text: text,
		Fields: []func(models.Campaign) string{
			func(c models.Campaign) string { return c.Name },
			func(c models.Campaign) string { return c.Channel },
			func(c models.Campaign) string { return c.TargetAudience },
		},
		Predicates: []Predicate[models.Campaign]{
			Equals(status, func(c models.Campaign) string { return string(c.Status) }),
		},
	}
}

// AdQuery searches ad and campaign names. campaign is the raw navigation
// parameter and is compared against the decimal campaign id; empty means no
// campaign filter. nameOf resolves a campaign id to its name.
func AdQuery(text, status, platform, campaign string, nameOf func(int) string) Query[models.Advertisement] {
	return Query[models.Advertisement]{
		Text: text,
		Fields: []func(models.Advertisement) string{
			func(a models.Advertisement) string { return a.AdName },
			func(a models.Advertisement) string { return nameOf(a.CampaignID) },
		},
		Predicates: []Predicate[models.Advertisement]{
			Equals(status, func(a models.Advertisement) string { return string(a.Status) }),
			Equals(platform, func(a models.Advertisement) string { return a.Platform }),
			func(a models.Advertisement) bool {
				return campaign == "" || strconv.Itoa(a.CampaignID) == campaign
			},
		},
	}
}
