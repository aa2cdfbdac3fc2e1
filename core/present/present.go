package present

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order is the sort direction of a view.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
	// OrderNone keeps the order of the export.
	OrderNone Order = "none"
)

// Export file names used by downloads and published exports.
const (
	NotFollowingBackFile = "not_following_back.txt"
	NotFollowedBackFile  = "you_are_not_following_back.txt"
)

const profileBaseURL = "https://www.instagram.com/"

// ParseOrder parses a sort direction. An empty string means ascending.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderAsc:
		return OrderAsc, nil
	case OrderDesc:
		return OrderDesc, nil
	case OrderNone:
		return OrderNone, nil
	default:
		return "", fmt.Errorf("invalid sort order %q (want asc, desc or none)", s)
	}
}

// Query describes a filtered and sorted view of a result.
type Query struct {
	Search string
	Order  Order
}

// View filters then sorts accounts.
func View(accounts []string, q Query) []string {
	return Sort(Filter(accounts, q.Search), q.Order)
}

// Filter keeps non-empty accounts containing search, ignoring case.
func Filter(accounts []string, search string) []string {
	needle := strings.ToLower(search)
	out := make([]string, 0, len(accounts))
	for _, account := range accounts {
		if account == "" {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(account), needle) {
			continue
		}
		out = append(out, account)
	}
	return out
}

// Sort returns a sorted copy of accounts.
func Sort(accounts []string, order Order) []string {
	out := slices.Clone(accounts)
	if out == nil {
		out = []string{}
	}
	if order == OrderNone {
		return out
	}

	// collate.Collator is not safe for concurrent use.
	c := collate.New(language.English)
	slices.SortStableFunc(out, func(a, b string) int {
		if order == OrderDesc {
			return c.CompareString(b, a)
		}
		return c.CompareString(a, b)
	})
	return out
}

// ExportText joins accounts with newlines.
func ExportText(accounts []string) string {
	return strings.Join(accounts, "\n")
}

// ProfileURL returns the public profile URL of an account.
func ProfileURL(account string) string {
	return profileBaseURL + account
}
