package domain

import (
	"fmt"
	"sort"
)

// SortOrder maps one normalized post-sort name onto the strings Lemmy and
// kbin use in URLs. An empty platform value means that platform does not
// support the ordering; URL generation then leaves the ordering out.
type SortOrder struct {
	Lemmy string
	Kbin  string
}

var sortOrders = map[string]SortOrder{
	"top":          {Lemmy: "TopAll", Kbin: "top"},
	"hot":          {Lemmy: "Hot", Kbin: "hot"},
	"active":       {Lemmy: "Active", Kbin: "active"},
	"new":          {Lemmy: "New", Kbin: "newest"},
	"old":          {Lemmy: "Old"},
	"mostcomments": {Lemmy: "MostComments", Kbin: "commented"},
	"newcomments":  {Lemmy: "NewComments"},
}

// SortByName resolves a normalized sort name such as "hot" or "top".
func SortByName(name string) (SortOrder, error) {
	s, ok := sortOrders[name]
	if !ok {
		return SortOrder{}, fmt.Errorf("unknown sort order %q (choose from %v)", name, SortNames())
	}
	return s, nil
}

// SortNames lists the accepted sort names in stable order.
func SortNames() []string {
	names := make([]string, 0, len(sortOrders))
	for name := range sortOrders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
