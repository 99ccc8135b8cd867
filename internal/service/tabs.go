package service

import (
	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
)

const tabAll = "all"

type tabSpec struct {
	Key    string
	Label  string
	Status models.Status
}

// statusTabs splits records by status. The leading "all" tab holds every
// record that belongs to one of the status tabs, so its count is the sum of
// the others.
func statusTabs[T any](records []T, status func(T) models.Status, card func(T) dto.Card, specs ...tabSpec) []dto.Tab {
	tabs := make([]dto.Tab, len(specs)+1)
	tabs[0] = dto.Tab{Key: tabAll, Label: "All", Cards: []dto.Card{}}
	index := make(map[models.Status]int, len(specs))
	for i, spec := range specs {
		tabs[i+1] = dto.Tab{Key: spec.Key, Label: spec.Label, Cards: []dto.Card{}}
		index[spec.Status] = i + 1
	}
	for _, record := range records {
		pos, ok := index[status(record)]
		if !ok {
			continue
		}
		c := card(record)
		tabs[0].Cards = append(tabs[0].Cards, c)
		tabs[pos].Cards = append(tabs[pos].Cards, c)
	}
	for i := range tabs {
		tabs[i].Count = len(tabs[i].Cards)
	}
	return tabs
}

// selectTab validates key against the page's tabs. An empty key picks the
// first tab.
func selectTab(page *dto.PageView, key string) error {
	if len(page.Tabs) == 0 {
		if key != "" {
			return appErrors.Clone(appErrors.ErrUnknownTab, "page has no tabs")
		}
		return nil
	}
	if key == "" {
		page.ActiveTab = page.Tabs[0].Key
		return nil
	}
	if _, ok := page.FindTab(key); !ok {
		return appErrors.Clone(appErrors.ErrUnknownTab, "unknown tab "+key)
	}
	page.ActiveTab = key
	return nil
}
