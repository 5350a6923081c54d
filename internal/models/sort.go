package models

import (
	"fmt"
	"strings"
)

type SortField string

const (
	SortByTitle            SortField = "title"
	SortByDeveloper        SortField = "developer"
	SortByPlatform         SortField = "platform"
	SortByReleaseYear      SortField = "year"
	SortByModificationDate SortField = "modification_date"
)

type SortKey struct {
	Field SortField
	Desc  bool
}

var (
	DefaultSortKey = SortKey{Field: SortByTitle}
	RecentsSortKey = SortKey{Field: SortByModificationDate, Desc: true}
)

// ParseSortKey parses "<field>_asc" or "<field>_desc", e.g. "title_asc" or
// "modification_date_desc".
func ParseSortKey(s string) (SortKey, error) {
	idx := strings.LastIndex(s, "_")
	if idx <= 0 {
		return SortKey{}, fmt.Errorf("invalid sort key: %s", s)
	}

	var key SortKey
	switch s[idx+1:] {
	case "asc":
	case "desc":
		key.Desc = true
	default:
		return SortKey{}, fmt.Errorf("invalid sort direction: %s", s)
	}

	field := SortField(s[:idx])
	switch field {
	case SortByTitle, SortByDeveloper, SortByPlatform, SortByReleaseYear, SortByModificationDate:
		key.Field = field
	default:
		return SortKey{}, fmt.Errorf("invalid sort field: %s", s)
	}
	return key, nil
}

func (k SortKey) String() string {
	if k.Desc {
		return string(k.Field) + "_desc"
	}
	return string(k.Field) + "_asc"
}
