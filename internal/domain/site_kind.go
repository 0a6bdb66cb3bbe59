package domain

import (
	"fmt"
	"strings"
)

// SiteKind selects which site types a query is interested in.
type SiteKind string

const (
	SiteKindAll     SiteKind = "all"
	SiteKindUnknown SiteKind = "unknown"
	SiteKindCommon  SiteKind = "common"
	SiteKindLarge   SiteKind = "large"
)

// Catalog type labels for each specific kind.
var siteKindLabels = map[SiteKind]string{
	SiteKindUnknown: "Unknown",
	SiteKindCommon:  "Common Thargoid Barnacle",
	SiteKindLarge:   "Large Thargoid Barnacle",
}

// ParseSiteKind maps a user supplied filter onto a SiteKind.
// An empty string selects every site.
func ParseSiteKind(s string) (SiteKind, error) {
	k := SiteKind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" || k == SiteKindAll {
		return SiteKindAll, nil
	}
	if _, ok := siteKindLabels[k]; !ok {
		return "", fmt.Errorf("parse site kind %q: %w", s, ErrInvalidSiteKind)
	}
	return k, nil
}

// Report whether a site with the given catalog type belongs to this kind.
func (k SiteKind) Matches(siteType string) bool {
	if k == SiteKindAll || k == "" {
		return true
	}
	label, ok := siteKindLabels[k]
	return ok && siteType == label
}
