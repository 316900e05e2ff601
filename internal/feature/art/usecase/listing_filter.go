package usecase

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"art_backend/internal/apperror"
)

const (
	// PageSize is the fixed public-listing page size.
	PageSize = 10

	// maxNameQueryLength is the longest accepted name filter.
	maxNameQueryLength = 50

	// sortOldest is the only accepted sort literal; it flips the default
	// newest-first order.
	sortOldest = "oldest"
)

// ListingFilter is the normalized descriptor compiled from the public
// listing query string. Every field has passed validation; it is the only
// input the repository receives for the public listing, so unvalidated user
// input never reaches the query builder.
type ListingFilter struct {
	// NamePattern is the lowercased substring to match against names.
	// Empty means no name filter.
	NamePattern string

	// TypeID filters by category. Zero means no type filter.
	TypeID uint

	// OldestFirst orders by creation time ascending instead of the default
	// descending.
	OldestFirst bool

	Offset int
	Limit  int
}

// isNumeric reports whether s parses fully as a number, matching how a
// JSON-ish query layer would coerce it (so "12e3" and "2.5" are numeric).
func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// ParseListingQuery validates the raw public-listing query parameters and
// compiles them into a ListingFilter. Fields are checked in order name,
// typeId, sort, page; the first violation wins.
func ParseListingQuery(name, typeID, sort, page string) (*ListingFilter, error) {
	f := &ListingFilter{Limit: PageSize}

	if name != "" {
		if isNumeric(name) {
			return nil, apperror.BadRequest("name query must be a string")
		}
		if utf8.RuneCountInString(name) > maxNameQueryLength {
			return nil, apperror.BadRequest("name maximum length is 50 characters")
		}
		f.NamePattern = strings.ToLower(name)
	}

	if typeID != "" {
		v, err := strconv.ParseFloat(typeID, 64)
		if err != nil {
			return nil, apperror.BadRequest("typeId query must be a number")
		}
		if v < 1 {
			return nil, apperror.BadRequest("typeId minimum value is 1")
		}
		if v != math.Trunc(v) {
			return nil, apperror.BadRequest("typeId cannot be a float")
		}
		f.TypeID = uint(v)
	}

	if sort != "" {
		if isNumeric(sort) {
			return nil, apperror.BadRequest("sort query must be a string")
		}
		if sort != sortOldest {
			return nil, apperror.BadRequest("sort can only be the word 'oldest'")
		}
		f.OldestFirst = true
	}

	currentPage := 1
	if page != "" {
		v, err := strconv.ParseFloat(page, 64)
		if err != nil {
			return nil, apperror.BadRequest("page query must be a number")
		}
		if v < 1 {
			return nil, apperror.BadRequest("page minimum value is 1")
		}
		if v != math.Trunc(v) {
			return nil, apperror.BadRequest("page cannot be a float")
		}
		currentPage = int(v)
	}
	f.Offset = (currentPage - 1) * PageSize

	return f, nil
}
