// Package issues implements the parameter-validation and
// response-normalization layer between MCP tool callers and the GitHub
// Issues API: typed input schemas, search-query construction, defensive
// field extraction from upstream JSON, markdown/JSON rendering, and the
// classification of transport failures into user-facing messages.
//
// Everything in this package is pure and synchronous; the actual HTTP
// calls live in internal/githubapi.
package issues

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// IssueState filters issues by their open/closed state.
type IssueState string

const (
	StateOpen   IssueState = "open"
	StateClosed IssueState = "closed"
	StateAll    IssueState = "all"
)

// SortBy selects the field results are sorted on.
type SortBy string

const (
	SortCreated  SortBy = "created"
	SortUpdated  SortBy = "updated"
	SortComments SortBy = "comments"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ResponseFormat selects the rendered output shape.
type ResponseFormat string

const (
	FormatMarkdown ResponseFormat = "markdown"
	FormatJSON     ResponseFormat = "json"
)

// Pagination and size limits shared by all operations.
const (
	DefaultPerPage = 10
	MaxPerPage     = 30

	MaxQueryLength  = 200
	MaxLabelsLength = 100

	DefaultMaxComments = 5
	MaxMaxComments     = 20
)

// ValidationError reports a parameter that failed validation. It is
// raised before any network activity and never reaches the API error
// classifier.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Message)
}

// SearchInput holds validated parameters for search_openvino_issues.
type SearchInput struct {
	Query   string
	State   IssueState
	Labels  string
	Sort    SortBy
	Order   SortOrder
	PerPage int
	Page    int
	Format  ResponseFormat
}

// DetailsInput holds validated parameters for get_openvino_issue_details.
type DetailsInput struct {
	IssueNumber     int
	IncludeComments bool
	MaxComments     int
	Format          ResponseFormat
}

// ByLabelInput holds validated parameters for list_openvino_issues_by_label.
type ByLabelInput struct {
	Labels  string
	State   IssueState
	Sort    SortBy
	Order   SortOrder
	PerPage int
	Page    int
	Format  ResponseFormat
}

// ParseSearchInput validates the raw MCP argument map into a
// SearchInput. Unknown keys are rejected, string fields are trimmed
// before validation, and enum values outside their closed sets fail
// rather than being coerced.
func ParseSearchInput(args map[string]any) (SearchInput, error) {
	in := SearchInput{
		State:   StateOpen,
		Sort:    SortCreated,
		Order:   OrderDesc,
		PerPage: DefaultPerPage,
		Page:    1,
		Format:  FormatMarkdown,
	}

	if err := rejectUnknownKeys(args,
		"query", "state", "labels", "sort", "order", "per_page", "page", "response_format"); err != nil {
		return SearchInput{}, err
	}

	query, ok, err := stringArg(args, "query")
	if err != nil {
		return SearchInput{}, err
	}
	if !ok {
		return SearchInput{}, &ValidationError{Field: "query", Message: "required"}
	}
	if n := utf8.RuneCountInString(query); n < 1 || n > MaxQueryLength {
		return SearchInput{}, &ValidationError{
			Field:   "query",
			Message: fmt.Sprintf("must be between 1 and %d characters", MaxQueryLength),
		}
	}
	in.Query = query

	if labels, ok, err := stringArg(args, "labels"); err != nil {
		return SearchInput{}, err
	} else if ok {
		if utf8.RuneCountInString(labels) > MaxLabelsLength {
			return SearchInput{}, &ValidationError{
				Field:   "labels",
				Message: fmt.Sprintf("must be at most %d characters", MaxLabelsLength),
			}
		}
		in.Labels = labels
	}

	if err := parseListFilters(args, &in.State, &in.Sort, &in.Order, &in.PerPage, &in.Page); err != nil {
		return SearchInput{}, err
	}
	if err := parseFormat(args, &in.Format); err != nil {
		return SearchInput{}, err
	}

	return in, nil
}

// ParseDetailsInput validates the raw MCP argument map into a
// DetailsInput.
func ParseDetailsInput(args map[string]any) (DetailsInput, error) {
	in := DetailsInput{
		MaxComments: DefaultMaxComments,
		Format:      FormatMarkdown,
	}

	if err := rejectUnknownKeys(args,
		"issue_number", "include_comments", "max_comments", "response_format"); err != nil {
		return DetailsInput{}, err
	}

	number, ok, err := intArg(args, "issue_number")
	if err != nil {
		return DetailsInput{}, err
	}
	if !ok {
		return DetailsInput{}, &ValidationError{Field: "issue_number", Message: "required"}
	}
	if number < 1 {
		return DetailsInput{}, &ValidationError{Field: "issue_number", Message: "must be at least 1"}
	}
	in.IssueNumber = number

	if include, ok, err := boolArg(args, "include_comments"); err != nil {
		return DetailsInput{}, err
	} else if ok {
		in.IncludeComments = include
	}

	if max, ok, err := intArg(args, "max_comments"); err != nil {
		return DetailsInput{}, err
	} else if ok {
		if max < 1 || max > MaxMaxComments {
			return DetailsInput{}, &ValidationError{
				Field:   "max_comments",
				Message: fmt.Sprintf("must be between 1 and %d", MaxMaxComments),
			}
		}
		in.MaxComments = max
	}

	if err := parseFormat(args, &in.Format); err != nil {
		return DetailsInput{}, err
	}

	return in, nil
}

// ParseByLabelInput validates the raw MCP argument map into a
// ByLabelInput. Labels are required here, unlike search.
func ParseByLabelInput(args map[string]any) (ByLabelInput, error) {
	in := ByLabelInput{
		State:   StateOpen,
		Sort:    SortCreated,
		Order:   OrderDesc,
		PerPage: DefaultPerPage,
		Page:    1,
		Format:  FormatMarkdown,
	}

	if err := rejectUnknownKeys(args,
		"labels", "state", "sort", "order", "per_page", "page", "response_format"); err != nil {
		return ByLabelInput{}, err
	}

	labels, ok, err := stringArg(args, "labels")
	if err != nil {
		return ByLabelInput{}, err
	}
	if !ok {
		return ByLabelInput{}, &ValidationError{Field: "labels", Message: "required"}
	}
	if n := utf8.RuneCountInString(labels); n < 1 || n > MaxLabelsLength {
		return ByLabelInput{}, &ValidationError{
			Field:   "labels",
			Message: fmt.Sprintf("must be between 1 and %d characters", MaxLabelsLength),
		}
	}
	in.Labels = labels

	if err := parseListFilters(args, &in.State, &in.Sort, &in.Order, &in.PerPage, &in.Page); err != nil {
		return ByLabelInput{}, err
	}
	if err := parseFormat(args, &in.Format); err != nil {
		return ByLabelInput{}, err
	}

	return in, nil
}

// ─── Private Helpers ────────────────────────────────────────────────────────

// parseListFilters handles the filter/pagination fields shared by the
// search and list-by-label operations.
func parseListFilters(args map[string]any, state *IssueState, sort *SortBy, order *SortOrder, perPage, page *int) error {
	if s, ok, err := stringArg(args, "state"); err != nil {
		return err
	} else if ok {
		switch IssueState(s) {
		case StateOpen, StateClosed, StateAll:
			*state = IssueState(s)
		default:
			return &ValidationError{Field: "state", Message: "must be one of: open, closed, all"}
		}
	}

	if s, ok, err := stringArg(args, "sort"); err != nil {
		return err
	} else if ok {
		switch SortBy(s) {
		case SortCreated, SortUpdated, SortComments:
			*sort = SortBy(s)
		default:
			return &ValidationError{Field: "sort", Message: "must be one of: created, updated, comments"}
		}
	}

	if s, ok, err := stringArg(args, "order"); err != nil {
		return err
	} else if ok {
		switch SortOrder(s) {
		case OrderAsc, OrderDesc:
			*order = SortOrder(s)
		default:
			return &ValidationError{Field: "order", Message: "must be one of: asc, desc"}
		}
	}

	if n, ok, err := intArg(args, "per_page"); err != nil {
		return err
	} else if ok {
		if n < 1 || n > MaxPerPage {
			return &ValidationError{
				Field:   "per_page",
				Message: fmt.Sprintf("must be between 1 and %d", MaxPerPage),
			}
		}
		*perPage = n
	}

	if n, ok, err := intArg(args, "page"); err != nil {
		return err
	} else if ok {
		if n < 1 {
			return &ValidationError{Field: "page", Message: "must be at least 1"}
		}
		*page = n
	}

	return nil
}

func parseFormat(args map[string]any, format *ResponseFormat) error {
	s, ok, err := stringArg(args, "response_format")
	if err != nil || !ok {
		return err
	}
	switch ResponseFormat(s) {
	case FormatMarkdown, FormatJSON:
		*format = ResponseFormat(s)
	default:
		return &ValidationError{Field: "response_format", Message: "must be one of: markdown, json"}
	}
	return nil
}

// rejectUnknownKeys fails on any argument key that is not part of the
// operation's declared schema. Callers sending misspelled or stale
// parameters get a validation error instead of silent acceptance.
func rejectUnknownKeys(args map[string]any, allowed ...string) error {
	for key := range args {
		known := false
		for _, a := range allowed {
			if key == a {
				known = true
				break
			}
		}
		if !known {
			return &ValidationError{Field: key, Message: "unknown parameter"}
		}
	}
	return nil
}

// stringArg extracts a trimmed string argument. The second return is
// false when the key is absent.
func stringArg(args map[string]any, key string) (string, bool, error) {
	raw, present := args[key]
	if !present || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, &ValidationError{Field: key, Message: "must be a string"}
	}
	return strings.TrimSpace(s), true, nil
}

// intArg extracts an integer argument. JSON numbers arrive as float64;
// non-integral values are rejected rather than rounded.
func intArg(args map[string]any, key string) (int, bool, error) {
	raw, present := args[key]
	if !present || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false, &ValidationError{Field: key, Message: "must be an integer"}
		}
		return int(v), true, nil
	case int:
		return v, true, nil
	case int64:
		return int(v), true, nil
	default:
		return 0, false, &ValidationError{Field: key, Message: "must be an integer"}
	}
}

// boolArg extracts a boolean argument.
func boolArg(args map[string]any, key string) (bool, bool, error) {
	raw, present := args[key]
	if !present || raw == nil {
		return false, false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, false, &ValidationError{Field: key, Message: "must be a boolean"}
	}
	return b, true, nil
}
