// ABOUTME: Decoding and normalization of the extracted JSON array into community groups
// ABOUTME: Fills placeholders for missing fields and maps grounding chunks to citation sources

package search

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"telescout-api/core/domain"
	coreerrors "telescout-api/core/errors"
	"telescout-api/core/interfaces"
	"telescout-api/pkg/locale"
)

// Validator inspects one decoded array element before it is normalized.
// item is nil when the element is not a JSON object. A non-nil error fails
// the whole search as a processing failure.
type Validator func(index int, item map[string]interface{}) error

// RequireName rejects elements without a usable name
func RequireName(index int, item map[string]interface{}) error {
	if _, ok := scalarText(item["name"]); !ok {
		return fmt.Errorf("item %d has no name", index)
	}
	return nil
}

// decodeArray parses candidate as a JSON array of arbitrary elements
func decodeArray(candidate string) ([]interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(candidate))
	dec.UseNumber()

	var payload interface{}
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON value")
	}

	items, ok := payload.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a JSON array, got %T", payload)
	}
	return items, nil
}

// parseGroups turns the model text into normalized groups
func (s *SearchService) parseGroups(text string, stamp time.Time) ([]domain.CommunityGroup, error) {
	candidate, strategy := extractCandidate(text, s.strategies)

	items, err := decodeArray(candidate)
	if err != nil {
		return nil, &coreerrors.ExtractionParseError{Strategy: strategy, Candidate: candidate, Err: err}
	}

	groups := make([]domain.CommunityGroup, 0, len(items))
	for i, raw := range items {
		obj, _ := raw.(map[string]interface{})
		for _, validate := range s.validators {
			if err := validate(i, obj); err != nil {
				return nil, &coreerrors.ExtractionParseError{Strategy: strategy, Candidate: candidate, Err: err}
			}
		}
		groups = append(groups, normalizeGroup(i, obj, stamp, s.catalog.Placeholders))
	}
	return groups, nil
}

// normalizeGroup builds a group from one decoded element, substituting
// placeholders for anything missing or unusable
func normalizeGroup(index int, obj map[string]interface{}, stamp time.Time, p locale.Placeholders) domain.CommunityGroup {
	return domain.CommunityGroup{
		ID:               fmt.Sprintf("group-%d-%d", index, stamp.UnixNano()),
		Name:             textOr(obj["name"], p.GroupName),
		Description:      textOr(obj["description"], p.Description),
		Link:             textOr(obj["link"], ""),
		Category:         textOr(obj["category"], p.Category),
		EstimatedMembers: textOr(obj["estimatedMembers"], p.Members),
		Tags:             tagsOf(obj["tags"]),
	}
}

// textOr returns v as text, or fallback when v is absent, empty, zero, false or not a scalar
func textOr(v interface{}, fallback string) string {
	if s, ok := scalarText(v); ok {
		return s
	}
	return fallback
}

func scalarText(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		if val == "" {
			return "", false
		}
		return val, true
	case json.Number:
		if f, err := val.Float64(); err == nil && f == 0 {
			return "", false
		}
		return val.String(), true
	case bool:
		if !val {
			return "", false
		}
		return "true", true
	}
	return "", false
}

// tagsOf keeps string entries untouched, empty ones included, and renders
// numbers and booleans as text. Nulls, objects and arrays are dropped.
func tagsOf(v interface{}) []string {
	arr, ok := v.([]interface{})
	if !ok {
		return []string{}
	}

	tags := make([]string, 0, len(arr))
	for _, t := range arr {
		switch val := t.(type) {
		case string:
			tags = append(tags, val)
		case json.Number:
			tags = append(tags, val.String())
		case bool:
			tags = append(tags, fmt.Sprint(val))
		}
	}
	return tags
}

// mapSources converts grounding chunks to citation sources, dropping chunks
// without a web reference or URI
func mapSources(chunks []interfaces.GroundingChunk, fallbackTitle string) []domain.CitationSource {
	sources := make([]domain.CitationSource, 0, len(chunks))
	for _, c := range chunks {
		if c.Web == nil {
			continue
		}
		uri := strings.TrimSpace(c.Web.URI)
		if uri == "" {
			continue
		}
		title := strings.TrimSpace(c.Web.Title)
		if title == "" {
			title = fallbackTitle
		}
		sources = append(sources, domain.CitationSource{URI: uri, Title: title})
	}
	return sources
}
