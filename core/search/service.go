// ABOUTME: Search service finds community chat groups for a keyword through a grounded AI call
// ABOUTME: Provides business logic for prompt, extraction and normalization independent of HTTP layer

package search

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"telescout-api/core/domain"
	coreerrors "telescout-api/core/errors"
	"telescout-api/core/interfaces"
	"telescout-api/pkg/locale"
)

// generatorAPI names the remote capability in RemoteCallError
const generatorAPI = "generator"

// Option configures a SearchService
type Option func(*SearchService)

// WithStrategies replaces the extraction strategies
func WithStrategies(strategies ...Strategy) Option {
	return func(s *SearchService) {
		if len(strategies) > 0 {
			s.strategies = strategies
		}
	}
}

// WithValidator adds an item validator run before normalization
func WithValidator(v Validator) Option {
	return func(s *SearchService) {
		if v != nil {
			s.validators = append(s.validators, v)
		}
	}
}

// SearchService handles community group discovery
type SearchService struct {
	deps       interfaces.Dependencies
	catalog    *locale.Catalog
	strategies []Strategy
	validators []Validator
	logger     interfaces.Logger
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, catalog *locale.Catalog, opts ...Option) *SearchService {
	s := &SearchService{
		deps:       deps,
		catalog:    catalog,
		strategies: DefaultStrategies(),
		logger:     deps.Logger,
	}
	if s.logger == nil {
		s.logger = interfaces.NopLogger{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// validateKeyword validates the search keyword
func (s *SearchService) validateKeyword(keyword string) error {
	if keyword == "" {
		return &coreerrors.ValidationError{Field: "keyword", Message: "keyword cannot be empty"}
	}

	return nil
}

func (s *SearchService) now() time.Time {
	if s.deps.Now != nil {
		return s.deps.Now()
	}
	return time.Now()
}

func (s *SearchService) promptData(keyword string) locale.PromptData {
	return locale.PromptData{
		Keyword:  keyword,
		Year:     s.now().Year(),
		MinItems: MinRequestedGroups,
		MaxItems: MaxRequestedGroups,
	}
}

// FindGroups asks the grounded model for community groups matching keyword.
// Failures are a *errors.RemoteCallError when the call itself failed and a
// *errors.ExtractionParseError when the answer could not be read.
func (s *SearchService) FindGroups(ctx context.Context, keyword string) (*domain.SearchOutcome, error) {
	keyword = strings.TrimSpace(keyword)
	if err := s.validateKeyword(keyword); err != nil {
		return nil, err
	}

	if s.catalog == nil {
		return nil, errors.New("locale catalog not configured")
	}
	if s.deps.Generator == nil {
		return nil, errors.New("generator not configured")
	}

	prompt, err := s.BuildPrompt(keyword)
	if err != nil {
		return nil, err
	}

	started := s.now()
	resp, err := s.deps.Generator.GenerateGrounded(ctx, prompt)
	if err != nil {
		s.logger.Error("Grounded generation failed", map[string]interface{}{
			"keyword": keyword,
			"error":   err.Error(),
		})
		var remoteErr *coreerrors.RemoteCallError
		if errors.As(err, &remoteErr) {
			return nil, err
		}
		return nil, &coreerrors.RemoteCallError{API: generatorAPI, Err: err}
	}
	if resp == nil {
		resp = &interfaces.GroundedResponse{}
	}

	sources := mapSources(resp.Chunks, s.catalog.Placeholders.SourceTitle)

	groups, err := s.parseGroups(resp.Text, started)
	if err != nil {
		fields := map[string]interface{}{
			"keyword": keyword,
			"error":   err.Error(),
		}
		var parseErr *coreerrors.ExtractionParseError
		if errors.As(err, &parseErr) {
			fields["strategy"] = parseErr.Strategy
			fields["candidate"] = excerpt(parseErr.Candidate, 200)
		}
		s.logger.Warn("Failed to read groups from model answer", fields)
		return nil, err
	}

	s.logger.Info("Group search completed", map[string]interface{}{
		"keyword":     keyword,
		"groups":      len(groups),
		"sources":     len(sources),
		"duration_ms": s.now().Sub(started).Milliseconds(),
	})

	return &domain.SearchOutcome{Groups: groups, Sources: sources}, nil
}

// excerpt shortens s to at most n runes for logging
func excerpt(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "..."
}
