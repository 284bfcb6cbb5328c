// ABOUTME: Locale catalogs holding every user-facing string and the search prompt template
// ABOUTME: Catalogs are embedded TOML files that an optional external file can override

package locale

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultCode is the locale used when none is configured
const DefaultCode = "tr"

//go:embed catalogs/*.toml
var catalogFS embed.FS

// Catalog holds the text of one locale
type Catalog struct {
	Code         string       `toml:"code"`
	Prompt       PromptText   `toml:"prompt"`
	Placeholders Placeholders `toml:"placeholders"`
	Messages     Messages     `toml:"messages"`
	Page         PageText     `toml:"page"`

	prompt *template.Template
}

// PromptText holds the search prompt template.
// The template receives PromptData.
type PromptText struct {
	Template string `toml:"template"`
}

// PromptData is the data available to the prompt template
type PromptData struct {
	Keyword  string
	Year     int
	LastYear int
	MinItems int
	MaxItems int
}

// Placeholders are the defaults substituted for missing result fields
type Placeholders struct {
	GroupName   string `toml:"group_name"`
	Description string `toml:"description"`
	Category    string `toml:"category"`
	Members     string `toml:"members"`
	SourceTitle string `toml:"source_title"`
}

// Messages are the user-facing error messages
type Messages struct {
	ParseFailure string `toml:"parse_failure"`
	Generic      string `toml:"generic"`
}

// Feature is one entry of the informational panel
type Feature struct {
	Title string `toml:"title"`
	Text  string `toml:"text"`
}

// PageText holds the strings rendered by the presentation layers
type PageText struct {
	Title            string    `toml:"title"`
	Badge            string    `toml:"badge"`
	Headline         string    `toml:"headline"`
	Tagline          string    `toml:"tagline"`
	InputPlaceholder string    `toml:"input_placeholder"`
	Submit           string    `toml:"submit"`
	Searching        string    `toml:"searching"`
	ResultsHeading   string    `toml:"results_heading"`
	ResultsCount     string    `toml:"results_count"`
	NoResults        string    `toml:"no_results"`
	NoResultsHint    string    `toml:"no_results_hint"`
	SourcesHeading   string    `toml:"sources_heading"`
	Join             string    `toml:"join"`
	SearchGoogle     string    `toml:"search_google"`
	Members          string    `toml:"members"`
	VerifiedLink     string    `toml:"verified_link"`
	JoinSearchSuffix string    `toml:"join_search_suffix"`
	Footer           string    `toml:"footer"`
	KeyHelp          string    `toml:"key_help"`
	Features         []Feature `toml:"features"`
}

// Available returns the codes of the embedded catalogs
func Available() []string {
	entries, err := catalogFS.ReadDir("catalogs")
	if err != nil {
		return nil
	}

	codes := make([]string, 0, len(entries))
	for _, e := range entries {
		codes = append(codes, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(codes)
	return codes
}

// Load returns the embedded catalog for code
func Load(code string) (*Catalog, error) {
	if code == "" {
		code = DefaultCode
	}

	data, err := catalogFS.ReadFile("catalogs/" + code + ".toml")
	if err != nil {
		return nil, fmt.Errorf("unknown locale %q (available: %s)", code, strings.Join(Available(), ", "))
	}

	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode locale %q: %w", code, err)
	}

	if err := c.compile(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadWithOverrides loads the embedded catalog for code and applies the keys
// present in the TOML file at path. An empty path means no overrides.
func LoadWithOverrides(code, path string) (*Catalog, error) {
	c, err := Load(code)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file: %w", err)
	}

	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to decode locale file %s: %w", path, err)
	}

	if err := c.compile(); err != nil {
		return nil, err
	}
	return c, nil
}

// compile validates the catalog and parses the prompt template
func (c *Catalog) compile() error {
	if strings.TrimSpace(c.Prompt.Template) == "" {
		return errors.New("locale prompt template cannot be empty")
	}

	p := c.Placeholders
	if p.GroupName == "" || p.Description == "" || p.Category == "" || p.SourceTitle == "" {
		return errors.New("locale placeholders for name, description, category and source title are required")
	}

	tmpl, err := template.New("prompt").Option("missingkey=error").Parse(c.Prompt.Template)
	if err != nil {
		return fmt.Errorf("invalid prompt template: %w", err)
	}
	c.prompt = tmpl
	return nil
}

// RenderPrompt renders the prompt template for data.
// Zero Year/LastYear are filled from the current date.
func (c *Catalog) RenderPrompt(data PromptData) (string, error) {
	if c.prompt == nil {
		if err := c.compile(); err != nil {
			return "", err
		}
	}
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}
	if data.LastYear == 0 {
		data.LastYear = data.Year - 1
	}

	var buf bytes.Buffer
	if err := c.prompt.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// ResultsHeadingFor formats the results heading for query
func (p PageText) ResultsHeadingFor(query string) string {
	return fmt.Sprintf(p.ResultsHeading, query)
}

// ResultsCountFor formats the result count line
func (p PageText) ResultsCountFor(n int) string {
	return fmt.Sprintf(p.ResultsCount, n)
}

// NoResultsFor formats the "no results" line for query
func (p PageText) NoResultsFor(query string) string {
	return fmt.Sprintf(p.NoResults, query)
}
