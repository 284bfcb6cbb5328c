package locale

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailable(t *testing.T) {
	assert.Equal(t, []string{"en", "tr"}, Available())
}

func TestLoad_DefaultsToTurkish(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "tr", c.Code)
	assert.Equal(t, "Bilinmeyen Grup", c.Placeholders.GroupName)
	assert.Equal(t, "Açıklama bulunamadı.", c.Placeholders.Description)
	assert.Equal(t, "Genel", c.Placeholders.Category)
	assert.Equal(t, "Bilinmiyor", c.Placeholders.Members)
	assert.Equal(t, "Kaynak", c.Placeholders.SourceTitle)
	assert.Equal(t, "Sonuçlar işlenirken bir hata oluştu. Lütfen tekrar deneyin.", c.Messages.ParseFailure)
	assert.Equal(t, "Bir hata oluştu.", c.Messages.Generic)
	assert.Len(t, c.Page.Features, 3)
}

func TestLoad_English(t *testing.T) {
	c, err := Load("en")
	require.NoError(t, err)

	assert.Equal(t, "Source", c.Placeholders.SourceTitle)
	assert.Equal(t, "Unknown Group", c.Placeholders.GroupName)
}

func TestLoad_UnknownLocale(t *testing.T) {
	c, err := Load("xx")

	assert.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "unknown locale")
}

func TestRenderPrompt_EmbedsKeywordAndBounds(t *testing.T) {
	for _, code := range Available() {
		t.Run(code, func(t *testing.T) {
			c, err := Load(code)
			require.NoError(t, err)

			prompt, err := c.RenderPrompt(PromptData{Keyword: "yazılım", Year: 2026, MinItems: 4, MaxItems: 8})
			require.NoError(t, err)

			assert.Contains(t, prompt, `"yazılım"`)
			assert.Contains(t, prompt, "2025 2026")
			assert.Contains(t, prompt, "4")
			assert.Contains(t, prompt, "8")
			assert.Contains(t, prompt, "JSON")
			assert.Contains(t, prompt, `"estimatedMembers"`)
			assert.Contains(t, prompt, `"tags"`)
			assert.False(t, strings.HasPrefix(prompt, "\n"))
		})
	}
}

func TestLoadWithOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.toml")
	content := `
[placeholders]
source_title = "Quelle"

[page]
submit = "Suchen"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadWithOverrides("en", path)
	require.NoError(t, err)

	assert.Equal(t, "Quelle", c.Placeholders.SourceTitle)
	assert.Equal(t, "Suchen", c.Page.Submit)
	// untouched keys keep their embedded values
	assert.Equal(t, "Unknown Group", c.Placeholders.GroupName)
	assert.Equal(t, "Searching", c.Page.Searching)
}

func TestLoadWithOverrides_RejectsBrokenTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[prompt]\ntemplate = \"{{.Keyword\"\n"), 0o644))

	_, err := LoadWithOverrides("en", path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid prompt template")
}

func TestLoadWithOverrides_MissingFile(t *testing.T) {
	_, err := LoadWithOverrides("tr", filepath.Join(t.TempDir(), "nope.toml"))

	assert.Error(t, err)
}

func TestPageText_Formatters(t *testing.T) {
	c, err := Load("en")
	require.NoError(t, err)

	assert.Equal(t, `Results: "go"`, c.Page.ResultsHeadingFor("go"))
	assert.Equal(t, "5 groups found", c.Page.ResultsCountFor(5))
	assert.Equal(t, `No results for "go".`, c.Page.NoResultsFor("go"))
}
