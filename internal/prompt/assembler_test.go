package prompt

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func bikesConfig() Config {
	return Config{
		TopicGuideline: "bikes",
		Role:           RoleCopywriter,
		Task:           ParseTask("Artikel"),
		Language:       LanguageSwedish,
		TextLength:     200,
	}
}

func fullConfig() Config {
	return Config{
		TopicGuideline:   "electric cargo bikes",
		Role:             RoleCopywriter,
		Task:             ParseTask("Produktbeskrivning"),
		Tonality:         []Tonality{TonalityFriendly, TonalityProfessional},
		TextLength:       500,
		NumberOfLists:    2,
		Language:         LanguageEnglish,
		WritingFor:       ParseAudience("Customer"),
		CopywritingStyle: StyleAIDA,
		Rules:            []string{"do not use superlatives", "address the reader directly as \"you\""},
		Links: []Link{
			{URL: "https://example.com/cargo", AnchorText: "cargo bike"},
			{URL: "https://example.com/battery", AnchorText: "battery"},
		},
		PrimaryKeyword:   "cargo bike",
		Author:           "Cykelhuset",
		TopicInformation: "The bike carries 80 kg and has a range of 60 km.",
	}
}

func mustAssemble(t *testing.T, cfg Config) string {
	t.Helper()
	out, err := Assemble(cfg)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	return out
}

// assertInOrder fails unless every want string occurs in out, each after the previous one.
func assertInOrder(t *testing.T, out string, want ...string) {
	t.Helper()
	pos := 0
	for _, w := range want {
		i := strings.Index(out[pos:], w)
		if i < 0 {
			t.Fatalf("%q not found after offset %d in:\n%s", w, pos, out)
		}
		pos += i + len(w)
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	for _, cfg := range []Config{bikesConfig(), fullConfig()} {
		first := mustAssemble(t, cfg)
		for i := 0; i < 5; i++ {
			if got := mustAssemble(t, cfg); got != first {
				t.Fatalf("run %d differs:\n%s\n---\n%s", i, got, first)
			}
		}
	}
}

func TestAssembleBikesScenario(t *testing.T) {
	cfg := bikesConfig()
	out := mustAssemble(t, cfg)

	assertInOrder(t, out,
		strictPrefix,
		"The text must be about the following subject: bikes.",
		rolePersonas[RoleCopywriter],
		taskInstructions[TaskArticle],
		"The text should be about 200 words long. It must not exceed 220 words and must not be less than 150 words.",
		languageRules[LanguageSwedish],
		neutralVoice,
	)

	names, err := Blocks(cfg)
	if err != nil {
		t.Fatalf("Blocks: %v", err)
	}
	want := []string{BlockPrefix, BlockGuideline, BlockPersona, BlockTask, BlockTextLength, BlockLanguage, BlockNeutralVoice}
	if !slices.Equal(names, want) {
		t.Fatalf("blocks = %v, want %v", names, want)
	}
	for _, absent := range []string{"The tone of the text", "lists", "written for", "Follow these rules", "Insert the link", "Use the keyword", "background information"} {
		if strings.Contains(out, absent) {
			t.Errorf("unexpected %q in output", absent)
		}
	}
}

func TestAssembleBlockOrderWithAllFields(t *testing.T) {
	cfg := fullConfig()
	names, err := Blocks(cfg)
	if err != nil {
		t.Fatalf("Blocks: %v", err)
	}
	want := []string{
		BlockPrefix, BlockGuideline, BlockPersona, BlockCopywritingStyle, BlockTask, BlockTonality,
		BlockTextLength, BlockLists, BlockLanguage, BlockWritingFor, BlockRules, BlockLinks,
		BlockKeyword, BlockAuthor, BlockTopicInformation,
	}
	if !slices.Equal(names, want) {
		t.Fatalf("blocks = %v\nwant     %v", names, want)
	}

	out := mustAssemble(t, cfg)
	assertInOrder(t, out,
		strictPrefix,
		"subject: electric cargo bikes.",
		rolePersonas[RoleCopywriter],
		copywritingStyles[StyleAIDA],
		taskInstructions[TaskProductDescription],
		"The tone of the text should be: friendly, professional.",
		"must not exceed 520 words and must not be less than 450 words.",
		"Use at most 2 lists",
		languageRules[LanguageEnglish],
		"The text is written for "+audienceDescriptions[AudienceCustomer]+".",
		"Follow these rules: do not use superlatives, address the reader directly as \"you\".",
		"Insert the link https://example.com/cargo on the keyword \"cargo bike\".",
		"Insert the link https://example.com/battery on the keyword \"battery\".",
		"Use the keyword \"cargo bike\" so that it makes up about 1% of the total word count.",
		"The text is written by Cykelhuset. You may mention Cykelhuset in a call to action.",
		"Take the following background information into account while writing: The bike carries 80 kg",
	)
}

func TestAssembleSeparatorsAndTrim(t *testing.T) {
	out := mustAssemble(t, bikesConfig())
	if out != strings.TrimSpace(out) {
		t.Fatal("output is not trimmed")
	}
	if strings.Contains(out, "\n\n\n") {
		t.Fatal("output contains an empty block")
	}
	if !strings.HasPrefix(out, strictPrefix+"\n\nThe text must be about") {
		t.Fatalf("prefix and guideline not separated by a blank line:\n%s", out)
	}
}

func TestAssembleMonotonicInclusion(t *testing.T) {
	tests := []struct {
		name   string
		block  string
		mutate func(*Config)
	}{
		{"tonality", BlockTonality, func(c *Config) { c.Tonality = []Tonality{TonalityInformative} }},
		{"numberOfLists", BlockLists, func(c *Config) { c.NumberOfLists = 3 }},
		{"writingFor", BlockWritingFor, func(c *Config) { c.WritingFor = ParseAudience("OwnBlog") }},
		{"rules", BlockRules, func(c *Config) { c.Rules = []string{"do not use superlatives"} }},
		{"links", BlockLinks, func(c *Config) { c.Links = []Link{{URL: "https://a.com", AnchorText: "kw1"}} }},
		{"primaryKeyword", BlockKeyword, func(c *Config) { c.PrimaryKeyword = "bike" }},
		{"topicInformation", BlockTopicInformation, func(c *Config) { c.TopicInformation = "Founded 1998." }},
		{"copywritingStyle", BlockCopywritingStyle, func(c *Config) { c.CopywritingStyle = StylePAS }},
	}

	base := bikesConfig()
	base.TextLength = 0
	baseNames, baseParts, err := render(base)
	if err != nil {
		t.Fatalf("render base: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := bikesConfig()
			cfg.TextLength = 0
			tt.mutate(&cfg)
			names, parts, err := render(cfg)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if len(names) != len(baseNames)+1 {
				t.Fatalf("blocks = %v, want one more than %v", names, baseNames)
			}
			i := slices.Index(names, tt.block)
			if i < 0 {
				t.Fatalf("block %s missing from %v", tt.block, names)
			}
			if got := slices.Delete(slices.Clone(parts), i, i+1); !slices.Equal(got, baseParts) {
				t.Fatalf("removing %s does not give the base prompt", tt.block)
			}
		})
	}
}

func TestAssembleAuthorExclusivity(t *testing.T) {
	tests := []struct {
		name   string
		author string
		want   string
	}{
		{"no author", "", BlockNeutralVoice},
		{"blank author", "   ", BlockNeutralVoice},
		{"author", "Anna Berg", BlockAuthor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := bikesConfig()
			cfg.Author = tt.author
			names, err := Blocks(cfg)
			if err != nil {
				t.Fatalf("Blocks: %v", err)
			}
			hasAuthor := slices.Contains(names, BlockAuthor)
			hasNeutral := slices.Contains(names, BlockNeutralVoice)
			if hasAuthor == hasNeutral {
				t.Fatalf("author=%v neutral=%v, want exactly one", hasAuthor, hasNeutral)
			}
			if !slices.Contains(names, tt.want) {
				t.Fatalf("blocks %v missing %s", names, tt.want)
			}
			out := mustAssemble(t, cfg)
			if tt.want == BlockAuthor && strings.Contains(out, neutralVoice) {
				t.Fatal("neutral voice emitted alongside author")
			}
		})
	}
}

func TestAssembleExcludeListsWins(t *testing.T) {
	cfg := bikesConfig()
	cfg.NumberOfLists = 3
	cfg.ExcludeLists = true
	out := mustAssemble(t, cfg)
	if strings.Contains(out, "Use at most") {
		t.Fatalf("list sentence emitted despite excludeLists:\n%s", out)
	}

	cfg.ExcludeLists = false
	if out := mustAssemble(t, cfg); !strings.Contains(out, "Use at most 3 lists in the entire text") {
		t.Fatalf("list sentence missing:\n%s", out)
	}
}

func TestAssembleTextLengthBounds(t *testing.T) {
	tests := []struct {
		length int
		want   string
	}{
		{500, "The text should be about 500 words long. It must not exceed 520 words and must not be less than 450 words."},
		{200, "It must not exceed 220 words and must not be less than 150 words."},
		{1000, "It must not exceed 1020 words and must not be less than 950 words."},
	}
	for _, tt := range tests {
		cfg := bikesConfig()
		cfg.TextLength = tt.length
		if out := mustAssemble(t, cfg); !strings.Contains(out, tt.want) {
			t.Errorf("length %d: missing %q", tt.length, tt.want)
		}
	}
}

func TestAssembleLinkFanOut(t *testing.T) {
	cfg := bikesConfig()
	cfg.Links = []Link{
		{URL: "https://a.com", AnchorText: "kw1"},
		{URL: "", AnchorText: "kw2"},
		{URL: "https://b.com", AnchorText: "kw3"},
	}
	out := mustAssemble(t, cfg)
	if n := strings.Count(out, "Insert the link"); n != 2 {
		t.Fatalf("got %d link sentences, want 2", n)
	}
	if strings.Contains(out, "kw2") {
		t.Fatal("link without url was not dropped")
	}
	assertInOrder(t, out,
		"Insert the link https://a.com on the keyword \"kw1\".\n\n",
		"Insert the link https://b.com on the keyword \"kw3\".",
	)
}

func TestAssembleFreeTextTask(t *testing.T) {
	cfg := bikesConfig()
	cfg.Task = ParseTask("Write a limerick about ducks")
	out, err := Assemble(cfg)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	assertInOrder(t, out, rolePersonas[RoleCopywriter], "\n\nWrite a limerick about ducks\n\n", "The text should be about 200")
}

func TestAssembleCustomCollidingWithKey(t *testing.T) {
	cfg := bikesConfig()
	cfg.Task = Custom("Artikel")
	out := mustAssemble(t, cfg)
	if strings.Contains(out, taskInstructions[TaskArticle]) {
		t.Fatal("custom task text was resolved through the lookup table")
	}
}

func TestAssembleCopywritingStyleOnlyForCopywriter(t *testing.T) {
	cfg := bikesConfig()
	cfg.CopywritingStyle = StyleStorytelling
	if out := mustAssemble(t, cfg); !strings.Contains(out, copywritingStyles[StyleStorytelling]) {
		t.Fatal("style missing for copywriter")
	}

	cfg.Role = RoleResearcher
	if out := mustAssemble(t, cfg); strings.Contains(out, copywritingStyles[StyleStorytelling]) {
		t.Fatal("style emitted for a non-copywriter role")
	}
}

func TestAssembleRejectsInvalidConfig(t *testing.T) {
	cfg := bikesConfig()
	cfg.Role = ""
	out, err := Assemble(cfg)
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
	if out != "" {
		t.Fatalf("partial output returned: %q", out)
	}
}

func TestLookupGap(t *testing.T) {
	_, err := lookup(map[Role]string{RoleCopywriter: "x"}, RoleResearcher, "aiRole")
	if !errors.Is(err, ErrLookupGap) {
		t.Fatalf("err = %v, want lookup gap", err)
	}
	if errors.Is(err, ErrConfiguration) {
		t.Fatal("lookup gap matched the configuration sentinel")
	}
	e, ok := AsError(err)
	if !ok || e.Field != "aiRole" {
		t.Fatalf("AsError = %+v, %v", e, ok)
	}
}

func TestTablesCoverDeclaredKeys(t *testing.T) {
	for _, r := range roles {
		if rolePersonas[r] == "" {
			t.Errorf("role %s has no persona", r)
		}
	}
	for _, k := range taskTypes {
		if taskInstructions[k] == "" {
			t.Errorf("task %s has no instruction", k)
		}
	}
	for _, l := range languages {
		if languageRules[l] == "" || avoidWordsPhrasing[l] == "" {
			t.Errorf("language %s is incomplete", l)
		}
	}
	for _, a := range audiences {
		if audienceDescriptions[a] == "" {
			t.Errorf("audience %s has no description", a)
		}
	}
	for _, v := range tonality {
		if tonalityLabels[v] == "" {
			t.Errorf("tonality %s has no label", v)
		}
	}
	for _, s := range styles {
		if copywritingStyles[s] == "" {
			t.Errorf("style %s has no description", s)
		}
	}
}

func TestParseChoices(t *testing.T) {
	tests := []struct {
		name       string
		got        Choice
		wantSet    bool
		wantCustom bool
		wantValue  string
	}{
		{"known task", ParseTask("Artikel"), true, false, "Artikel"},
		{"task is case sensitive", ParseTask("artikel"), true, true, "artikel"},
		{"free text task", ParseTask("  Write a limerick about ducks "), true, true, "Write a limerick about ducks"},
		{"empty task", ParseTask(" "), false, false, ""},
		{"known audience", ParseAudience("OwnBlog"), true, false, "OwnBlog"},
		{"free text audience", ParseAudience("dog owners in Malmö"), true, true, "dog owners in Malmö"},
		{"empty custom", Custom(""), false, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.IsSet() != tt.wantSet || tt.got.IsCustom() != tt.wantCustom || tt.got.Value() != tt.wantValue {
				t.Fatalf("got %s, want set=%v custom=%v value=%q", tt.got, tt.wantSet, tt.wantCustom, tt.wantValue)
			}
		})
	}
}

func TestOptionsAreSortedCopies(t *testing.T) {
	opts := Options()
	if !slices.IsSorted(opts.Roles) || len(opts.Roles) != len(roles) {
		t.Fatalf("roles = %v", opts.Roles)
	}
	opts.Roles[0] = "mutated"
	if Options().Roles[0] == "mutated" {
		t.Fatal("Options shares backing storage between calls")
	}
	if !slices.Contains(opts.Languages, "Svenska") || !slices.Contains(opts.Surfaces, "quick") {
		t.Fatalf("options = %+v", opts)
	}
}
