package prompt

import "strings"

// Role selects the persona paragraph the prompt opens with.
type Role string

const (
	RoleCopywriter    Role = "Copywriter"
	RoleSeoExpert     Role = "SeoExpert"
	RoleBlogWriter    Role = "BlogWriter"
	RoleProofreader   Role = "Proofreader"
	RoleWebProgrammer Role = "WebProgrammer"
	RoleResearcher    Role = "Researcher"
)

// TaskType is a known task key. Anything else reaches the assembler as a Custom choice.
type TaskType string

const (
	TaskArticle            TaskType = "Artikel"
	TaskBlogPost           TaskType = "Blogginlagg"
	TaskProductDescription TaskType = "Produktbeskrivning"
	TaskLandingPage        TaskType = "Landningssida"
	TaskNewsletter         TaskType = "Nyhetsbrev"
	TaskMetaDescription    TaskType = "Metabeskrivning"
)

// Language selects the phrasing-rules paragraph.
type Language string

const (
	LanguageSwedish Language = "Svenska"
	LanguageEnglish Language = "Engelska"
)

// Audience is a known writingFor key.
type Audience string

const (
	AudienceCustomer Audience = "Customer"
	AudienceOwnBlog  Audience = "OwnBlog"
)

type Tonality string

const (
	TonalityProfessional Tonality = "Professional"
	TonalityFriendly     Tonality = "Friendly"
	TonalityInformative  Tonality = "Informative"
	TonalityPersuasive   Tonality = "Persuasive"
)

// CopywritingStyle only applies when the role is Copywriter.
type CopywritingStyle string

const (
	StyleAIDA         CopywritingStyle = "AIDA"
	StylePAS          CopywritingStyle = "PAS"
	StyleFAB          CopywritingStyle = "FAB"
	StyleStorytelling CopywritingStyle = "Storytelling"
)

type choiceKind uint8

const (
	choiceUnset choiceKind = iota
	choiceKnown
	choiceCustom
)

// Choice is either a known lookup key or free text used verbatim. The zero value is unset.
type Choice struct {
	kind  choiceKind
	value string
}

// Known wraps a lookup key. An empty key yields an unset Choice.
func Known(key string) Choice {
	key = strings.TrimSpace(key)
	if key == "" {
		return Choice{}
	}
	return Choice{kind: choiceKnown, value: key}
}

// Custom wraps free text. Blank text yields an unset Choice.
func Custom(text string) Choice {
	text = strings.TrimSpace(text)
	if text == "" {
		return Choice{}
	}
	return Choice{kind: choiceCustom, value: text}
}

func (c Choice) IsSet() bool    { return c.kind != choiceUnset }
func (c Choice) IsCustom() bool { return c.kind == choiceCustom }
func (c Choice) Value() string  { return c.value }

func (c Choice) String() string {
	switch c.kind {
	case choiceKnown:
		return "known(" + c.value + ")"
	case choiceCustom:
		return "custom(" + c.value + ")"
	}
	return "unset"
}

// ParseTask resolves a raw form value: a task key becomes Known, any other
// non-empty text becomes Custom.
func ParseTask(raw string) Choice {
	raw = strings.TrimSpace(raw)
	if _, ok := taskInstructions[TaskType(raw)]; ok {
		return Known(raw)
	}
	return Custom(raw)
}

// ParseAudience is ParseTask for the writingFor field.
func ParseAudience(raw string) Choice {
	raw = strings.TrimSpace(raw)
	if _, ok := audienceDescriptions[Audience(raw)]; ok {
		return Known(raw)
	}
	return Custom(raw)
}

// Link asks for URL to be inserted on AnchorText.
type Link struct {
	URL        string
	AnchorText string
}

// Config is everything the assembler needs for one prompt. Zero values mean absent.
type Config struct {
	TopicGuideline   string
	Role             Role
	Task             Choice
	Tonality         []Tonality
	TextLength       int
	NumberOfLists    int
	ExcludeLists     bool
	Language         Language
	WritingFor       Choice
	CopywritingStyle CopywritingStyle
	Rules            []string
	Links            []Link
	PrimaryKeyword   string
	Author           string
	TopicInformation string
}

// usableLinks drops entries missing a URL or anchor text, keeping input order.
func (c Config) usableLinks() []Link {
	var out []Link
	for _, l := range c.Links {
		u, a := strings.TrimSpace(l.URL), strings.TrimSpace(l.AnchorText)
		if u == "" || a == "" {
			continue
		}
		out = append(out, Link{URL: u, AnchorText: a})
	}
	return out
}

func (c Config) usableRules() []string {
	var out []string
	for _, r := range c.Rules {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
