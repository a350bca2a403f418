package prompt

import (
	"slices"
)

// Lookup tables. They are never written after package init.

var rolePersonas = map[Role]string{
	RoleCopywriter: `You are an experienced copywriter who writes texts that sell without sounding like advertising. You know how to turn features into benefits and you always write with the reader's needs in mind.

You write short, varied sentences, choose concrete words over abstract ones and never pad a text to reach a word count.`,
	RoleSeoExpert: `You are an SEO expert with many years of experience writing content that ranks well in search engines. You understand search intent, keyword placement, headings and internal linking.

You never sacrifice readability for keywords. The text must work for a human reader first and a search engine second.`,
	RoleBlogWriter: `You are a skilled blog writer who writes engaging, personal and easy-to-read blog posts. You hook the reader in the first paragraph and keep a clear thread through the whole post.`,
	RoleProofreader: `You are a meticulous proofreader. You correct spelling, grammar and punctuation, improve flow and clarity, and keep the author's voice and meaning intact.

Do not add new content unless an instruction below asks for it.`,
	RoleWebProgrammer: `You are an experienced web programmer who explains technical subjects clearly. You write correct, well-structured texts and use code examples only when they help the reader.`,
	RoleResearcher: `You are a thorough researcher. You present facts carefully, separate established knowledge from assumptions and never invent sources, figures or quotes.`,
}

var taskInstructions = map[TaskType]string{
	TaskArticle:            `Write an article with a clear introduction, a body divided by descriptive subheadings and a short conclusion.`,
	TaskBlogPost:           `Write a blog post with a catchy headline, a personal introduction, subheadings that are easy to scan and a closing paragraph that invites the reader to comment or act.`,
	TaskProductDescription: `Write a product description that explains what the product is, who it is for and the most important benefits. Keep it concrete and easy to scan.`,
	TaskLandingPage:        `Write the copy for a landing page: a headline, a subheadline, a short section on the problem the reader has, how the offer solves it, and a clear call to action.`,
	TaskNewsletter:         `Write a newsletter with a subject line, a short greeting, the main content divided into clear sections and a call to action at the end.`,
	TaskMetaDescription:    `Write a meta description of at most 155 characters that summarises the page and makes the reader want to click.`,
}

var languageRules = map[Language]string{
	LanguageSwedish: `Write the text in Swedish. Follow Swedish grammar and punctuation rules, use Swedish quotation marks and do not translate English idioms word for word. Avoid anglicisms when a natural Swedish word exists and write compound words together.`,
	LanguageEnglish: `Write the text in English. Use consistent spelling throughout, follow standard English punctuation and grammar, and prefer plain words over jargon.`,
}

var audienceDescriptions = map[Audience]string{
	AudienceCustomer: "a customer, to be published on the customer's own website. Write on the customer's behalf",
	AudienceOwnBlog:  "our own blog. Write as the company that owns the blog",
}

var copywritingStyles = map[CopywritingStyle]string{
	StyleAIDA:         "Structure the text using the AIDA model: capture Attention, build Interest, create Desire and end with a clear Action.",
	StylePAS:          "Structure the text using the PAS model: describe the Problem, Agitate it by showing its consequences and present the Solution.",
	StyleFAB:          "Structure the text using the FAB model: present each Feature, explain the Advantage it gives and the Benefit it brings the reader.",
	StyleStorytelling: "Build the text around a short story with a clear beginning, conflict and resolution that leads naturally to the message.",
}

var tonalityLabels = map[Tonality]string{
	TonalityProfessional: "professional",
	TonalityFriendly:     "friendly",
	TonalityInformative:  "informative",
	TonalityPersuasive:   "persuasive",
}

// avoidWordsPhrasing is a format string taking the comma-joined word list.
var avoidWordsPhrasing = map[Language]string{
	LanguageSwedish: "do not use the words %s or any inflected form of them",
	LanguageEnglish: "do not use the words %s",
}

// Declared enum domains. Validation checks against these, the tables are
// checked at render time so a missing entry surfaces as a lookup gap.
var (
	roles     = []Role{RoleCopywriter, RoleSeoExpert, RoleBlogWriter, RoleProofreader, RoleWebProgrammer, RoleResearcher}
	taskTypes = []TaskType{TaskArticle, TaskBlogPost, TaskProductDescription, TaskLandingPage, TaskNewsletter, TaskMetaDescription}
	languages = []Language{LanguageSwedish, LanguageEnglish}
	audiences = []Audience{AudienceCustomer, AudienceOwnBlog}
	tonality  = []Tonality{TonalityProfessional, TonalityFriendly, TonalityInformative, TonalityPersuasive}
	styles    = []CopywritingStyle{StyleAIDA, StylePAS, StyleFAB, StyleStorytelling}
)

// lookup returns table[key] or a lookup gap naming field.
func lookup[K ~string](table map[K]string, key K, field string) (string, error) {
	text, ok := table[key]
	if !ok || text == "" {
		return "", lookupGap(field, string(key))
	}
	return text, nil
}

// OptionSet lists the accepted keys for every enum field, for populating a form.
type OptionSet struct {
	Roles             []string `json:"roles" yaml:"roles"`
	TaskTypes         []string `json:"taskTypes" yaml:"taskTypes"`
	Languages         []string `json:"languages" yaml:"languages"`
	WritingFor        []string `json:"writingFor" yaml:"writingFor"`
	Tonality          []string `json:"tonality" yaml:"tonality"`
	CopywritingStyles []string `json:"copywritingStyles" yaml:"copywritingStyles"`
	Surfaces          []string `json:"surfaces" yaml:"surfaces"`
}

// Options returns fresh, sorted key lists.
func Options() OptionSet {
	return OptionSet{
		Roles:             sortedKeys(roles),
		TaskTypes:         sortedKeys(taskTypes),
		Languages:         sortedKeys(languages),
		WritingFor:        sortedKeys(audiences),
		Tonality:          sortedKeys(tonality),
		CopywritingStyles: sortedKeys(styles),
		Surfaces:          sortedKeys(surfaces),
	}
}

func sortedKeys[K ~string](keys []K) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, string(k))
	}
	slices.Sort(out)
	return out
}
