package api

import (
	"copy_prompt_server/internal/prompt"
)

// CustomOption is the form value that switches taskType/writingFor to their free-text fields.
const CustomOption = "custom"

// --- Structs for API Requests/Responses ---

// FormRequest is the prompt form as submitted by the client. It is also the
// request file format of promptctl.
type FormRequest struct {
	TopicGuideline   string             `json:"topicGuideline" yaml:"topicGuideline" binding:"required"`
	AIRole           string             `json:"aiRole" yaml:"aiRole" binding:"required"`
	TaskType         string             `json:"taskType" yaml:"taskType" binding:"required"`
	CustomTaskType   string             `json:"customTaskType" yaml:"customTaskType" binding:"required_if=TaskType custom"`
	Tonality         []string           `json:"tonality" yaml:"tonality"`
	TextLength       int                `json:"textLength" yaml:"textLength" binding:"gte=0"`
	NumberOfLists    int                `json:"numberOfLists" yaml:"numberOfLists" binding:"gte=0"`
	ExcludeLists     bool               `json:"excludeLists" yaml:"excludeLists"`
	Language         string             `json:"language" yaml:"language" binding:"required"`
	WritingFor       string             `json:"writingFor" yaml:"writingFor"`
	CustomWritingFor string             `json:"customWritingFor" yaml:"customWritingFor" binding:"required_if=WritingFor custom"`
	CopywritingStyle string             `json:"copywritingStyle" yaml:"copywritingStyle"`
	Rules            prompt.RuleOptions `json:"rules" yaml:"rules"`
	Links            []LinkInput        `json:"links" yaml:"links" binding:"dive"`
	PrimaryKeyword   string             `json:"primaryKeyword" yaml:"primaryKeyword"`
	Author           string             `json:"author" yaml:"author"`
	TopicInformation string             `json:"topicInformation" yaml:"topicInformation"`
	Surface          string             `json:"surface" yaml:"surface"`
}

type LinkInput struct {
	URL        string `json:"url" yaml:"url" binding:"omitempty,url"`
	AnchorText string `json:"anchorText" yaml:"anchorText"`
}

type AssembleResponse struct {
	ID     string   `json:"id"`
	Prompt string   `json:"prompt"`
	Blocks []string `json:"blocks"`
}

// GenerateRequest carries either the (possibly edited) prompt text or a form to assemble first.
type GenerateRequest struct {
	Model  string       `json:"model"`
	Prompt string       `json:"prompt" binding:"required_without=Form"`
	Form   *FormRequest `json:"form"`
}

type GenerateResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	Content string `json:"content"`
}

// ToConfig resolves the form into an assembler Config and the surface whose
// field policy applies to it. The surface policy is already applied.
func (r FormRequest) ToConfig() (prompt.Config, prompt.Surface, error) {
	surface, err := prompt.ParseSurface(r.Surface)
	if err != nil {
		return prompt.Config{}, "", err
	}

	language := prompt.Language(r.Language)
	rules, err := r.Rules.Resolve(language)
	if err != nil {
		return prompt.Config{}, "", err
	}

	cfg := prompt.Config{
		TopicGuideline:   r.TopicGuideline,
		Role:             prompt.Role(r.AIRole),
		Task:             resolveChoice(r.TaskType, r.CustomTaskType, prompt.ParseTask),
		TextLength:       r.TextLength,
		NumberOfLists:    r.NumberOfLists,
		ExcludeLists:     r.ExcludeLists,
		Language:         language,
		WritingFor:       resolveChoice(r.WritingFor, r.CustomWritingFor, prompt.ParseAudience),
		CopywritingStyle: prompt.CopywritingStyle(r.CopywritingStyle),
		Rules:            rules,
		PrimaryKeyword:   r.PrimaryKeyword,
		Author:           r.Author,
		TopicInformation: r.TopicInformation,
	}
	for _, t := range r.Tonality {
		cfg.Tonality = append(cfg.Tonality, prompt.Tonality(t))
	}
	for _, l := range r.Links {
		cfg.Links = append(cfg.Links, prompt.Link{URL: l.URL, AnchorText: l.AnchorText})
	}

	return prompt.ApplySurface(cfg, surface), surface, nil
}

// resolveChoice picks the custom text when the form selected the custom option.
func resolveChoice(selected, custom string, parse func(string) prompt.Choice) prompt.Choice {
	if selected == CustomOption {
		return prompt.Custom(custom)
	}
	return parse(selected)
}
