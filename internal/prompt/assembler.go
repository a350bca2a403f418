package prompt

import (
	"fmt"
	"strings"
)

const blockSeparator = "\n\n"

// Text length tolerance. The band is deliberately asymmetric.
const (
	lengthOvershoot  = 20
	lengthUndershoot = 50
)

const (
	strictPrefix = "Follow every instruction below strictly. If any instruction is unclear or cannot be followed, ask me instead of deviating from it."
	neutralVoice = "Write in a neutral voice. Do not write from the perspective of a specific person or company and do not attribute the text to anyone."
)

// Block names, in emission order.
const (
	BlockPrefix           = "prefix"
	BlockGuideline        = "guideline"
	BlockPersona          = "persona"
	BlockCopywritingStyle = "copywriting_style"
	BlockTask             = "task"
	BlockTonality         = "tonality"
	BlockTextLength       = "text_length"
	BlockLists            = "lists"
	BlockLanguage         = "language"
	BlockWritingFor       = "writing_for"
	BlockRules            = "rules"
	BlockLinks            = "links"
	BlockKeyword          = "keyword"
	BlockAuthor           = "author"
	BlockNeutralVoice     = "neutral_voice"
	BlockTopicInformation = "topic_information"
)

type block struct {
	name    string
	include func(Config) bool
	render  func(Config) (string, error)
}

func always(Config) bool { return true }

func present(s string) bool { return strings.TrimSpace(s) != "" }

// blocks is the fixed emission order. Each entry yields zero or one block of text.
var blocks = []block{
	{BlockPrefix, always, func(Config) (string, error) {
		return strictPrefix, nil
	}},
	{BlockGuideline, func(c Config) bool { return present(c.TopicGuideline) }, func(c Config) (string, error) {
		return fmt.Sprintf("The text must be about the following subject: %s.", strings.TrimSpace(c.TopicGuideline)), nil
	}},
	{BlockPersona, always, func(c Config) (string, error) {
		return lookup(rolePersonas, c.Role, "aiRole")
	}},
	{BlockCopywritingStyle, func(c Config) bool {
		return c.Role == RoleCopywriter && c.CopywritingStyle != ""
	}, func(c Config) (string, error) {
		return lookup(copywritingStyles, c.CopywritingStyle, "copywritingStyle")
	}},
	{BlockTask, always, func(c Config) (string, error) {
		if c.Task.IsCustom() {
			return c.Task.Value(), nil
		}
		return lookup(taskInstructions, TaskType(c.Task.Value()), "taskType")
	}},
	{BlockTonality, func(c Config) bool { return len(c.Tonality) > 0 }, renderTonality},
	{BlockTextLength, func(c Config) bool { return c.TextLength > 0 }, func(c Config) (string, error) {
		n := c.TextLength
		return fmt.Sprintf("The text should be about %d words long. It must not exceed %d words and must not be less than %d words.",
			n, n+lengthOvershoot, n-lengthUndershoot), nil
	}},
	{BlockLists, func(c Config) bool { return c.NumberOfLists > 0 && !c.ExcludeLists }, func(c Config) (string, error) {
		return fmt.Sprintf("Use at most %d lists in the entire text, counting every kind of list (bulleted, numbered or otherwise).", c.NumberOfLists), nil
	}},
	{BlockLanguage, always, func(c Config) (string, error) {
		return lookup(languageRules, c.Language, "language")
	}},
	{BlockWritingFor, func(c Config) bool { return c.WritingFor.IsSet() }, func(c Config) (string, error) {
		desc := c.WritingFor.Value()
		if !c.WritingFor.IsCustom() {
			var err error
			if desc, err = lookup(audienceDescriptions, Audience(desc), "writingFor"); err != nil {
				return "", err
			}
		}
		return fmt.Sprintf("The text is written for %s.", desc), nil
	}},
	{BlockRules, func(c Config) bool { return len(c.usableRules()) > 0 }, func(c Config) (string, error) {
		return fmt.Sprintf("Follow these rules: %s.", strings.Join(c.usableRules(), ", ")), nil
	}},
	{BlockLinks, func(c Config) bool { return len(c.usableLinks()) > 0 }, func(c Config) (string, error) {
		// One sentence per link, each its own paragraph.
		links := c.usableLinks()
		sentences := make([]string, 0, len(links))
		for _, l := range links {
			sentences = append(sentences, fmt.Sprintf("Insert the link %s on the keyword \"%s\".", l.URL, l.AnchorText))
		}
		return strings.Join(sentences, blockSeparator), nil
	}},
	{BlockKeyword, func(c Config) bool { return present(c.PrimaryKeyword) }, func(c Config) (string, error) {
		return fmt.Sprintf("Use the keyword \"%s\" so that it makes up about 1%% of the total word count.", strings.TrimSpace(c.PrimaryKeyword)), nil
	}},
	{BlockAuthor, func(c Config) bool { return present(c.Author) }, func(c Config) (string, error) {
		author := strings.TrimSpace(c.Author)
		return fmt.Sprintf("The text is written by %s. You may mention %s in a call to action.", author, author), nil
	}},
	{BlockNeutralVoice, func(c Config) bool { return !present(c.Author) }, func(Config) (string, error) {
		return neutralVoice, nil
	}},
	{BlockTopicInformation, func(c Config) bool { return present(c.TopicInformation) }, func(c Config) (string, error) {
		return "Take the following background information into account while writing: " + strings.TrimSpace(c.TopicInformation), nil
	}},
}

func renderTonality(c Config) (string, error) {
	labels := make([]string, 0, len(c.Tonality))
	for _, t := range c.Tonality {
		label, err := lookup(tonalityLabels, t, "tonality")
		if err != nil {
			return "", err
		}
		labels = append(labels, label)
	}
	return fmt.Sprintf("The tone of the text should be: %s.", strings.Join(labels, ", ")), nil
}

// Assemble validates cfg and renders the prompt. It has no side effects and
// returns the same string for the same Config.
func Assemble(cfg Config) (string, error) {
	_, parts, err := render(cfg)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(parts, blockSeparator)), nil
}

// Blocks reports which blocks Assemble would emit for cfg, in order.
func Blocks(cfg Config) ([]string, error) {
	names, _, err := render(cfg)
	return names, err
}

func render(cfg Config) (names, parts []string, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	for _, b := range blocks {
		if !b.include(cfg) {
			continue
		}
		text, err := b.render(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("render %s block: %w", b.name, err)
		}
		if text = strings.TrimSpace(text); text == "" {
			continue
		}
		names = append(names, b.name)
		parts = append(parts, text)
	}
	return names, parts, nil
}
