package prompt

import (
	"errors"
	"net/url"
	"slices"
	"strings"
)

// Validate reports every configuration problem in c, joined. It does not
// consult the lookup tables, only the declared key sets.
func (c Config) Validate() error {
	var errs []error

	if !present(c.TopicGuideline) {
		errs = append(errs, configError("topicGuideline", "is required"))
	}

	switch {
	case c.Role == "":
		errs = append(errs, configError("aiRole", "is required"))
	case !slices.Contains(roles, c.Role):
		errs = append(errs, configError("aiRole", "unknown role %q", c.Role))
	}

	switch {
	case !c.Task.IsSet():
		errs = append(errs, configError("taskType", "is required"))
	case !c.Task.IsCustom() && !slices.Contains(taskTypes, TaskType(c.Task.Value())):
		errs = append(errs, configError("taskType", "unknown task type %q", c.Task.Value()))
	}

	switch {
	case c.Language == "":
		errs = append(errs, configError("language", "is required"))
	case !slices.Contains(languages, c.Language):
		errs = append(errs, configError("language", "unknown language %q", c.Language))
	}

	for _, t := range c.Tonality {
		if !slices.Contains(tonality, t) {
			errs = append(errs, configError("tonality", "unknown tonality %q", t))
		}
	}

	if c.WritingFor.IsSet() && !c.WritingFor.IsCustom() && !slices.Contains(audiences, Audience(c.WritingFor.Value())) {
		errs = append(errs, configError("writingFor", "unknown audience %q", c.WritingFor.Value()))
	}

	if c.CopywritingStyle != "" && !slices.Contains(styles, c.CopywritingStyle) {
		errs = append(errs, configError("copywritingStyle", "unknown style %q", c.CopywritingStyle))
	}

	if c.TextLength < 0 {
		errs = append(errs, configError("textLength", "must be positive, got %d", c.TextLength))
	}
	if c.NumberOfLists < 0 {
		errs = append(errs, configError("numberOfLists", "must be positive, got %d", c.NumberOfLists))
	}

	for _, l := range c.usableLinks() {
		if !validLinkURL(l.URL) {
			errs = append(errs, configError("links", "invalid url %q", l.URL))
		}
	}

	return errors.Join(errs...)
}

func validLinkURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
