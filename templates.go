package promptlab

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Template is a named prompt skeleton demonstrating a prompting
// technique. The System and User patterns may contain {field}
// placeholders that are filled in at render time. Templates are
// immutable once registered.
type Template struct {
	// Name identifies the template in the registry.
	Name string
	// Description summarises the technique the template demonstrates.
	Description string
	// System is the system-message pattern.
	System string
	// User is the user-message pattern.
	User string
}

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// Fields returns the placeholder names required by the template, sorted
// and deduplicated.
func (t Template) Fields() []string {
	seen := make(map[string]bool)
	var fields []string
	for _, pattern := range []string{t.System, t.User} {
		for _, match := range placeholderPattern.FindAllStringSubmatch(pattern, -1) {
			if !seen[match[1]] {
				seen[match[1]] = true
				fields = append(fields, match[1])
			}
		}
	}
	sort.Strings(fields)
	return fields
}

// Render substitutes the given field values into the template's
// patterns and returns the resulting template. Every placeholder must
// have a value; a missing field produces a ValidationError naming it.
// A successful render never contains unresolved placeholders.
func (t Template) Render(fields map[string]string) (Template, error) {
	for _, field := range t.Fields() {
		if _, ok := fields[field]; !ok {
			return Template{}, &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("template %q requires a value for field %q", t.Name, field),
			}
		}
	}

	rendered := t
	rendered.System = substitute(t.System, fields)
	rendered.User = substitute(t.User, fields)
	return rendered, nil
}

func substitute(pattern string, fields map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(pattern, func(match string) string {
		name := match[1 : len(match)-1]
		return fields[name]
	})
}

// TemplateRegistry is a static mapping from template name to template,
// loaded at startup and never mutated afterwards.
type TemplateRegistry struct {
	templates map[string]Template
	names     []string
}

// NewTemplateRegistry creates a registry from the given templates,
// preserving their order for Names.
func NewTemplateRegistry(templates ...Template) *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]Template, len(templates)),
	}
	for _, t := range templates {
		if _, exists := registry.templates[t.Name]; exists {
			continue
		}
		registry.templates[t.Name] = t
		registry.names = append(registry.names, t.Name)
	}
	return registry
}

// Get returns the template with the given name.
func (r *TemplateRegistry) Get(name string) (Template, error) {
	t, ok := r.templates[name]
	if !ok {
		return Template{}, fmt.Errorf("template %q not found", name)
	}
	return t, nil
}

// Names returns all registered template names in registration order.
func (r *TemplateRegistry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Description returns the description of the named template, or an
// empty string when the template does not exist.
func (r *TemplateRegistry) Description(name string) string {
	return r.templates[name].Description
}

// BuiltinTemplates returns a registry pre-loaded with templates for the
// common prompting techniques.
func BuiltinTemplates() *TemplateRegistry {
	return NewTemplateRegistry(
		Template{
			Name:        "Zero-Shot",
			Description: "Basic prompt without examples",
			System:      "You are a helpful AI assistant.",
			User:        "Translate the following to {language}: {text}",
		},
		Template{
			Name:        "Few-Shot Learning",
			Description: "Provides examples before the actual task",
			System:      "You are a sentiment analyzer.",
			User: strings.TrimSpace(`
Classify the sentiment of these reviews:

Example 1:
Review: "This product is amazing! Best purchase ever."
Sentiment: Positive

Example 2:
Review: "Terrible quality. Very disappointed."
Sentiment: Negative

Example 3:
Review: "It's okay, nothing special."
Sentiment: Neutral

Now classify this:
Review: "{review}"
Sentiment:`),
		},
		Template{
			Name:        "Chain-of-Thought",
			Description: "Encourages the model to show its reasoning process",
			System:      "You are a tutor who explains reasoning step-by-step.",
			User: strings.TrimSpace(`
Solve this problem step by step:

Problem: {problem}

Let's think through this step by step:`),
		},
		Template{
			Name:        "Role-Based",
			Description: "Assigns a specific role or persona to the AI",
			System:      "You are a professional copywriter specializing in engaging social media content.",
			User:        "Write a catchy caption for a photo of {subject}.",
		},
		Template{
			Name:        "Constrained Output",
			Description: "Specifies exact output format and constraints",
			System:      "You are a concise assistant who follows formatting rules strictly.",
			User: strings.TrimSpace(`
Summarize the following article in exactly 3 bullet points:

Article: "{article}"

Format your response as:
- Point 1
- Point 2
- Point 3`),
		},
		Template{
			Name:        "Creative Writing",
			Description: "Open-ended creative task, high temperature recommended",
			System:      "You are a creative storyteller with a vivid imagination.",
			User:        "Write a short story (3 paragraphs) about {premise}.",
		},
		Template{
			Name:        "Code Generation",
			Description: "Technical task with specific requirements",
			System:      "You are an expert programmer who writes clean, well-documented code.",
			User: strings.TrimSpace(`
Write a {language} function that:
{requirements}

Include documentation and handle edge cases.`),
		},
		Template{
			Name:        "Structured Data Extraction",
			Description: "Extracts and structures information from text",
			System:      "You are a data extraction specialist. Always return valid JSON.",
			User: strings.TrimSpace(`
Extract key information from this text and return as JSON:

Text: "{text}"

Return JSON with fields: {fields}`),
		},
		Template{
			Name:        "Negative Prompting",
			Description: "Specifies what NOT to do",
			System:      "You are a professional business writer.",
			User: strings.TrimSpace(`
{task}

Requirements:
- Be polite and respectful
- Keep it brief

Do NOT:
- Use overly casual language
- Make excuses
- Exceed 100 words`),
		},
		Template{
			Name:        "ReAct",
			Description: "Combines reasoning with actionable steps",
			System:      "You are a problem-solving assistant. For each problem, think through your reasoning and propose actions.",
			User: strings.TrimSpace(`
{goal}

Please respond using this format:
Thought: [Your reasoning about the situation]
Action: [Specific steps to take]
Observation: [Expected outcomes or considerations]`),
		},
	)
}
