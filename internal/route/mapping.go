package route

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseMapping parses an inline category mapping. Two formats are
// accepted: a JSON object ({"asiatisch":"International"}) or semicolon-
// separated key=value pairs ("suppe=Suppen; pasta=Pasta"). Keys are
// lowercased; values keep their case because they become section names.
func ParseMapping(s string) (map[string]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return map[string]string{}, nil
	}

	if strings.HasPrefix(s, "{") {
		var raw map[string]string
		if err := json.Unmarshal([]byte(s), &raw); err != nil {
			return nil, fmt.Errorf("parse mapping JSON: %w", err)
		}
		return lowerKeys(raw), nil
	}

	mapping := make(map[string]string)
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("parse mapping pair %q: expected key=value", pair)
		}
		mapping[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	return mapping, nil
}

// LoadMappingFile reads a category mapping from a YAML or JSON file
func LoadMappingFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping file: %w", err)
	}

	var raw map[string]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse mapping file %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse mapping file %s: %w", path, err)
		}
	}
	return lowerKeys(raw), nil
}

func lowerKeys(raw map[string]string) map[string]string {
	mapping := make(map[string]string, len(raw))
	for k, v := range raw {
		mapping[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return mapping
}

// Router resolves recipe categories to target section names
type Router struct {
	defaultSection string
	mapping        map[string]string
	separator      string
	subPrefix      bool
}

// NewRouter creates a router. mapping may be nil; separator defaults
// to "/".
func NewRouter(defaultSection string, mapping map[string]string, separator string, subPrefix bool) *Router {
	if separator == "" {
		separator = "/"
	}
	if mapping == nil {
		mapping = map[string]string{}
	}
	return &Router{
		defaultSection: defaultSection,
		mapping:        mapping,
		separator:      separator,
		subPrefix:      subPrefix,
	}
}

// Resolve maps a recipe category to a section name and adjusts the page
// title. A full-category mapping entry ("asiatisch/curry") wins over the
// top-level entry ("asiatisch"); an unmapped top part is used verbatim as
// the section name. With the subcategory prefix enabled, "Asiatisch/Curry"
// turns "Rotes Curry" into "[Curry] Rotes Curry".
func (r *Router) Resolve(category, title string) (section, pageTitle string) {
	category = strings.TrimSpace(category)
	if category == "" {
		return r.defaultSection, title
	}

	top, sub, _ := strings.Cut(category, r.separator)
	top = strings.TrimSpace(top)
	sub = strings.TrimSpace(sub)

	section = top
	if mapped, ok := r.mapping[strings.ToLower(category)]; ok {
		section = mapped
	} else if mapped, ok := r.mapping[strings.ToLower(top)]; ok {
		section = mapped
	}
	if section == "" {
		section = r.defaultSection
	}

	if r.subPrefix && sub != "" {
		pageTitle = "[" + sub + "] " + title
	} else {
		pageTitle = title
	}
	return section, pageTitle
}
