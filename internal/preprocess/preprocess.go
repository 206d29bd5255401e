// Package preprocess implements drain.Preprocessor, the external
// collaborator of the core clustering engine that turns a raw log line
// into the ordered Token sequence the core consumes: an optional outer
// grok-style extraction step followed by an ordered list of
// YAML-configured, named-capture masking patterns. A filter with named
// captures replaces its token with the name of the first one; a filter
// with none replaces it with Wildcard.
package preprocess

import (
	"regexp"
	"strings"

	"github.com/drainmine/drain"
)

// Filter is one entry in the ordered list consulted for every raw
// token. The first Filter whose Pattern matches wins.
type Filter struct {
	Name    string
	Pattern *regexp.Regexp
}

// Config configures a Preprocessor.
type Config struct {
	// LogPattern, if set, is matched against the whole input line. If
	// it matches and the named group GroupField captured non-empty
	// text, tokenization proceeds on that group's text instead of the
	// whole line.
	LogPattern *regexp.Regexp

	// GroupField names the capture group in LogPattern holding the
	// message body to tokenize. Defaults to "content" if empty.
	GroupField string

	// Filters is the ordered list of per-token masking patterns.
	Filters []Filter
}

// Preprocessor implements drain.Preprocessor.
type Preprocessor struct {
	cfg Config
}

// New builds a Preprocessor from cfg. cfg is copied; later mutation of
// cfg.Filters's backing array does not affect the built Preprocessor
// beyond Go's usual slice-aliasing rules.
func New(cfg Config) *Preprocessor {
	if cfg.GroupField == "" {
		cfg.GroupField = "content"
	}
	return &Preprocessor{cfg: cfg}
}

// Tokenize applies the three-step preprocessor contract: extract the
// message body, split on space, then mask each token through the
// filter list.
func (p *Preprocessor) Tokenize(line string) []drain.Token {
	body := p.extractBody(line)
	if body == "" {
		return nil
	}

	rawTokens := strings.Split(body, " ")
	tokens := make([]drain.Token, 0, len(rawTokens))
	for _, raw := range rawTokens {
		if raw == "" {
			continue
		}
		tokens = append(tokens, p.filterToken(raw))
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// extractBody applies step 1: if LogPattern is set and matches line,
// and the named GroupField captured non-empty text, the remainder of
// preprocessing operates on that field; otherwise the whole line is
// used.
func (p *Preprocessor) extractBody(line string) string {
	if p.cfg.LogPattern == nil {
		return line
	}
	match := p.cfg.LogPattern.FindStringSubmatch(line)
	if match == nil {
		return line
	}
	for i, name := range p.cfg.LogPattern.SubexpNames() {
		if name == p.cfg.GroupField && i < len(match) && match[i] != "" {
			return match[i]
		}
	}
	return line
}

// filterToken applies step 3: the first matching Filter wins. A filter
// with named captures yields a Literal of the first capture's name; a
// filter with none yields Wildcard. No match leaves the raw token as a
// Literal, unmodified.
func (p *Preprocessor) filterToken(raw string) drain.Token {
	for _, f := range p.cfg.Filters {
		if !f.Pattern.MatchString(raw) {
			continue
		}
		for _, name := range f.Pattern.SubexpNames() {
			if name != "" {
				return drain.NewLiteral(name)
			}
		}
		return drain.WildcardToken
	}
	return drain.NewLiteral(raw)
}
