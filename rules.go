package twfix

import (
	"regexp"
	"strings"
	"unicode"
)

// Replacement targets for the mangled classList calls. An earlier
// prefixing step injected the namespace token into the method names
// themselves; these rewrites put the original methods back.
const (
	classListAdd    = "classList.add("
	classListRemove = "classList.remove("
)

// Rewriter applies the three rewrite passes in a fixed order:
// mangled add fix, mangled remove fix, className token prefixing.
// Matching is purely lexical (regex over raw text) with no knowledge
// of the host file's grammar, so occurrences inside comments or other
// non-executable positions are rewritten too.
type Rewriter struct {
	prefix        string
	mangledAdd    *regexp.Regexp
	mangledRemove *regexp.Regexp
	classNames    *regexp.Regexp
}

// RewriteStats counts what a single Apply pass did.
type RewriteStats struct {
	AddCalls          int // mangled classList.add calls repaired
	RemoveCalls       int // mangled classList.remove calls repaired
	LiteralsRewritten int // className literals whose value changed
	TokensPrefixed    int // class tokens that received the prefix
	TokensKept        int // class tokens that already carried the prefix
}

// NewRewriter compiles the rewrite patterns for a namespace prefix.
// An empty prefix falls back to DefaultPrefix, as does one containing
// whitespace or a double quote: whitespace splits the prefix off its
// token on the next pass and a quote terminates the rewritten literal,
// either way losing the idempotence of Apply.
func NewRewriter(prefix string) *Rewriter {
	if !validPrefix(prefix) {
		prefix = DefaultPrefix
	}

	quoted := regexp.QuoteMeta(prefix)

	return &Rewriter{
		prefix:        prefix,
		mangledAdd:    regexp.MustCompile(`classList\.` + quoted + `add\(`),
		mangledRemove: regexp.MustCompile(`classList\.` + quoted + `remove\(`),
		// [^"]+ is deliberate: empty literals (className = "") never match.
		classNames: regexp.MustCompile(`className = "([^"]+)"`),
	}
}

// validPrefix reports whether prefix survives a round trip through the
// className rewrite.
func validPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	if strings.ContainsFunc(prefix, unicode.IsSpace) {
		return false
	}
	return !strings.Contains(prefix, `"`)
}

// Prefix returns the namespace prefix the rewriter applies.
func (rw *Rewriter) Prefix() string {
	return rw.prefix
}

// Apply runs all three passes on content and returns the rewritten
// text with replacement counts. Every pass runs whether or not it
// matches anything, and applying the pipeline to its own output is a
// byte-identical no-op.
func (rw *Rewriter) Apply(content string) (string, RewriteStats) {
	var stats RewriteStats

	stats.AddCalls = len(rw.mangledAdd.FindAllStringIndex(content, -1))
	content = rw.mangledAdd.ReplaceAllLiteralString(content, classListAdd)

	stats.RemoveCalls = len(rw.mangledRemove.FindAllStringIndex(content, -1))
	content = rw.mangledRemove.ReplaceAllLiteralString(content, classListRemove)

	content = rw.classNames.ReplaceAllStringFunc(content, func(match string) string {
		value := rw.classNames.FindStringSubmatch(match)[1]

		joined, prefixed, kept := rw.prefixTokens(value)
		stats.TokensPrefixed += prefixed
		stats.TokensKept += kept

		rewritten := `className = "` + joined + `"`
		if rewritten != match {
			stats.LiteralsRewritten++
		}
		return rewritten
	})

	return content, stats
}

// prefixTokens splits a class string on whitespace and prepends the
// prefix to every token that does not already carry it. Empty tokens
// from repeated whitespace are dropped; the survivors keep their
// relative order and are rejoined with single spaces.
func (rw *Rewriter) prefixTokens(value string) (joined string, prefixed, kept int) {
	tokens := strings.Fields(value)

	for i, tok := range tokens {
		if strings.HasPrefix(tok, rw.prefix) {
			kept++
			continue
		}
		tokens[i] = rw.prefix + tok
		prefixed++
	}

	return strings.Join(tokens, " "), prefixed, kept
}
