package naming

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-slug"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/goliatone/go-doc2md/internal/doctree"
)

const (
	// FallbackSlug is used when a title yields no usable characters.
	FallbackSlug = "document"
	// MarkdownExt is appended to every generated file name.
	MarkdownExt = ".md"
)

var (
	numberedTitle = regexp.MustCompile(`^(\d+)[\s._-]+(.*)$`)
	leadingNumber = regexp.MustCompile(`^(\d+)[\s._-]*`)
)

// FoldAccents strips combining marks so "Introducción" becomes "Introduccion".
func FoldAccents(value string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, value)
	if err != nil {
		return value
	}
	return folded
}

// Slugify converts a title into a file-safe slug. Accents are folded first so
// go-slug keeps the base letters; any whitespace run separates words. Titles
// without any usable characters fall back to FallbackSlug.
func Slugify(value string) string {
	words := strings.Join(strings.Fields(FoldAccents(value)), " ")
	normalized, err := slug.Normalize(words)
	if err != nil || normalized == "" {
		return FallbackSlug
	}
	return normalized
}

// NormalizeTitle rewrites numbered titles into the "01 Title" form. Titles
// without a leading number are only trimmed.
func NormalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	match := numberedTitle.FindStringSubmatch(title)
	if match == nil {
		return title
	}
	num, err := strconv.Atoi(match[1])
	if err != nil {
		return title
	}
	return fmt.Sprintf("%02d %s", num, strings.TrimSpace(match[2]))
}

// DocumentFilename derives a single-document file name from a title. A leading
// number becomes a two-digit prefix ("3. Joins" -> "03-joins.md"); an empty
// title uses fallbackStem.
func DocumentFilename(title, fallbackStem string) string {
	clean := strings.TrimSpace(FoldAccents(title))
	if clean == "" {
		clean = strings.TrimSpace(fallbackStem)
	}
	if match := leadingNumber.FindStringSubmatchIndex(clean); match != nil {
		if num, err := strconv.Atoi(clean[match[2]:match[3]]); err == nil {
			return fmt.Sprintf("%02d-%s%s", num, Slugify(clean[match[1]:]), MarkdownExt)
		}
	}
	return Slugify(clean) + MarkdownExt
}

// PageFilename names the page at the 1-based index of a multi-page build.
func PageFilename(index int, title string) string {
	return fmt.Sprintf("%02d-%s%s", index, Slugify(title), MarkdownExt)
}

// DocumentTitle returns the title of the first titled section in doc, or
// fallback when there is none.
func DocumentTitle(doc *doctree.Document, fallback string) string {
	if s := doctree.FirstSection(doc); s != nil {
		return strings.TrimSpace(s.Title)
	}
	return fallback
}
