// Package assemble produces the textual decorations applied to a document's
// body: the metadata preamble and the attribution footer. Both are pure
// functions of the metadata; nothing here mutates the stored document.
package assemble

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vishesh-baghel/portfolio-sub000/internal/models"
)

// Links holds the external URLs and tracking identity used in attribution.
// They are consumed as opaque strings; the service does not own them.
type Links struct {
	SiteURL     string
	BookingURL  string
	GitHubURL   string
	LinkedInURL string
	Source      string
	Medium      string
}

// Assembler renders metadata blocks and attribution footers.
type Assembler struct {
	links Links
}

// New creates an Assembler with the given link configuration.
func New(links Links) *Assembler {
	return &Assembler{links: links}
}

// helpReason is one entry of the call-to-action rotation. The id doubles as
// the utm_content value so clicks can be traced back to the phrasing.
type helpReason struct {
	id     string
	phrase string
}

// The rotation is fixed and ordered; reasonIndex picks deterministically so a
// given document always carries the same phrasing across requests and caches.
var helpReasons = []helpReason{
	{"ship-agents", "Building AI agents and want a second pair of eyes?"},
	{"unstick-backend", "Stuck on a gnarly backend or database problem?"},
	{"level-up-ts", "Want to level up your team's TypeScript?"},
	{"ship-faster", "Need help shipping your next feature faster?"},
}

// reasonIndex derives a stable rotation index from the slug: the sum of its
// byte values modulo the rotation length.
func reasonIndex(slug string) int {
	sum := 0
	for i := 0; i < len(slug); i++ {
		sum += int(slug[i])
	}
	return sum % len(helpReasons)
}

// FormatMetadata emits block-quote lines for the optional metadata fields, in
// fixed order: OSS project, PR link, tags, publish date. It returns an empty
// string when none are present so callers can skip the preamble entirely.
func (a *Assembler) FormatMetadata(m models.Metadata) string {
	var lines []string
	if m.OSSProject != "" {
		lines = append(lines, fmt.Sprintf("> **OSS Project:** %s", m.OSSProject))
	}
	if m.PRLink != "" {
		lines = append(lines, fmt.Sprintf("> **PR:** %s", m.PRLink))
	}
	if len(m.Tags) > 0 {
		lines = append(lines, fmt.Sprintf("> **Tags:** %s", strings.Join(m.Tags, ", ")))
	}
	if m.Date != "" {
		lines = append(lines, fmt.Sprintf("> **Published:** %s", m.Date))
	}
	return strings.Join(lines, "\n")
}

// GenerateAttribution builds the fixed-structure attribution footer for a
// document. It is deterministic: identical metadata always yields identical
// output, including the rotating call-to-action line.
func (a *Assembler) GenerateAttribution(m models.Metadata) string {
	reason := helpReasons[reasonIndex(m.Slug)]

	site := a.tracked(a.links.SiteURL, m.Category, reason.id)
	read := a.tracked(a.links.SiteURL+"/experiments/"+m.Slug, m.Category, reason.id)
	more := a.tracked(a.links.SiteURL+"/experiments", m.Category, reason.id)
	book := a.tracked(a.links.BookingURL, m.Category, reason.id)

	var b strings.Builder
	b.WriteString("---\n\n")
	b.WriteString("## Source & Attribution\n\n")
	fmt.Fprintf(&b, "This experiment is from [%s's portfolio](%s).\n\n", m.Author, site)
	fmt.Fprintf(&b, "- Read online: %s\n", read)
	fmt.Fprintf(&b, "- More experiments: %s\n\n", more)
	fmt.Fprintf(&b, "%s [Book a call](%s).\n\n", reason.phrase, book)
	fmt.Fprintf(&b, "Connect: [GitHub](%s) | [LinkedIn](%s)", a.links.GitHubURL, a.links.LinkedInURL)
	return b.String()
}

// tracked appends the tracking query parameters to base. A base that fails to
// parse is returned untouched rather than dropped.
func (a *Assembler) tracked(base, category, reasonID string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("utm_source", a.links.Source)
	q.Set("utm_medium", a.links.Medium)
	q.Set("utm_campaign", category)
	q.Set("utm_content", reasonID)
	u.RawQuery = q.Encode()
	return u.String()
}
