package sslmcp

import (
	"context"
	"fmt"
	"strings"
)

// TDPService searches the external Team Description Paper archive.
type TDPService interface {
	// Search returns paragraphs from published TDPs relevant to the query.
	Search(ctx context.Context, query string, paragraphs int) (*TDPResult, error)
}

// TDPLeague identifies the league a TDP was published in.
type TDPLeague struct {
	Major      string `json:"league_major,omitempty"`
	Minor      string `json:"league_minor,omitempty"`
	Sub        string `json:"league_sub,omitempty"`
	Name       string `json:"name,omitempty"`
	NamePretty string `json:"name_pretty,omitempty"`
}

// TDPTeam identifies the team that authored a TDP.
type TDPTeam struct {
	Name       string `json:"name,omitempty"`
	NamePretty string `json:"name_pretty,omitempty"`
}

// TDPInfo identifies a single TDP.
type TDPInfo struct {
	Index  int       `json:"index,omitempty"`
	League TDPLeague `json:"league,omitempty"`
	Team   TDPTeam   `json:"team_name,omitempty"`
	Year   int       `json:"year,omitempty"`
}

// TDPParagraph is a single matched paragraph from a TDP.
type TDPParagraph struct {
	TDP       TDPInfo  `json:"tdp_name,omitempty"`
	Title     string   `json:"title,omitempty"`
	Content   string   `json:"content,omitempty"`
	Questions []string `json:"questions,omitempty"`
}

// TDPResult is the response of a TDP search.
type TDPResult struct {
	Keywords   []string       `json:"keywords,omitempty"`
	Paragraphs []TDPParagraph `json:"paragraphs,omitempty"`
}

// URL returns the tdpsearch.com page for the paragraph's TDP.
func (p *TDPParagraph) URL() string {
	return fmt.Sprintf("https://tdpsearch.com/#/tdp/%s__%d__%s__%d",
		p.TDP.League.Name, p.TDP.Year, p.TDP.Team.Name, p.TDP.Index)
}

// Markdown renders up to n paragraphs of the result as markdown.
func (r *TDPResult) Markdown(n int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# TDP Search Results (%d paragraphs)\n\n", len(r.Paragraphs))
	fmt.Fprintf(&sb, "## Keywords: %s\n\n", strings.Join(r.Keywords, ", "))
	sb.WriteString("## Results found:\n\n")

	for i, p := range r.Paragraphs {
		if i >= n {
			break
		}
		fmt.Fprintf(&sb, "### %d. TDP from %s Team - Paragraph %s\n\n", i+1, p.TDP.Team.NamePretty, p.Title)
		fmt.Fprintf(&sb, "**TDP Year:** %d\n\n", p.TDP.Year)
		fmt.Fprintf(&sb, "**TDP URL:** %s\n\n", p.URL())
		fmt.Fprintf(&sb, "**TDP Content:**\n\n%s\n\n", p.Content)
		sb.WriteString("**Questions related to the TDP content:**\n")
		for j, q := range p.Questions {
			fmt.Fprintf(&sb, "  - Q%d: %s\n", j+1, q)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
