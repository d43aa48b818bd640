package types

// Policy selects how the content region is reduced and serialized.
// The zero value extracts the full region as markup.
type Policy struct {
	Lead      bool // Lead paragraphs only (stop at the first heading)
	Strip     bool // Serialize text content only
	Condensed bool // Epedia format; implies Lead and Strip
	Markdown  bool // Convert the final output to markdown text
}

// Normalize returns the effective policy. Condensed output is only defined
// over lead paragraphs with tags stripped, so it forces both flags on.
func (p Policy) Normalize() Policy {
	if p.Condensed {
		p.Lead = true
		p.Strip = true
	}
	return p
}
