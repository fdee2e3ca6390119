package types

// CoverLetter is the structured cover letter document.
type CoverLetter struct {
	ID         string    `json:"id,omitempty"`
	Title      string    `json:"title,omitempty"`
	Contact    Contact   `json:"contact"`
	Recipient  Recipient `json:"recipient"`
	Date       string    `json:"date,omitempty"` // YYYY-MM-DD; rendered as-is
	Salutation string    `json:"salutation,omitempty"`
	Body       []string  `json:"body"` // one entry per paragraph
	Closing    string    `json:"closing,omitempty"`
}

// Recipient identifies who the letter is addressed to.
type Recipient struct {
	Name    string `json:"name,omitempty"`
	Company string `json:"company"`
	Role    string `json:"role,omitempty"` // role being applied for
	Address string `json:"address,omitempty"`
}

// SalutationOrDefault returns the configured salutation, falling back to a
// generic greeting when none is set.
func (c *CoverLetter) SalutationOrDefault() string {
	if c.Salutation != "" {
		return c.Salutation
	}
	if c.Recipient.Name != "" {
		return "Dear " + c.Recipient.Name + ","
	}
	return "Dear Hiring Manager,"
}

// ClosingOrDefault returns the configured closing, falling back to
// "Sincerely," when none is set.
func (c *CoverLetter) ClosingOrDefault() string {
	if c.Closing != "" {
		return c.Closing
	}
	return "Sincerely,"
}
