package models

// Submission is a contact form payload as posted to /api/contact.
// It is never persisted; every field except Goals is optional free text.
type Submission struct {
	CompanyName    string   `json:"companyName"`
	Website        string   `json:"website"`
	Sector         string   `json:"sector"`
	Region         string   `json:"region"`
	TeamSize       string   `json:"teamSize"`
	Revenue        string   `json:"revenue"`
	Goals          []string `json:"goals"`
	Timing         string   `json:"timing"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	InvitationCode string   `json:"invitationCode,omitempty"`
}

// Clone returns a copy that shares no memory with s.
func (s Submission) Clone() Submission {
	out := s
	out.Goals = append([]string{}, s.Goals...)
	return out
}

// ContactResponse is the JSON reply of the contact endpoint.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
