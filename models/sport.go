package models

// Sport is one entry of the closed sports catalogue. Only badminton is
// playable; the rest are locked placeholders.
type Sport struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}
