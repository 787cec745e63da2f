package settings

// Settings is the process-wide singleton configuration row (fixed id 1).
// A nil LineOfTheMonth disables the Deals view.
type Settings struct {
	ID             int     `json:"id"`
	LogoURL        *string `json:"logoURL"`
	LineOfTheMonth *string `json:"lineOfTheMonth"`
}

// singletonID is the fixed key of the one settings row.
const singletonID = 1
