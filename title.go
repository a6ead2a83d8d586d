package imdbsearch

import (
	"fmt"
	"strings"
)

// NoRating is reported for titles whose listing row carries no rating.
// It is a sentinel, not a number.
const NoRating = "No rating."

// Person is someone credited on a listing row under a role label.
type Person struct {
	Name        string `json:"name"`
	ProfileHref string `json:"profileHref"`
	Role        string `json:"role"`
}

// TitleSearchItem is one result row of a title listing page.
type TitleSearchItem struct {
	Title    Anchor `json:"title"`
	ImageURL string `json:"imageUrl"`
	Years    string `json:"years"`
	Info     string `json:"info"`
	Rating   string `json:"rating"`
	Summary  string `json:"summary"`

	// PeopleByRole groups credited people by the role label exactly as it
	// appears on the page ("Director", "Stars", ...). Labels are not
	// normalized, so "Director" and "Directors" are distinct keys.
	PeopleByRole map[string][]Person `json:"peopleByRole"`

	// Roles lists the keys of PeopleByRole in page order.
	Roles []string `json:"roles"`
}

// Validate returns an error if the item is missing its title link.
func (i *TitleSearchItem) Validate() error {
	if i.Title.Text == "" {
		return Errorf(EMALFORMED, "title text required")
	}
	if i.Title.Href == "" {
		return Errorf(EMALFORMED, "title href required")
	}
	return nil
}

// People returns the people credited under role, or an empty slice.
func (i *TitleSearchItem) People(role string) []Person {
	people := i.PeopleByRole[role]
	if people == nil {
		return []Person{}
	}
	return append([]Person(nil), people...)
}

// PeopleIn returns the people of every given role, concatenated in
// argument order.
func (i *TitleSearchItem) PeopleIn(roles ...string) []Person {
	result := []Person{}
	for _, role := range roles {
		result = append(result, i.PeopleByRole[role]...)
	}
	return result
}

// Directors returns people credited as "Director" or "Directors".
func (i *TitleSearchItem) Directors() []Person {
	return i.PeopleIn("Director", "Directors")
}

// Stars returns people credited as "Star" or "Stars".
func (i *TitleSearchItem) Stars() []Person {
	return i.PeopleIn("Star", "Stars")
}

// JoinPeople renders every role group as roleFormat(role) followed by the
// group's people formatted with personFormat and joined by personSep.
// Groups are joined by sep and appear in page order.
func (i *TitleSearchItem) JoinPeople(roleFormat func(role string) string, sep string, personFormat func(Person) string, personSep string) string {
	groups := make([]string, 0, len(i.Roles))
	for _, role := range i.Roles {
		people := i.PeopleByRole[role]
		names := make([]string, 0, len(people))
		for _, p := range people {
			names = append(names, personFormat(p))
		}
		groups = append(groups, roleFormat(role)+strings.Join(names, personSep))
	}
	return strings.Join(groups, sep)
}

// String renders the item as a short multi-line summary.
func (i *TitleSearchItem) String() string {
	return fmt.Sprintf("%s %s\n- %s\n- Rating: %s\n- %s",
		i.Title.Text, i.Years, i.Info, i.Rating, i.Summary)
}

// TitleSearch is the ordered result of parsing a title listing page.
type TitleSearch struct {
	Items []*TitleSearchItem `json:"items"`
}

// TitleParser extracts title listing results from raw HTML.
type TitleParser interface {
	// ParseTitleListing parses a title listing page.
	// Rows without a usable title link are skipped silently.
	// Returns EDECODE if html is not valid UTF-8.
	ParseTitleListing(html string) (*TitleSearch, error)
}
