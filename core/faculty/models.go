package faculty

type (
	Professor struct {
		Name       string `json:"name"`
		Department string `json:"department"`
		Title      string `json:"title,omitempty"`
		Email      string `json:"email,omitempty"`
		OpenAlexID string `json:"openalex_id,omitempty"`
	}

	// Author is the OpenAlex view of a researcher.
	Author struct {
		ID           string   `json:"id"`
		DisplayName  string   `json:"display_name"`
		WorksCount   int      `json:"works_count"`
		CitedByCount int      `json:"cited_by_count"`
		Concepts     []string `json:"concepts,omitempty"`
	}

	WorkAuthor struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	Work struct {
		Title        string       `json:"title"`
		Year         int          `json:"year"`
		DOI          string       `json:"doi,omitempty"`
		CitedByCount int          `json:"cited_by_count"`
		Authors      []WorkAuthor `json:"authors,omitempty"`
	}

	Coauthor struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Works int    `json:"works"`
	}

	// Profile combines directory info with research data where available.
	Profile struct {
		Professor   Professor  `json:"professor"`
		Author      *Author    `json:"openalex_data,omitempty"`
		RecentWorks []Work     `json:"recent_works,omitempty"`
		Coauthors   []Coauthor `json:"coauthors,omitempty"`
	}
)
