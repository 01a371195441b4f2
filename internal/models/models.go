package models

type Profile struct {
	Name     string
	Title    string
	GitHub   string
	Bio      string
	Email    string
	Location string
	Skills   []string
}

type Project struct {
	Title   string
	Summary string
	URL     string
	Tech    []string
}

type IndexPageData struct {
	Profile  Profile
	Projects []Project
	Year     int
	Version  string
}
