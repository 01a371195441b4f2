package resume

import (
	"errors"

	"github.com/tidwall/gjson"

	"github.com/YongjaeKwon0629/first-deploy/internal/models"
)

var (
	errInvalidJSON     = errors.New("response is not valid JSON")
	errProfileNotObj   = errors.New("profile document is not a JSON object")
	errPortfolioNotArr = errors.New("portfolio document is not a JSON array")
)

// DecodeProfile reads a profile document. Missing or null fields become "",
// other scalars are rendered as their JSON text, and skills falls back to an
// empty list unless it is an array.
func DecodeProfile(body []byte) (models.Profile, error) {
	if !gjson.ValidBytes(body) {
		return models.Profile{}, errInvalidJSON
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return models.Profile{}, errProfileNotObj
	}

	return models.Profile{
		Name:     doc.Get("name").String(),
		Title:    doc.Get("title").String(),
		GitHub:   doc.Get("github").String(),
		Bio:      doc.Get("bio").String(),
		Email:    doc.Get("email").String(),
		Location: doc.Get("location").String(),
		Skills:   stringList(doc.Get("skills")),
	}, nil
}

// DecodePortfolio reads a portfolio array in document order. Elements that
// are not objects produce an empty project rather than an error.
func DecodePortfolio(body []byte) ([]models.Project, error) {
	if !gjson.ValidBytes(body) {
		return nil, errInvalidJSON
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsArray() {
		return nil, errPortfolioNotArr
	}

	elems := doc.Array()
	projects := make([]models.Project, 0, len(elems))
	for _, e := range elems {
		if !e.IsObject() {
			projects = append(projects, models.Project{Tech: []string{}})
			continue
		}
		projects = append(projects, models.Project{
			Title:   e.Get("title").String(),
			Summary: e.Get("summary").String(),
			URL:     e.Get("url").String(),
			Tech:    stringList(e.Get("tech")),
		})
	}
	return projects, nil
}

func stringList(r gjson.Result) []string {
	if !r.IsArray() {
		return []string{}
	}
	elems := r.Array()
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		out = append(out, e.String())
	}
	return out
}
