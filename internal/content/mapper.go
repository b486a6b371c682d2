// Package content maps untrusted content documents onto the normalized
// display model. The mapper is total: any input, however malformed, produces
// a structurally valid model with every field present.
package content

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/natejswenson/portfolio-engine/internal/types"
)

// Normalize maps a raw JSON content document to a display model. Missing
// scalar fields default to the empty string and missing or malformed list
// fields to empty slices; a non-object document yields a fully defaulted
// model. Normalize never fails.
func Normalize(data []byte) *types.DisplayModel {
	return NormalizeDocument(gjson.ParseBytes(data))
}

// NormalizeDocument is Normalize for an already-parsed document value.
func NormalizeDocument(doc gjson.Result) *types.DisplayModel {
	model := &types.DisplayModel{
		SocialLinks:  []types.SocialLink{},
		Education:    []types.Education{},
		Work:         []types.Work{},
		Skills:       []types.SkillEntry{},
		Tools:        []types.SkillEntry{},
		Portfolio:    []types.PortfolioItem{},
		Testimonials: []types.Testimonial{},
	}
	if !doc.IsObject() {
		return model
	}

	model.Name = doc.Get("name").String()
	model.Role = doc.Get("role").String()
	model.RoleDescription = strings.TrimSpace(doc.Get("roleDescription").String())
	model.AboutMe = doc.Get("aboutme").String()
	model.Hobbies = doc.Get("hobbies").String()
	model.Address = doc.Get("address").String()
	model.Website = doc.Get("website").String()

	model.SocialLinks = socialLinks(doc.Get("socialLinks"))
	model.Education = educationList(doc.Get("education"))
	model.Work = workList(doc.Get("work"))
	model.Skills = skillList(doc.Get("skills"))
	model.Tools = skillList(doc.Get("tools"))
	model.Portfolio = portfolioList(doc.Get("portfolio"))
	model.Testimonials = testimonialList(doc.Get("testimonials"))
	return model
}

// firstString returns the first present, non-empty value among the named
// keys. Content documents in the wild mix camelCase keys with legacy
// capitalized spellings, so most fields probe more than one key.
func firstString(e gjson.Result, keys ...string) string {
	for _, key := range keys {
		if v := e.Get(key); v.Exists() {
			if s := v.String(); s != "" {
				return s
			}
		}
	}
	return ""
}

func socialLinks(v gjson.Result) []types.SocialLink {
	links := []types.SocialLink{}
	if !v.IsArray() {
		return links
	}
	v.ForEach(func(_, e gjson.Result) bool {
		links = append(links, types.SocialLink{
			Name:      e.Get("name").String(),
			URL:       e.Get("url").String(),
			IconClass: firstString(e, "iconClass", "className"),
		})
		return true
	})
	return links
}

func educationList(v gjson.Result) []types.Education {
	education := []types.Education{}
	if !v.IsArray() {
		return education
	}
	v.ForEach(func(_, e gjson.Result) bool {
		education = append(education, types.Education{
			UniversityName: firstString(e, "universityName", "UniversityName"),
			Specialization: e.Get("specialization").String(),
			MonthOfPassing: firstString(e, "monthOfPassing", "MonthOfPassing"),
			YearOfPassing:  firstString(e, "yearOfPassing", "YearOfPassing"),
		})
		return true
	})
	return education
}

func workList(v gjson.Result) []types.Work {
	work := []types.Work{}
	if !v.IsArray() {
		return work
	}
	v.ForEach(func(_, e gjson.Result) bool {
		work = append(work, types.Work{
			Company:        firstString(e, "company", "CompanyName"),
			Specialization: e.Get("specialization").String(),
			MonthOfLeaving: firstString(e, "monthOfLeaving", "MonthOfLeaving"),
			YearOfLeaving:  firstString(e, "yearOfLeaving", "YearOfLeaving"),
			Achievements:   achievements(e),
		})
		return true
	})
	return work
}

// achievements normalizes the three achievement encodings found in content
// documents: an ordered array, a single string, and legacy numbered keys
// (achievement1, achievement2, ...). All collapse to an ordered []string.
func achievements(e gjson.Result) []string {
	out := []string{}

	switch a := e.Get("achievements"); {
	case a.IsArray():
		a.ForEach(func(_, v gjson.Result) bool {
			if s := strings.TrimSpace(v.String()); s != "" {
				out = append(out, s)
			}
			return true
		})
	case a.Type == gjson.String:
		if s := strings.TrimSpace(a.String()); s != "" {
			out = append(out, s)
		}
	}

	for i := 1; ; i++ {
		v := e.Get(fmt.Sprintf("achievement%d", i))
		if !v.Exists() {
			break
		}
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}
	}

	return out
}

func portfolioList(v gjson.Result) []types.PortfolioItem {
	portfolio := []types.PortfolioItem{}
	if !v.IsArray() {
		return portfolio
	}
	v.ForEach(func(_, e gjson.Result) bool {
		portfolio = append(portfolio, types.PortfolioItem{
			Name:        e.Get("name").String(),
			Description: e.Get("description").String(),
			ImageURL:    firstString(e, "imageUrl", "imgurl"),
			URL:         e.Get("url").String(),
		})
		return true
	})
	return portfolio
}

func testimonialList(v gjson.Result) []types.Testimonial {
	testimonials := []types.Testimonial{}
	if !v.IsArray() {
		return testimonials
	}
	v.ForEach(func(_, e gjson.Result) bool {
		testimonials = append(testimonials, types.Testimonial{
			Description: e.Get("description").String(),
			Author:      firstString(e, "author", "name"),
		})
		return true
	})
	return testimonials
}
