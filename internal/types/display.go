// Package types provides type definitions for structured data used throughout the portfolio-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DisplayModel is the normalized, render-ready structure derived from a content
// document. Every field is always present: scalars default to the empty string
// and list fields to empty slices, so section rendering never guards against
// missing data.
type DisplayModel struct {
	Name            string `json:"name"`
	Role            string `json:"role"`
	RoleDescription string `json:"role_description"`
	AboutMe         string `json:"aboutme"`
	Hobbies         string `json:"hobbies"`
	Address         string `json:"address"`
	Website         string `json:"website"`

	SocialLinks  []SocialLink    `json:"social_links"`
	Education    []Education     `json:"education"`
	Work         []Work          `json:"work"`
	Skills       []SkillEntry    `json:"skills"`
	Tools        []SkillEntry    `json:"tools"`
	Portfolio    []PortfolioItem `json:"portfolio"`
	Testimonials []Testimonial   `json:"testimonials"`
}

// SocialLink represents a single external profile link
type SocialLink struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	IconClass string `json:"icon_class"`
}

// Education represents a single education entry
type Education struct {
	UniversityName string `json:"university_name"`
	Specialization string `json:"specialization"`
	MonthOfPassing string `json:"month_of_passing"`
	YearOfPassing  string `json:"year_of_passing"`
}

// Work represents a single work history entry with normalized achievements
type Work struct {
	Company        string   `json:"company"`
	Specialization string   `json:"specialization"`
	MonthOfLeaving string   `json:"month_of_leaving"`
	YearOfLeaving  string   `json:"year_of_leaving"`
	Achievements   []string `json:"achievements"`
}

// PortfolioItem represents a single portfolio project
type PortfolioItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	URL         string `json:"url,omitempty"`
}

// Testimonial represents a single testimonial with its author
type Testimonial struct {
	Description string `json:"description"`
	Author      string `json:"author"`
}
