package content

// ServiceLocationPage is one programmatic page for a (service, location)
// pair, the unit of the site's SEO content. Records are authored out of
// band as JSON files and are read-only at runtime.
type ServiceLocationPage struct {
	ID               string        `json:"id"`
	Service          string        `json:"service"`
	ServiceSlug      string        `json:"serviceSlug"`
	Location         string        `json:"location"`
	LocationSlug     string        `json:"locationSlug"`
	PageTitle        string        `json:"pageTitle"`
	MetaDescription  string        `json:"metaDescription"`
	HeroHeadline     string        `json:"heroHeadline"`
	HeroSubheadline  string        `json:"heroSubheadline"`
	Description      string        `json:"description"`
	ShortDescription string        `json:"shortDescription"`
	Benefits         []string      `json:"benefits"`
	Process          []ProcessStep `json:"process"`
	PricingInfo      string        `json:"pricingInfo"`
	ServiceArea      string        `json:"serviceArea"`
	Availability     string        `json:"availability"`
	Qualifications   []string      `json:"qualifications"`
	YearsExperience  string        `json:"yearsExperience"`
	Guarantees       []string      `json:"guarantees"`
	Emergency        bool          `json:"emergencyAvailable"`
	Images           PageImages    `json:"images"`
	H2Headings       []string      `json:"h2Headings"`
	FAQ              []FAQItem     `json:"faq"`
	Keywords         []string      `json:"keywords"`
	LocalKeywords    []string      `json:"localKeywords"`
	CTAPhone         string        `json:"ctaPhone"`
	CTAEmail         string        `json:"ctaEmail,omitempty"`
	CTAText          string        `json:"ctaText"`
	CTASecondary     string        `json:"ctaSecondary"`
}

// clone returns a copy that shares no slice backing arrays with the
// receiver, so callers can mutate it without touching the loaded snapshot.
func (p ServiceLocationPage) clone() ServiceLocationPage {
	out := p
	out.Benefits = append([]string(nil), p.Benefits...)
	out.Process = append([]ProcessStep(nil), p.Process...)
	out.Qualifications = append([]string(nil), p.Qualifications...)
	out.Guarantees = append([]string(nil), p.Guarantees...)
	out.Images.Gallery = append([]GalleryImage(nil), p.Images.Gallery...)
	out.H2Headings = append([]string(nil), p.H2Headings...)
	out.FAQ = append([]FAQItem(nil), p.FAQ...)
	out.Keywords = append([]string(nil), p.Keywords...)
	out.LocalKeywords = append([]string(nil), p.LocalKeywords...)
	return out
}

// ProcessStep is one entry of the ordered how-we-work list on a page.
type ProcessStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PageImages groups the hero image and the gallery of a page. All images
// are hosted externally; only the URLs are stored.
type PageImages struct {
	HeroImage GalleryImage   `json:"heroImage"`
	Gallery   []GalleryImage `json:"gallery"`
}

// GalleryImage is an externally hosted image reference.
type GalleryImage struct {
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

// FAQItem is one question/answer pair rendered on a page.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Location is one entry of the locations catalog.
type Location struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Type             string   `json:"type"`
	IsMainLocation   bool     `json:"isMainLocation,omitempty"`
	DistanceFromMain Distance `json:"distanceFromMain"`
	County           string   `json:"county"`
	Population       int      `json:"population,omitempty"`
}

// Distance is a value with a unit, e.g. 12 km from the main location.
type Distance struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Service is one entry of the services catalog. Description is markdown.
type Service struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
