package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultServices is returned when the page yields no extractable
// service descriptions at all.
var DefaultServices = []string{
	"Web Development",
	"Mobile App Development",
	"Cloud Services",
	"AI and Machine Learning",
	"Digital Marketing",
	"IT Consulting",
}

// Extract pulls human-readable service descriptions out of a parsed page.
// It is a pure function over the document tree so it can be tested against
// fixed HTML fixtures.
//
// The heuristic is layered: first any section/div whose class mentions
// "service" is mined for headings, list items and paragraphs; failing
// that, paragraphs in the main content that talk about services or offers
// are taken; failing that, a fixed default list.
func Extract(doc *goquery.Document) []string {
	var services []string

	doc.Find("section, div").Each(func(_ int, sel *goquery.Selection) {
		class, ok := sel.Attr("class")
		if !ok || !strings.Contains(strings.ToLower(class), "service") {
			return
		}
		sel.Find("h2, h3, li, p").Each(func(_ int, item *goquery.Selection) {
			text := strings.TrimSpace(item.Text())
			if len(text) > 10 {
				services = append(services, text)
			}
		})
	})

	if len(services) == 0 {
		main := doc.Find("main").First()
		if main.Length() == 0 {
			main = doc.Find("article").First()
		}
		if main.Length() == 0 {
			main = doc.Find("body").First()
		}
		main.Find("p").Each(func(_ int, p *goquery.Selection) {
			text := strings.TrimSpace(p.Text())
			lower := strings.ToLower(text)
			if len(text) > 20 && (strings.Contains(lower, "service") || strings.Contains(lower, "offer")) {
				services = append(services, text)
			}
		})
	}

	if len(services) == 0 {
		services = append(services, DefaultServices...)
	}

	return services
}
