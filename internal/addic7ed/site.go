package addic7ed

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"addic7ed-downloader/internal/subtitle"

	"github.com/PuerkitoBio/goquery"
)

const searchPath = "/search.php"

// Site reads search results, episode pages and subtitle files through a
// Fetcher
type Site struct {
	fetch Fetcher
}

// NewSite wraps a fetcher with the site's page layouts
func NewSite(fetch Fetcher) *Site {
	return &Site{fetch: fetch}
}

// Search returns the episodes listed for query
func (s *Site) Search(ctx context.Context, query string) ([]*subtitle.Episode, error) {
	doc, err := s.fetch.Document(ctx, searchPath, url.Values{
		"search": {query},
		"submit": {"Search"},
	})
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	var episodes []*subtitle.Episode
	doc.Find(".tabel a").Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		episodes = append(episodes, subtitle.NewEpisode(href, strings.TrimSpace(link.Text())))
	})

	return episodes, nil
}

// EpisodePage loads the episode page at pageURL
func (s *Site) EpisodePage(ctx context.Context, pageURL string) (subtitle.EpisodePage, error) {
	doc, err := s.fetch.Document(ctx, pageURL, nil)
	if err != nil {
		return nil, err
	}
	return &episodePage{doc: doc}, nil
}

// Download returns the subtitle file behind downloadURL
func (s *Site) Download(ctx context.Context, downloadURL string) ([]byte, error) {
	data, err := s.fetch.Raw(ctx, downloadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	return data, nil
}

// episodePage reads the ".tabel95" layout: the first tables hold the title
// and navigation, then every other table is a release section, and the
// last one is a footer
type episodePage struct {
	doc *goquery.Document
}

func (p *episodePage) tables() *goquery.Selection {
	return p.doc.Find(".tabel95")
}

func (p *episodePage) Title() string {
	return strings.TrimSpace(p.tables().Find(".titulo").Contents().First().Text())
}

func (p *episodePage) Sections() []subtitle.Section {
	tables := p.tables()

	var sections []subtitle.Section
	for i := 2; i < tables.Length()-1; i += 2 {
		sections = append(sections, readSection(tables.Eq(i)))
	}
	return sections
}

func readSection(table *goquery.Selection) subtitle.Section {
	trs := table.Find("tr")

	section := subtitle.Section{
		Release: trs.Find(".NewsTitle").Text(),
		Infos:   trs.Next().Find(".newsDate").First().Text(),
	}

	trs.Each(func(i int, tr *goquery.Selection) {
		if i < 2 {
			return
		}
		section.Rows = append(section.Rows, readRow(tr))
	})

	return section
}

func readRow(tr *goquery.Selection) subtitle.Row {
	language := tr.Find(".language")

	row := subtitle.Row{
		Language:    strings.TrimSpace(language.Text()),
		HasLanguage: language.Length() > 0,
		Status:      strings.TrimSpace(language.Next().Text()),
	}

	tr.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		if href, ok := link.Attr("href"); ok {
			row.Links = append(row.Links, href)
		}
	})

	return row
}
