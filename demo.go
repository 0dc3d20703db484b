package skim

// DemoArticle is a sample URL offered by the dashboard and the CLI for
// quick trials.
type DemoArticle struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DemoArticles returns the sample article catalog.
func DemoArticles() []DemoArticle {
	return []DemoArticle{
		{Name: "AI/Technology", URL: "https://timesofindia.indiatimes.com/technology/tech-news/what-have-we-done-sam-altman-says-i-feel-useless-compares-chatgpt-5s-power-to-the-manhattan-project/articleshow/123112813.cms"},
		{Name: "BBC Tech News", URL: "https://www.bbc.com/news/technology"},
		{Name: "Science News", URL: "https://www.theguardian.com/science"},
	}
}
