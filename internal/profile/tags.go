package profile

import "strings"

// tagKeywords maps lowercase title substrings onto display tags. Iteration
// uses the ordered slice below so generated tags stay deterministic.
var tagKeywords = []struct {
	keyword string
	tag     string
}{
	{"machine learning", "Machine Learning"},
	{"deep learning", "Deep Learning"},
	{"neural network", "Neural Networks"},
	{"classification", "Classification"},
	{"regression", "Regression"},
	{"clustering", "Clustering"},
	{"nlp", "Natural Language Processing"},
	{"natural language", "Natural Language Processing"},
	{"computer vision", "Computer Vision"},
	{"image processing", "Image Processing"},
	{"data visualization", "Data Visualization"},
	{"predictive", "Predictive Analytics"},
	{"analysis", "Data Analysis"},
	{"python", "Python"},
	{"sql", "SQL"},
	{"web scraping", "Web Scraping"},
	{"api", "API Integration"},
	{"dashboard", "Dashboard"},
	{"time series", "Time Series Analysis"},
	{"forecasting", "Forecasting"},
	{"recommendation", "Recommendation Systems"},
	{"sentiment", "Sentiment Analysis"},
	{"text mining", "Text Mining"},
	{"big data", "Big Data"},
	{"spark", "Apache Spark"},
	{"tensorflow", "TensorFlow"},
	{"pytorch", "PyTorch"},
	{"scikit", "Scikit-learn"},
	{"pandas", "Pandas"},
	{"tableau", "Tableau"},
	{"power bi", "Power BI"},
	{"statistic", "Statistics"},
}

// defaultTags cover titles that match no keyword.
var defaultTags = []string{"Data Science", "Python", "Analytics"}

const maxGeneratedTags = 5

// GenerateTags derives display tags from a project title by keyword lookup.
// At most five tags are returned; titles matching nothing get a generic set.
func GenerateTags(title string) []string {
	lowered := strings.ToLower(title)

	var tags []string
	seen := map[string]struct{}{}
	for _, entry := range tagKeywords {
		if !strings.Contains(lowered, entry.keyword) {
			continue
		}
		if _, ok := seen[entry.tag]; ok {
			continue
		}
		seen[entry.tag] = struct{}{}
		tags = append(tags, entry.tag)
		if len(tags) == maxGeneratedTags {
			return tags
		}
	}

	if len(tags) == 0 {
		return append([]string(nil), defaultTags...)
	}
	return tags
}
