// Package resources clusters a learning-resource catalog by text similarity
// and answers free-text subject queries with the most relevant resources.
package resources

// Resource is one entry in the learning-resource catalog. Cluster is
// assigned at build time and immutable at query time.
type Resource struct {
	Subject     string `json:"subject" yaml:"subject"`
	Title       string `json:"title" yaml:"title"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
	Cluster     int    `json:"cluster_id" yaml:"-"`
}

// text is the string the vectorizer sees for a resource.
func (r Resource) text() string {
	return r.Subject + " " + r.Description
}
