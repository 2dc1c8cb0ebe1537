package static

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolver maps request paths to files under a fixed content root.
//
// Resolution walks an ordered rule table, first match wins:
// directory prefixes (css/, img/, _includes/) pin a path to that
// directory, a .html suffix is looked up in _pages/ before the root,
// and anything else is served straight from the root.
type Resolver struct {
	Root string
}

// prefixRule pins a URL prefix to a directory under the root.
type prefixRule struct {
	prefix string
	dir    string
}

var prefixRules = []prefixRule{
	{prefix: "css/", dir: "css"},
	{prefix: "img/", dir: "img"},
	{prefix: "_includes/", dir: "_includes"},
}

// pages maps the named marketing routes to their files.
var pages = map[string]string{
	"/":             "index.html",
	"/about":        filepath.Join("_pages", "about.html"),
	"/programmes":   filepath.Join("_pages", "programmes.html"),
	"/testimonials": filepath.Join("_pages", "testimonials.html"),
	"/blog":         filepath.Join("_pages", "blog.html"),
	"/faq":          filepath.Join("_pages", "faq.html"),
	"/booking":      filepath.Join("_pages", "booking.html"),
}

func NewResolver(root string) *Resolver {
	return &Resolver{Root: root}
}

// PageRoutes lists the named page routes, for registration on the router.
func PageRoutes() []string {
	routes := make([]string, 0, len(pages))
	for route := range pages {
		routes = append(routes, route)
	}
	return routes
}

// ResolvePage resolves one of the named page routes.
func (r *Resolver) ResolvePage(route string) (string, bool) {
	rel, ok := pages[route]
	if !ok {
		return "", false
	}
	return r.existing(rel)
}

// Resolve resolves an arbitrary request path against the rule table.
// The second return value is false when no file matches.
func (r *Resolver) Resolve(reqPath string) (string, bool) {
	name := strings.TrimPrefix(reqPath, "/")
	if name == "" || strings.Contains(name, "..") {
		return "", false
	}

	for _, rule := range prefixRules {
		if strings.HasPrefix(name, rule.prefix) {
			return r.existing(filepath.Join(rule.dir, strings.TrimPrefix(name, rule.prefix)))
		}
	}

	if strings.HasSuffix(name, ".html") {
		if full, ok := r.existing(filepath.Join("_pages", name)); ok {
			return full, ok
		}
		return r.existing(name)
	}

	return r.existing(name)
}

func (r *Resolver) existing(rel string) (string, bool) {
	full := filepath.Join(r.Root, rel)
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", false
	}
	return full, true
}
