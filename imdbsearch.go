// Package imdbsearch fetches search-result pages from a media-catalog site
// and extracts structured records (titles, people, ratings, links) from
// their HTML.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package imdbsearch

// DefaultBaseURL is the site queried when no base URL is configured.
const DefaultBaseURL = "https://www.imdb.com"
