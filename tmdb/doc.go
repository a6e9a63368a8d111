// Package tmdb wraps the TMDB movie search endpoint used when adding a movie.
//
// A search returns the raw candidate list from the provider. The response is
// checked for a results array before anything is handed back, and every
// failure (transport, status, decoding, schema) surfaces as *UpstreamError.
// ImageURL turns a candidate's poster path into an absolute CDN URL.
package tmdb
