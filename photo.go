package tripplanner

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
)

// handlePlacePhoto streams a place photo from the upstream provider to the
// client without persisting it server-side.
func (a *App) handlePlacePhoto(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("ref")
	if ref == "" {
		ref = r.URL.Query().Get("photoRef")
	}
	maxWidth := r.URL.Query().Get("maxwidth")
	if maxWidth == "" {
		maxWidth = "400"
	}

	if ref == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "missing photo ref (ref)"})
		return
	}
	if a.cfg.Providers.GoogleAPIKey == "" {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "server missing GOOGLE_API_KEY"})
		return
	}

	u := fmt.Sprintf("%s/place/photo?photoreference=%s&maxwidth=%s&key=%s",
		a.cfg.Providers.PlacesBaseURL, url.QueryEscape(ref), url.QueryEscape(maxWidth), url.QueryEscape(a.cfg.Providers.GoogleAPIKey))

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, u, nil)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Message: "unable to fetch photo"})
		return
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		log.Printf("photo proxy error: %v", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Message: "unable to fetch photo"})
		return
	}
	defer func() { _ = resp.Body.Close() }()

	// Non-200 upstream bodies are HTML error pages, not images.
	if resp.StatusCode != http.StatusOK {
		log.Printf("photo proxy upstream HTTP %d", resp.StatusCode)
		writeJSON(w, http.StatusBadGateway, errorResponse{Message: "unable to fetch photo"})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	w.Header().Set("Content-Type", contentType)
	// Clients may cache; the server never persists images.
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = io.Copy(w, resp.Body)
}
