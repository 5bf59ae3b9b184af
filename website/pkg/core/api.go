package core

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"webradar/internal/utils"
	"webradar/pkg/platforms/youtube"
	"webradar/pkg/radar"
	"webradar/pkg/scan"
)

type scanAPIResponse struct {
	Term        string                  `json:"term"`
	Status      string                  `json:"status"`
	OpenSearch  *scan.OpenSearchResult  `json:"openSearch,omitempty"`
	News        []radar.NewsItem        `json:"news"`
	Wiki        *radar.WikiContext      `json:"wiki,omitempty"`
	Discussions *scan.DiscussionsResult `json:"discussions,omitempty"`
	Profiles    []radar.Profile         `json:"profiles"`
	Judicial    []radar.NewsItem        `json:"judicial"`
	GeneratedAt string                  `json:"generatedAt"`
}

type judicialAPIResponse struct {
	Term        string           `json:"term"`
	Status      string           `json:"status"`
	Items       []radar.NewsItem `json:"items"`
	GeneratedAt string           `json:"generatedAt"`
}

type channelAPIResponse struct {
	ChannelID    string        `json:"channelId"`
	ChannelTitle string        `json:"channelTitle"`
	ChannelURL   string        `json:"channelUrl,omitempty"`
	Videos       []radar.Video `json:"videos"`
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, payload []byte) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(payload)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	body, _ := json.Marshal(map[string]string{"error": message})
	writeJSON(w, status, body)
}

// apiScanHandler serves GET /api/v1/scan?q=<term> — a full blocking scan as
// JSON. Results are cached per term for the session cache TTL.
func apiScanHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		setCORSHeaders(w)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(term) < 2 {
		writeJSONError(w, http.StatusBadRequest, "Use pelo menos 2 caracteres.")
		return
	}

	cacheKey := strings.ToLower(term)
	if cached, err := cache.Get(r.Context(), "scan", cacheKey); err == nil {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	collector := &scan.Collector{}
	scanner.Scan(r.Context(), term, collector)

	resp := scanAPIResponse{
		Term:        term,
		Status:      collector.FinalStatus(),
		OpenSearch:  collector.OpenSearch,
		News:        emptyIfNil(collector.News),
		Wiki:        collector.Wiki,
		Discussions: collector.Discussions,
		Profiles:    emptyIfNil(collector.Profiles),
		Judicial:    emptyIfNil(collector.Judicial),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(resp)
	if err != nil {
		utils.Log.Error("API: error marshaling scan response: ", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := cache.Put(context.Background(), "scan", cacheKey, body); err != nil {
		utils.Log.Warn("API: error caching scan response: ", err)
	}
	writeJSON(w, http.StatusOK, body)
}

// apiJudicialHandler serves GET /api/v1/judicial?q=<term> — the judicial
// surface alone, on its own run controller.
func apiJudicialHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		setCORSHeaders(w)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(term) < 2 {
		writeJSONError(w, http.StatusBadRequest, "Use pelo menos 2 caracteres para buscar processos.")
		return
	}

	cacheKey := strings.ToLower(term)
	if cached, err := cache.Get(r.Context(), "judicial", cacheKey); err == nil {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	collector := &scan.Collector{}
	scanner.ScanJudicial(r.Context(), term, collector)

	resp := judicialAPIResponse{
		Term:        term,
		Status:      collector.FinalJudicialStatus(),
		Items:       emptyIfNil(collector.Judicial),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(resp)
	if err != nil {
		utils.Log.Error("API: error marshaling judicial response: ", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := cache.Put(context.Background(), "judicial", cacheKey, body); err != nil {
		utils.Log.Warn("API: error caching judicial response: ", err)
	}
	writeJSON(w, http.StatusOK, body)
}

// apiChannelVideosHandler serves GET /api/v1/channel/{channelID}/videos —
// the latest uploads of one channel, newest first, clamped to 1..20 items.
func apiChannelVideosHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		setCORSHeaders(w)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/channel/")
	channelID, tail, ok := strings.Cut(rest, "/")
	if !ok || tail != "videos" {
		http.NotFound(w, r)
		return
	}
	if !youtube.IsChannelID(channelID) {
		writeJSONError(w, http.StatusBadRequest, "channel_id invalido")
		return
	}

	limit := 8
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 20 {
		limit = 20
	}

	feed, err := channels.ChannelFeed(r.Context(), channelID)
	if err != nil {
		utils.Log.Error("API: channel feed error: ", err)
		writeJSONError(w, http.StatusInternalServerError, "Falha ao carregar feed do canal")
		return
	}

	videos := feed.Videos
	if len(videos) > limit {
		videos = videos[:limit]
	}

	body, err := json.Marshal(channelAPIResponse{
		ChannelID:    feed.ChannelID,
		ChannelTitle: feed.ChannelTitle,
		Videos:       emptyIfNil(videos),
	})
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, body)
}

// apiResolveChannelHandler serves POST /api/v1/resolve-channel — resolves a
// channel URL or handle to its id and returns the feed in one round trip.
func apiResolveChannelHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		setCORSHeaders(w)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		writeJSONError(w, http.StatusBadRequest, "Informe uma URL valida do YouTube")
		return
	}

	channelID, err := channels.ResolveChannel(r.Context(), req.URL)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Nao foi possivel resolver este canal")
		return
	}

	feed, err := channels.ChannelFeed(r.Context(), channelID)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Nao foi possivel resolver este canal")
		return
	}

	body, err := json.Marshal(channelAPIResponse{
		ChannelID:    feed.ChannelID,
		ChannelTitle: feed.ChannelTitle,
		ChannelURL:   feed.ChannelURL,
		Videos:       emptyIfNil(feed.Videos),
	})
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
