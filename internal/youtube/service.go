// Package youtube resolves the channel's latest long-form video.
//
// Resolution is best effort with multi-tier fallback: configured channel ID
// (or channel ID scraped from the handle page) -> channel RSS feed ->
// per-video watch-page probe that skips Shorts and clips shorter than the
// configured minimum -> newest feed entry -> configured fallback video.
// Any failure along the way degrades to the fallback video, never an error.
package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"thoughtaken/internal/logging"
)

// Video is a resolved video with ready-to-use watch and embed URLs.
type Video struct {
	VideoID  string `json:"videoId"`
	Title    string `json:"title"`
	WatchURL string `json:"watchUrl"`
	EmbedURL string `json:"embedUrl"`
}

// Options configures the resolver.
type Options struct {
	// ChannelURL is the public channel page, used to resolve the channel ID
	// when ChannelID is not set.
	ChannelURL string
	// ChannelID skips handle-page resolution when set.
	ChannelID string
	// FallbackVideoID is returned when every tier fails.
	FallbackVideoID string
	// MinLongformSeconds is the minimum length for a video to qualify as
	// long-form.
	MinLongformSeconds int
	// CacheTTL bounds how long a resolved video is reused.
	CacheTTL time.Duration
	// BaseURL overrides the YouTube origin, used for testing.
	BaseURL string
}

const (
	defaultFallbackVideoID    = "dQw4w9WgXcQ"
	defaultMinLongformSeconds = 180
	defaultCacheTTL           = 15 * time.Minute
	defaultBaseURL            = "https://www.youtube.com"
	defaultHandlePath         = "/@thoughtaken"
	fallbackTitle             = "Latest ThoughtTaken Ride"

	// feedProbeLimit bounds how many feed entries get a watch-page probe.
	feedProbeLimit = 12
)

var (
	entryPattern     = regexp.MustCompile(`(?s)<entry>.*?<yt:videoId>([^<]+)</yt:videoId>.*?<title>([^<]+)</title>.*?</entry>`)
	channelIDPattern = regexp.MustCompile(`"channelId":"(UC[a-zA-Z0-9_-]{22})"`)
	channelHrefPattern = regexp.MustCompile(`youtube\.com/channel/(UC[a-zA-Z0-9_-]{22})`)
	canonicalPattern = regexp.MustCompile(`(?i)<link rel="canonical" href="([^"]+)"`)
	lengthPattern    = regexp.MustCompile(`"lengthSeconds":"(\d+)"`)
)

var xmlEntityDecoder = strings.NewReplacer(
	"&amp;", "&",
	"&quot;", `"`,
	"&#39;", "'",
	"&lt;", "<",
	"&gt;", ">",
)

// Service resolves and caches the latest video.
type Service struct {
	opts   Options
	client *http.Client

	mu       sync.Mutex
	cached   *Video
	cachedAt time.Time
}

// NewService creates a resolver, filling unset options with defaults.
func NewService(opts Options) *Service {
	if opts.FallbackVideoID == "" {
		opts.FallbackVideoID = defaultFallbackVideoID
	}
	if opts.MinLongformSeconds <= 0 {
		opts.MinLongformSeconds = defaultMinLongformSeconds
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}

	return &Service{
		opts: opts,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Latest returns the channel's latest long-form video. The result is cached
// for the configured TTL; on any resolution failure the fallback video is
// returned (and cached, so a struggling upstream is not hammered).
func (s *Service) Latest(ctx context.Context) *Video {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.cachedAt) < s.opts.CacheTTL {
		return s.cached
	}

	logger := logging.GetLogger()

	video, err := s.resolve(ctx)
	if err != nil {
		logger.Debug("[youtube-latest] falling back to fallback video %s: %v", s.opts.FallbackVideoID, err)
		video = buildVideo(s.opts.FallbackVideoID, fallbackTitle)
	} else {
		logger.Debug("[youtube-latest] resolved latest video %s (%s)", video.VideoID, video.Title)
	}

	s.cached = video
	s.cachedAt = time.Now()
	return video
}

func (s *Service) resolve(ctx context.Context) (*Video, error) {
	channelID := strings.TrimSpace(s.opts.ChannelID)
	if channelID == "" {
		resolved, err := s.resolveChannelID(ctx)
		if err != nil {
			return nil, err
		}
		channelID = resolved
	}

	return s.latestLongform(ctx, channelID)
}

// resolveChannelID scrapes the channel ID out of the handle page.
func (s *Service) resolveChannelID(ctx context.Context) (string, error) {
	handlePath := handlePathOf(s.opts.ChannelURL)

	html, err := s.get(ctx, s.opts.BaseURL+handlePath)
	if err != nil {
		return "", fmt.Errorf("failed to load channel page: %w", err)
	}

	if m := channelIDPattern.FindStringSubmatch(html); m != nil {
		return m[1], nil
	}
	if m := channelHrefPattern.FindStringSubmatch(html); m != nil {
		return m[1], nil
	}

	return "", fmt.Errorf("unable to resolve channel ID from handle page %s", handlePath)
}

type feedEntry struct {
	videoID string
	title   string
}

// latestLongform picks the newest feed entry that is neither a Short nor
// below the minimum length, falling back to the newest entry outright.
func (s *Service) latestLongform(ctx context.Context, channelID string) (*Video, error) {
	xml, err := s.get(ctx, s.opts.BaseURL+"/feeds/videos.xml?channel_id="+url.QueryEscape(channelID))
	if err != nil {
		return nil, fmt.Errorf("failed to load channel feed: %w", err)
	}

	entries := parseFeedEntries(xml)
	if len(entries) == 0 {
		return nil, fmt.Errorf("no recent video found in feed for channel %s", channelID)
	}

	logger := logging.GetLogger()
	logger.Debug("[youtube-latest] parsed %d feed entries for channel %s", len(entries), channelID)

	probe := entries
	if len(probe) > feedProbeLimit {
		probe = probe[:feedProbeLimit]
	}

	for _, entry := range probe {
		isShort, lengthSeconds, err := s.videoDetails(ctx, entry.videoID)
		if err != nil {
			logger.Debug("[youtube-latest] skipping %s: %v", entry.videoID, err)
			continue
		}

		if !isShort && lengthSeconds >= s.opts.MinLongformSeconds {
			return buildVideo(entry.videoID, entry.title), nil
		}
	}

	// No qualifying long-form upload; the newest entry still beats the
	// static fallback.
	return buildVideo(entries[0].videoID, entries[0].title), nil
}

// videoDetails probes a watch page for the Shorts canonical URL and length.
func (s *Service) videoDetails(ctx context.Context, videoID string) (isShort bool, lengthSeconds int, err error) {
	html, err := s.get(ctx, s.opts.BaseURL+"/watch?v="+url.QueryEscape(videoID))
	if err != nil {
		return false, 0, err
	}

	if m := canonicalPattern.FindStringSubmatch(html); m != nil {
		isShort = strings.Contains(m[1], "/shorts/")
	}
	if m := lengthPattern.FindStringSubmatch(html); m != nil {
		lengthSeconds, _ = strconv.Atoi(m[1])
	}

	return isShort, lengthSeconds, nil
}

func (s *Service) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	// Browser-like headers; the consent interstitial is served to obvious
	// non-browser agents.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// parseFeedEntries extracts videoId/title pairs from the channel RSS feed.
func parseFeedEntries(xml string) []feedEntry {
	matches := entryPattern.FindAllStringSubmatch(xml, -1)
	entries := make([]feedEntry, 0, len(matches))
	for _, m := range matches {
		title := strings.TrimSpace(xmlEntityDecoder.Replace(m[2]))
		if title == "" {
			title = fallbackTitle
		}
		entries = append(entries, feedEntry{videoID: m[1], title: title})
	}
	return entries
}

// handlePathOf extracts the handle path from the channel URL.
func handlePathOf(channelURL string) string {
	u, err := url.Parse(channelURL)
	if err != nil || u.Path == "" {
		return defaultHandlePath
	}
	return u.Path
}

func buildVideo(videoID, title string) *Video {
	return &Video{
		VideoID:  videoID,
		Title:    title,
		WatchURL: "https://www.youtube.com/watch?v=" + videoID,
		EmbedURL: "https://www.youtube-nocookie.com/embed/" + videoID + "?rel=0&modestbranding=1",
	}
}
