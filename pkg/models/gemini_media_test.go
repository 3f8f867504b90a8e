package models

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestMediaClient(baseURL string, maxAttempts int) (*mediaClient, *[]time.Duration) {
	var slept []time.Duration
	c := newMediaClient("test-key", GeminiOptions{
		BaseURL:         baseURL,
		HTTPClient:      &http.Client{},
		PollInterval:    5 * time.Second,
		MaxPollAttempts: maxAttempts,
	})
	c.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return c, &slept
}

func TestGenerateImageReturnsDataURI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":predict") {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		var req imagenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Parameters.SampleCount != 1 || req.Parameters.AspectRatio != "1:1" {
			t.Fatalf("unexpected parameters: %+v", req.Parameters)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"predictions": []map[string]any{{"bytesBase64Encoded": "aW1n", "mimeType": "image/jpeg"}},
		})
	}))
	defer server.Close()

	c, _ := newTestMediaClient(server.URL, 1)
	images, err := c.generateImage(context.Background(), "a cat")
	if err != nil {
		t.Fatalf("generateImage returned error: %v", err)
	}
	if len(images) != 1 || images[0] != "data:image/jpeg;base64,aW1n" {
		t.Fatalf("unexpected images: %v", images)
	}
}

func TestGenerateSpeechWrapsPromptAndVoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req speechRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if got := req.Contents[0].Parts[0].Text; got != "Say clearly: hello" {
			t.Fatalf("expected wrapped prompt, got %q", got)
		}
		if got := req.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName; got != "Kore" {
			t.Fatalf("expected voice Kore, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"inlineData": map[string]any{"mimeType": "audio/wav", "data": "YXVkaW8="}}},
				},
			}},
		})
	}))
	defer server.Close()

	c, _ := newTestMediaClient(server.URL, 1)
	audio, err := c.generateSpeech(context.Background(), "hello")
	if err != nil {
		t.Fatalf("generateSpeech returned error: %v", err)
	}
	if audio != "YXVkaW8=" {
		t.Fatalf("unexpected audio payload: %q", audio)
	}
}

func TestGenerateSpeechNoAudioPart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()

	c, _ := newTestMediaClient(server.URL, 1)
	if _, err := c.generateSpeech(context.Background(), "hello"); !errors.Is(err, ErrNoAudioData) {
		t.Fatalf("expected ErrNoAudioData, got %v", err)
	}
}

func TestGenerateVideoTimesOutAfterBudget(t *testing.T) {
	const maxAttempts = 4

	polls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, ":predictLongRunning") {
			json.NewEncoder(w).Encode(map[string]any{"name": "operations/op-1", "done": false})
			return
		}
		polls++
		json.NewEncoder(w).Encode(map[string]any{"name": "operations/op-1", "done": false})
	}))
	defer server.Close()

	c, slept := newTestMediaClient(server.URL, maxAttempts)
	_, err := c.generateVideo(context.Background(), "a dog")
	if !errors.Is(err, ErrVideoTimeout) {
		t.Fatalf("expected ErrVideoTimeout, got %v", err)
	}
	if polls != maxAttempts {
		t.Fatalf("expected %d polls, got %d", maxAttempts, polls)
	}
	// The poller must suspend exactly once per attempt: total simulated
	// wait is maxAttempts * interval, never more.
	if len(*slept) != maxAttempts {
		t.Fatalf("expected %d sleeps, got %d", maxAttempts, len(*slept))
	}
	var total time.Duration
	for _, d := range *slept {
		total += d
	}
	if total != maxAttempts*5*time.Second {
		t.Fatalf("expected %v total wait, got %v", maxAttempts*5*time.Second, total)
	}
}

func TestGenerateVideoDownloadsAsset(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, ":predictLongRunning"):
			json.NewEncoder(w).Encode(map[string]any{"name": "operations/op-1", "done": false})
		case strings.HasPrefix(r.URL.Path, "/operations/"):
			json.NewEncoder(w).Encode(map[string]any{
				"name": "operations/op-1",
				"done": true,
				"response": map[string]any{
					"generateVideoResponse": map[string]any{
						"generatedSamples": []map[string]any{{
							"video": map[string]any{"uri": server.URL + "/files/video.mp4?alt=media"},
						}},
					},
				},
			})
		case strings.HasPrefix(r.URL.Path, "/files/"):
			if r.URL.Query().Get("key") != "test-key" {
				t.Fatalf("download must carry the API key, got query %q", r.URL.RawQuery)
			}
			w.Header().Set("Content-Type", "video/mp4")
			w.Write([]byte("mp4-bytes"))
		default:
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
	}))
	defer server.Close()

	c, _ := newTestMediaClient(server.URL, 3)
	result, err := c.generateVideo(context.Background(), "a dog")
	if err != nil {
		t.Fatalf("generateVideo returned error: %v", err)
	}
	if string(result.Data) != "mp4-bytes" || result.MIMEType != "video/mp4" {
		t.Fatalf("unexpected result: %q %q", result.Data, result.MIMEType)
	}
}

func TestGenerateVideoNoDownloadLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Operation completes immediately with no generated samples.
		json.NewEncoder(w).Encode(map[string]any{"name": "operations/op-1", "done": true})
	}))
	defer server.Close()

	c, _ := newTestMediaClient(server.URL, 3)
	if _, err := c.generateVideo(context.Background(), "a dog"); !errors.Is(err, ErrNoDownloadLink) {
		t.Fatalf("expected ErrNoDownloadLink, got %v", err)
	}
}

func TestGenerateVideoDownloadFailure(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, ":predictLongRunning"):
			json.NewEncoder(w).Encode(map[string]any{
				"name": "operations/op-1",
				"done": true,
				"response": map[string]any{
					"generateVideoResponse": map[string]any{
						"generatedSamples": []map[string]any{{
							"video": map[string]any{"uri": server.URL + "/files/video.mp4"},
						}},
					},
				},
			})
		default:
			http.Error(w, "gone", http.StatusNotFound)
		}
	}))
	defer server.Close()

	c, _ := newTestMediaClient(server.URL, 3)
	if _, err := c.generateVideo(context.Background(), "a dog"); !errors.Is(err, ErrVideoDownload) {
		t.Fatalf("expected ErrVideoDownload, got %v", err)
	}
}
