package models

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// The Go SDK binds text generation only; Imagen, TTS and Veo are reached
// through the same REST API the SDK wraps underneath.
const defaultMediaBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// speechVoice is the prebuilt voice used for every speech request.
const speechVoice = "Kore"

type mediaClient struct {
	apiKey          string
	baseURL         string
	httpClient      *http.Client
	pollInterval    time.Duration
	maxPollAttempts int

	// sleep suspends between operation polls; tests swap it for a fake
	// clock to bound the timeout behaviour without waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

func newMediaClient(apiKey string, opts GeminiOptions) *mediaClient {
	c := &mediaClient{
		apiKey:          apiKey,
		baseURL:         strings.TrimRight(opts.BaseURL, "/"),
		httpClient:      opts.HTTPClient,
		pollInterval:    opts.PollInterval,
		maxPollAttempts: opts.MaxPollAttempts,
		sleep:           sleepContext,
	}
	if c.baseURL == "" {
		c.baseURL = defaultMediaBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	if c.pollInterval <= 0 {
		c.pollInterval = DefaultPollInterval
	}
	if c.maxPollAttempts <= 0 {
		c.maxPollAttempts = DefaultMaxPollAttempts
	}
	return c
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ---------------------------- image -------------------------------------

type imagenRequest struct {
	Instances  []imagenInstance `json:"instances"`
	Parameters imagenParameters `json:"parameters"`
}

type imagenInstance struct {
	Prompt string `json:"prompt"`
}

type imagenParameters struct {
	SampleCount    int    `json:"sampleCount"`
	AspectRatio    string `json:"aspectRatio"`
	OutputMIMEType string `json:"outputMimeType"`
}

type imagenResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MIMEType           string `json:"mimeType"`
	} `json:"predictions"`
}

func (c *mediaClient) generateImage(ctx context.Context, prompt string) ([]string, error) {
	body := imagenRequest{
		Instances: []imagenInstance{{Prompt: prompt}},
		Parameters: imagenParameters{
			SampleCount:    1,
			AspectRatio:    "1:1",
			OutputMIMEType: "image/jpeg",
		},
	}

	var resp imagenResponse
	url := fmt.Sprintf("%s/models/%s:predict", c.baseURL, GeminiImageModel)
	if err := c.postJSON(ctx, url, body, &resp); err != nil {
		return nil, fmt.Errorf("imagen predict: %w", err)
	}
	if len(resp.Predictions) == 0 {
		return nil, ErrEmptyResponse
	}

	images := make([]string, 0, len(resp.Predictions))
	for _, pred := range resp.Predictions {
		mime := pred.MIMEType
		if mime == "" {
			mime = "image/jpeg"
		}
		images = append(images, fmt.Sprintf("data:%s;base64,%s", mime, pred.BytesBase64Encoded))
	}
	return images, nil
}

// ---------------------------- speech ------------------------------------

type speechRequest struct {
	Contents         []speechContent `json:"contents"`
	GenerationConfig speechGenConfig `json:"generationConfig"`
}

type speechContent struct {
	Parts []speechPart `json:"parts"`
}

type speechPart struct {
	Text string `json:"text"`
}

type speechGenConfig struct {
	ResponseModalities []string     `json:"responseModalities"`
	SpeechConfig       speechConfig `json:"speechConfig"`
}

type speechConfig struct {
	VoiceConfig struct {
		PrebuiltVoiceConfig struct {
			VoiceName string `json:"voiceName"`
		} `json:"prebuiltVoiceConfig"`
	} `json:"voiceConfig"`
}

type speechResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				InlineData struct {
					MIMEType string `json:"mimeType"`
					Data     string `json:"data"`
				} `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *mediaClient) generateSpeech(ctx context.Context, prompt string) (string, error) {
	body := speechRequest{
		Contents: []speechContent{{Parts: []speechPart{{Text: "Say clearly: " + prompt}}}},
	}
	body.GenerationConfig.ResponseModalities = []string{"AUDIO"}
	body.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName = speechVoice

	var resp speechResponse
	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, GeminiSpeechModel)
	if err := c.postJSON(ctx, url, body, &resp); err != nil {
		return "", fmt.Errorf("speech generate: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoAudioData
	}
	audio := resp.Candidates[0].Content.Parts[0].InlineData.Data
	if audio == "" {
		return "", ErrNoAudioData
	}
	return audio, nil
}

// ---------------------------- video -------------------------------------

type veoRequest struct {
	Instances  []veoInstance `json:"instances"`
	Parameters veoParameters `json:"parameters"`
}

type veoInstance struct {
	Prompt string `json:"prompt"`
}

type veoParameters struct {
	SampleCount int    `json:"sampleCount"`
	Resolution  string `json:"resolution"`
	AspectRatio string `json:"aspectRatio"`
}

type veoOperation struct {
	Name     string `json:"name"`
	Done     bool   `json:"done"`
	Response struct {
		GenerateVideoResponse struct {
			GeneratedSamples []struct {
				Video struct {
					URI string `json:"uri"`
				} `json:"video"`
			} `json:"generatedSamples"`
		} `json:"generateVideoResponse"`
	} `json:"response"`
}

func (op veoOperation) downloadURI() string {
	samples := op.Response.GenerateVideoResponse.GeneratedSamples
	if len(samples) == 0 {
		return ""
	}
	return samples[0].Video.URI
}

func (c *mediaClient) generateVideo(ctx context.Context, prompt string) (VideoResult, error) {
	body := veoRequest{
		Instances: []veoInstance{{Prompt: prompt}},
		Parameters: veoParameters{
			SampleCount: 1,
			Resolution:  "720p",
			AspectRatio: "16:9",
		},
	}

	var op veoOperation
	url := fmt.Sprintf("%s/models/%s:predictLongRunning", c.baseURL, GeminiVideoModel)
	if err := c.postJSON(ctx, url, body, &op); err != nil {
		return VideoResult{}, fmt.Errorf("veo start: %w", err)
	}

	// Poll on a fixed interval up to the attempt budget. The budget is the
	// caller-side timeout control; exceeding it is a Timeout, not a
	// provider error.
	attempts := 0
	for !op.Done && attempts < c.maxPollAttempts {
		if err := c.sleep(ctx, c.pollInterval); err != nil {
			return VideoResult{}, err
		}
		if err := c.getJSON(ctx, fmt.Sprintf("%s/%s", c.baseURL, op.Name), &op); err != nil {
			return VideoResult{}, fmt.Errorf("veo poll: %w", err)
		}
		attempts++
	}
	if !op.Done {
		return VideoResult{}, ErrVideoTimeout
	}

	uri := op.downloadURI()
	if uri == "" {
		return VideoResult{}, ErrNoDownloadLink
	}
	return c.downloadVideo(ctx, uri)
}

func (c *mediaClient) downloadVideo(ctx context.Context, uri string) (VideoResult, error) {
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri+sep+"key="+c.apiKey, nil)
	if err != nil {
		return VideoResult{}, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return VideoResult{}, fmt.Errorf("%w: %v", ErrVideoDownload, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return VideoResult{}, fmt.Errorf("%w: %s", ErrVideoDownload, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return VideoResult{}, fmt.Errorf("%w: %v", ErrVideoDownload, err)
	}
	mime := resp.Header.Get("Content-Type")
	if mime == "" || mime == "application/octet-stream" {
		mime = "video/mp4"
	}
	return VideoResult{Data: data, MIMEType: mime}, nil
}

// ---------------------------- transport ---------------------------------

func (c *mediaClient) postJSON(ctx context.Context, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.withKey(url), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *mediaClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.withKey(url), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *mediaClient) withKey(url string) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "key=" + c.apiKey
}

func (c *mediaClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned %s: %s", resp.Status, truncate(string(data), 200))
	}
	return json.Unmarshal(data, out)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
