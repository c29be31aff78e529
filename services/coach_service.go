package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// CoachService talks to an external text-generation model. The model
// only ever sees the derived analytics context, never raw rows; it is
// a collaborator on the far side of this core, not part of it.
type CoachService struct {
	client *http.Client
	token  string
	model  string
}

func NewCoachService() *CoachService {
	return &CoachService{
		client: &http.Client{Timeout: 15 * time.Second},
		token:  os.Getenv("HUGGINGFACE_TOKEN"),
		model:  "google/flan-t5-small",
	}
}

// GetSuggestions summarizes the weekly numbers and detected patterns
// into a prompt and asks the model for coaching bullet points.
func (r *CoachService) GetSuggestions(userID uint) ([]string, error) {
	if r.token == "" {
		return nil, fmt.Errorf("HUGGINGFACE_TOKEN not set")
	}

	weekly, err := GetWeeklyInsights(userID)
	if err != nil {
		return nil, fmt.Errorf("db error building weekly summary: %w", err)
	}
	patterns, err := GetPatternInsights(userID)
	if err != nil {
		return nil, fmt.Errorf("db error building patterns: %w", err)
	}

	var sb bytes.Buffer
	sb.WriteString("This week's numbers:\n")
	sb.WriteString(fmt.Sprintf("- avg calories: %.0f (target %.0f)\n", weekly.AvgCalories, weekly.CalorieTarget))
	sb.WriteString(fmt.Sprintf("- avg protein: %.0fg (target %.0fg)\n", weekly.AvgProtein, weekly.ProteinTarget))
	sb.WriteString(fmt.Sprintf("- workouts: %d\n", weekly.TotalWorkouts))
	if weekly.WeightCount > 0 {
		sb.WriteString(fmt.Sprintf("- avg weight: %.1f lbs over %d weigh-ins\n", weekly.AvgWeight, weekly.WeightCount))
	}
	if len(patterns) > 0 {
		sb.WriteString("\nDetected patterns:\n")
		for _, p := range patterns {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", p.Title, p.Detail))
		}
	}
	sb.WriteString("\nSuggest 3-5 specific, encouraging adjustments for next week. Return plain bullet points.")

	body := map[string]any{
		"inputs": sb.String(),
		"parameters": map[string]any{
			"max_new_tokens": 128,
			"temperature":    0.2,
		},
	}
	b, _ := json.Marshal(body)

	req, _ := http.NewRequest(
		"POST",
		fmt.Sprintf("https://api-inference.huggingface.co/models/%s", r.model),
		bytes.NewReader(b),
	)
	req.Header.Set("Authorization", "Bearer "+r.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-wait-for-model", "true")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hf request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read hf response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var hfErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &hfErr) == nil && hfErr.Error != "" {
			return nil, fmt.Errorf("hf api error (%d): %s", resp.StatusCode, hfErr.Error)
		}
		return nil, fmt.Errorf("hf api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var hfOut []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &hfOut); err != nil {
		return nil, fmt.Errorf("decode hf response error: %w", err)
	}
	if len(hfOut) == 0 || strings.TrimSpace(hfOut[0].GeneratedText) == "" {
		return nil, fmt.Errorf("empty suggestions from hf")
	}

	var recs []string
	for _, line := range strings.Split(hfOut[0].GeneratedText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimLeft(line, "-•* \t")
		if line != "" {
			recs = append(recs, line)
		}
	}
	return recs, nil
}
