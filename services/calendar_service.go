package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dhall711/health-coach/config"
	"github.com/dhall711/health-coach/models"

	"gorm.io/gorm"
)

// ErrCalendarNotConnected means the user never authorized calendar
// access. Callers must keep this distinct from a provider failure: the
// former is a normal state, the latter is an error.
var ErrCalendarNotConnected = errors.New("calendar not connected")

type CalendarService struct {
	baseURL string
	client  *http.Client
}

func NewCalendarService() *CalendarService {
	base := os.Getenv("CALENDAR_API_BASE")
	if base == "" {
		base = "https://www.googleapis.com/calendar/v3"
	}
	return &CalendarService{
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Connect stores provider tokens for the user. Token acquisition and
// refresh happen in the OAuth flow outside this service.
func (s *CalendarService) Connect(userID uint, provider, accessToken, refreshToken string, expiresAt time.Time) error {
	acct := models.CalendarAccount{
		UserID:       userID,
		Provider:     provider,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		Connected:    true,
	}
	return config.DB.
		Where("user_id = ?", userID).
		Assign(acct).
		FirstOrCreate(&acct).Error
}

func (s *CalendarService) Disconnect(userID uint) error {
	return config.DB.Model(&models.CalendarAccount{}).
		Where("user_id = ?", userID).
		Update("connected", false).Error
}

type freeBusyResponse struct {
	Calendars map[string]struct {
		Busy []struct {
			Start time.Time `json:"start"`
			End   time.Time `json:"end"`
		} `json:"busy"`
	} `json:"calendars"`
}

// BusyIntervals queries the provider's free/busy endpoint for the
// user's primary calendar. Returns ErrCalendarNotConnected when no
// connected account exists; any other failure is a provider error.
func (s *CalendarService) BusyIntervals(userID uint, from, to time.Time) ([]BusyInterval, error) {
	var acct models.CalendarAccount
	err := config.DB.Where("user_id = ? AND connected = ?", userID, true).First(&acct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCalendarNotConnected
		}
		return nil, err
	}

	payload := map[string]any{
		"timeMin": from.Format(time.RFC3339),
		"timeMax": to.Format(time.RFC3339),
		"items":   []map[string]string{{"id": "primary"}},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal freeBusy payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/freeBusy", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create freeBusy request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+acct.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call calendar API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar API error %d: %s", resp.StatusCode, string(body))
	}

	var fb freeBusyResponse
	if err := json.Unmarshal(body, &fb); err != nil {
		return nil, fmt.Errorf("failed to parse freeBusy JSON: %w", err)
	}

	var busy []BusyInterval
	for _, cal := range fb.Calendars {
		for _, b := range cal.Busy {
			busy = append(busy, BusyInterval{Start: b.Start.In(time.Local), End: b.End.In(time.Local)})
		}
	}
	return busy, nil
}

// ---------- smart schedule assembly ----------

type DaySchedule struct {
	Events    []BusyInterval `json:"events"`
	FreeSlots []FreeSlot     `json:"freeSlots"`
}

type SmartSchedule struct {
	Days           int                    `json:"days"`
	DaySchedules   map[string]DaySchedule `json:"daySchedules"`
	TopSuggestions []FreeSlot             `json:"topSuggestions"`
	Connected      bool                   `json:"connected"`
}

// SmartSchedule builds the multi-day availability view: per-day events
// and free slots, plus the score-ranked top suggestions across the
// whole window. The "not connected" state comes back as a normal
// payload with Connected=false, never an error.
func (s *CalendarService) SmartSchedule(userID uint, days int) (*SmartSchedule, error) {
	if days < 1 || days > 14 {
		days = 7
	}
	windowStart := dayStartLocal(time.Now())
	windowEnd := windowStart.AddDate(0, 0, days)

	busy, err := s.BusyIntervals(userID, windowStart, windowEnd)
	if err != nil {
		if errors.Is(err, ErrCalendarNotConnected) {
			return &SmartSchedule{Days: days, DaySchedules: map[string]DaySchedule{}, Connected: false}, nil
		}
		return nil, err
	}

	out := &SmartSchedule{
		Days:         days,
		DaySchedules: make(map[string]DaySchedule, days),
		Connected:    true,
	}
	var allSlots []FreeSlot
	for i := 0; i < days; i++ {
		day := windowStart.AddDate(0, 0, i)
		dayStart, dayEnd := dayWindow(day)

		var events []BusyInterval
		for _, b := range busy {
			if b.Start.Before(dayEnd) && b.End.After(dayStart) {
				events = append(events, b)
			}
		}
		slots := FreeSlots(events, dayStart, dayEnd)
		out.DaySchedules[day.Format("2006-01-02")] = DaySchedule{Events: events, FreeSlots: slots}
		allSlots = append(allSlots, slots...)
	}
	out.TopSuggestions = RankedSuggestions(allSlots)
	return out, nil
}

// TodaySchedule is the simpler single-day sync path: today's events,
// free slots and the first-fit best slot (not the scored ranking).
type TodaySchedule struct {
	Events    []BusyInterval `json:"events"`
	FreeSlots []FreeSlot     `json:"freeSlots"`
	BestSlot  *FreeSlot      `json:"bestSlot,omitempty"`
}

func (s *CalendarService) TodaySchedule(userID uint) (*TodaySchedule, error) {
	dayStart, dayEnd := dayWindow(time.Now())
	busy, err := s.BusyIntervals(userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	slots := FreeSlots(busy, dayStart, dayEnd)
	return &TodaySchedule{Events: busy, FreeSlots: slots, BestSlot: SimpleBestSlot(slots)}, nil
}
