package hotspot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/jszwec/csvutil"
)

const DefaultFIRMSBaseURL = "https://firms.modaps.eosdis.nasa.gov"

// firmsRow covers both VIIRS (bright_ti4) and MODIS (brightness) area CSV layouts.
type firmsRow struct {
	Latitude   float64 `csv:"latitude"`
	Longitude  float64 `csv:"longitude"`
	BrightTI4  float64 `csv:"bright_ti4,omitempty"`
	Brightness float64 `csv:"brightness,omitempty"`
	AcqDate    string  `csv:"acq_date"`
	AcqTime    string  `csv:"acq_time"`
	Satellite  string  `csv:"satellite,omitempty"`
	Instrument string  `csv:"instrument,omitempty"`
	Confidence string  `csv:"confidence"`
	FRP        float64 `csv:"frp,omitempty"`
}

// FIRMSClient downloads active-fire detections from the NASA FIRMS area API.
type FIRMSClient struct {
	httpClient *http.Client
	baseURL    string
	mapKey     string
	source     string
	area       geo.BBox
	days       int
}

func NewFIRMSClient(httpClient *http.Client, baseURL, mapKey, source string, area geo.BBox, days int) *FIRMSClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultFIRMSBaseURL
	}
	if days < 1 {
		days = 1
	}
	return &FIRMSClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		mapKey:     mapKey,
		source:     source,
		area:       area,
		days:       days,
	}
}

func (c *FIRMSClient) url() string {
	return fmt.Sprintf("%s/api/area/csv/%s/%s/%s,%s,%s,%s/%d",
		c.baseURL, c.mapKey, c.source,
		formatCoord(c.area.MinLon), formatCoord(c.area.MinLat),
		formatCoord(c.area.MaxLon), formatCoord(c.area.MaxLat),
		c.days,
	)
}

// Fetch downloads and decodes the detections for the configured area.
func (c *FIRMSClient) Fetch(ctx context.Context) ([]Detection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create FIRMS request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch FIRMS detections: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read FIRMS response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FIRMS returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return ParseFIRMSCSV(body)
}

// ParseFIRMSCSV decodes a FIRMS area CSV. Rows with an unreadable confidence are skipped.
func ParseFIRMSCSV(data []byte) ([]Detection, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}

	var rows []firmsRow
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode FIRMS csv: %w", err)
	}

	detections := make([]Detection, 0, len(rows))
	for _, r := range rows {
		conf, ok := parseConfidence(r.Confidence)
		if !ok {
			continue
		}
		brightness := r.Brightness
		if brightness == 0 {
			brightness = r.BrightTI4
		}
		detections = append(detections, Detection{
			Location:   geo.Point{Lat: r.Latitude, Lon: r.Longitude},
			Confidence: conf,
			FRP:        r.FRP,
			Brightness: brightness,
			Satellite:  r.Satellite,
			Instrument: r.Instrument,
			AcquiredAt: parseAcquired(r.AcqDate, r.AcqTime),
		})
	}
	return detections, nil
}

// parseConfidence accepts MODIS percentages and VIIRS low/nominal/high letters.
func parseConfidence(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "l", "low":
		return 30, true
	case "n", "nominal":
		return 60, true
	case "h", "high":
		return 95, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseAcquired(date, hhmm string) time.Time {
	if len(hhmm) < 4 {
		hhmm = strings.Repeat("0", 4-len(hhmm)) + hhmm
	}
	t, err := time.Parse("2006-01-02 1504", date+" "+hhmm)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
