package hotspot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detection(lat, lon, conf, frp float64) Detection {
	return Detection{Location: geo.Point{Lat: lat, Lon: lon}, Confidence: conf, FRP: frp}
}

func TestFilterNewHotspots_BoxDedup(t *testing.T) {
	recent := []models.Incident{{Location: geo.Point{Lat: 1.005, Lon: 36.005}, Source: models.SourceSatellite}}
	inside := detection(1.000, 36.000, 85, 50)
	outside := detection(1.02, 36.02, 85, 50)

	got := FilterNewHotspots([]Detection{inside, outside}, recent, DefaultOptions())

	require.Len(t, got, 1)
	assert.Equal(t, outside, got[0].Detection)
}

func TestFilterNewHotspots_BoxNeedsBothAxes(t *testing.T) {
	recent := []models.Incident{{Location: geo.Point{Lat: 1.0, Lon: 36.0}}}
	sameLatFarLon := detection(1.0, 36.05, 85, 50)

	got := FilterNewHotspots([]Detection{sameLatFarLon}, recent, DefaultOptions())

	assert.Len(t, got, 1)
}

func TestFilterNewHotspots_DropsLowConfidence(t *testing.T) {
	cands := []Detection{
		detection(-1.0, 36.0, 79.9, 500),
		detection(-2.0, 37.0, 80, 10),
		detection(-3.0, 38.0, 30, 10),
	}

	got := FilterNewHotspots(cands, nil, DefaultOptions())

	require.Len(t, got, 1)
	assert.Equal(t, cands[1], got[0].Detection)
}

func TestFilterNewHotspots_PreservesOrder(t *testing.T) {
	cands := []Detection{
		detection(5, 5, 95, 10),
		detection(1, 1, 85, 400),
		detection(3, 3, 85, 150),
	}

	got := FilterNewHotspots(cands, nil, DefaultOptions())

	require.Len(t, got, 3)
	for i := range cands {
		assert.Equal(t, cands[i], got[i].Detection)
	}
	assert.Equal(t, models.SeverityHigh, got[0].Severity)
	assert.Equal(t, models.SeverityCritical, got[1].Severity)
	assert.Equal(t, models.SeverityHigh, got[2].Severity)
}

func TestClassifySeverity(t *testing.T) {
	assert.Equal(t, models.SeverityCritical, ClassifySeverity(350, 50))
	assert.Equal(t, models.SeverityHigh, ClassifySeverity(150, 85))
	assert.Equal(t, models.SeverityMedium, ClassifySeverity(50, 70))
	assert.Equal(t, models.SeverityHigh, ClassifySeverity(50, 91))
	assert.Equal(t, models.SeverityMedium, ClassifySeverity(100, 90))
	assert.Equal(t, models.SeverityHigh, ClassifySeverity(300, 50))
}

const viirsCSV = `latitude,longitude,bright_ti4,scan,track,acq_date,acq_time,satellite,instrument,confidence,version,bright_ti5,frp,daynight
-1.23456,36.78901,333.5,0.39,0.36,2026-10-16,0130,N,VIIRS,h,2.0NRT,290.1,12.4,N
-0.5,35.2,301.0,0.4,0.37,2026-10-16,1045,N,VIIRS,n,2.0NRT,285.0,3.2,D
-0.6,35.3,301.0,0.4,0.37,2026-10-16,1045,N,VIIRS,?,2.0NRT,285.0,3.2,D
`

const modisCSV = `latitude,longitude,brightness,scan,track,acq_date,acq_time,satellite,instrument,confidence,version,bright_t31,frp,daynight
0.51,35.27,320.4,1.0,1.0,2026-10-15,745,Terra,MODIS,87,6.1NRT,295.2,150.3,D
`

func TestParseFIRMSCSV_VIIRS(t *testing.T) {
	got, err := ParseFIRMSCSV([]byte(viirsCSV))

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, geo.Point{Lat: -1.23456, Lon: 36.78901}, got[0].Location)
	assert.Equal(t, 95.0, got[0].Confidence)
	assert.Equal(t, 12.4, got[0].FRP)
	assert.Equal(t, 333.5, got[0].Brightness)
	assert.Equal(t, time.Date(2026, 10, 16, 1, 30, 0, 0, time.UTC), got[0].AcquiredAt)
	assert.Equal(t, 60.0, got[1].Confidence)
}

func TestParseFIRMSCSV_MODIS(t *testing.T) {
	got, err := ParseFIRMSCSV([]byte(modisCSV))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 87.0, got[0].Confidence)
	assert.Equal(t, 320.4, got[0].Brightness)
	assert.Equal(t, time.Date(2026, 10, 15, 7, 45, 0, 0, time.UTC), got[0].AcquiredAt)
	assert.Equal(t, models.SeverityHigh, ClassifySeverity(got[0].FRP, got[0].Confidence))
}

func TestParseFIRMSCSV_Empty(t *testing.T) {
	got, err := ParseFIRMSCSV([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFIRMSClient_Fetch(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(viirsCSV))
	}))
	defer srv.Close()

	area := geo.BBox{MinLat: -4.7, MinLon: 33.9, MaxLat: 5.0, MaxLon: 41.9}
	client := NewFIRMSClient(srv.Client(), srv.URL, "KEY", "VIIRS_SNPP_NRT", area, 2)

	got, err := client.Fetch(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "/api/area/csv/KEY/VIIRS_SNPP_NRT/33.9,-4.7,41.9,5/2", gotPath)
}

func TestFIRMSClient_Fetch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid MAP_KEY.", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewFIRMSClient(srv.Client(), srv.URL, "bad", "VIIRS_SNPP_NRT", geo.BBox{}, 1)

	_, err := client.Fetch(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid MAP_KEY")
}
