//go:build e2e

package pricing_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"tripnest-api/internal/handler/dto/response"
	"tripnest-api/tests/common/dbtest"
	"tripnest-api/tests/common/httptest"
	"tripnest-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	quotesURL       = "/api/quotes"
	calendarURL     = "/api/listings/%s/calendar?from=%s&to=%s"
	displayPriceURL = "/api/listings/%s/display-price"
	listingURL      = "/api/listings/%s"
)

var (
	checkIn  = time.Date(2027, 5, 10, 0, 0, 0, 0, time.UTC)
	checkOut = time.Date(2027, 5, 13, 0, 0, 0, 0, time.UTC)
)

type PricingSuite struct {
	e2e.SharedSuite
}

func (s *PricingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPricingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PricingSuite))
}

func quoteBody(unitID uuid.UUID) map[string]any {
	return map[string]any{
		"unit_id":   unitID.String(),
		"check_in":  checkIn.Format("2006-01-02"),
		"check_out": checkOut.Format("2006-01-02"),
	}
}

// =============================================================================
// TestQuote - POST /api/quotes
// =============================================================================

func (s *PricingSuite) TestQuote() {
	s.Run("Normal case: three nights with platform fees", func() {
		t := s.T()

		listingID := dbtest.CreateTestListing(t, s.DB, dbtest.ListingParams{
			Name:        "Seaside Cabin",
			NightlyBase: 170,
			CleaningFee: 60,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, quoteBody(listingID), "")
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.QuoteResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)

		expected := &response.QuoteResponse{
			UnitID:      listingID,
			CheckIn:     "2027-05-10",
			CheckOut:    "2027-05-13",
			Nights:      3,
			BasePrice:   510,
			Subtotal:    510,
			CleaningFee: 60,
			ServiceFee:  51,    // 10% of 510
			Taxes:       49.68, // 8% of (510 + 51 + 60)
			Total:       670.68,
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.QuoteResponse{}, "GeneratedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Quote response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: percentage discount lowers the subtotal", func() {
		t := s.T()

		listingID := dbtest.CreateTestListing(t, s.DB, dbtest.ListingParams{
			NightlyBase: 170,
			CleaningFee: 60,
		})
		dbtest.CreateTestRule(t, s.DB, dbtest.RuleParams{
			AccommodationID: &listingID,
			RuleType:        "discount",
			AdjustmentType:  "percentage",
			AdjustmentValue: 10,
			IsActive:        true,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, quoteBody(listingID), "")
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.QuoteResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)

		require.InDelta(t, 459.0, actual.Subtotal, 0.001)
		require.InDelta(t, 51.0, actual.DiscountAmount, 0.001)
		require.InDelta(t, 10.0, actual.DiscountPercentage, 0.001)
		require.True(t, actual.HasDiscount)
		require.InDelta(t, 610.09, actual.Total, 0.001)
	})

	s.Run("Normal case: selected rooms price at their flat rates", func() {
		t := s.T()

		listingID := dbtest.CreateTestListing(t, s.DB, dbtest.ListingParams{
			NightlyBase: 170,
		})
		roomA := dbtest.CreateTestRoom(t, s.DB, listingID, "Garden Room", 80)
		roomB := dbtest.CreateTestRoom(t, s.DB, listingID, "Ocean Room", 120)

		body := quoteBody(listingID)
		body["room_ids"] = []string{roomA.String(), roomB.String()}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, body, "")
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.QuoteResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)

		// (80 + 120) * 3 nights, fees on top
		require.InDelta(t, 600.0, actual.Subtotal, 0.001)
		require.InDelta(t, 60.0, actual.ServiceFee, 0.001)
		require.InDelta(t, 52.8, actual.Taxes, 0.001)
		require.InDelta(t, 712.8, actual.Total, 0.001)
	})

	s.Run("Error case: blocked date in range returns conflict", func() {
		t := s.T()

		listingID := dbtest.CreateTestListing(t, s.DB, dbtest.ListingParams{NightlyBase: 170})
		dbtest.BlockDate(t, s.DB, listingID, checkIn.AddDate(0, 0, 1))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, quoteBody(listingID), "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: stay below the calendar minimum returns conflict", func() {
		t := s.T()

		listingID := dbtest.CreateTestListing(t, s.DB, dbtest.ListingParams{NightlyBase: 170})
		minStay := 5
		dbtest.SetStayBounds(t, s.DB, listingID, checkIn, &minStay, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, quoteBody(listingID), "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: unknown listing returns not found", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, quoteBody(uuid.New()), "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: check-out before check-in returns unprocessable", func() {
		t := s.T()

		listingID := dbtest.CreateTestListing(t, s.DB, dbtest.ListingParams{NightlyBase: 170})
		body := quoteBody(listingID)
		body["check_in"] = "2027-05-13"
		body["check_out"] = "2027-05-10"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, body, "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

// =============================================================================
// TestCalendar - GET /api/listings/:id/calendar
// =============================================================================

func (s *PricingSuite) TestCalendar() {
	s.Run("Normal case: blocked day and override surface per date", func() {
		t := s.T()

		listingID := dbtest.CreateTestListing(t, s.DB, dbtest.ListingParams{NightlyBase: 100})
		dbtest.BlockDate(t, s.DB, listingID, checkIn.AddDate(0, 0, 1))
		dbtest.OverridePrice(t, s.DB, listingID, checkIn.AddDate(0, 0, 2), 250)

		url := fmt.Sprintf(calendarURL, listingID, "2027-05-10", "2027-05-13")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var days []response.CalendarDayResponse
		err := httptest.DecodeResponseBody(t, w.Body, &days)
		require.NoError(t, err)

		expected := []response.CalendarDayResponse{
			{Date: "2027-05-10", IsAvailable: true, Price: 100},
			{Date: "2027-05-11", IsAvailable: false, Price: 100},
			{Date: "2027-05-12", IsAvailable: true, Price: 250},
		}
		if diff := cmp.Diff(expected, days); diff != "" {
			t.Errorf("Calendar response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: unknown listing returns not found", func() {
		t := s.T()

		url := fmt.Sprintf(calendarURL, uuid.New(), "2027-05-10", "2027-05-13")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestDisplayPrice - GET /api/listings/:id/display-price
// =============================================================================

func (s *PricingSuite) TestDisplayPrice() {
	s.Run("Normal case: discount badge on the list card", func() {
		t := s.T()

		listingID := dbtest.CreateTestListing(t, s.DB, dbtest.ListingParams{NightlyBase: 150})
		dbtest.CreateTestRule(t, s.DB, dbtest.RuleParams{
			AccommodationID: &listingID,
			RuleType:        "discount",
			AdjustmentType:  "percentage",
			AdjustmentValue: 20,
			IsActive:        true,
		})

		url := fmt.Sprintf(displayPriceURL, listingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.DisplayPriceResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)

		require.InDelta(t, 120.0, actual.DisplayPrice, 0.001)
		require.InDelta(t, 150.0, actual.OriginalPrice, 0.001)
		require.InDelta(t, 20.0, actual.DiscountPercentage, 0.001)
		require.True(t, actual.HasDiscount)
		require.False(t, actual.ShowFromLabel)
	})

	s.Run("Normal case: lowest room rate drives the from-label", func() {
		t := s.T()

		listingID := dbtest.CreateTestListing(t, s.DB, dbtest.ListingParams{NightlyBase: 150})
		dbtest.CreateTestRoom(t, s.DB, listingID, "Garden Room", 90)
		dbtest.CreateTestRoom(t, s.DB, listingID, "Ocean Room", 140)

		url := fmt.Sprintf(displayPriceURL, listingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.DisplayPriceResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)

		require.InDelta(t, 90.0, actual.DisplayPrice, 0.001)
		require.True(t, actual.ShowFromLabel)
	})
}

// =============================================================================
// TestGetListing - GET /api/listings/:id
// =============================================================================

func (s *PricingSuite) TestGetListing() {
	s.Run("Normal case: hidden location is masked but stays nearby", func() {
		t := s.T()

		listingID := dbtest.CreateTestListing(t, s.DB, dbtest.ListingParams{
			Name:              "Hidden Villa",
			NightlyBase:       200,
			Latitude:          35.6586,
			Longitude:         139.7454,
			HideExactLocation: true,
		})

		url := fmt.Sprintf(listingURL, listingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.ListingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)

		require.True(t, actual.LocationMasked)
		require.NotEqual(t, 35.6586, actual.Latitude)
		require.InDelta(t, 35.6586, actual.Latitude, 0.005)
		require.InDelta(t, 139.7454, actual.Longitude, 0.005)

		// The mask is stable across reads.
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w2.Code)
		var second response.ListingResponse
		err = httptest.DecodeResponseBody(t, w2.Body, &second)
		require.NoError(t, err)
		require.Equal(t, actual.Latitude, second.Latitude)
		require.Equal(t, actual.Longitude, second.Longitude)
	})

	s.Run("Normal case: exact location passes through untouched", func() {
		t := s.T()

		listingID := dbtest.CreateTestListing(t, s.DB, dbtest.ListingParams{
			Name:        "Open Flat",
			NightlyBase: 120,
			Latitude:    48.8566,
			Longitude:   2.3522,
		})

		url := fmt.Sprintf(listingURL, listingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.ListingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)

		require.False(t, actual.LocationMasked)
		require.Equal(t, 48.8566, actual.Latitude)
		require.Equal(t, 2.3522, actual.Longitude)
	})
}
