package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"restro-analytics-service/internal/analytics"
	"restro-analytics-service/internal/daterange"
	"restro-analytics-service/internal/export"
	"restro-analytics-service/internal/middleware"
	"restro-analytics-service/internal/models"
	"restro-analytics-service/internal/queue"
	"restro-analytics-service/internal/report"
	"restro-analytics-service/internal/utils"
	"restro-analytics-service/pkg/response"

	"go.uber.org/zap"
)

// DateRanges returns the canonical preset windows.
func (h *Handler) DateRanges(w http.ResponseWriter, r *http.Request) {
	location := utils.ResolveLocation(h.Config.ReportTimezone)
	response.Success(w, daterange.Presets(time.Now().In(location)))
}

// SalesAnalytics computes (or serves from cache) the analytics result for
// the requested window.
func (h *Handler) SalesAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	authCtx, ok := middleware.GetAuthContext(ctx)
	if !ok {
		response.Error(w, http.StatusNotFound, "RESTAURANT_NOT_FOUND", "Restaurant context not found")
		return
	}

	rng, err := h.resolveRange(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.analyticsFor(ctx, authCtx.RestaurantID, rng)
	if err != nil {
		h.Logger.Error("sales analytics generation failed",
			zap.String("restaurantId", authCtx.RestaurantID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "ANALYTICS_FAILED", "Failed to generate sales analytics")
		return
	}
	response.Success(w, result)
}

// ReportPDF renders the analytics result into the paginated report.
func (h *Handler) ReportPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	authCtx, ok := middleware.GetAuthContext(ctx)
	if !ok {
		response.Error(w, http.StatusNotFound, "RESTAURANT_NOT_FOUND", "Restaurant context not found")
		return
	}

	rng, err := h.resolveRange(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.analyticsFor(ctx, authCtx.RestaurantID, rng)
	if err != nil {
		h.Logger.Error("report analytics generation failed",
			zap.String("restaurantId", authCtx.RestaurantID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "ANALYTICS_FAILED", "Failed to generate sales analytics")
		return
	}

	opts := parseReportOptions(r)
	// Renderer strategy selection is per document: a fresh builder each
	// request keeps a degraded render from affecting later reports.
	buf, err := report.NewBuilder(h.Logger).Build(result, rng, opts.ReportTitle, opts)
	if err != nil {
		h.Logger.Error("report rendering failed",
			zap.String("restaurantId", authCtx.RestaurantID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "REPORT_FAILED", "Failed to render report")
		return
	}

	artifactURL := ""
	if strings.EqualFold(r.URL.Query().Get("store"), "true") {
		artifactURL = h.storeArtifact(ctx, authCtx.RestaurantID, "pdf", rng, result, buf.Bytes())
	}

	filename := fmt.Sprintf("sales_report_%s.pdf", rng.Start.Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=\"%s\"", filename))
	if artifactURL != "" {
		w.Header().Set("X-Report-Artifact", artifactURL)
	}
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// ExportCSV serializes the analytics result as delimited text.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	authCtx, ok := middleware.GetAuthContext(ctx)
	if !ok {
		response.Error(w, http.StatusNotFound, "RESTAURANT_NOT_FOUND", "Restaurant context not found")
		return
	}

	rng, err := h.resolveRange(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.analyticsFor(ctx, authCtx.RestaurantID, rng)
	if err != nil {
		h.Logger.Error("export analytics generation failed",
			zap.String("restaurantId", authCtx.RestaurantID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "ANALYTICS_FAILED", "Failed to generate sales analytics")
		return
	}

	flat, err := export.Flat(result, rng)
	if err != nil {
		h.Logger.Error("flat export failed",
			zap.String("restaurantId", authCtx.RestaurantID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to export analytics")
		return
	}

	if strings.EqualFold(r.URL.Query().Get("store"), "true") {
		h.storeArtifact(ctx, authCtx.RestaurantID, "csv", rng, result, []byte(flat))
	}

	filename := fmt.Sprintf("sales_export_%s.csv", rng.Start.Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(flat))
}

func (h *Handler) analyticsFor(ctx context.Context, restaurantID string, rng models.DateRange) (*models.SalesAnalytics, error) {
	bucket := time.Now().Truncate(h.Config.ReportCacheTTL)
	key := cacheKey("sales_analytics", restaurantID,
		rng.Start.Format(time.RFC3339), rng.End.Format(time.RFC3339), bucket.Format(time.RFC3339))
	if cached, ok := getCached(key); ok {
		if result, ok := cached.(*models.SalesAnalytics); ok {
			return result, nil
		}
	}

	lookups, err := h.fetchLookups(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	result, err := h.Engine.Generate(ctx, restaurantID, rng, lookups)
	if err != nil {
		return nil, err
	}
	setCached(key, result, h.Config.ReportCacheTTL)
	return result, nil
}

func (h *Handler) fetchLookups(ctx context.Context, restaurantID string) (analytics.LookupSet, error) {
	lookups := analytics.LookupSet{}

	menuItems, err := h.Lookups.MenuItems(ctx, restaurantID)
	if err != nil {
		return lookups, err
	}
	tables, err := h.Lookups.Tables(ctx, restaurantID)
	if err != nil {
		return lookups, err
	}
	customers, err := h.Lookups.Customers(ctx, restaurantID)
	if err != nil {
		return lookups, err
	}
	staff, err := h.Lookups.Staff(ctx, restaurantID)
	if err != nil {
		return lookups, err
	}

	lookups.MenuItems = menuItems
	lookups.Tables = tables
	lookups.Customers = customers
	lookups.Staff = staff
	return lookups, nil
}

func (h *Handler) storeArtifact(ctx context.Context, restaurantID, format string, rng models.DateRange, result *models.SalesAnalytics, body []byte) string {
	if h.Objects == nil {
		h.Logger.Warn("artifact storage requested but object store is not configured",
			zap.String("restaurantId", restaurantID))
		return ""
	}
	url, err := h.Objects.StoreReportArtifact(ctx, restaurantID, format, body)
	if err != nil {
		h.Logger.Error("report artifact upload failed",
			zap.String("restaurantId", restaurantID), zap.Error(err))
		return ""
	}

	if h.Queue != nil {
		event := queue.ReportGenerated{
			RestaurantID: restaurantID,
			Format:       format,
			RangeLabel:   rng.Label,
			ArtifactURL:  url,
			DataSource:   string(result.DataSource),
			GeneratedAt:  time.Now().UTC(),
		}
		if err := h.Queue.PublishReportGenerated(ctx, event); err != nil {
			h.Logger.Warn("report.generated publish failed",
				zap.String("restaurantId", restaurantID), zap.Error(err))
		}
	}
	return url
}

func (h *Handler) resolveRange(r *http.Request) (models.DateRange, error) {
	query := r.URL.Query()
	location := utils.ResolveLocation(h.Config.ReportTimezone)

	if preset := strings.TrimSpace(query.Get("preset")); preset != "" {
		for _, rng := range daterange.Presets(time.Now().In(location)) {
			if strings.EqualFold(rng.Label, preset) {
				return rng, nil
			}
		}
		return models.DateRange{}, fmt.Errorf("unknown preset %q", preset)
	}

	start, _, err := parseDateParam(query.Get("startDate"), location)
	if err != nil {
		return models.DateRange{}, fmt.Errorf("invalid startDate")
	}
	end, dateOnly, err := parseDateParam(query.Get("endDate"), location)
	if err != nil {
		return models.DateRange{}, fmt.Errorf("invalid endDate")
	}
	if dateOnly {
		// A bare end date means the whole business day, same convention
		// as the presets. Midnight would drop the end day entirely and
		// collapse startDate=endDate to an empty window.
		end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(999*time.Millisecond), end.Location())
	}
	if start.After(end) {
		return models.DateRange{}, fmt.Errorf("startDate must be before endDate")
	}

	label := strings.TrimSpace(query.Get("label"))
	if label == "" {
		label = "Custom Range"
	}
	return models.DateRange{Start: start, End: end, Label: label}, nil
}

func parseDateParam(value string, location *time.Location) (time.Time, bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false, fmt.Errorf("date required")
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.In(location), false, nil
	}
	if parsed, err := time.ParseInLocation("2006-01-02", value, location); err == nil {
		return parsed, true, nil
	}
	return time.Time{}, false, fmt.Errorf("invalid date")
}

func parseReportOptions(r *http.Request) report.Options {
	query := r.URL.Query()
	opts := report.AllSections()

	if raw := strings.TrimSpace(query.Get("sections")); raw != "" {
		opts = report.Options{}
		for _, section := range strings.Split(raw, ",") {
			switch strings.ToLower(strings.TrimSpace(section)) {
			case "menu":
				opts.IncludeMenuAnalysis = true
			case "table", "tables":
				opts.IncludeTableAnalysis = true
			case "customer", "customers":
				opts.IncludeCustomerAnalysis = true
			case "staff":
				opts.IncludeStaffAnalysis = true
			case "time":
				opts.IncludeTimeAnalysis = true
			case "tax":
				opts.IncludeTaxBreakdown = true
			case "discount", "discounts":
				opts.IncludeDiscountAnalysis = true
			case "credit":
				opts.IncludeCreditAnalysis = true
			case "orders":
				opts.IncludeOrderDetails = true
			}
		}
	}

	opts.ReportTitle = strings.TrimSpace(query.Get("title"))
	opts.AdditionalNotes = strings.TrimSpace(query.Get("notes"))
	return opts
}
