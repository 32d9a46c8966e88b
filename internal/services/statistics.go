package services

import (
	"fmt"
	"sort"
	"time"

	"HSP-PORTAL/internal"
	"HSP-PORTAL/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatisticsService struct{}

func NewStatisticsService() *StatisticsService {
	return &StatisticsService{}
}

// StatisticsSummary holds total counts per event type
type StatisticsSummary struct {
	TotalApplications int64 `json:"total_applications"`
	TotalDocuments    int64 `json:"total_documents"`
	TotalDownloads    int64 `json:"total_downloads"`
	TotalExports      int64 `json:"total_exports"`
}

// TimeSeriesPoint is one day of counts for an event type
type TimeSeriesPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// TimeSeriesData is the day-by-day history of one event type
type TimeSeriesData struct {
	EventType  string            `json:"event_type"`
	Total      int64             `json:"total"`
	DataPoints []TimeSeriesPoint `json:"data_points"`
}

// IncrementStat bumps today's count for the given event type. The increment
// is a single UPDATE so concurrent requests cannot lose counts; the row is
// inserted on the day's first event, falling back to UPDATE again when two
// requests race on that insert.
func (s *StatisticsService) IncrementStat(eventType string) error {
	today := time.Now().UTC().Format("2006-01-02")

	increment := func() (int64, error) {
		result := internal.DB.Model(&models.Statistic{}).
			Where("event_type = ? AND date = ?", eventType, today).
			UpdateColumn("count", gorm.Expr("count + 1"))
		return result.RowsAffected, result.Error
	}

	rows, err := increment()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	stat := models.Statistic{
		ID:        uuid.New().String(),
		EventType: eventType,
		Date:      today,
		Count:     1,
	}
	if err := internal.DB.Create(&stat).Error; err != nil {
		// Lost the insert race, the row exists now
		rows, err = increment()
		if err != nil {
			return err
		}
		if rows == 0 {
			return fmt.Errorf("failed to increment %s statistic", eventType)
		}
	}
	return nil
}

// RecordApplicationSubmit records a submitted job application
func (s *StatisticsService) RecordApplicationSubmit() {
	if err := s.IncrementStat(models.StatApplicationSubmit); err != nil {
		fmt.Printf("Warning: failed to record application submit stat: %v\n", err)
	}
}

// RecordDocumentGenerate records a generated official document
func (s *StatisticsService) RecordDocumentGenerate() {
	if err := s.IncrementStat(models.StatDocumentGenerate); err != nil {
		fmt.Printf("Warning: failed to record document generate stat: %v\n", err)
	}
}

// RecordDocumentDownload records a document download
func (s *StatisticsService) RecordDocumentDownload() {
	if err := s.IncrementStat(models.StatDocumentDownload); err != nil {
		fmt.Printf("Warning: failed to record document download stat: %v\n", err)
	}
}

// RecordMemberExport records an Excel export of the member list
func (s *StatisticsService) RecordMemberExport() {
	if err := s.IncrementStat(models.StatMemberExport); err != nil {
		fmt.Printf("Warning: failed to record member export stat: %v\n", err)
	}
}

// GetSummary returns total counts for all event types. Application and
// document totals come from their own tables so numbers stay right even for
// rows created before counters existed.
func (s *StatisticsService) GetSummary() (*StatisticsSummary, error) {
	summary := &StatisticsSummary{}

	if err := internal.DB.Model(&models.Application{}).
		Count(&summary.TotalApplications).Error; err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	if err := internal.DB.Model(&models.GeneratedDocument{}).
		Count(&summary.TotalDocuments).Error; err != nil {
		return nil, fmt.Errorf("failed to count generated documents: %w", err)
	}

	if err := internal.DB.Model(&models.Statistic{}).
		Where("event_type = ?", models.StatDocumentDownload).
		Select("COALESCE(SUM(count), 0)").
		Scan(&summary.TotalDownloads).Error; err != nil {
		return nil, fmt.Errorf("failed to get download count: %w", err)
	}

	if err := internal.DB.Model(&models.Statistic{}).
		Where("event_type = ?", models.StatMemberExport).
		Select("COALESCE(SUM(count), 0)").
		Scan(&summary.TotalExports).Error; err != nil {
		return nil, fmt.Errorf("failed to get export count: %w", err)
	}

	return summary, nil
}

// GetTimeSeries returns day-by-day counts for an event type
// days is the number of days to look back
func (s *StatisticsService) GetTimeSeries(eventType string, days int) (*TimeSeriesData, error) {
	startDate := time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02")

	var stats []models.Statistic
	if err := internal.DB.
		Where("event_type = ? AND date >= ?", eventType, startDate).
		Order("date ASC").
		Find(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to get time series data: %w", err)
	}

	data := &TimeSeriesData{
		EventType:  eventType,
		DataPoints: make([]TimeSeriesPoint, 0, len(stats)),
	}

	for _, stat := range stats {
		data.DataPoints = append(data.DataPoints, TimeSeriesPoint{
			Date:  stat.Date,
			Count: stat.Count,
		})
		data.Total += stat.Count
	}

	sort.Slice(data.DataPoints, func(i, j int) bool {
		return data.DataPoints[i].Date < data.DataPoints[j].Date
	})

	return data, nil
}

// GetTrends returns time series for every tracked event type
func (s *StatisticsService) GetTrends(days int) (map[string]*TimeSeriesData, error) {
	eventTypes := []string{
		models.StatApplicationSubmit,
		models.StatDocumentGenerate,
		models.StatDocumentDownload,
		models.StatMemberExport,
	}

	trends := make(map[string]*TimeSeriesData)
	for _, et := range eventTypes {
		data, err := s.GetTimeSeries(et, days)
		if err != nil {
			return nil, err
		}
		trends[et] = data
	}

	return trends, nil
}
