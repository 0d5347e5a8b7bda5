package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"hr-assist-be/internal/dto"
	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/pkg/logger"
	"hr-assist-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type IAnalyticsService interface {
	Summary(ctx context.Context, windowDays int) (*dto.AnalyticsSummary, error)
	TopFAQs(ctx context.Context, category string, limit int) ([]dto.FAQItem, error)
}

type analyticsService struct {
	queryLogRepo   contract.QueryLogRepository
	escalationRepo contract.EscalationRepository
	feedbackRepo   contract.QueryFeedbackRepository
	faqRepo        contract.FAQPatternRepository
	cache          *cache.Cache
	logger         logger.ILogger
}

func NewAnalyticsService(
	queryLogRepo contract.QueryLogRepository,
	escalationRepo contract.EscalationRepository,
	feedbackRepo contract.QueryFeedbackRepository,
	faqRepo contract.FAQPatternRepository,
	log logger.ILogger,
) IAnalyticsService {
	return &analyticsService{
		queryLogRepo:   queryLogRepo,
		escalationRepo: escalationRepo,
		feedbackRepo:   feedbackRepo,
		faqRepo:        faqRepo,
		// Dashboard polls aggressively; a 60s cache keeps the DB quiet.
		cache:  cache.New(60*time.Second, 5*time.Minute),
		logger: log,
	}
}

func (s *analyticsService) Summary(ctx context.Context, windowDays int) (*dto.AnalyticsSummary, error) {
	if windowDays <= 0 {
		windowDays = 7
	}

	cacheKey := fmt.Sprintf("summary:%d", windowDays)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.AnalyticsSummary), nil
	}

	since := time.Now().AddDate(0, 0, -windowDays)

	total, err := s.queryLogRepo.CountSince(ctx, since)
	if err != nil {
		return nil, err
	}
	escalated, err := s.queryLogRepo.CountEscalatedSince(ctx, since)
	if err != nil {
		return nil, err
	}
	avgConfidence, err := s.queryLogRepo.AverageConfidenceSince(ctx, since)
	if err != nil {
		return nil, err
	}
	avgResponseTime, err := s.queryLogRepo.AverageResponseTimeSince(ctx, since)
	if err != nil {
		return nil, err
	}
	categoryCounts, err := s.queryLogRepo.CountByCategorySince(ctx, since)
	if err != nil {
		return nil, err
	}
	dayCounts, err := s.queryLogRepo.CountByDaySince(ctx, since)
	if err != nil {
		return nil, err
	}
	pending, err := s.escalationRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	feedbackTotal, err := s.feedbackRepo.CountSince(ctx, since)
	if err != nil {
		return nil, err
	}
	feedbackHelpful, err := s.feedbackRepo.CountHelpfulSince(ctx, since)
	if err != nil {
		return nil, err
	}
	faqs, err := s.faqRepo.FindTop(ctx, 10)
	if err != nil {
		return nil, err
	}

	var escalationRate float64
	if total > 0 {
		escalationRate = round3(float64(escalated) / float64(total))
	}
	var helpfulRate float64
	if feedbackTotal > 0 {
		helpfulRate = round3(float64(feedbackHelpful) / float64(feedbackTotal))
	}

	categories := make([]dto.CategoryStat, len(categoryCounts))
	for i, c := range categoryCounts {
		categories[i] = dto.CategoryStat{Category: c.Category, Count: c.Count}
	}

	trends := make([]dto.DailyTrend, len(dayCounts))
	for i, d := range dayCounts {
		trends[i] = dto.DailyTrend{Date: d.Day.Format("2006-01-02"), Count: d.Count}
	}

	faqItems := make([]dto.FAQItem, len(faqs))
	for i, f := range faqs {
		faqItems[i] = dto.FAQItem{
			Category:      f.Category,
			QueryPattern:  f.QueryPattern,
			HitCount:      f.HitCount,
			AvgConfidence: round3(f.AvgConfidence),
		}
	}

	summary := &dto.AnalyticsSummary{
		WindowDays:         windowDays,
		TotalQueries:       total,
		EscalatedQueries:   escalated,
		EscalationRate:     escalationRate,
		AvgConfidence:      round3(avgConfidence),
		AvgResponseTimeMs:  math.Round(avgResponseTime),
		PendingEscalations: pending,
		FeedbackCount:      feedbackTotal,
		HelpfulRate:        helpfulRate,
		Categories:         categories,
		DailyTrends:        trends,
		TopFAQs:            faqItems,
	}

	s.cache.Set(cacheKey, summary, cache.DefaultExpiration)
	return summary, nil
}

func (s *analyticsService) TopFAQs(ctx context.Context, category string, limit int) ([]dto.FAQItem, error) {
	var (
		patterns []*entity.FAQPattern
		err      error
	)
	if category != "" {
		patterns, err = s.faqRepo.FindTopByCategory(ctx, category, limit)
	} else {
		patterns, err = s.faqRepo.FindTop(ctx, limit)
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.FAQItem, len(patterns))
	for i, f := range patterns {
		items[i] = dto.FAQItem{
			Category:      f.Category,
			QueryPattern:  f.QueryPattern,
			HitCount:      f.HitCount,
			AvgConfidence: round3(f.AvgConfidence),
		}
	}
	return items, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
