package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jobguard/go-jobguard/pkg/engine"
	"github.com/jobguard/go-jobguard/pkg/storage"
)

const serviceVersion = "1.0.0"

// analyzeJobRequest is the assessment payload. The job text and platform
// source are required; email and URL are optional but must be
// well-shaped when present, so the analyzers only see values a client
// meant to send.
type analyzeJobRequest struct {
	JobText        string `json:"job_text" binding:"required,min=10,max=10000"`
	CompanyURL     string `json:"company_url" binding:"omitempty,max=500,joburl"`
	RecruiterEmail string `json:"recruiter_email" binding:"omitempty,max=254,email"`
	PlatformSource string `json:"platform_source" binding:"required,min=1,max=100"`
}

func (s *Server) handleAnalyzeJob(c *gin.Context) {
	var req analyzeJobRequest
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": validationDetails(err),
		})
		return
	}

	start := time.Now()
	assessment := s.guard.Assess(engine.Input{
		JobText:        req.JobText,
		CompanyURL:     req.CompanyURL,
		RecruiterEmail: req.RecruiterEmail,
		PlatformSource: req.PlatformSource,
	})
	elapsed := time.Since(start)

	s.metrics.observeAssessment(assessment.Verdict, elapsed)

	record := &storage.Record{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		RiskScore:  assessment.RiskScore,
		Verdict:    assessment.Verdict,
		Confidence: assessment.Confidence,
		Platform:   req.PlatformSource,
		FlagCount:  len(assessment.Flags),
		DurationMS: elapsed.Milliseconds(),
	}
	if err := s.store.Save(record); err != nil {
		// History is best effort; the assessment itself already
		// succeeded.
		s.logger.Warn("failed to save assessment record", zap.Error(err))
	}

	c.JSON(http.StatusOK, assessment)
}

// validationDetails flattens validator errors into one message per
// field, in payload field naming.
func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	fieldNames := map[string]string{
		"JobText":        "job_text",
		"CompanyURL":     "company_url",
		"RecruiterEmail": "recruiter_email",
		"PlatformSource": "platform_source",
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldNames[fe.Field()]
		if field == "" {
			field = fe.Field()
		}
		switch fe.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s is required", field))
		case "min":
			details = append(details, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "max":
			details = append(details, fmt.Sprintf("%s exceeds maximum length of %s", field, fe.Param()))
		case "email":
			details = append(details, fmt.Sprintf("%s must be a valid email address", field))
		case "joburl":
			details = append(details, fmt.Sprintf("%s must be a valid http or https URL", field))
		default:
			details = append(details, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
		}
	}
	return details
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "go-jobguard",
		"version": serviceVersion,
		"docs":    "/api/v1/analyze-job",
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleAPIHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": serviceVersion,
		"uptime":  time.Since(s.startedAt).Round(time.Second).String(),
		"analyzers": gin.H{
			"text":     "ok",
			"email":    "ok",
			"url":      "ok",
			"platform": "ok",
		},
	})
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.store.Stats()
	if err != nil {
		s.logger.Error("failed to aggregate stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"uptime": time.Since(s.startedAt).Round(time.Second).String(),
		"stats":  stats,
	})
}
