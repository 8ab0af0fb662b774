// Package devseed populates a development database with sample postings so
// the board has internal listings to aggregate right after a reset.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/humanlystaffing/jobboard-api/internal/data"
	"github.com/humanlystaffing/jobboard-api/internal/domain/model"
)

// Seed inserts sample employer postings. Postings are keyed by title within
// an employer, so re-running against an already seeded database only adds
// what is missing.
func Seed(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	repo := data.NewJobRepo(db)

	created := 0
	for _, req := range seedPostings() {
		exists, err := postingExists(ctx, repo, req.EmployerID, req.Title)
		if err != nil {
			return fmt.Errorf("check posting %q: %w", req.Title, err)
		}
		if exists {
			continue
		}

		if _, err := repo.Create(ctx, req); err != nil {
			return fmt.Errorf("seed posting %q: %w", req.Title, err)
		}
		created++
	}

	logger.InfoContext(ctx, "seeded development postings", "created", created, "total", len(seedPostings()))
	return nil
}

func postingExists(ctx context.Context, repo *data.JobRepo, employerID, title string) (bool, error) {
	jobs, err := repo.List(ctx, &model.JobsListOptions{EmployerID: &employerID, Limit: 100})
	if err != nil {
		return false, err
	}
	for _, j := range jobs {
		if j.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func strPtr(s string) *string { return &s }

func seedPostings() []*model.CreateJobRequest {
	return []*model.CreateJobRequest{
		{
			EmployerID:      "seed-employer-humanly",
			Title:           "Senior Platform Engineer",
			Company:         "Humanly Staffing",
			Location:        "Austin, TX",
			LocationType:    model.LocationHybrid,
			Type:            model.TypeFullTime,
			SalaryRange:     strPtr("$150,000 - $190,000"),
			ShowSalary:      true,
			ExperienceLevel: model.ExperienceSenior,
			Industry:        "Technology",
			Description: "Own the infrastructure behind our placement platform: Postgres-backed services, " +
				"Redis caching, and the listing aggregation pipeline that merges postings from a half " +
				"dozen external feeds. You will pair with product engineers on API design and carry the " +
				"platform's reliability goals.",
			Requirements: []string{"7+ years building backend services", "Production PostgreSQL and Redis experience"},
			Benefits:     []string{"Health, dental, vision", "401(k) match"},
			Skills:       []string{"Go", "PostgreSQL", "Redis", "Kubernetes"},
			Featured:     true,
			Status:       model.JobStatusActive,
		},
		{
			EmployerID:      "seed-employer-humanly",
			Title:           "Recruiting Coordinator",
			Company:         "Humanly Staffing",
			Location:        "Austin, TX",
			LocationType:    model.LocationOnsite,
			Type:            model.TypeFullTime,
			ExperienceLevel: model.ExperienceEntry,
			Industry:        "Human Resources",
			Description: "Coordinate interview scheduling, candidate communication, and onboarding paperwork " +
				"across our staffing desks. You are the first voice candidates hear and the calendar glue " +
				"that keeps placements moving, so warmth and organization both count.",
			Requirements: []string{"1+ year in a coordination or admin role"},
			Skills:       []string{"Scheduling", "ATS tooling", "Communication"},
			Status:       model.JobStatusActive,
		},
		{
			EmployerID:      "seed-employer-lakeside",
			Title:           "ICU Registered Nurse",
			Company:         "Lakeside Medical Center",
			Location:        "Dallas, TX",
			LocationType:    model.LocationOnsite,
			Type:            model.TypeFullTime,
			SalaryRange:     strPtr("$78,000 - $96,000"),
			ShowSalary:      true,
			ExperienceLevel: model.ExperienceMid,
			Industry:        "Healthcare",
			Description: "Deliver critical care nursing in our 30-bed intensive care unit. Lakeside runs " +
				"3:1 patient ratios, invests in continuing education, and staffs a dedicated float pool " +
				"so you are supported on hard shifts rather than stretched across them.",
			Requirements: []string{"Active Texas RN license", "2+ years ICU experience", "BLS and ACLS certification"},
			Benefits:     []string{"Shift differentials", "Tuition reimbursement"},
			Skills:       []string{"Critical Care", "Patient Assessment"},
			Featured:     true,
			Status:       model.JobStatusActive,
		},
		{
			EmployerID:      "seed-employer-brightline",
			Title:           "Paid Media Specialist",
			Company:         "Brightline Agency",
			Location:        "Remote",
			LocationType:    model.LocationRemote,
			Type:            model.TypeContract,
			SalaryRange:     strPtr("$45/hour"),
			ShowSalary:      true,
			ExperienceLevel: model.ExperienceMid,
			Industry:        "Marketing",
			Description: "Plan, launch, and optimize paid search and paid social campaigns for B2B clients " +
				"in the staffing and recruiting sector. You will own budgets in the low six figures, " +
				"report weekly on pipeline contribution, and test creative alongside our design team.",
			Requirements: []string{"Google Ads certification", "Portfolio of managed B2B campaigns"},
			Skills:       []string{"Google Ads", "LinkedIn Ads", "Analytics"},
			Status:       model.JobStatusActive,
		},
		{
			EmployerID:      "seed-employer-crossdock",
			Title:           "Warehouse Operations Supervisor",
			Company:         "Crossdock Logistics",
			Location:        "San Antonio, TX",
			LocationType:    model.LocationOnsite,
			Type:            model.TypeFullTime,
			SalaryRange:     strPtr("$55,000 - $65,000"),
			ExperienceLevel: model.ExperienceMid,
			Industry:        "Logistics",
			Description: "Supervise a second-shift fulfillment team of twenty-five associates across " +
				"receiving, putaway, and outbound. You own the shift's safety record, throughput " +
				"numbers, and the coaching conversations that move both, with a path to site leadership.",
			Requirements: []string{"3+ years warehouse leadership", "Comfort with WMS reporting"},
			Skills:       []string{"WMS", "Team Leadership", "Safety Compliance"},
			Status:       model.JobStatusActive,
		},
		{
			EmployerID:      "seed-employer-humanly",
			Title:           "Contract Technical Recruiter (Draft)",
			Company:         "Humanly Staffing",
			Location:        "Remote",
			LocationType:    model.LocationRemote,
			Type:            model.TypeContract,
			ExperienceLevel: model.ExperienceSenior,
			Industry:        "Human Resources",
			Description: "Source and close senior engineering candidates for a six-month product build-out. " +
				"This draft posting is intentionally unpublished; it exercises the draft status path in " +
				"development environments and never reaches the public board until activated.",
			Requirements: []string{"5+ years technical recruiting"},
			Skills:       []string{"Sourcing", "Closing", "Engineering orgs"},
			Status:       model.JobStatusDraft,
		},
	}
}
