package store

import (
	"time"

	"github.com/manthan270/hirelite/internal/model"
)

// SeedJobs returns the static job list loaded at startup. Posting times are
// anchored to process start so the today/week/month buckets stay meaningful
// across demo runs.
func SeedJobs() []model.Job {
	now := time.Now()

	return []model.Job{
		{
			ID:       "job-001",
			Title:    "Senior Backend Engineer",
			Company:  "Zyntra Labs",
			Location: "Bengaluru",
			Salary:   "₹18L - ₹25L",
			Type:     "Full-time",
			Verified: true,
			PostedAt: now.Add(-6 * time.Hour),
		},
		{
			ID:       "job-002",
			Title:    "Frontend Developer",
			Company:  "PixelForge",
			Location: "Remote",
			Salary:   "₹12L - ₹16L",
			Type:     "Remote",
			PostedAt: now.Add(-30 * time.Hour),
		},
		{
			ID:       "job-003",
			Title:    "DevOps Engineer",
			Company:  "CloudNest",
			Location: "Hyderabad",
			Salary:   "₹20L - ₹28L",
			Type:     "Full-time",
			Verified: true,
			PostedAt: now.Add(-72 * time.Hour),
		},
		{
			ID:       "job-004",
			Title:    "Junior Data Analyst",
			Company:  "Quantiva",
			Location: "Pune",
			Salary:   "₹6L - ₹9L",
			Type:     "Full-time",
			PostedAt: now.Add(-12 * time.Hour),
		},
		{
			ID:       "job-005",
			Title:    "Lead Product Designer",
			Company:  "Brightloom",
			Location: "Mumbai",
			Salary:   "₹22L - ₹30L",
			Type:     "Full-time",
			Verified: true,
			PostedAt: now.Add(-200 * time.Hour),
		},
		{
			ID:       "job-006",
			Title:    "Mobile App Developer",
			Company:  "Swiftly",
			Location: "Remote",
			Salary:   "₹10L - ₹14L",
			Type:     "Contract",
			PostedAt: now.Add(-96 * time.Hour),
		},
		{
			ID:       "job-007",
			Title:    "Engineering Manager",
			Company:  "Zyntra Labs",
			Location: "Bengaluru",
			Salary:   "₹35L - ₹45L",
			Type:     "Full-time",
			Verified: true,
			PostedAt: now.Add(-500 * time.Hour),
		},
		{
			ID:       "job-008",
			Title:    "QA Intern",
			Company:  "PixelForge",
			Location: "Chennai",
			Salary:   "₹5L",
			Type:     "Internship",
			PostedAt: now.Add(-20 * time.Hour),
		},
		{
			ID:       "job-009",
			Title:    "Machine Learning Engineer",
			Company:  "NeuronWorks",
			Location: "Bengaluru",
			Salary:   "₹24L - ₹32L",
			Type:     "Full-time",
			Verified: true,
			PostedAt: now.Add(-150 * time.Hour),
		},
		{
			ID:       "job-010",
			Title:    "Technical Writer",
			Company:  "DocuCraft",
			Location: "Remote",
			Salary:   "₹8L - ₹11L",
			Type:     "Contract",
			PostedAt: now.Add(-340 * time.Hour),
		},
		{
			ID:       "job-011",
			Title:    "Principal Site Reliability Engineer",
			Company:  "CloudNest",
			Location: "Hyderabad",
			Salary:   "₹40L - ₹55L",
			Type:     "Full-time",
			Verified: true,
			PostedAt: now.Add(-60 * time.Hour),
		},
		{
			ID:       "job-012",
			Title:    "Customer Success Associate",
			Company:  "Brightloom",
			Location: "Mumbai",
			Salary:   "₹7L - ₹10L",
			Type:     "Part-time",
			PostedAt: now.Add(-400 * time.Hour),
		},
	}
}
