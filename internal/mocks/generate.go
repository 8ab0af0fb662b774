// Package mocks provides mock implementations for testing the job board API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockJobRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(job, nil)
package mocks

// Generate mock for JobRepository interface from internal/core package.
// This creates MockJobRepository with methods for all JobRepository interface methods:
// Create, GetByID, List, Count, Update, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_repository_mock.go github.com/humanlystaffing/jobboard-api/internal/core JobRepository

// Generate mock for ApplicationRepository interface from internal/core package.
// This creates MockApplicationRepository with methods for all ApplicationRepository interface methods:
// Create, GetByID, List, Count, UpdateStatus, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=application_repository_mock.go github.com/humanlystaffing/jobboard-api/internal/core ApplicationRepository

// Generate mock for SavedJobRepository interface from internal/core package.
// This creates MockSavedJobRepository with methods for all SavedJobRepository interface methods:
// Save, ListByCandidate, Delete, Exists
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=saved_job_repository_mock.go github.com/humanlystaffing/jobboard-api/internal/core SavedJobRepository

// Generate mock for CacheRepository interface from internal/core package.
// This creates MockCacheRepository with methods for all CacheRepository interface methods:
// Set, Get, Delete, Exists, SetTTL, SetIfNotExists, Health
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_repository_mock.go github.com/humanlystaffing/jobboard-api/internal/core CacheRepository
