package handlers

import (
	"github.com/gin-gonic/gin"

	"wetopinie/services/directory"
	"wetopinie/services/moderation"
	"wetopinie/services/reviews"
	"wetopinie/services/submissions"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Directory endpoints
	SearchClinicsHandler      gin.HandlerFunc
	GetClinicHandler          gin.HandlerFunc
	GetCitiesHandler          gin.HandlerFunc
	GetSpecializationsHandler gin.HandlerFunc
	GetFilterStateHandler     gin.HandlerFunc
	SaveFilterStateHandler    gin.HandlerFunc
	ClearFilterStateHandler   gin.HandlerFunc

	// Review endpoints
	GetClinicReviewsHandler gin.HandlerFunc
	SubmitReviewHandler     gin.HandlerFunc

	// Submission endpoints
	SubmitClinicHandler gin.HandlerFunc
	SubmitEditHandler   gin.HandlerFunc

	// Moderation endpoints
	GetModerationQueuesHandler gin.HandlerFunc
	ApproveSubmissionHandler   gin.HandlerFunc
	RejectSubmissionHandler    gin.HandlerFunc
	GetModerationLogHandler    gin.HandlerFunc
}

// NewHandlerBundle wires every handler to its backing service.
func NewHandlerBundle(
	dirSvc directory.DirectoryService,
	filterStore *directory.FilterStateStore,
	reviewSvc reviews.ReviewService,
	submissionSvc submissions.SubmissionService,
	moderationSvc moderation.ModerationService,
) *HandlerBundle {
	return &HandlerBundle{
		SearchClinicsHandler:      SearchClinicsHandler(dirSvc),
		GetClinicHandler:          GetClinicHandler(dirSvc),
		GetCitiesHandler:          GetCitiesHandler(dirSvc),
		GetSpecializationsHandler: GetSpecializationsHandler(dirSvc),
		GetFilterStateHandler:     GetFilterStateHandler(filterStore),
		SaveFilterStateHandler:    SaveFilterStateHandler(filterStore),
		ClearFilterStateHandler:   ClearFilterStateHandler(filterStore),

		GetClinicReviewsHandler: GetClinicReviewsHandler(reviewSvc),
		SubmitReviewHandler:     SubmitReviewHandler(reviewSvc),

		SubmitClinicHandler: SubmitClinicHandler(submissionSvc),
		SubmitEditHandler:   SubmitEditHandler(submissionSvc),

		GetModerationQueuesHandler: GetModerationQueuesHandler(moderationSvc),
		ApproveSubmissionHandler:   ApproveSubmissionHandler(moderationSvc),
		RejectSubmissionHandler:    RejectSubmissionHandler(moderationSvc),
		GetModerationLogHandler:    GetModerationLogHandler(moderationSvc),
	}
}
