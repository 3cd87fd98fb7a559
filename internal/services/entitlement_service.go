package services

import (
	"context"

	"github.com/google/uuid"

	"quizmaker/internal/models/db_models"
	"quizmaker/internal/repositories"
)

// Viewer carries the identity facts entitlement decisions run on. A nil
// AccountID means an anonymous visitor.
type Viewer struct {
	AccountID *uuid.UUID
	Role      string
}

func (v Viewer) IsAdmin() bool {
	return v.Role == db_models.RoleAdmin
}

type EntitlementServiceInterface interface {
	// IsUnlocked reports whether paid features of the quiz are available
	// to the viewer: admins always, everyone else via a purchase record.
	IsUnlocked(ctx context.Context, viewer Viewer, quizID int64) (bool, error)

	// CanManage reports whether the viewer may edit or delete the quiz.
	CanManage(viewer Viewer, quiz *db_models.Quiz) bool
}

type EntitlementService struct {
	purchaseRepo repositories.PurchaseRepository
}

func NewEntitlementService(purchaseRepo repositories.PurchaseRepository) *EntitlementService {
	return &EntitlementService{purchaseRepo: purchaseRepo}
}

func (s *EntitlementService) IsUnlocked(ctx context.Context, viewer Viewer, quizID int64) (bool, error) {
	if viewer.AccountID == nil {
		return false, nil
	}
	if viewer.IsAdmin() {
		return true, nil
	}
	return s.purchaseRepo.Exists(ctx, *viewer.AccountID, quizID)
}

func (s *EntitlementService) CanManage(viewer Viewer, quiz *db_models.Quiz) bool {
	if viewer.AccountID == nil {
		return false
	}
	if viewer.IsAdmin() {
		return true
	}
	return quiz.OwnerID != nil && *quiz.OwnerID == *viewer.AccountID
}
