package insurance

import (
	"errors"
	"fmt"
	"time"

	"hospital-billing-backend/internal/models"
	"hospital-billing-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrClaimNotFound  = errors.New("claim not found")
	ErrBillNotFound   = errors.New("bill not found")
	ErrClaimFinalized = errors.New("claim already finalized")
)

type ClaimService struct {
	claims *repository.ClaimRepository
	bills  *repository.BillRepository
	db     *gorm.DB
	log    *zap.Logger
}

func NewClaimService(claims *repository.ClaimRepository, bills *repository.BillRepository, log *zap.Logger) *ClaimService {
	return &ClaimService{
		claims: claims,
		bills:  bills,
		db:     claims.DB(),
		log:    log,
	}
}

func validateFileClaim(provider, policyNumber string, amount decimal.Decimal) error {
	if provider == "" {
		return fmt.Errorf("%w: insurance provider is required", ErrInvalidInput)
	}
	if policyNumber == "" {
		return fmt.Errorf("%w: policy number is required", ErrInvalidInput)
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: claim amount must be positive", ErrInvalidInput)
	}
	return nil
}

// FileClaim opens a Pending claim against an existing bill. Claim amounts are
// independent of the bill total and filing never touches the bill's balance.
func (s *ClaimService) FileClaim(actor string, billID uuid.UUID, provider, policyNumber string, amount decimal.Decimal) (*models.InsuranceClaim, error) {
	if err := validateFileClaim(provider, policyNumber, amount); err != nil {
		return nil, err
	}

	if _, err := s.bills.GetByID(billID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}

	claim := &models.InsuranceClaim{
		ID:                uuid.New(),
		BillID:            billID,
		InsuranceProvider: provider,
		PolicyNumber:      policyNumber,
		ClaimAmount:       amount,
		ClaimStatus:       models.ClaimStatusPending,
		SubmissionDate:    time.Now(),
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(claim).Error; err != nil {
			return err
		}
		return models.AppendAuditLog(tx, &billID, "claim_filed", actor, datatypes.JSONMap{
			"claim_id":     claim.ID.String(),
			"provider":     provider,
			"claim_amount": amount.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("insurance claim filed",
		zap.String("claim_id", claim.ID.String()),
		zap.String("bill_id", billID.String()),
	)
	return claim, nil
}

func (s *ClaimService) ListClaims() ([]models.InsuranceClaim, error) {
	return s.claims.List()
}

func validateAdjudication(target string) error {
	if target != models.ClaimStatusApproved && target != models.ClaimStatusRejected {
		return fmt.Errorf("%w: claim status must be %s or %s", ErrInvalidInput,
			models.ClaimStatusApproved, models.ClaimStatusRejected)
	}
	return nil
}

// Adjudicate moves a Pending claim to Approved or Rejected. Terminal claims
// are never reopened, and approval does not adjust the bill's outstanding
// balance.
func (s *ClaimService) Adjudicate(actor string, claimID uuid.UUID, target string) (*models.InsuranceClaim, error) {
	if err := validateAdjudication(target); err != nil {
		return nil, err
	}

	var claim models.InsuranceClaim
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&claim, "id = ?", claimID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClaimNotFound
			}
			return err
		}
		if !models.ClaimCanTransition(claim.ClaimStatus, target) {
			return ErrClaimFinalized
		}

		now := time.Now()
		claim.ClaimStatus = target
		claim.ApprovalDate = &now
		if err := tx.Model(&models.InsuranceClaim{}).
			Where("id = ?", claimID).
			Updates(map[string]interface{}{
				"claim_status":  claim.ClaimStatus,
				"approval_date": claim.ApprovalDate,
			}).Error; err != nil {
			return err
		}

		return models.AppendAuditLog(tx, &claim.BillID, "claim_adjudicated", actor, datatypes.JSONMap{
			"claim_id": claim.ID.String(),
			"decision": target,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("insurance claim adjudicated",
		zap.String("claim_id", claim.ID.String()),
		zap.String("decision", target),
	)
	return &claim, nil
}
