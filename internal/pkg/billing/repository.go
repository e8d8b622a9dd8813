package billing

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/elaralabs/elara/app/models"
	"github.com/elaralabs/elara/app/repository"
)

// Repository provides DB operations used by the subscription reconciler.
type Repository interface {
	GetUserByID(id uint) (*models.User, error)
	GetUserByCustomerRef(customerID string) (*models.User, error)
	ApplyPlanState(userID uint, state PlanState) error
	CreateWebhookEventIfNotExists(event *models.BillingWebhookEvent) (bool, *models.BillingWebhookEvent, error)
	MarkWebhookProcessed(id uint, processingError string) error
}

type gormRepository struct {
	db    *gorm.DB
	users repository.UserRepository
}

// NewRepository creates a billing repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db, users: repository.NewUserRepository(db)}
}

func (r *gormRepository) GetUserByID(id uint) (*models.User, error) {
	return r.users.GetByID(id)
}

// GetUserByCustomerRef delegates to the user repository, which rejects an
// empty ref with ErrRecordNotFound instead of letting it match a user row
// whose customer column is unset.
func (r *gormRepository) GetUserByCustomerRef(customerID string) (*models.User, error) {
	return r.users.GetByStripeCustomerID(customerID)
}

// ApplyPlanState writes the plan columns in one transaction with absolute
// assignments, so replaying an event leaves identical state.
func (r *gormRepository) ApplyPlanState(userID uint, state PlanState) error {
	updates := map[string]interface{}{
		"plan":                   state.Plan,
		"stripe_subscription_id": state.SubscriptionRef,
		"plan_renewal":           state.Renewal,
	}
	if state.CustomerRef != nil {
		updates["stripe_customer_id"] = state.CustomerRef
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
	})
}

func (r *gormRepository) CreateWebhookEventIfNotExists(event *models.BillingWebhookEvent) (bool, *models.BillingWebhookEvent, error) {
	tx := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "provider"},
			{Name: "provider_event_id"},
		},
		DoNothing: true,
	}).Create(event)
	if tx.Error != nil {
		return false, nil, tx.Error
	}

	created := tx.RowsAffected > 0
	var stored models.BillingWebhookEvent
	if err := r.db.Where("provider = ? AND provider_event_id = ?", event.Provider, event.ProviderEventID).
		First(&stored).Error; err != nil {
		return false, nil, err
	}
	return created, &stored, nil
}

func (r *gormRepository) MarkWebhookProcessed(id uint, processingError string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"processed_at":     &now,
		"processing_error": processingError,
	}
	return r.db.Model(&models.BillingWebhookEvent{}).Where("id = ?", id).Updates(updates).Error
}
