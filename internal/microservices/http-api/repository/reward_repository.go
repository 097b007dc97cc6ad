package repository

import (
	"context"
	"errors"
	"fmt"

	"novelhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RewardRepository interface {
	Reward(ctx context.Context, userID, novelID, tickets int64) (*models.RewardResult, error)
}

type rewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db: db}
}

// Reward spends tickets of userID on novelID and puts the novel on the user's
// shelf, all in one transaction. The user row is locked FOR UPDATE before the
// balance is read, so concurrent rewards by the same user run one after another
// and the second one sees the debited balance.
//
// Every path ends in Commit or Rollback, which hands the connection back to the pool.
func (r *rewardRepository) Reward(ctx context.Context, userID, novelID, tickets int64) (result *models.RewardResult, err error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin reward: %w", tx.Error)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
		if err != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "monthly_tickets").
		First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock user: %w", err)
	}

	if user.MonthlyTickets < tickets {
		return nil, ErrInsufficientTickets
	}

	debit := tx.Model(&models.User{}).
		Where("id = ? AND monthly_tickets >= ?", userID, tickets).
		Update("monthly_tickets", gorm.Expr("monthly_tickets - ?", tickets))
	if debit.Error != nil {
		return nil, fmt.Errorf("debit tickets: %w", debit.Error)
	}
	if debit.RowsAffected == 0 {
		return nil, ErrInsufficientTickets
	}

	credit := tx.Model(&models.Novel{}).
		Where("id = ?", novelID).
		Update("monthly_tickets", gorm.Expr("monthly_tickets + ?", tickets))
	if credit.Error != nil {
		return nil, fmt.Errorf("credit novel: %w", credit.Error)
	}
	if credit.RowsAffected == 0 {
		return nil, ErrNovelNotFound
	}

	// already shelved is fine, the conflict clause turns it into a no-op
	entry := &models.BookshelfEntry{UserID: userID, NovelID: novelID}
	shelve := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "novel_id"}},
		DoNothing: true,
	}).Create(entry)
	if shelve.Error != nil {
		return nil, fmt.Errorf("shelve novel: %w", shelve.Error)
	}

	if err = tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("commit reward: %w", err)
	}

	return &models.RewardResult{
		RemainingTickets: user.MonthlyTickets - tickets,
		Shelved:          shelve.RowsAffected > 0,
	}, nil
}
