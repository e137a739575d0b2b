package repositories

import (
	"gorm.io/gorm"

	"github.com/codexx-academy/models"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) FindByID(id string) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// FindByWorkspaceID returns every message belonging to a workspace, oldest
// first, replies included.
func (r *MessageRepository) FindByWorkspaceID(workspaceID string) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Where("workspace_id = ?", workspaceID).Order("created_at asc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// FindPortfolioInbox returns root non-internal messages for a workspace,
// newest first. Internal threads have their own inbox.
func (r *MessageRepository) FindPortfolioInbox(workspaceID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("workspace_id = ? AND category <> ? AND parent_id IS NULL", workspaceID, string(models.CategoryInternal)).
		Order("created_at desc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// FindInternalInbox returns root internal messages where the user is sender
// or receiver, newest first.
func (r *MessageRepository) FindInternalInbox(userID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("category = ? AND parent_id IS NULL AND (sender_id = ? OR receiver_id = ?)", string(models.CategoryInternal), userID, userID).
		Order("created_at desc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// FindPlatformInbox returns root platform messages addressed to the platform
// admin, newest first.
func (r *MessageRepository) FindPlatformInbox() ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("category = ? AND parent_id IS NULL AND receiver_id = ?", string(models.CategoryPlatform), models.AdminReceiverID).
		Order("created_at desc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// FindReplies returns the replies of a root message, oldest first.
func (r *MessageRepository) FindReplies(parentID string) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Where("parent_id = ?", parentID).Order("created_at asc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) CountUnread(workspaceID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("workspace_id = ? AND is_read = ? AND parent_id IS NULL", workspaceID, false).
		Count(&count).Error
	return count, err
}

func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepository) Update(message *models.Message) error {
	return r.db.Save(message).Error
}

func (r *MessageRepository) MarkRead(id string) error {
	return r.db.Model(&models.Message{}).Where("id = ?", id).Update("is_read", true).Error
}

// DeleteThread removes a root message together with its replies.
func (r *MessageRepository) DeleteThread(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Message{}, "parent_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Message{}, "id = ?", id).Error
	})
}

func (r *MessageRepository) DeleteByWorkspaceID(workspaceID string) error {
	return r.db.Delete(&models.Message{}, "workspace_id = ?", workspaceID).Error
}
