package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/models"
	"github.com/codexx-academy/repositories"
)

var ErrMessageForbidden = errors.New("not allowed to access this message")

// MessageService owns the three inboxes (portfolio, internal, platform) and
// the two-level reply threads underneath them.
type MessageService struct {
	db       *gorm.DB
	messages *repositories.MessageRepository
	users    *repositories.UserRepository
	notifier *NotificationService
}

func NewMessageService(db *gorm.DB, notifier *NotificationService) *MessageService {
	return &MessageService{
		db:       db,
		messages: repositories.NewMessageRepository(db),
		users:    repositories.NewUserRepository(db),
		notifier: notifier,
	}
}

// SubmitPortfolioContact stores a visitor message for a portfolio owner and
// notifies the owner over their configured channels.
func (s *MessageService) SubmitPortfolioContact(workspace *models.Workspace, req dto.ContactRequest) (*models.Message, error) {
	owner, err := s.users.FindByWorkspaceID(workspace.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	receiverID := ""
	if owner != nil {
		receiverID = owner.ID
	}

	wsID := workspace.ID
	message := &models.Message{
		WorkspaceID: &wsID,
		Name:        req.Name,
		Email:       req.Email,
		Body:        req.Message,
		SenderRole:  models.SenderVisitor,
		ReceiverID:  receiverID,
		Category:    models.CategoryPortfolio,
	}
	if err := s.messages.Create(message); err != nil {
		return nil, err
	}

	s.notifier.NotifyWorkspace(workspace.ID,
		fmt.Sprintf("New message from %s", req.Name),
		fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message))

	return message, nil
}

// SubmitAcademyContact stores a platform-level inquiry and notifies the
// administrator.
func (s *MessageService) SubmitAcademyContact(req dto.AcademyContactRequest) (*models.Message, error) {
	message := &models.Message{
		Name:         req.Name,
		Email:        req.Email,
		Body:         req.Message,
		SenderRole:   models.SenderVisitor,
		ReceiverID:   models.AdminReceiverID,
		Category:     models.CategoryPlatform,
		RequestType:  req.RequestType,
		InterestArea: req.InterestArea,
		Seriousness:  req.Seriousness,
		ContactPref:  req.ContactPref,
		Company:      req.Company,
	}
	if err := s.messages.Create(message); err != nil {
		return nil, err
	}

	s.notifier.NotifyAdmin(
		fmt.Sprintf("New academy inquiry from %s", req.Name),
		fmt.Sprintf("From: %s <%s>\nType: %s\nInterest: %s\n\n%s",
			req.Name, req.Email, req.RequestType, req.InterestArea, req.Message))

	return message, nil
}

// SendInternal composes a user-to-user or user-to-admin message.
func (s *MessageService) SendInternal(sender *models.User, req dto.InternalMessageRequest) (*models.Message, error) {
	role := models.SenderUser
	if sender.IsAdmin() {
		role = models.SenderAdmin
	}

	var wsID *string
	if req.ReceiverID != models.AdminReceiverID {
		receiver, err := s.users.FindByID(req.ReceiverID)
		if err != nil {
			return nil, errors.New("recipient not found")
		}
		id := receiver.WorkspaceID
		wsID = &id
	}

	message := &models.Message{
		WorkspaceID: wsID,
		Name:        sender.Username,
		Email:       sender.Email,
		Body:        req.Message,
		SenderID:    sender.ID,
		ReceiverID:  req.ReceiverID,
		SenderRole:  role,
		Category:    models.CategoryInternal,
	}
	if err := s.messages.Create(message); err != nil {
		return nil, err
	}

	if req.ReceiverID == models.AdminReceiverID {
		s.notifier.NotifyAdmin(
			fmt.Sprintf("Internal message from %s", sender.Username),
			req.Message)
	} else if wsID != nil {
		s.notifier.NotifyWorkspace(*wsID,
			fmt.Sprintf("Internal message from %s", sender.Username),
			req.Message)
	}

	return message, nil
}

// Reply posts into an existing thread. Replies always attach to the root and
// are addressed to the other party: replying to a thread you received routes
// back to its sender, replying to your own thread routes to its receiver.
func (s *MessageService) Reply(user *models.User, rootID string, body string) (*models.Message, error) {
	root, err := s.messages.FindByID(rootID)
	if err != nil {
		return nil, err
	}
	if !root.IsRoot() {
		// Level-two replies attach to the thread root.
		root, err = s.messages.FindByID(*root.ParentID)
		if err != nil {
			return nil, err
		}
	}
	if !s.canAccess(user, root) {
		return nil, ErrMessageForbidden
	}

	role := models.SenderUser
	if user.IsAdmin() {
		role = models.SenderAdmin
	}

	// Visitor-originated threads have an empty sender id; the reply then
	// stays addressed to the visitor's email rather than an account.
	receiverID := root.ReceiverID
	if s.isReceiver(user, root) {
		receiverID = root.SenderID
	}

	parentID := root.ID
	message := &models.Message{
		WorkspaceID: root.WorkspaceID,
		Name:        user.Username,
		Email:       user.Email,
		Body:        body,
		SenderID:    user.ID,
		ReceiverID:  receiverID,
		SenderRole:  role,
		Category:    root.Category,
		ParentID:    &parentID,
	}
	if err := s.messages.Create(message); err != nil {
		return nil, err
	}

	if receiverID == models.AdminReceiverID {
		s.notifier.NotifyAdmin(
			fmt.Sprintf("Reply from %s", user.Username), body)
	} else if root.WorkspaceID != nil && receiverID != user.ID {
		s.notifier.NotifyWorkspace(*root.WorkspaceID,
			fmt.Sprintf("Reply from %s", user.Username), body)
	}

	return message, nil
}

// isReceiver reports whether the user is on the receiving end of a root
// message.
func (s *MessageService) isReceiver(user *models.User, root *models.Message) bool {
	if root.ReceiverID == user.ID {
		return true
	}
	if root.ReceiverID == models.AdminReceiverID && user.IsAdmin() {
		return true
	}
	return false
}

func (s *MessageService) canAccess(user *models.User, message *models.Message) bool {
	if user.IsAdmin() {
		return true
	}
	if message.SenderID == user.ID || message.ReceiverID == user.ID {
		return true
	}
	if message.WorkspaceID != nil && *message.WorkspaceID == user.WorkspaceID {
		return true
	}
	return false
}

// View returns a thread and marks the root read when the viewer is its
// receiver.
func (s *MessageService) View(user *models.User, id string) (*dto.MessageThread, error) {
	root, err := s.messages.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !root.IsRoot() {
		root, err = s.messages.FindByID(*root.ParentID)
		if err != nil {
			return nil, err
		}
	}
	if !s.canAccess(user, root) {
		return nil, ErrMessageForbidden
	}

	if !root.IsRead && s.isReceiver(user, root) {
		if err := s.messages.MarkRead(root.ID); err != nil {
			return nil, err
		}
		root.IsRead = true
	}

	replies, err := s.messages.FindReplies(root.ID)
	if err != nil {
		return nil, err
	}

	thread := &dto.MessageThread{
		Root:    messageToEntry(*root),
		Replies: make([]dto.MessageEntry, 0, len(replies)),
	}
	for _, r := range replies {
		thread.Replies = append(thread.Replies, messageToEntry(r))
	}
	return thread, nil
}

// Peek returns a thread without touching read flags. Used when a message is
// read for a side purpose, like prefilling a client record.
func (s *MessageService) Peek(user *models.User, id string) (*dto.MessageThread, error) {
	root, err := s.messages.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !root.IsRoot() {
		root, err = s.messages.FindByID(*root.ParentID)
		if err != nil {
			return nil, err
		}
	}
	if !s.canAccess(user, root) {
		return nil, ErrMessageForbidden
	}

	replies, err := s.messages.FindReplies(root.ID)
	if err != nil {
		return nil, err
	}

	thread := &dto.MessageThread{
		Root:    messageToEntry(*root),
		Replies: make([]dto.MessageEntry, 0, len(replies)),
	}
	for _, r := range replies {
		thread.Replies = append(thread.Replies, messageToEntry(r))
	}
	return thread, nil
}

// PortfolioInbox lists root portfolio messages for the user's workspace.
func (s *MessageService) PortfolioInbox(user *models.User) ([]models.Message, error) {
	return s.messages.FindPortfolioInbox(user.WorkspaceID)
}

// InternalInbox lists root internal threads the user participates in. The
// admin additionally sees everything addressed to the admin sentinel.
func (s *MessageService) InternalInbox(user *models.User) ([]models.Message, error) {
	inbox, err := s.messages.FindInternalInbox(user.ID)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return inbox, nil
	}

	var adminBound []models.Message
	err = s.db.
		Where("category = ? AND parent_id IS NULL AND (sender_id = ? OR receiver_id = ?)",
			string(models.CategoryInternal), models.AdminReceiverID, models.AdminReceiverID).
		Order("created_at desc").
		Find(&adminBound).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(inbox))
	for _, m := range inbox {
		seen[m.ID] = true
	}
	for _, m := range adminBound {
		if !seen[m.ID] {
			inbox = append(inbox, m)
		}
	}
	return inbox, nil
}

// PlatformInbox lists academy inquiries. Admin only; the handler enforces it.
func (s *MessageService) PlatformInbox() ([]models.Message, error) {
	return s.messages.FindPlatformInbox()
}

// Delete removes a thread after an ownership check.
func (s *MessageService) Delete(user *models.User, id string) error {
	message, err := s.messages.FindByID(id)
	if err != nil {
		return err
	}
	if !s.canAccess(user, message) {
		return ErrMessageForbidden
	}
	return s.messages.DeleteThread(message.ID)
}

// UnreadCount returns the number of unread root messages in a workspace.
func (s *MessageService) UnreadCount(workspaceID string) (int64, error) {
	return s.messages.CountUnread(workspaceID)
}

// LatestUnread returns up to limit unread root messages for the workspace,
// newest first. The dashboard notification bell uses it.
func (s *MessageService) LatestUnread(workspaceID string, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := s.db.
		Where("workspace_id = ? AND is_read = ? AND parent_id IS NULL", workspaceID, false).
		Order("created_at desc").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
