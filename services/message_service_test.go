package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/models"
)

func newTestMessageService(t *testing.T) (*MessageService, *fakeTelegram) {
	t.Helper()
	db := newTestDB(t)
	tg := &fakeTelegram{}
	return NewMessageService(db, newTestNotifier(db, tg, &fakeEmail{})), tg
}

func TestPortfolioContactLandsInOwnerInbox(t *testing.T) {
	svc, _ := newTestMessageService(t)
	workspace, owner := seedWorkspace(t, svc.db, "maya")

	_, err := svc.SubmitPortfolioContact(workspace, dto.ContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "I like your work",
	})
	require.NoError(t, err)

	inbox, err := svc.PortfolioInbox(owner)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, models.CategoryPortfolio, inbox[0].Category)
	assert.Equal(t, owner.ID, inbox[0].ReceiverID)
	assert.False(t, inbox[0].IsRead)
}

func TestAcademyContactRoutesToAdminInbox(t *testing.T) {
	svc, tg := newTestMessageService(t)

	_, err := svc.SubmitAcademyContact(dto.AcademyContactRequest{
		Name:        "Prospect",
		Email:       "p@example.com",
		Message:     "I want training",
		RequestType: "training",
	})
	require.NoError(t, err)

	inbox, err := svc.PlatformInbox()
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, models.AdminReceiverID, inbox[0].ReceiverID)
	assert.Equal(t, "training", inbox[0].RequestType)

	// Platform inquiries alert the admin channels.
	require.Len(t, tg.messages(), 1)
}

func TestReplyRoutingAlternatesBetweenParties(t *testing.T) {
	svc, _ := newTestMessageService(t)
	_, alice := seedWorkspace(t, svc.db, "alice")
	_, bob := seedWorkspace(t, svc.db, "bob")

	root, err := svc.SendInternal(alice, dto.InternalMessageRequest{
		ReceiverID: bob.ID,
		Message:    "hey bob",
	})
	require.NoError(t, err)

	// Bob replies: goes back to Alice.
	reply1, err := svc.Reply(bob, root.ID, "hey alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, reply1.ReceiverID)
	require.NotNil(t, reply1.ParentID)
	assert.Equal(t, root.ID, *reply1.ParentID)

	// Alice replies again: back to Bob, still attached to the root.
	reply2, err := svc.Reply(alice, root.ID, "hi again")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, reply2.ReceiverID)
	assert.Equal(t, root.ID, *reply2.ParentID)
}

func TestReplyToAReplyAttachesToRoot(t *testing.T) {
	svc, _ := newTestMessageService(t)
	_, alice := seedWorkspace(t, svc.db, "alice")
	_, bob := seedWorkspace(t, svc.db, "bob")

	root, err := svc.SendInternal(alice, dto.InternalMessageRequest{ReceiverID: bob.ID, Message: "hello"})
	require.NoError(t, err)
	reply, err := svc.Reply(bob, root.ID, "first reply")
	require.NoError(t, err)

	// Replying to the reply still threads under the root, one level deep.
	nested, err := svc.Reply(alice, reply.ID, "second reply")
	require.NoError(t, err)
	require.NotNil(t, nested.ParentID)
	assert.Equal(t, root.ID, *nested.ParentID)
}

func TestViewMarksRootReadForReceiverOnly(t *testing.T) {
	svc, _ := newTestMessageService(t)
	_, alice := seedWorkspace(t, svc.db, "alice")
	_, bob := seedWorkspace(t, svc.db, "bob")

	root, err := svc.SendInternal(alice, dto.InternalMessageRequest{ReceiverID: bob.ID, Message: "hello"})
	require.NoError(t, err)

	// Sender viewing does not mark it read.
	thread, err := svc.View(alice, root.ID)
	require.NoError(t, err)
	assert.False(t, thread.Root.Read)

	// Receiver viewing does.
	thread, err = svc.View(bob, root.ID)
	require.NoError(t, err)
	assert.True(t, thread.Root.Read)

	count, err := svc.UnreadCount(*root.WorkspaceID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestViewForbiddenForThirdParty(t *testing.T) {
	svc, _ := newTestMessageService(t)
	_, alice := seedWorkspace(t, svc.db, "alice")
	_, bob := seedWorkspace(t, svc.db, "bob")
	_, eve := seedWorkspace(t, svc.db, "eve")

	root, err := svc.SendInternal(alice, dto.InternalMessageRequest{ReceiverID: bob.ID, Message: "secret"})
	require.NoError(t, err)

	_, err = svc.View(eve, root.ID)
	assert.ErrorIs(t, err, ErrMessageForbidden)
}

func TestDeleteRemovesThreadWithReplies(t *testing.T) {
	svc, _ := newTestMessageService(t)
	_, alice := seedWorkspace(t, svc.db, "alice")
	_, bob := seedWorkspace(t, svc.db, "bob")

	root, err := svc.SendInternal(alice, dto.InternalMessageRequest{ReceiverID: bob.ID, Message: "hello"})
	require.NoError(t, err)
	_, err = svc.Reply(bob, root.ID, "reply")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(alice, root.ID))

	var count int64
	require.NoError(t, svc.db.Model(&models.Message{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestInternalInboxShowsAdminSentinelThreadsToAdmin(t *testing.T) {
	svc, _ := newTestMessageService(t)
	_, alice := seedWorkspace(t, svc.db, "alice")
	_, admin := seedWorkspace(t, svc.db, "boss")
	admin.Role = models.RoleAdmin
	require.NoError(t, svc.db.Save(admin).Error)

	_, err := svc.SendInternal(alice, dto.InternalMessageRequest{
		ReceiverID: models.AdminReceiverID,
		Message:    "help please",
	})
	require.NoError(t, err)

	inbox, err := svc.InternalInbox(admin)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, models.AdminReceiverID, inbox[0].ReceiverID)
}
