package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Wyydra/ya-relay/internal/adapter/driven/presence/memory"
	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/Wyydra/ya-relay/internal/core/port/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func connOf(user domain.UserID, id domain.ConnectionID) domain.Connection {
	return domain.Connection{ID: id, UserID: user, EstablishedAt: time.Now()}
}

func eventsFor(deliveries []Delivery, connID domain.ConnectionID) []domain.EventName {
	var names []domain.EventName
	for _, d := range deliveries {
		for _, to := range d.To {
			if to == connID {
				names = append(names, d.Event.Name)
			}
		}
	}
	return names
}

func storedMessage(sender, recipient domain.UserID) domain.Message {
	return domain.Message{
		ID:             "m1",
		ConversationID: "conv1",
		SenderID:       sender,
		RecipientID:    recipient,
		Content:        "hi",
		Type:           domain.MessageText,
		Status:         domain.MessageSent,
		CreatedAt:      time.Now(),
	}
}

func TestRelay_Send_Recipient_Offline(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMessageStore(ctrl)
	presence := memory.NewRegistry()
	relay := NewRelay(store, presence)
	ctx := context.Background()

	// Given U1 is connected once and U2 is offline
	u1 := connOf("u1", "s1")
	presence.Register(u1.UserID, u1.ID)

	store.EXPECT().
		SendMessage(gomock.Any(), domain.UserID("u1"), domain.UserID("u2"), "hi", domain.MessageText).
		Return(storedMessage("u1", "u2"), nil).
		Times(1)
	// The delivered mark is never requested
	store.EXPECT().MarkDelivered(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// When U1 sends a message to U2
	deliveries, err := relay.Send(ctx, u1, domain.SendMessageCommand{RecipientID: "u2", Content: "hi"})

	// Then only the ack goes out
	req.NoError(err)
	req.Len(deliveries, 1)
	req.Equal(domain.EventMessageSent, deliveries[0].Event.Name)
	req.Equal([]domain.ConnectionID{"s1"}, deliveries[0].To)
	req.Equal(domain.MessageSent, deliveries[0].Event.Payload.(domain.Message).Status)
}

func TestRelay_Send_Recipient_With_Two_Devices(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMessageStore(ctrl)
	presence := memory.NewRegistry()
	relay := NewRelay(store, presence)
	ctx := context.Background()

	// Given U1 is connected and U2 is connected twice
	u1 := connOf("u1", "s0")
	presence.Register("u1", "s0")
	presence.Register("u2", "s1")
	presence.Register("u2", "s2")

	msg := storedMessage("u1", "u2")
	store.EXPECT().SendMessage(gomock.Any(), domain.UserID("u1"), domain.UserID("u2"), "hi", domain.MessageText).Return(msg, nil)
	// Then the delivered mark is requested exactly once, not once per socket
	store.EXPECT().MarkDelivered(gomock.Any(), msg.ID, domain.UserID("u2")).Return(nil).Times(1)

	// When U1 sends a message
	deliveries, err := relay.Send(ctx, u1, domain.SendMessageCommand{RecipientID: "u2", Content: "hi"})

	// Then both sockets of U2 receive it as delivered
	req.NoError(err)
	req.Equal([]domain.EventName{domain.EventMessageReceived}, eventsFor(deliveries, "s1"))
	req.Equal([]domain.EventName{domain.EventMessageReceived}, eventsFor(deliveries, "s2"))
	req.Equal([]domain.EventName{domain.EventMessageSent}, eventsFor(deliveries, "s0"))

	for _, d := range deliveries {
		m := d.Event.Payload.(domain.Message)
		req.Equal(domain.MessageDelivered, m.Status)
		req.NotNil(m.DeliveredAt)
	}
}

func TestRelay_Send_Delivered_Mark_Failure_Still_Delivers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMessageStore(ctrl)
	presence := memory.NewRegistry()
	relay := NewRelay(store, presence)

	presence.Register("u2", "s1")
	store.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(storedMessage("u1", "u2"), nil)
	store.EXPECT().MarkDelivered(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	deliveries, err := relay.Send(context.Background(), connOf("u1", "s0"), domain.SendMessageCommand{RecipientID: "u2", Content: "hi"})

	req.NoError(err)
	req.Equal([]domain.EventName{domain.EventMessageReceived}, eventsFor(deliveries, "s1"))
	req.Equal(domain.MessageSent, deliveries[1].Event.Payload.(domain.Message).Status)
}

func TestRelay_Send_Acks_Every_Sender_Device(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMessageStore(ctrl)
	presence := memory.NewRegistry()
	relay := NewRelay(store, presence)

	presence.Register("u1", "s0")
	presence.Register("u1", "s9")
	store.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(storedMessage("u1", "u2"), nil)

	deliveries, err := relay.Send(context.Background(), connOf("u1", "s0"), domain.SendMessageCommand{RecipientID: "u2", Content: "hi"})

	req.NoError(err)
	req.Len(deliveries, 1)
	req.ElementsMatch([]domain.ConnectionID{"s0", "s9"}, deliveries[0].To)
}

func TestRelay_Send_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMessageStore(ctrl)
	relay := NewRelay(store, memory.NewRegistry())
	store.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	cases := map[string]domain.SendMessageCommand{
		"empty content": {RecipientID: "u2", Content: "   "},
		"no recipient":  {Content: "hi"},
		"self message":  {RecipientID: "u1", Content: "hi"},
		"unknown type":  {RecipientID: "u2", Content: "hi", Type: "video"},
	}
	for name, cmd := range cases {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			deliveries, err := relay.Send(context.Background(), connOf("u1", "s0"), cmd)
			req.ErrorIs(err, domain.ErrValidation)
			req.Empty(deliveries)
		})
	}
}

func TestRelay_Typing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMessageStore(ctrl)
	presence := memory.NewRegistry()
	relay := NewRelay(store, presence)
	conv := domain.Conversation{ID: "conv1", Participants: [2]domain.UserID{"u1", "u2"}}
	u1 := connOf("u1", "s0")
	presence.Register("u1", "s0")

	t.Run("should reach the recipient only", func(t *testing.T) {
		req := require.New(t)
		presence.Register("u2", "s1")
		defer presence.Unregister("u2", "s1")
		store.EXPECT().Conversation(gomock.Any(), conv.ID, domain.UserID("u1")).Return(conv, nil)

		deliveries, err := relay.Typing(context.Background(), u1, domain.TypingCommand{ConversationID: "conv1", RecipientID: "u2", IsTyping: true})

		req.NoError(err)
		req.Len(deliveries, 1)
		req.Equal([]domain.ConnectionID{"s1"}, deliveries[0].To)
		req.Equal(domain.TypingIndicator{ConversationID: "conv1", UserID: "u1", IsTyping: true}, deliveries[0].Event.Payload)
	})

	t.Run("should be lost when the recipient is offline", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().Conversation(gomock.Any(), conv.ID, domain.UserID("u1")).Return(conv, nil)

		deliveries, err := relay.Typing(context.Background(), u1, domain.TypingCommand{ConversationID: "conv1", RecipientID: "u2"})

		req.NoError(err)
		req.Empty(deliveries)
	})

	t.Run("should reject a recipient outside the conversation", func(t *testing.T) {
		req := require.New(t)
		presence.Register("u3", "s3")
		defer presence.Unregister("u3", "s3")
		store.EXPECT().Conversation(gomock.Any(), conv.ID, domain.UserID("u1")).Return(conv, nil)

		_, err := relay.Typing(context.Background(), u1, domain.TypingCommand{ConversationID: "conv1", RecipientID: "u3", IsTyping: true})

		req.ErrorIs(err, domain.ErrForbidden)
	})

	t.Run("should reject a non participant", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().Conversation(gomock.Any(), conv.ID, domain.UserID("u3")).Return(domain.Conversation{}, domain.ErrForbidden)

		_, err := relay.Typing(context.Background(), connOf("u3", "s3"), domain.TypingCommand{ConversationID: "conv1", RecipientID: "u2"})

		req.ErrorIs(err, domain.ErrForbidden)
	})
}

func TestRelay_MarkRead_Notifies_The_Other_Participant(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMessageStore(ctrl)
	presence := memory.NewRegistry()
	relay := NewRelay(store, presence)
	conv := domain.Conversation{ID: "conv1", Participants: [2]domain.UserID{"u1", "u2"}}

	// Given both participants online, the reader with two devices
	presence.Register("u2", "r1")
	presence.Register("u2", "r2")
	presence.Register("u1", "s1")

	store.EXPECT().Conversation(gomock.Any(), conv.ID, domain.UserID("u2")).Return(conv, nil)
	store.EXPECT().MarkRead(gomock.Any(), conv.ID, domain.UserID("u2"), []domain.MessageID{"m1"}).Return(1, nil)

	// When U2 reads
	deliveries, err := relay.MarkRead(context.Background(), connOf("u2", "r1"), domain.MarkReadCommand{ConversationID: "conv1", MessageIDs: []domain.MessageID{"m1"}})

	// Then U1 gets the receipt and the reader only a confirmation
	req.NoError(err)
	req.Equal([]domain.EventName{domain.EventReadReceipt}, eventsFor(deliveries, "s1"))
	req.Equal([]domain.EventName{domain.EventReadConfirmed}, eventsFor(deliveries, "r1"))
	req.Empty(eventsFor(deliveries, "r2"))

	receipt := deliveries[1].Event.Payload.(domain.ReadReceipt)
	req.Equal(domain.UserID("u2"), receipt.ReadBy)
	req.Equal(1, receipt.Count)
}

func TestRelay_Edit(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMessageStore(ctrl)
	presence := memory.NewRegistry()
	relay := NewRelay(store, presence)
	presence.Register("u1", "s1")
	presence.Register("u2", "s2")

	t.Run("should notify both participants", func(t *testing.T) {
		req := require.New(t)
		edited := storedMessage("u1", "u2")
		edited.Content = "hello"
		store.EXPECT().EditMessage(gomock.Any(), domain.MessageID("m1"), domain.UserID("u1"), "hello").Return(edited, nil)

		deliveries, err := relay.Edit(context.Background(), connOf("u1", "s1"), domain.EditMessageCommand{MessageID: "m1", Content: "hello"})

		req.NoError(err)
		req.Len(deliveries, 1)
		req.ElementsMatch([]domain.ConnectionID{"s1", "s2"}, deliveries[0].To)
		req.Equal(domain.EventMessageEdited, deliveries[0].Event.Name)
	})

	t.Run("should reject a non sender without notifying anyone", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().EditMessage(gomock.Any(), domain.MessageID("m1"), domain.UserID("u2"), "pwned").Return(domain.Message{}, domain.ErrForbidden)

		deliveries, err := relay.Edit(context.Background(), connOf("u2", "s2"), domain.EditMessageCommand{MessageID: "m1", Content: "pwned"})

		req.ErrorIs(err, domain.ErrForbidden)
		req.Empty(deliveries)
	})

	t.Run("should reject a deleted message", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().EditMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Message{}, domain.ErrMessageDeleted)

		_, err := relay.Edit(context.Background(), connOf("u1", "s1"), domain.EditMessageCommand{MessageID: "m1", Content: "again"})

		req.ErrorIs(err, domain.ErrMessageDeleted)
	})

	t.Run("should reject empty content before the store", func(t *testing.T) {
		req := require.New(t)
		_, err := relay.Edit(context.Background(), connOf("u1", "s1"), domain.EditMessageCommand{MessageID: "m1", Content: ""})
		req.ErrorIs(err, domain.ErrValidation)
	})
}

func TestRelay_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMessageStore(ctrl)
	presence := memory.NewRegistry()
	relay := NewRelay(store, presence)
	presence.Register("u1", "s1")
	presence.Register("u2", "s2")
	presence.Register("u3", "s3")

	t.Run("should notify both participants", func(t *testing.T) {
		req := require.New(t)
		deleted := storedMessage("u1", "u2")
		deleted.Content = domain.Tombstone
		store.EXPECT().DeleteMessage(gomock.Any(), domain.MessageID("m1"), domain.UserID("u2")).Return(deleted, nil)

		deliveries, err := relay.Delete(context.Background(), connOf("u2", "s2"), domain.DeleteMessageCommand{MessageID: "m1"})

		req.NoError(err)
		req.ElementsMatch([]domain.ConnectionID{"s1", "s2"}, deliveries[0].To)
		req.Equal(domain.Tombstone, deliveries[0].Event.Payload.(domain.Message).Content)
	})

	t.Run("should reject an outsider", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().DeleteMessage(gomock.Any(), domain.MessageID("m1"), domain.UserID("u3")).Return(domain.Message{}, domain.ErrForbidden)

		deliveries, err := relay.Delete(context.Background(), connOf("u3", "s3"), domain.DeleteMessageCommand{MessageID: "m1"})

		req.ErrorIs(err, domain.ErrForbidden)
		req.Empty(deliveries)
	})
}

func TestRelay_Reactions(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMessageStore(ctrl)
	presence := memory.NewRegistry()
	relay := NewRelay(store, presence)
	presence.Register("u1", "s1")
	presence.Register("u2", "s2")

	reacted := storedMessage("u1", "u2")
	reacted.Reactions = map[domain.UserID]string{"u2": "👍"}
	store.EXPECT().AddReaction(gomock.Any(), domain.MessageID("m1"), domain.UserID("u2"), "👍").Return(reacted, nil)
	store.EXPECT().RemoveReaction(gomock.Any(), domain.MessageID("m1"), domain.UserID("u2")).Return(storedMessage("u1", "u2"), nil)

	added, err := relay.AddReaction(context.Background(), connOf("u2", "s2"), domain.ReactionCommand{MessageID: "m1", Emoji: "👍"})
	req.NoError(err)
	req.Equal(domain.EventReactionAdded, added[0].Event.Name)
	req.ElementsMatch([]domain.ConnectionID{"s1", "s2"}, added[0].To)
	req.Equal("👍", added[0].Event.Payload.(domain.ReactionUpdate).Emoji)

	removed, err := relay.RemoveReaction(context.Background(), connOf("u2", "s2"), domain.ReactionCommand{MessageID: "m1"})
	req.NoError(err)
	req.Equal(domain.EventReactionRemoved, removed[0].Event.Name)

	_, err = relay.AddReaction(context.Background(), connOf("u2", "s2"), domain.ReactionCommand{MessageID: "m1"})
	req.ErrorIs(err, domain.ErrValidation)
}
