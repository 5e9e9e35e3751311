package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/dgraph-io/badger/v4"
)

const maxConflictRetries = 5

// Store implements port.Store on top of BadgerDB.
//
// Keys:
//
//	conv:{id}                         conversation
//	convpair:{len(a)}:{a}:{b}         conversation id, a < b
//	msg:{id}                          message
//	convmsg:{conv}:{ts19}:{msg}       message id, chronological per conversation
//	call:{id}                         call
//	activecall:{user}                 id of the answered call the user is in
//	profile:{user}                    profile
type Store struct {
	db  *badger.DB
	now func() time.Time
}

// Open opens the database at path, or an in-memory one when path is empty.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(newBadgerLogger())

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return New(db), nil
}

func New(db *badger.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SendMessage(ctx context.Context, senderID, recipientID domain.UserID, content string, kind domain.MessageType) (domain.Message, error) {
	if recipientID == "" || recipientID == senderID {
		return domain.Message{}, fmt.Errorf("%w: invalid recipient", domain.ErrValidation)
	}
	if _, err := domain.NewMessage("", senderID, recipientID, content, kind, s.now()); err != nil {
		return domain.Message{}, err
	}

	var msg *domain.Message
	err := s.update(ctx, func(txn *badger.Txn) error {
		conv, err := s.resolveConversation(txn, senderID, recipientID)
		if err != nil {
			return err
		}
		msg, err = domain.NewMessage(conv.ID, senderID, recipientID, content, kind, s.now())
		if err != nil {
			return err
		}
		if err := put(txn, messageKey(msg.ID), msg); err != nil {
			return err
		}
		return txn.Set([]byte(conversationMessageKey(conv.ID, msg.CreatedAt, msg.ID)), []byte(msg.ID))
	})
	if err != nil {
		return domain.Message{}, err
	}
	return *msg, nil
}

func (s *Store) MarkDelivered(ctx context.Context, messageID domain.MessageID, recipientID domain.UserID) error {
	return s.update(ctx, func(txn *badger.Txn) error {
		msg, err := getMessage(txn, messageID)
		if err != nil {
			return err
		}
		if msg.RecipientID != recipientID {
			return fmt.Errorf("%w: not the recipient of message %s", domain.ErrForbidden, messageID)
		}
		if msg.Status != domain.MessageSent {
			return nil
		}
		at := s.now()
		msg.Status = domain.MessageDelivered
		msg.DeliveredAt = &at
		return put(txn, messageKey(msg.ID), msg)
	})
}

// MarkRead marks the reader's unread messages of the conversation as read.
// An empty messageIDs means all of them.
func (s *Store) MarkRead(ctx context.Context, conversationID domain.ConversationID, readerID domain.UserID, messageIDs []domain.MessageID) (int, error) {
	var count int
	err := s.update(ctx, func(txn *badger.Txn) error {
		count = 0
		conv, err := getConversation(txn, conversationID)
		if err != nil {
			return err
		}
		if !conv.IsParticipant(readerID) {
			return fmt.Errorf("%w: not a participant of this conversation", domain.ErrForbidden)
		}

		ids := messageIDs
		if len(ids) == 0 {
			ids, err = conversationMessageIDs(txn, conv.ID)
			if err != nil {
				return err
			}
		}

		at := s.now()
		for _, id := range ids {
			msg, err := getMessage(txn, id)
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if msg.ConversationID != conv.ID || msg.RecipientID != readerID || msg.Status == domain.MessageRead || msg.Deleted() {
				continue
			}
			msg.Status = domain.MessageRead
			msg.ReadAt = &at
			if err := put(txn, messageKey(msg.ID), msg); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	return count, err
}

func (s *Store) EditMessage(ctx context.Context, messageID domain.MessageID, requesterID domain.UserID, content string) (domain.Message, error) {
	return s.mutateMessage(ctx, messageID, func(msg *domain.Message) error {
		return msg.Edit(requesterID, content, s.now())
	})
}

func (s *Store) DeleteMessage(ctx context.Context, messageID domain.MessageID, requesterID domain.UserID) (domain.Message, error) {
	return s.mutateMessage(ctx, messageID, func(msg *domain.Message) error {
		return msg.SoftDelete(requesterID, s.now())
	})
}

func (s *Store) AddReaction(ctx context.Context, messageID domain.MessageID, requesterID domain.UserID, emoji string) (domain.Message, error) {
	if emoji == "" {
		return domain.Message{}, fmt.Errorf("%w: emoji is required", domain.ErrValidation)
	}
	return s.mutateMessage(ctx, messageID, func(msg *domain.Message) error {
		return msg.React(requesterID, emoji)
	})
}

func (s *Store) RemoveReaction(ctx context.Context, messageID domain.MessageID, requesterID domain.UserID) (domain.Message, error) {
	return s.mutateMessage(ctx, messageID, func(msg *domain.Message) error {
		return msg.React(requesterID, "")
	})
}

func (s *Store) Conversation(ctx context.Context, conversationID domain.ConversationID, requesterID domain.UserID) (domain.Conversation, error) {
	var conv domain.Conversation
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		conv, err = getConversation(txn, conversationID)
		if err != nil {
			return err
		}
		if !conv.IsParticipant(requesterID) {
			return fmt.Errorf("%w: not a participant of this conversation", domain.ErrForbidden)
		}
		return nil
	})
	if err != nil {
		return domain.Conversation{}, err
	}
	return conv, nil
}

func (s *Store) InitiateCall(ctx context.Context, callerID, receiverID domain.UserID) (domain.Call, error) {
	call, err := domain.NewCall(callerID, receiverID, s.now())
	if err != nil {
		return domain.Call{}, err
	}
	err = s.update(ctx, func(txn *badger.Txn) error {
		if err := ensureFree(txn, call.ID, callerID, receiverID); err != nil {
			return err
		}
		return put(txn, callKey(call.ID), call)
	})
	if err != nil {
		return domain.Call{}, err
	}
	return *call, nil
}

func (s *Store) TransitionCall(ctx context.Context, callID domain.CallID, status domain.CallStatus, requesterID domain.UserID) (domain.Call, error) {
	return s.advanceCall(ctx, callID, status, requesterID)
}

func (s *Store) EndCall(ctx context.Context, callID domain.CallID, requesterID domain.UserID) (domain.Call, error) {
	return s.advanceCall(ctx, callID, domain.CallEnded, requesterID)
}

func (s *Store) GetCall(ctx context.Context, callID domain.CallID, requesterID domain.UserID) (domain.Call, error) {
	var call domain.Call
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		call, err = getCall(txn, callID)
		if err != nil {
			return err
		}
		if !call.IsParty(requesterID) {
			return fmt.Errorf("%w: not a party of call %s", domain.ErrForbidden, callID)
		}
		return nil
	})
	if err != nil {
		return domain.Call{}, err
	}
	return call, nil
}

func (s *Store) TouchLastActive(ctx context.Context, identity domain.Identity, at time.Time) error {
	return s.update(ctx, func(txn *badger.Txn) error {
		profile, err := get[domain.Profile](txn, profileKey(identity.UserID))
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		profile.ID = identity.UserID
		if identity.DisplayName != "" {
			profile.DisplayName = identity.DisplayName
		}
		if at.After(profile.LastActiveAt) {
			profile.LastActiveAt = at
		}
		return put(txn, profileKey(identity.UserID), profile)
	})
}

func (s *Store) Profile(ctx context.Context, userID domain.UserID) (domain.Profile, error) {
	var profile domain.Profile
	err := s.view(ctx, func(txn *badger.Txn) error {
		var err error
		profile, err = get[domain.Profile](txn, profileKey(userID))
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: profile %s", domain.ErrNotFound, userID)
		}
		return err
	})
	return profile, err
}

func (s *Store) advanceCall(ctx context.Context, callID domain.CallID, status domain.CallStatus, requesterID domain.UserID) (domain.Call, error) {
	var call domain.Call
	err := s.update(ctx, func(txn *badger.Txn) error {
		var err error
		call, err = getCall(txn, callID)
		if err != nil {
			return err
		}
		// Either party may have been answered into another call since this one
		// was placed.
		if status == domain.CallAnswered && call.IsParty(requesterID) {
			if err := ensureFree(txn, call.ID, call.CallerID, call.ReceiverID); err != nil {
				return err
			}
		}
		if err := call.Advance(status, requesterID, s.now()); err != nil {
			return err
		}

		switch {
		case call.Status == domain.CallAnswered:
			for _, u := range []domain.UserID{call.CallerID, call.ReceiverID} {
				if err := txn.Set([]byte(activeCallKey(u)), []byte(call.ID)); err != nil {
					return err
				}
			}
		case call.Status.Terminal():
			if err := releaseActiveCall(txn, call); err != nil {
				return err
			}
		}
		return put(txn, callKey(call.ID), call)
	})
	if err != nil {
		return domain.Call{}, err
	}
	return call, nil
}

func (s *Store) mutateMessage(ctx context.Context, messageID domain.MessageID, fn func(msg *domain.Message) error) (domain.Message, error) {
	var msg domain.Message
	err := s.update(ctx, func(txn *badger.Txn) error {
		var err error
		msg, err = getMessage(txn, messageID)
		if err != nil {
			return err
		}
		if err := fn(&msg); err != nil {
			return err
		}
		return put(txn, messageKey(msg.ID), msg)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return msg, nil
}

func (s *Store) resolveConversation(txn *badger.Txn, a, b domain.UserID) (domain.Conversation, error) {
	pair := conversationPairKey(a, b)
	item, err := txn.Get([]byte(pair))
	switch {
	case err == nil:
		id, err := item.ValueCopy(nil)
		if err != nil {
			return domain.Conversation{}, err
		}
		return getConversation(txn, domain.ConversationID(id))
	case !errors.Is(err, badger.ErrKeyNotFound):
		return domain.Conversation{}, err
	}

	participants := [2]domain.UserID{a, b}
	if b < a {
		participants = [2]domain.UserID{b, a}
	}
	conv := domain.Conversation{
		ID:           domain.NewConversationID(),
		Participants: participants,
		CreatedAt:    s.now(),
	}
	if err := put(txn, conversationKey(conv.ID), conv); err != nil {
		return domain.Conversation{}, err
	}
	if err := txn.Set([]byte(pair), []byte(conv.ID)); err != nil {
		return domain.Conversation{}, err
	}
	return conv, nil
}

// update retries on transaction conflicts. The context is only checked
// between attempts; a started write is never abandoned halfway.
func (s *Store) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

func (s *Store) view(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(fn)
}

// ensureFree fails with ErrCallBusy when any of users is in an answered call
// other than callID.
func ensureFree(txn *badger.Txn, callID domain.CallID, users ...domain.UserID) error {
	for _, u := range users {
		active, err := answeredCall(txn, u)
		if err != nil {
			return err
		}
		if active != "" && active != callID {
			return fmt.Errorf("%w: %s", domain.ErrCallBusy, u)
		}
	}
	return nil
}

// answeredCall returns the id of the answered call userID is in, or "".
func answeredCall(txn *badger.Txn, userID domain.UserID) (domain.CallID, error) {
	item, err := txn.Get([]byte(activeCallKey(userID)))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	id, err := item.ValueCopy(nil)
	if err != nil {
		return "", err
	}
	call, err := getCall(txn, domain.CallID(id))
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if call.Status != domain.CallAnswered {
		return "", nil
	}
	return call.ID, nil
}

func releaseActiveCall(txn *badger.Txn, call domain.Call) error {
	for _, u := range []domain.UserID{call.CallerID, call.ReceiverID} {
		item, err := txn.Get([]byte(activeCallKey(u)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if domain.CallID(id) != call.ID {
			continue
		}
		if err := txn.Delete([]byte(activeCallKey(u))); err != nil {
			return err
		}
	}
	return nil
}

func conversationMessageIDs(txn *badger.Txn, id domain.ConversationID) ([]domain.MessageID, error) {
	prefix := []byte(conversationMessagePrefix(id))
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	var ids []domain.MessageID
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		v, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		ids = append(ids, domain.MessageID(v))
	}
	return ids, nil
}

func getMessage(txn *badger.Txn, id domain.MessageID) (domain.Message, error) {
	msg, err := get[domain.Message](txn, messageKey(id))
	if errors.Is(err, domain.ErrNotFound) {
		return msg, fmt.Errorf("%w: message %s", domain.ErrNotFound, id)
	}
	return msg, err
}

func getConversation(txn *badger.Txn, id domain.ConversationID) (domain.Conversation, error) {
	conv, err := get[domain.Conversation](txn, conversationKey(id))
	if errors.Is(err, domain.ErrNotFound) {
		return conv, fmt.Errorf("%w: conversation %s", domain.ErrNotFound, id)
	}
	return conv, err
}

func getCall(txn *badger.Txn, id domain.CallID) (domain.Call, error) {
	call, err := get[domain.Call](txn, callKey(id))
	if errors.Is(err, domain.ErrNotFound) {
		return call, fmt.Errorf("%w: call %s", domain.ErrNotFound, id)
	}
	return call, err
}

func get[T any](txn *badger.Txn, key string) (T, error) {
	var v T
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return v, domain.ErrNotFound
	}
	if err != nil {
		return v, err
	}
	err = item.Value(func(b []byte) error {
		return json.Unmarshal(b, &v)
	})
	return v, err
}

func put(txn *badger.Txn, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set([]byte(key), b)
}

func messageKey(id domain.MessageID) string {
	return "msg:" + string(id)
}

func conversationKey(id domain.ConversationID) string {
	return "conv:" + string(id)
}

// User ids are opaque and may contain the separator, so the first id is
// length prefixed.
func conversationPairKey(a, b domain.UserID) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("convpair:%d:%s:%s", len(a), a, b)
}

func conversationMessagePrefix(id domain.ConversationID) string {
	return fmt.Sprintf("convmsg:%s:", id)
}

// The zero padded timestamp keeps keys in chronological order.
func conversationMessageKey(conv domain.ConversationID, at time.Time, id domain.MessageID) string {
	return fmt.Sprintf("%s%019d:%s", conversationMessagePrefix(conv), at.UnixNano(), id)
}

func callKey(id domain.CallID) string {
	return "call:" + string(id)
}

func activeCallKey(u domain.UserID) string {
	return "activecall:" + string(u)
}

func profileKey(u domain.UserID) string {
	return "profile:" + string(u)
}
