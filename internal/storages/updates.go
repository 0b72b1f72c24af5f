package storage

import (
	"strconv"
	"time"

	"github.com/Shopify/sarama"
	"github.com/practice-sem-2/chat-service/internal/models"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	UpdateChatCreated   = "chat_created"
	UpdateMessageSent   = "message_sent"
	UpdateMemberAdded   = "member_added"
	UpdateMemberRemoved = "member_removed"
)

type UpdatesStorage struct {
	cfg      *UpdatesStoreConfig
	producer sarama.SyncProducer
}

type UpdatesStoreConfig struct {
	UpdatesTopic string
}

func NewUpdatesStore(p sarama.SyncProducer, cfg *UpdatesStoreConfig) *UpdatesStorage {
	return &UpdatesStorage{
		producer: p,
		cfg:      cfg,
	}
}

func (s *UpdatesStorage) putUpdate(topic string, chatId int64, event *structpb.Struct) error {
	bytes, err := proto.MarshalOptions{Deterministic: true}.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(chatId, 10)),
		Value: sarama.ByteEncoder(bytes),
	})

	return err
}

func idValue(id int64) *structpb.Value {
	return structpb.NewNumberValue(float64(id))
}

func newUpdate(kind string, meta models.UpdateMeta, payload map[string]*structpb.Value) *structpb.Struct {
	audience := make([]*structpb.Value, len(meta.Audience))
	for i, id := range meta.Audience {
		audience[i] = idValue(id)
	}

	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"type": structpb.NewStringValue(kind),
			"meta": structpb.NewStructValue(&structpb.Struct{
				Fields: map[string]*structpb.Value{
					"timestamp": structpb.NewStringValue(meta.Timestamp.UTC().Format(time.RFC3339Nano)),
					"audience":  structpb.NewListValue(&structpb.ListValue{Values: audience}),
				},
			}),
			"payload": structpb.NewStructValue(&structpb.Struct{Fields: payload}),
		},
	}
}

func (s *UpdatesStorage) chatCreatedToProtobuf(chat *models.ChatCreated) *structpb.Struct {
	return newUpdate(UpdateChatCreated, chat.UpdateMeta, map[string]*structpb.Value{
		"chat_id":  idValue(chat.ChatID),
		"title":    structpb.NewStringValue(chat.Title),
		"is_group": structpb.NewBoolValue(chat.IsGroup),
		"creator":  idValue(chat.Creator),
	})
}

func (s *UpdatesStorage) messageSentToProtobuf(msg *models.MessageSent) *structpb.Struct {
	return newUpdate(UpdateMessageSent, msg.UpdateMeta, map[string]*structpb.Value{
		"message_id": idValue(msg.MessageID),
		"chat_id":    idValue(msg.ChatID),
		"from_user":  idValue(msg.FromUser),
		"text":       structpb.NewStringValue(msg.Text),
	})
}

func (s *UpdatesStorage) memberAddedToProtobuf(member *models.MemberAdded) *structpb.Struct {
	return newUpdate(UpdateMemberAdded, member.UpdateMeta, map[string]*structpb.Value{
		"chat_id": idValue(member.ChatID),
		"user_id": idValue(member.UserID),
	})
}

func (s *UpdatesStorage) memberRemovedToProtobuf(member *models.MemberRemoved) *structpb.Struct {
	return newUpdate(UpdateMemberRemoved, member.UpdateMeta, map[string]*structpb.Value{
		"chat_id": idValue(member.ChatID),
		"user_id": idValue(member.UserID),
	})
}

func (s *UpdatesStorage) ChatCreated(chat *models.ChatCreated) error {
	update := s.chatCreatedToProtobuf(chat)
	return s.putUpdate(s.cfg.UpdatesTopic, chat.ChatID, update)
}

func (s *UpdatesStorage) MessageSent(msg *models.MessageSent) error {
	update := s.messageSentToProtobuf(msg)
	return s.putUpdate(s.cfg.UpdatesTopic, msg.ChatID, update)
}

func (s *UpdatesStorage) MemberAdded(member *models.MemberAdded) error {
	update := s.memberAddedToProtobuf(member)
	return s.putUpdate(s.cfg.UpdatesTopic, member.ChatID, update)
}

func (s *UpdatesStorage) MemberRemoved(member *models.MemberRemoved) error {
	update := s.memberRemovedToProtobuf(member)
	return s.putUpdate(s.cfg.UpdatesTopic, member.ChatID, update)
}

// DiscardUpdates is used when no broker is configured.
type DiscardUpdates struct{}

func (DiscardUpdates) ChatCreated(*models.ChatCreated) error     { return nil }
func (DiscardUpdates) MessageSent(*models.MessageSent) error     { return nil }
func (DiscardUpdates) MemberAdded(*models.MemberAdded) error     { return nil }
func (DiscardUpdates) MemberRemoved(*models.MemberRemoved) error { return nil }
