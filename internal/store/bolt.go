package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	dialoguesBucket = []byte("dialogues")
	chatsBucket     = []byte("chats")
)

// Dialogue is the conversation state of one chat: which form is open, the
// message carrying its keyboard and the form value itself.
type Dialogue struct {
	Kind      string          `json:"kind"`
	MessageID int64           `json:"message_id"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Chat records who talked to the bot.
type Chat struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username,omitempty"`
	FirstSeen time.Time `json:"first_seen"`
}

type Store interface {
	SaveChat(c Chat) error
	GetChat(chatID int64) (*Chat, error)
	GetDialogue(chatID int64) (*Dialogue, error)
	SaveDialogue(chatID int64, d Dialogue) error
	ClearDialogue(chatID int64) error
	Close() error
}

type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(chatsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(dialoguesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func chatKey(chatID int64) []byte {
	return []byte(strconv.FormatInt(chatID, 10))
}

// SaveChat stores c unless the chat is already known.
func (s *BoltStore) SaveChat(c Chat) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(chatsBucket)
		if b.Get(chatKey(c.ID)) != nil {
			return nil
		}
		data, err := json.Marshal(c)
		if err != nil {
			return err
		}
		return b.Put(chatKey(c.ID), data)
	})
}

func (s *BoltStore) GetChat(chatID int64) (*Chat, error) {
	var c *Chat
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(chatsBucket).Get(chatKey(chatID))
		if v == nil {
			return nil
		}
		c = &Chat{}
		return json.Unmarshal(v, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetDialogue returns nil when the chat has no open form.
func (s *BoltStore) GetDialogue(chatID int64) (*Dialogue, error) {
	var d *Dialogue
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(dialoguesBucket).Get(chatKey(chatID))
		if v == nil {
			return nil
		}
		d = &Dialogue{}
		return json.Unmarshal(v, d)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *BoltStore) SaveDialogue(chatID int64, d Dialogue) error {
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = time.Now()
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(d)
		if err != nil {
			return err
		}
		return tx.Bucket(dialoguesBucket).Put(chatKey(chatID), data)
	})
}

func (s *BoltStore) ClearDialogue(chatID int64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(dialoguesBucket).Delete(chatKey(chatID))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
