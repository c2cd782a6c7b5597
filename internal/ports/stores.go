package ports

import (
	"context"

	"github.com/sahaara/core/internal/domain/entities"
)

// Fixed document keys in the local store. The whole persisted state of the
// application is two documents: the session and the user-authored task list.
const (
	SessionKey   = "sahaara_user"
	UserTasksKey = "sahaara_user_tasks"
)

// KeyValueStore is the local document store the application persists into.
// Documents are whole JSON values written with last-write-wins semantics;
// there is no locking and a single logical writer is assumed.
type KeyValueStore interface {
	// Get returns the raw document for key. found is false when the key has
	// never been written or has been deleted.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set replaces the whole document for key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the document for key. Deleting an absent key is not an
	// error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// StoreWatcher is implemented by stores that can surface external
// modifications, the analog of another tab writing to shared storage.
type StoreWatcher interface {
	// Watch emits the document key for every externally observed change until
	// ctx is cancelled.
	Watch(ctx context.Context) (<-chan string, error)
}

// SessionRepository owns the persisted session document.
type SessionRepository interface {
	// Load returns the current session, or entities.ErrNoSession when the
	// document is absent or unusable.
	Load(ctx context.Context) (*entities.Session, error)
	Save(ctx context.Context, session *entities.Session) error
	Clear(ctx context.Context) error
}

// TaskRepository owns the persisted user-authored task list.
type TaskRepository interface {
	// List returns the stored tasks in storage order. A corrupt document is
	// recovered as an empty list rather than an error.
	List(ctx context.Context) ([]entities.Task, error)
	// Append adds a task to the stored list via a whole-list
	// read-modify-write.
	Append(ctx context.Context, task entities.Task) error
}
